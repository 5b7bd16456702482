package main

import (
	"log"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/1pkg/kvgen/cmd"
	"github.com/1pkg/kvgen/generators"
)

func main() {
	var (
		schema string
		out    string
		flavor string
		pckg   string
		config string
	)
	root := &cobra.Command{
		Use:           "kvgen",
		Short:         "kvgen generates store client bindings from a command schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := generators.DefaultConfig()
			if err != nil {
				return err
			}
			if config != "" {
				if _, err := toml.DecodeFile(config, &cfg); err != nil {
					return err
				}
			}
			if pckg != "" {
				cfg.Package = pckg
			}
			flavors := generators.Flavors()
			if flavor != "all" {
				flavors = []generators.Flavor{generators.Flavor(flavor)}
			}
			for _, f := range flavors {
				p, err := cmd.Run(c.Context(), f, cfg, schema, out)
				if err != nil {
					return err
				}
				log.Println(p, "successfully generated")
			}
			return nil
		},
	}
	root.Flags().StringVar(&schema, "schema", "commands.json", "path of the command schema document")
	root.Flags().StringVar(&out, "out", ".", "output directory for generated files")
	root.Flags().StringVar(&flavor, "flavor", "all", "output flavor, one of [commands, impl, async, pipeline, cluster, tokens] or all")
	root.Flags().StringVar(&pckg, "package", "", "package name of generated files, config default when empty")
	root.Flags().StringVar(&config, "config", "", "path of a toml document overriding the embedded config defaults")
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
