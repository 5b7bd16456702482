package generators

import (
	"fmt"
	"go/format"
	"io"
	"sort"

	"github.com/1pkg/kvgen"
)

// Generate produces one output flavor for the provided schema into w.
// The flavor set is closed, an unknown flavor is an error. Repeated runs
// over the same schema and config are byte identical.
func Generate(cfg Config, schema kvgen.Schema, flavor Flavor, w io.Writer) error {
	var buf buffer
	if sh, ok := flavorShape(flavor); ok {
		methods(cfg, schema, sh, &buf)
	} else if flavor == FlavorTokens {
		tokens(cfg, schema, &buf)
	} else {
		return fmt.Errorf("unknown output flavor %q", flavor)
	}
	src, err := format.Source([]byte(buf.String()))
	if err != nil {
		return fmt.Errorf("flavor %s produced malformed source, %w", flavor, err)
	}
	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("flavor %s output can't be written, %w", flavor, err)
	}
	return nil
}

// sorted wraps schema commands and orders them by group then name, so
// repeated runs traverse the schema identically.
func sorted(cfg Config, schema kvgen.Schema) []Command {
	cmds := make([]Command, 0, len(schema.Commands))
	for _, def := range schema.Commands {
		cmds = append(cmds, NewCommand(def, cfg))
	}
	sort.SliceStable(cmds, func(i, j int) bool {
		if cmds[i].Def.Group != cmds[j].Def.Group {
			return cmds[i].Def.Group < cmds[j].Def.Group
		}
		return cmds[i].Def.Name < cmds[j].Def.Name
	})
	return cmds
}

// header opens every generated file.
func header(cfg Config, buf *buffer) {
	buf.Line("// Code generated by kvgen. DO NOT EDIT.")
	buf.Blank()
	buf.Line("package %s", cfg.Package)
	buf.Blank()
}
