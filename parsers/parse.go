package parsers

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"

	"github.com/mitchellh/mapstructure"

	"github.com/1pkg/kvgen"
)

// document mirrors the raw json shape of one schema command definition.
type document struct {
	Summary         string     `mapstructure:"summary"`
	Group           string     `mapstructure:"group"`
	Since           string     `mapstructure:"since"`
	Complexity      string     `mapstructure:"complexity"`
	CommandFlags    []string   `mapstructure:"command_flags"`
	DeprecatedSince string     `mapstructure:"deprecated_since"`
	Arguments       []argument `mapstructure:"arguments"`
}

type argument struct {
	Name      string     `mapstructure:"name"`
	Type      string     `mapstructure:"type"`
	Token     string     `mapstructure:"token"`
	Optional  bool       `mapstructure:"optional"`
	Multiple  bool       `mapstructure:"multiple"`
	Arguments []argument `mapstructure:"arguments"`
}

// Parse reads the schema document name from the provided fs driver into
// the command model. The document is a single json object keyed by
// command name, commands are ordered by key for deterministic output.
// The document is trusted input, no validation beyond decoding happens.
func Parse(ctx context.Context, dir fs.FS, name string) (*kvgen.Schema, error) {
	b, err := fs.ReadFile(dir, name)
	if err != nil {
		return nil, fmt.Errorf("schema document %s can't be read, %w", name, err)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("schema document %s can't be parsed, %w", name, err)
	}
	names := make([]string, 0, len(raw))
	for cname := range raw {
		names = append(names, cname)
	}
	sort.Strings(names)
	schema := &kvgen.Schema{Commands: make([]kvgen.Definition, 0, len(names))}
	for _, cname := range names {
		var doc document
		if err := mapstructure.Decode(raw[cname], &doc); err != nil {
			return nil, fmt.Errorf("schema command %s can't be decoded, %w", cname, err)
		}
		schema.Commands = append(schema.Commands, definition(cname, doc))
	}
	return schema, nil
}

func definition(name string, doc document) kvgen.Definition {
	return kvgen.Definition{
		Name:       name,
		Group:      doc.Group,
		Summary:    doc.Summary,
		Since:      doc.Since,
		Complexity: doc.Complexity,
		Flags:      doc.CommandFlags,
		Deprecated: doc.DeprecatedSince,
		Arguments:  arguments(doc.Arguments),
	}
}

func arguments(args []argument) []kvgen.Argument {
	if len(args) == 0 {
		return nil
	}
	out := make([]kvgen.Argument, 0, len(args))
	for _, a := range args {
		out = append(out, kvgen.Argument{
			Name:      a.Name,
			Type:      kvgen.ParseArgType(a.Type),
			Token:     a.Token,
			Optional:  a.Optional,
			Multiple:  a.Multiple,
			Arguments: arguments(a.Arguments),
		})
	}
	return out
}
