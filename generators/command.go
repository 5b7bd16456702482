package generators

import (
	"fmt"
	"strings"

	"github.com/1pkg/kvgen"
)

// Mode controls how repeated arguments surface in emitted signatures.
type Mode uint8

const (
	// Full emits repeated arguments as slice parameters.
	Full Mode = iota
	// IgnoreMultiple emits repeated arguments as single values.
	IgnoreMultiple
)

// Command couples one schema definition with a generation mode and an
// optional overriding exposed name. The same wrapper is replayed by
// every output flavor.
type Command struct {
	Def  kvgen.Definition
	Mode Mode
	name string
}

// NewCommand wraps def applying the config renames and the ignore
// multiple list.
func NewCommand(def kvgen.Definition, cfg Config) Command {
	cmd := Command{Def: def}
	if cfg.ignoreMultiple(def.Name) {
		cmd.Mode = IgnoreMultiple
	}
	if name, ok := cfg.Rename[def.Name]; ok {
		cmd.name = name
	}
	return cmd
}

// Name returns the exported Go name the command is emitted under.
func (c Command) Name() string {
	if c.name != "" {
		return c.name
	}
	return kvgen.Camel(c.Def.Name)
}

// Alias returns a renamed copy of the same command, used to emit a
// deprecated alias forwarding to the canonical method.
func (c Command) Alias(name string) Command {
	cp := c
	cp.name = name
	return cp
}

// FeatureGate looks up an optional build tag name guarding the command,
// trying the command name first and the documentation group second.
func (c Command) FeatureGate(cfg Config) string {
	if f, ok := cfg.Features[c.Def.Name]; ok {
		return f
	}
	if f, ok := cfg.Features[c.Def.Group]; ok {
		return f
	}
	return ""
}

// Documentation assembles the command comment block from the definition
// facts and the feature gate.
func (c Command) Documentation(cfg Config) []string {
	lines := []string{fmt.Sprintf("// %s implements the %s command.", c.Name(), c.Def.Name)}
	if s := strings.TrimSpace(c.Def.Summary); s != "" {
		lines = append(lines, "//", fmt.Sprintf("// %s", s))
	}
	var facts []string
	if c.Def.Since != "" {
		facts = append(facts, fmt.Sprintf("Since: %s.", c.Def.Since))
	}
	if c.Def.Complexity != "" {
		facts = append(facts, fmt.Sprintf("Complexity: %s.", c.Def.Complexity))
	}
	if len(facts) > 0 {
		lines = append(lines, fmt.Sprintf("// %s", strings.Join(facts, " ")))
	}
	facts = nil
	if c.Def.Group != "" {
		facts = append(facts, fmt.Sprintf("Group: %s.", c.Def.Group))
	}
	if len(c.Def.Flags) > 0 {
		facts = append(facts, fmt.Sprintf("Flags: %s.", strings.Join(c.Def.Flags, ", ")))
	}
	if len(facts) > 0 {
		lines = append(lines, fmt.Sprintf("// %s", strings.Join(facts, " ")))
	}
	if gate := c.FeatureGate(cfg); gate != "" {
		lines = append(lines, fmt.Sprintf("// Requires the %q build tag.", gate))
	}
	if c.Def.Deprecated != "" {
		lines = append(lines, fmt.Sprintf("// Deprecated: as of %s.", c.Def.Deprecated))
	}
	return lines
}
