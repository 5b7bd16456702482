package kvgen

// Schema is an ordered collection of command definitions produced by a
// schema document loader. The order is the document order and is kept
// stable for the whole generation run.
type Schema struct {
	Commands []Definition
}

// Definition describes a single store command.
type Definition struct {
	Name       string
	Group      string
	Summary    string
	Since      string
	Complexity string
	Flags      []string
	// Deprecated holds the version the command was deprecated in,
	// empty when the command is not deprecated.
	Deprecated string
	Arguments  []Argument
}

// HasFlag reports whether the definition carries the capability flag.
func (d Definition) HasFlag(name string) bool {
	for _, f := range d.Flags {
		if f == name {
			return true
		}
	}
	return false
}

// Argument describes one node of a command argument tree. Oneof and
// Block arguments own a nested ordered argument sequence.
type Argument struct {
	Name string
	Type ArgType
	// Token is the literal keyword written on the protocol stream
	// before or instead of the argument value.
	Token     string
	Optional  bool
	Multiple  bool
	Arguments []Argument
}
