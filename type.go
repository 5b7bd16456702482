package kvgen

// ArgType is an argument shape kind from the command schema.
type ArgType uint8

const (
	Invalid ArgType = iota
	String
	Integer
	Double
	Key
	PureToken
	Oneof
	Block
	// Shapes bellow are not processed by generators but still defined
	// here for visibility and potentially could be supported in the
	// future.
	Pattern
	UnixTime
)

// Scalar reports whether the shape is a plain value leaf.
func (t ArgType) Scalar() bool {
	switch t {
	case String, Integer, Double, Key:
		return true
	default:
		return false
	}
}

// GoType returns the Go type emitted for a scalar shape.
func (t ArgType) GoType() string {
	switch t {
	case String, Key:
		return "string"
	case Integer:
		return "int64"
	case Double:
		return "float64"
	default:
		return ""
	}
}

func (t ArgType) String() string {
	switch t {
	case String:
		return "string"
	case Integer:
		return "integer"
	case Double:
		return "double"
	case Key:
		return "key"
	case PureToken:
		return "pure-token"
	case Oneof:
		return "oneof"
	case Block:
		return "block"
	case Pattern:
		return "pattern"
	case UnixTime:
		return "unix-time"
	default:
		return "invalid"
	}
}

// ParseArgType maps a schema document shape name to its kind,
// unknown names map to Invalid.
func ParseArgType(name string) ArgType {
	switch name {
	case "string":
		return String
	case "integer":
		return Integer
	case "double":
		return Double
	case "key":
		return Key
	case "pure-token":
		return PureToken
	case "oneof":
		return Oneof
	case "block":
		return Block
	case "pattern":
		return Pattern
	case "unix-time":
		return UnixTime
	default:
		return Invalid
	}
}
