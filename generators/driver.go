package generators

// Flavor selects one of the closed set of output flavors.
type Flavor string

const (
	// FlavorCommands emits the blocking command surface interface.
	FlavorCommands Flavor = "commands"
	// FlavorImpl emits blocking methods on the owned client type.
	FlavorImpl Flavor = "impl"
	// FlavorAsync emits context aware methods on the async client type.
	FlavorAsync Flavor = "async"
	// FlavorPipeline emits chainable enqueue methods on the pipeline.
	FlavorPipeline Flavor = "pipeline"
	// FlavorCluster emits chainable enqueue methods on the cluster
	// pipeline.
	FlavorCluster Flavor = "cluster"
	// FlavorTokens emits derived argument types and their wire
	// serialization only, no command methods.
	FlavorTokens Flavor = "tokens"
)

// Flavors lists every supported output flavor in emission order.
func Flavors() []Flavor {
	return []Flavor{
		FlavorCommands,
		FlavorImpl,
		FlavorAsync,
		FlavorPipeline,
		FlavorCluster,
		FlavorTokens,
	}
}

// shape carries the facts the shared method traversal differs on
// between the five method emitting flavors.
type shape struct {
	// recv is the method receiver type, empty for the interface flavor.
	recv string
	// recvName is the receiver identifier used inside method bodies.
	recvName string
	// ctx prepends a context.Context parameter to every signature.
	ctx bool
	// queue enqueues the composed command and returns the receiver
	// instead of decoding a result.
	queue bool
	// iface emits method signatures only, inside an interface block.
	iface bool
}

func flavorShape(f Flavor) (shape, bool) {
	switch f {
	case FlavorCommands:
		return shape{iface: true}, true
	case FlavorImpl:
		return shape{recv: "*Client", recvName: "c"}, true
	case FlavorAsync:
		return shape{recv: "*AsyncClient", recvName: "c", ctx: true}, true
	case FlavorPipeline:
		return shape{recv: "*Pipeline", recvName: "p", queue: true}, true
	case FlavorCluster:
		return shape{recv: "*ClusterPipeline", recvName: "p", queue: true}, true
	default:
		return shape{}, false
	}
}
