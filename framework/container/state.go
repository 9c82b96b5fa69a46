package container

// State is the lifecycle stage of a Container.
type State int

const (
	StateUninitialized State = iota
	StateBuilding
	StateWiring
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateBuilding:
		return "building"
	case StateWiring:
		return "wiring"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
