package levels

// State is the lifecycle stage of a level instance.
type State int

const (
	Preloaded State = iota
	Initialized
	Started
	Stopped
	TornDown
)

func (s State) String() string {
	switch s {
	case Preloaded:
		return "preloaded"
	case Initialized:
		return "initialized"
	case Started:
		return "started"
	case Stopped:
		return "stopped"
	case TornDown:
		return "torn-down"
	}
	return "unknown"
}

// CanStart reports whether a level in this state may be started.
func (s State) CanStart() bool {
	return s == Initialized || s == Stopped
}
