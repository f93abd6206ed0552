package game

// State is the lifecycle of a frame driver.
type State uint8

const (
	// Uninitialized: no viewport size has been received yet.
	Uninitialized State = iota
	// Running: the first resize has set up the viewport.
	Running
	// Stopped is terminal. Events and frames are ignored.
	Stopped
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}
