package workflowManager

// State is the phase the interactive run is in.
type State int

const (
	Connecting State = iota
	Calibrating
	LockingPressure
	CollectingSession
	Exporting
	Done
	Aborted
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Calibrating:
		return "calibrating"
	case LockingPressure:
		return "locking pressure"
	case CollectingSession:
		return "collecting session"
	case Exporting:
		return "exporting"
	case Done:
		return "done"
	case Aborted:
		return "aborted"
	}
	return "unknown"
}
