package game

// State is the position of a round in its lifecycle.
type State int

const (
	AwaitingInput State = iota
	Committed
	AwaitingHumanMove
	Resolved
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting-input"
	case Committed:
		return "committed"
	case AwaitingHumanMove:
		return "awaiting-human-move"
	case Resolved:
		return "resolved"
	default:
		return "unknown"
	}
}
