// Package command holds the discrete player commands and the queue that carries
// them from input producers (voice recognition, keyboard) to the simulation loop.
package command

// Command is a discrete player intent.
type Command int

const (
	Jump Command = iota + 1
	Stop
	Move
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case Jump:
		return "jump"
	case Stop:
		return "stop"
	case Move:
		return "move"
	default:
		return "unknown"
	}
}

// Parse returns the command named by s, as produced by String.
func Parse(s string) (Command, bool) {
	switch s {
	case "jump":
		return Jump, true
	case "stop":
		return Stop, true
	case "move":
		return Move, true
	}
	return 0, false
}
