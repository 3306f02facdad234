package models

type Command string

const (
	CommandUp    Command = "up"
	CommandDown  Command = "down"
	CommandLeft  Command = "left"
	CommandRight Command = "right"
)

// Commands holds at most one command per player id for a single tick.
type Commands map[string]Command

// ParseCommand validates a direction coming off the wire.
func ParseCommand(s string) (Command, bool) {
	switch c := Command(s); c {
	case CommandUp, CommandDown, CommandLeft, CommandRight:
		return c, true
	default:
		return "", false
	}
}

// Delta returns the unit step for the command, or (0, 0) if it is unknown.
func (c Command) Delta() (dx, dy int) {
	switch c {
	case CommandUp:
		return 0, -1
	case CommandDown:
		return 0, 1
	case CommandLeft:
		return -1, 0
	case CommandRight:
		return 1, 0
	}
	return 0, 0
}
