package cli

import "strings"

// Command is a menu entry.
type Command int

const (
	CommandAdd Command = iota + 1
	CommandView
	CommandComplete
	CommandRemove
	CommandExit
)

// menu lists the entries in display order.
var menu = []Command{CommandAdd, CommandView, CommandComplete, CommandRemove, CommandExit}

// String returns the menu label.
func (c Command) String() string {
	switch c {
	case CommandAdd:
		return "Add Task"
	case CommandView:
		return "View Tasks"
	case CommandComplete:
		return "Mark Task as Completed"
	case CommandRemove:
		return "Remove Task"
	case CommandExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// ParseCommand maps a menu choice ("1" to "5") to its Command.
func ParseCommand(s string) (Command, bool) {
	switch strings.TrimSpace(s) {
	case "1":
		return CommandAdd, true
	case "2":
		return CommandView, true
	case "3":
		return CommandComplete, true
	case "4":
		return CommandRemove, true
	case "5":
		return CommandExit, true
	}
	return 0, false
}
