// Package cli implements the interactive menu over a task.TaskStore.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tiwariParth/go-task-manager/internal/logging"
	"github.com/tiwariParth/go-task-manager/internal/task"
)

const (
	menuTitle = "=== Task Manager ==="
	listTitle = "=== Task List ==="
	farewell  = "Good Bye! Exiting Task Manager..."
)

// handler runs one menu command. It returns io.EOF when input ends.
type handler func(*CLI) error

var handlers = map[Command]handler{
	CommandAdd:      (*CLI).addTask,
	CommandView:     (*CLI).viewTasks,
	CommandComplete: (*CLI).markCompleted,
	CommandRemove:   (*CLI).removeTask,
}

// CLI represents the interactive command-line interface.
type CLI struct {
	Store  *task.TaskStore
	in     *bufio.Reader
	out    io.Writer
	log    *log.Logger
	colors palette
}

// Options configures a CLI. Zero values give plain defaults.
type Options struct {
	Logger    *log.Logger
	ColorMode string // config.ColorAuto, ColorAlways or ColorNever
}

// NewCLI initializes a CLI reading choices from in and writing to out.
func NewCLI(store *task.TaskStore, in io.Reader, out io.Writer, opts Options) *CLI {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &CLI{
		Store:  store,
		in:     bufio.NewReader(in),
		out:    out,
		log:    logger,
		colors: newPalette(opts.ColorMode),
	}
}

// Run shows the menu until the user exits or input ends.
func (c *CLI) Run() error {
	for {
		c.printMenu()

		choice, err := c.prompt("Enter your choice: ")
		if errors.Is(err, io.EOF) {
			c.println(farewell)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read choice: %w", err)
		}

		cmd, ok := ParseCommand(choice)
		if !ok {
			c.log.Debug("invalid menu choice", "input", choice)
			c.println(c.colors.Red("Invalid Choice. Please try again."))
			continue
		}
		if cmd == CommandExit {
			c.println(farewell)
			return nil
		}

		c.log.Debug("dispatch", "command", cmd)
		if err := handlers[cmd](c); err != nil {
			if errors.Is(err, io.EOF) {
				c.println()
				c.println(farewell)
				return nil
			}
			return fmt.Errorf("%s: %w", strings.ToLower(cmd.String()), err)
		}
	}
}

func (c *CLI) printMenu() {
	c.println()
	c.println(c.colors.Bold(menuTitle))
	for _, cmd := range menu {
		c.println(fmt.Sprintf("%d. %s", int(cmd), cmd))
	}
}

func (c *CLI) addTask() error {
	name, err := c.prompt("Enter Task Name: ")
	if err != nil {
		return err
	}
	priority, err := c.prompt("Enter Task Priority [high, medium, low]: ")
	if err != nil {
		return err
	}
	dueDate, err := c.prompt("Enter Due Date (YYYY-MM-DD) [optional]: ")
	if err != nil {
		return err
	}

	added, err := c.Store.AddTask(name, priority, dueDate)
	switch {
	case errors.Is(err, task.ErrEmptyName):
		c.println(c.colors.Red("Task name cannot be empty. Task not added."))
		return nil
	case errors.Is(err, task.ErrInvalidPriority):
		c.println(c.colors.Red("Invalid Priority. Task not added."))
		return nil
	case errors.Is(err, task.ErrInvalidDateFormat):
		c.println(c.colors.Red("Invalid date format. Task not added."))
		return nil
	case err != nil:
		return err
	}

	c.println(c.colors.Green(fmt.Sprintf("Task '%s' added successfully!", added.Name)))
	if n := c.Store.CountNamed(added.Name); n > 1 {
		c.println(fmt.Sprintf("Note: %d tasks are now named '%s'.", n, added.Name))
	}
	return nil
}

func (c *CLI) viewTasks() error {
	c.showTasks()
	return nil
}

// showTasks prints the display ordering and returns it so that a following
// prompt can resolve positions against exactly what was shown.
func (c *CLI) showTasks() task.View {
	c.println()
	c.println(c.colors.Bold(listTitle))

	view := c.Store.List()
	if view.Len() == 0 {
		c.println("No tasks found!")
		return view
	}
	for n, t := range view.All() {
		c.println(c.colors.Priority(t.Priority, fmt.Sprintf("%d. %s", n, t)))
	}
	return view
}

func (c *CLI) markCompleted() error {
	if c.showTasks().Len() == 0 {
		return nil
	}

	c.println()
	name, err := c.prompt("Enter the task name to mark as completed: ")
	if err != nil {
		return err
	}

	done, err := c.Store.MarkCompleted(name)
	switch {
	case errors.Is(err, task.ErrNotFound):
		c.println(c.colors.Red("Task not found!"))
	case errors.Is(err, task.ErrAlreadyCompleted):
		c.println("Task is already completed!")
	case err != nil:
		return err
	default:
		c.println(c.colors.Green(fmt.Sprintf("Task '%s' marked as completed!", done.Name)))
	}
	return nil
}

func (c *CLI) removeTask() error {
	view := c.showTasks()
	if view.Len() == 0 {
		return nil
	}

	c.println()
	index, err := c.prompt("Enter the task number to remove: ")
	if err != nil {
		return err
	}

	removed, err := c.Store.RemoveTask(index, view)
	switch {
	case errors.Is(err, task.ErrInvalidInput):
		c.println(c.colors.Red("Invalid input! Please enter a valid task number."))
	case errors.Is(err, task.ErrInvalidIndex):
		c.println(c.colors.Red("Invalid task number!"))
	case errors.Is(err, task.ErrNotFound):
		c.println(c.colors.Red("Task not found!"))
	case err != nil:
		return err
	default:
		c.println(c.colors.Green(fmt.Sprintf("Task '%s' removed successfully!", removed.Name)))
	}
	return nil
}

// prompt writes text and reads one trimmed line. A final line without a
// newline is still returned; io.EOF is returned only when nothing was read.
func (c *CLI) prompt(text string) (string, error) {
	fmt.Fprint(c.out, text)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *CLI) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}
