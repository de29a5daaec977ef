package cli

import (
	"github.com/fatih/color"

	"github.com/tiwariParth/go-task-manager/internal/config"
	"github.com/tiwariParth/go-task-manager/internal/models"
)

// palette wraps the colour functions used by the shell.
type palette struct {
	bold   *color.Color
	red    *color.Color
	green  *color.Color
	yellow *color.Color
}

// newPalette builds a palette for the given config colour mode. In auto mode
// fatih/color decides based on whether stdout is a terminal.
func newPalette(mode string) palette {
	p := palette{
		bold:   color.New(color.Bold),
		red:    color.New(color.FgRed),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.bold, p.red, p.green, p.yellow} {
		switch mode {
		case config.ColorNever:
			c.DisableColor()
		case config.ColorAlways:
			c.EnableColor()
		}
	}
	return p
}

func (p palette) Bold(s string) string  { return p.bold.Sprint(s) }
func (p palette) Red(s string) string   { return p.red.Sprint(s) }
func (p palette) Green(s string) string { return p.green.Sprint(s) }

// Priority colours a task line by its priority.
func (p palette) Priority(pr models.Priority, s string) string {
	switch pr {
	case models.High:
		return p.red.Sprint(s)
	case models.Medium:
		return p.yellow.Sprint(s)
	default:
		return p.green.Sprint(s)
	}
}
