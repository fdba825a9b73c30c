package cli

import (
	"time"

	"github.com/fatih/color"

	"github.com/example/guardpost/internal/models"
)

// guardColors maps the palette names stored on guards to terminal colors.
var guardColors = map[string]color.Attribute{
	"green":      color.FgGreen,
	"blue":       color.FgBlue,
	"cyan":       color.FgCyan,
	"magenta":    color.FgMagenta,
	"yellow":     color.FgYellow,
	"red":        color.FgRed,
	"hi-green":   color.FgHiGreen,
	"hi-blue":    color.FgHiBlue,
	"hi-cyan":    color.FgHiCyan,
	"hi-magenta": color.FgHiMagenta,
}

// guardName renders a guard's name in their palette color.
func guardName(g models.Guard) string {
	attr, ok := guardColors[g.Color]
	if !ok {
		return g.Name
	}
	return color.New(attr).Sprint(g.Name)
}

// guardNameFor colors a task's guard reference, falling back to plain text
// for dangling references.
func guardNameFor(guards []models.Guard, name string) string {
	for _, g := range guards {
		if g.Name == name {
			return guardName(g)
		}
	}
	return name
}

// clock renders a timestamp as shift-local HH:MM, or a dash when unset.
func clock(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("15:04")
}

// parseClock parses a HH:MM time-of-day against today's date.
func parseClock(s string, now time.Time) (time.Time, error) {
	parsed, err := time.ParseInLocation("15:04", s, now.Location())
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(now.Year(), now.Month(), now.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, now.Location()), nil
}
