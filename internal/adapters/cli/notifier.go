// Package cli contains CLI-side adapters: stateless translators between
// the application ports and terminal output.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/guardpost/internal/models"
)

// AlertNotifier implements secondary.Notifier by printing announcements to
// a writer.
type AlertNotifier struct {
	out io.Writer
}

// NewAlertNotifier creates a notifier writing to the given output.
func NewAlertNotifier(out io.Writer) *AlertNotifier {
	return &AlertNotifier{out: out}
}

// Notify prints one alert announcement.
func (n *AlertNotifier) Notify(alert models.Alert) {
	fmt.Fprintf(n.out, "%s %s on %s for %d min\n",
		color.New(color.FgRed, color.Bold).Sprint("ALERT"),
		alert.Guard, alert.Label, alert.Duration)
}
