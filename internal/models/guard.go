// Package models contains domain types for guardpost entities.
// Persistence lives behind the StateStore port in ports/secondary.
package models

// SupplementalMarker is the legacy shift-label substring that used to mark
// a guard as supplemental duty. New data carries the explicit Supplemental
// flag; the marker is only consulted when importing legacy payloads.
const SupplementalMarker = "תמך"

// Guard is a member of the shift roster. Tasks reference guards by name
// only; deleting a guard does not cascade to their tasks.
type Guard struct {
	Name         string `json:"name"`
	Certified    bool   `json:"certified"`
	Color        string `json:"color,omitempty"`
	ShiftLabel   string `json:"shiftType,omitempty"`
	Supplemental bool   `json:"supplemental,omitempty"`
}

// GuardColors is the palette cycled through when guards are added.
// Values are color names understood by the CLI renderer.
var GuardColors = []string{
	"green",
	"blue",
	"cyan",
	"magenta",
	"yellow",
	"red",
	"hi-green",
	"hi-blue",
	"hi-cyan",
	"hi-magenta",
}

// NextGuardColor returns the palette color for the n-th guard added.
func NextGuardColor(n int) string {
	return GuardColors[n%len(GuardColors)]
}
