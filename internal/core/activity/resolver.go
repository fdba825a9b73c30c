// Package activity resolves a guard's latest executed ledger entry.
//
// A guard may hold several executed entries at once (the ledger does not
// enforce a single active task); only the entry with the maximum actual
// time is "live" for alerting and display.
package activity

import "github.com/example/guardpost/internal/models"

// Latest returns the guard's most recently executed entry across all four
// task collections. Entries without an actual time are ignored. Ties on
// identical timestamps resolve to the last entry in encounter order
// (posts, patrols, meals, breaks), which keeps repeated scans stable.
func Latest(data *models.RosterData, guard string) (models.Activity, bool) {
	var best models.Activity
	found := false
	for _, act := range data.GuardActivities(guard) {
		if act.Actual == nil {
			continue
		}
		if !found || !act.Actual.Before(*best.Actual) {
			best = act
			found = true
		}
	}
	return best, found
}

// IsLatest reports whether the entry identified by kind and id is the
// guard's resolved latest. Pending entries are never the latest.
func IsLatest(data *models.RosterData, guard string, kind models.TaskKind, id string) bool {
	latest, ok := Latest(data, guard)
	return ok && latest.Kind == kind && latest.ID == id
}

// ActiveGuards returns the names of guards with at least one executed
// entry, in first-encounter order without duplicates.
func ActiveGuards(data *models.RosterData) []string {
	seen := make(map[string]bool)
	var guards []string
	for _, act := range data.Activities() {
		if act.Actual == nil || seen[act.Guard] {
			continue
		}
		seen[act.Guard] = true
		guards = append(guards, act.Guard)
	}
	return guards
}
