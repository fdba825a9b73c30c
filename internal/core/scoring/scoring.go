// Package scoring maps completed tasks to points via an ordered rule table.
package scoring

import (
	"sort"
	"strings"

	"github.com/example/guardpost/internal/models"
)

// rule is a single prioritized match. First matching rule wins.
type rule struct {
	match  func(name string) bool
	points float64
}

// Table is the prioritized score lookup built from a ScoreTable and the
// patrol set. Rule order is significant and fixed:
//
//  1. exact match on a named patrol slot
//  2. substring match on a patrol family marker
//  3. membership in the patrol set (defaultPatrol)
//  4. exact match on a post name
//
// Anything unmatched scores 0. The generic patrol rule must come after the
// slot and family rules or it would shadow them.
type Table struct {
	rules []rule
}

// NewTable builds the rule table. Map keys are ordered lexically so the
// table is deterministic regardless of map iteration.
func NewTable(scores models.ScoreTable, patrols []string) Table {
	var t Table

	for _, slot := range sortedKeys(scores.NamedSlots) {
		slot, points := slot, scores.NamedSlots[slot]
		t.rules = append(t.rules, rule{
			match:  func(name string) bool { return name == slot },
			points: points,
		})
	}

	for _, marker := range sortedKeys(scores.Families) {
		marker, points := marker, scores.Families[marker]
		t.rules = append(t.rules, rule{
			match:  func(name string) bool { return strings.Contains(name, marker) },
			points: points,
		})
	}

	patrolSet := make(map[string]bool, len(patrols))
	for _, p := range patrols {
		patrolSet[p] = true
	}
	t.rules = append(t.rules, rule{
		match:  func(name string) bool { return patrolSet[name] },
		points: scores.DefaultPatrol,
	})

	for _, post := range sortedKeys(scores.Posts) {
		post, points := post, scores.Posts[post]
		t.rules = append(t.rules, rule{
			match:  func(name string) bool { return name == post },
			points: points,
		})
	}

	return t
}

// ScoreOf returns the points for a task target name.
func (t Table) ScoreOf(name string) float64 {
	for _, r := range t.rules {
		if r.match(name) {
			return r.points
		}
	}
	return 0
}

// GuardScore sums the scores of the guard's executed post and patrol
// tasks. Meals and breaks never contribute.
func GuardScore(data *models.RosterData, t Table, guard string) float64 {
	var total float64
	for _, act := range data.GuardActivities(guard) {
		if act.Actual == nil {
			continue
		}
		if act.Kind != models.TaskPost && act.Kind != models.TaskPatrol {
			continue
		}
		total += t.ScoreOf(act.Target)
	}
	return total
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
