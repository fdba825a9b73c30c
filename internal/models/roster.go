package models

// RosterData is the full shift state: the roster plus the four task
// collections. It is persisted whole as the "guardsData" record; every
// mutation rewrites the entire record.
type RosterData struct {
	Guards      []Guard            `json:"guards"`
	Assignments []Assignment       `json:"assignments"`
	Patrols     []PatrolAssignment `json:"patrols"`
	Meals       []MealAssignment   `json:"meals"`
	Breaks      []BreakAssignment  `json:"breaks"`
}

// FindGuard looks a guard up by name.
func (d *RosterData) FindGuard(name string) (*Guard, bool) {
	for i := range d.Guards {
		if d.Guards[i].Name == name {
			return &d.Guards[i], true
		}
	}
	return nil, false
}

// Activities flattens all four collections into the generic view.
// Encounter order is fixed (posts, patrols, meals, breaks) so that scans
// over the result are deterministic.
func (d *RosterData) Activities() []Activity {
	acts := make([]Activity, 0, len(d.Assignments)+len(d.Patrols)+len(d.Meals)+len(d.Breaks))
	for _, a := range d.Assignments {
		acts = append(acts, Activity{Kind: TaskPost, ID: a.ID, Guard: a.Guard, Target: a.Post, Planned: a.Time, Actual: a.ActualTime})
	}
	for _, p := range d.Patrols {
		acts = append(acts, Activity{Kind: TaskPatrol, ID: p.ID, Guard: p.Guard, Target: p.Patrol, Planned: p.Time, Actual: p.ActualTime})
	}
	for _, m := range d.Meals {
		acts = append(acts, Activity{Kind: TaskMeal, ID: m.ID, Guard: m.Guard, Target: "meal", Planned: m.Time, Actual: m.ActualTime})
	}
	for _, b := range d.Breaks {
		acts = append(acts, Activity{Kind: TaskBreak, ID: b.ID, Guard: b.Guard, Target: "break", Planned: b.Time, Actual: b.ActualTime})
	}
	return acts
}

// GuardActivities returns the guard's entries across all four collections,
// in encounter order.
func (d *RosterData) GuardActivities(guard string) []Activity {
	var acts []Activity
	for _, a := range d.Activities() {
		if a.Guard == guard {
			acts = append(acts, a)
		}
	}
	return acts
}
