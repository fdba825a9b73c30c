package models

import "time"

// TaskKind identifies one of the four ledger collections.
type TaskKind string

const (
	TaskPost   TaskKind = "post"
	TaskPatrol TaskKind = "patrol"
	TaskMeal   TaskKind = "meal"
	TaskBreak  TaskKind = "break"
)

// ParseTaskKind maps user input to a TaskKind.
func ParseTaskKind(s string) (TaskKind, bool) {
	switch TaskKind(s) {
	case TaskPost, TaskPatrol, TaskMeal, TaskBreak:
		return TaskKind(s), true
	}
	return "", false
}

// Assignment places a guard on a fixed post.
// Time is the planned (creation) time; ActualTime is set when the guard
// actually takes the post and cleared when the completion mark is undone.
type Assignment struct {
	ID         string     `json:"id"`
	Guard      string     `json:"guard"`
	Post       string     `json:"post"`
	Time       time.Time  `json:"time"`
	ActualTime *time.Time `json:"actualTime,omitempty"`
}

// PatrolAssignment places a guard on a named patrol round.
type PatrolAssignment struct {
	ID         string     `json:"id"`
	Guard      string     `json:"guard"`
	Patrol     string     `json:"patrol"`
	Time       time.Time  `json:"time"`
	ActualTime *time.Time `json:"actualTime,omitempty"`
}

// MealAssignment records a guard's meal break.
type MealAssignment struct {
	ID         string     `json:"id"`
	Guard      string     `json:"guard"`
	Time       time.Time  `json:"time"`
	ActualTime *time.Time `json:"actualTime,omitempty"`
}

// BreakAssignment records a guard's rest break.
type BreakAssignment struct {
	ID         string     `json:"id"`
	Guard      string     `json:"guard"`
	Time       time.Time  `json:"time"`
	ActualTime *time.Time `json:"actualTime,omitempty"`
}

// Activity is the kind-agnostic view of a single ledger entry. The four
// concrete task types flatten into this shape for resolution, scoring and
// alerting.
type Activity struct {
	Kind    TaskKind
	ID      string
	Guard   string
	Target  string // post or patrol name; "meal" / "break" for the fixed kinds
	Planned time.Time
	Actual  *time.Time
}

// Label is the alert/display label for the activity.
func (a Activity) Label() string {
	switch a.Kind {
	case TaskPost:
		return "post " + a.Target
	case TaskPatrol:
		return "patrol " + a.Target
	default:
		return string(a.Kind)
	}
}

// Executed reports whether the activity has an actual (execution) time.
func (a Activity) Executed() bool {
	return a.Actual != nil
}
