package models

// ScoreTable configures the ordered scoring rules. Lookup order is
// significant: named slots, then family markers, then patrol-set
// membership, then posts. See core/scoring.
type ScoreTable struct {
	// NamedSlots maps specific patrol labels to their score (exact match).
	NamedSlots map[string]float64 `json:"namedSlots"`
	// Families maps reserved substring markers to a score. A patrol label
	// containing the marker scores the family value.
	Families map[string]float64 `json:"families"`
	// DefaultPatrol scores any patrol not matched above.
	DefaultPatrol float64 `json:"defaultPatrol"`
	// Posts maps specific post names to their score (exact match).
	Posts map[string]float64 `json:"posts"`
}

// ShiftSettings holds the shift-wide alert thresholds and score table.
// Persisted whole as the "shiftSettings" record; engines re-read it from
// the store on every evaluation so saved changes apply immediately.
type ShiftSettings struct {
	AlertThresholdMinutes int        `json:"alertThresholdMinutes"`
	BreakThresholdMinutes int        `json:"breakThresholdMinutes"`
	MealThresholdMinutes  int        `json:"mealThresholdMinutes"`
	Scores                ScoreTable `json:"scores"`
}

// ThresholdFor returns the alert threshold (in minutes) for a task kind.
// Posts and patrols share the generic threshold. A non-positive value
// means alerting is disabled for that kind.
func (s ShiftSettings) ThresholdFor(kind TaskKind) int {
	switch kind {
	case TaskPost, TaskPatrol:
		return s.AlertThresholdMinutes
	case TaskBreak:
		return s.BreakThresholdMinutes
	case TaskMeal:
		return s.MealThresholdMinutes
	}
	return 0
}

// DefaultSettings returns the documented defaults used when the settings
// record is absent.
func DefaultSettings() ShiftSettings {
	return ShiftSettings{
		AlertThresholdMinutes: 60,
		BreakThresholdMinutes: 15,
		MealThresholdMinutes:  32,
		Scores: ScoreTable{
			NamedSlots: map[string]float64{
				"RL-9":     2,
				"RL-13":    2,
				"RL-16:30": 2,
				"RL-19:30": 2,
			},
			Families: map[string]float64{
				"Sharona": 3,
			},
			DefaultPatrol: 1,
			Posts: map[string]float64{
				"Desk 15": 1,
			},
		},
	}
}
