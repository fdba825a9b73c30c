// Package alerting derives staleness alerts from the ledger and
// deduplicates their announcement over time.
package alerting

import (
	"fmt"
	"strings"
	"time"

	"github.com/example/guardpost/internal/core/activity"
	"github.com/example/guardpost/internal/models"
)

// Evaluate recomputes the live alert list at the given instant. For every
// guard with an executed entry it resolves the latest activity and compares
// its running duration against the kind threshold. A non-positive threshold
// disables alerting for that kind; evaluation never fails.
func Evaluate(data *models.RosterData, settings models.ShiftSettings, now time.Time) []models.Alert {
	var alerts []models.Alert
	for _, guard := range activity.ActiveGuards(data) {
		latest, ok := activity.Latest(data, guard)
		if !ok {
			continue
		}
		threshold := settings.ThresholdFor(latest.Kind)
		if threshold <= 0 {
			continue
		}
		duration := now.Sub(*latest.Actual).Minutes()
		if duration >= float64(threshold) {
			alerts = append(alerts, models.Alert{
				Guard:    guard,
				Label:    latest.Label(),
				Duration: int(duration),
			})
		}
	}
	return alerts
}

// Deduper suppresses repeated announcements of the same alert. An alert is
// announced once per 5-minute duration bucket; when a guard/label pair
// stops alerting its keys are forgotten so a recurrence alerts fresh.
//
// The deduper only gates announcements. The alert list itself (badges,
// `alerts` output) is always the live Evaluate result.
type Deduper struct {
	shown map[string]struct{}
}

// NewDeduper returns an empty deduper.
func NewDeduper() *Deduper {
	return &Deduper{shown: make(map[string]struct{})}
}

// Fresh returns the subset of current alerts that have not yet been
// announced in their current bucket, and prunes state for cleared
// conditions.
func (d *Deduper) Fresh(current []models.Alert) []models.Alert {
	var fresh []models.Alert
	for _, a := range current {
		k := bucketKey(a)
		if _, ok := d.shown[k]; ok {
			continue
		}
		d.shown[k] = struct{}{}
		fresh = append(fresh, a)
	}

	active := make(map[string]bool, len(current))
	for _, a := range current {
		active[baseKey(a.Guard, a.Label)] = true
	}
	for k := range d.shown {
		if i := strings.LastIndex(k, "|"); i >= 0 && !active[k[:i]] {
			delete(d.shown, k)
		}
	}

	return fresh
}

func bucketKey(a models.Alert) string {
	return fmt.Sprintf("%s|%d", baseKey(a.Guard, a.Label), a.Duration/5)
}

func baseKey(guard, label string) string {
	return guard + "|" + label
}
