// Package activity renders activity records for display and builds
// activity predicates.
package activity

import (
	"fmt"

	"github.com/uar-project/uar/pkg/errclass"
	"github.com/uar-project/uar/pkg/model"
)

// dateLayout is the calendar-date rendering: four-digit year,
// zero-padded month and day, no time-of-day.
const dateLayout = "2006-01-02"

// Format renders one activity record as
// "<actor> performed <action> on <YYYY-MM-DD>".
//
// A record with an empty actor or action does not decompose into the
// (actor, action, timestamp) triple and fails with
// ErrActivityMalformed. A zero timestamp has no calendar-date
// rendering and fails with ErrTimestampInvalid. Both are
// input-contract violations, fatal to the enclosing report call.
func Format(rec model.ActivityRecord) (string, error) {
	if rec.Actor == "" || rec.Action == "" {
		return "", errclass.ErrActivityMalformed.WithMessagef("activity %+v lacks actor or action", rec)
	}
	if rec.Timestamp.IsZero() {
		return "", errclass.ErrTimestampInvalid.WithMessagef("activity by %q has no timestamp", rec.Actor)
	}
	return fmt.Sprintf("%s performed %s on %s", rec.Actor, rec.Action, rec.Timestamp.Format(dateLayout)), nil
}
