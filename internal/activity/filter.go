package activity

import (
	"time"

	"github.com/uar-project/uar/pkg/model"
)

// Predicate decides whether an activity record is included in a
// user's rendered activity list. Predicates are caller-supplied and
// treated as opaque: they never affect whether the user itself
// qualifies for the report.
type Predicate func(model.ActivityRecord) bool

// All returns a predicate that accepts every record. This is the
// default when no filter is supplied.
func All() Predicate {
	return func(model.ActivityRecord) bool { return true }
}

// FilterOptions builds a Predicate from named criteria. A zero field
// imposes no constraint; set fields are ANDed together.
type FilterOptions struct {
	Actor         string
	Action        string
	ExcludeAction string
	Since         time.Time
	Until         time.Time
}

// Predicate returns the predicate equivalent to opts.
func (opts FilterOptions) Predicate() Predicate {
	return func(rec model.ActivityRecord) bool {
		if opts.Actor != "" && rec.Actor != opts.Actor {
			return false
		}
		if opts.Action != "" && rec.Action != opts.Action {
			return false
		}
		if opts.ExcludeAction != "" && rec.Action == opts.ExcludeAction {
			return false
		}
		if !opts.Since.IsZero() && rec.Timestamp.Before(opts.Since) {
			return false
		}
		if !opts.Until.IsZero() && rec.Timestamp.After(opts.Until) {
			return false
		}
		return true
	}
}
