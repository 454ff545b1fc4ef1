// Package report implements the user activity report generator: a
// single synchronous pass that filters users by age and activity
// status, filters each surviving user's history through an activity
// predicate, and renders display-ready entries.
package report

import (
	"github.com/uar-project/uar/internal/activity"
	"github.com/uar-project/uar/pkg/model"
)

// DefaultMinAge is the inclusive age threshold applied when the
// caller has no opinion.
const DefaultMinAge = 18

// Options configures report generation. The zero value gives the
// documented defaults: inactive users excluded, all activities kept.
type Options struct {
	// IncludeInactive skips the active-flag test entirely, so
	// inactive users also qualify (still subject to the age test).
	IncludeInactive bool

	// ActivityFilter is applied independently to each activity of a
	// qualifying user; only matching activities are rendered. It
	// never affects whether the user itself qualifies. Nil means
	// accept everything.
	ActivityFilter activity.Predicate
}

// Entry is one row of the report: a qualifying user flattened for
// display. Active stays boolean; Role and Address are display
// strings.
type Entry struct {
	Name       string   `json:"name" yaml:"name"`
	Age        int      `json:"age" yaml:"age"`
	Active     bool     `json:"active" yaml:"active"`
	Role       string   `json:"role" yaml:"role"`
	Address    string   `json:"address" yaml:"address"`
	Activities []string `json:"activities" yaml:"activities"`
}

// Generate builds the report for users, in input order.
//
// A user qualifies when age >= minAge and (opts.IncludeInactive or
// the user is active). Ages are compared numerically as given;
// negative ages are not rejected. Duplicate names are not
// deduplicated.
//
// Generate never mutates its inputs. It fails fast: the first
// address or activity formatting error aborts the whole call with no
// partial result.
func Generate(users []model.UserRecord, minAge int, opts Options) ([]Entry, error) {
	filter := opts.ActivityFilter
	if filter == nil {
		filter = activity.All()
	}

	entries := make([]Entry, 0, len(users))
	for _, user := range users {
		if user.Age < minAge {
			continue
		}
		if !opts.IncludeInactive && !user.Active {
			continue
		}

		address, err := user.Address.Format()
		if err != nil {
			return nil, err
		}

		// A fully filtered-out history still yields an entry, with an
		// empty (non-nil) activity list.
		activities := make([]string, 0, len(user.Activities))
		for _, rec := range user.Activities {
			if !filter(rec) {
				continue
			}
			line, err := activity.Format(rec)
			if err != nil {
				return nil, err
			}
			activities = append(activities, line)
		}

		entries = append(entries, Entry{
			Name:       user.Name,
			Age:        user.Age,
			Active:     user.Active,
			Role:       user.Role.Label(),
			Address:    address,
			Activities: activities,
		})
	}

	return entries, nil
}
