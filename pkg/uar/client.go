package uar

import (
	"github.com/uar-project/uar/internal/activity"
	"github.com/uar-project/uar/internal/report"
	"github.com/uar-project/uar/internal/roster"
	"github.com/uar-project/uar/pkg/model"
)

// DefaultMinAge is the inclusive age threshold applied when the
// caller has no opinion.
const DefaultMinAge = report.DefaultMinAge

// Options configures report generation. See report.Options.
type Options = report.Options

// Entry is one row of a generated report.
type Entry = report.Entry

// ActivityPredicate decides whether an activity record appears in a
// qualifying user's rendered activity list.
type ActivityPredicate = activity.Predicate

// ActivityFilterOptions builds an ActivityPredicate from named
// criteria; zero fields impose no constraint.
type ActivityFilterOptions = activity.FilterOptions

// Generate builds a report from users: one entry per qualifying
// user, in input order. See the report package for qualification and
// failure semantics.
func Generate(users []model.UserRecord, minAge int, opts Options) ([]Entry, error) {
	return report.Generate(users, minAge, opts)
}

// FormatActivity renders one activity record as
// "<actor> performed <action> on <YYYY-MM-DD>".
func FormatActivity(rec model.ActivityRecord) (string, error) {
	return activity.Format(rec)
}

// AllActivities returns the accept-everything predicate.
func AllActivities() ActivityPredicate {
	return activity.All()
}

// LoadRoster reads a yaml roster file into user records.
func LoadRoster(path string) ([]model.UserRecord, error) {
	return roster.Load(path)
}

// SaveRoster writes user records to a yaml roster file.
func SaveRoster(path string, users []model.UserRecord) error {
	return roster.Save(path, users)
}

// SampleRoster returns the built-in demonstration roster.
func SampleRoster() []model.UserRecord {
	return roster.Sample()
}
