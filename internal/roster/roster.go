// Package roster loads and saves user rosters as yaml files. A
// roster is the input collection for report generation; loading is
// shape-only and performs no value validation beyond role labels.
package roster

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/uar-project/uar/pkg/errclass"
	"github.com/uar-project/uar/pkg/model"
)

// userSpec is the yaml wire shape of one user.
type userSpec struct {
	Name       string            `yaml:"name"`
	Age        int               `yaml:"age"`
	Active     bool              `yaml:"active"`
	Role       string            `yaml:"role"`
	Address    map[string]string `yaml:"address"`
	Activities []activitySpec    `yaml:"activities"`
}

// activitySpec is the yaml wire shape of one activity record.
type activitySpec struct {
	Actor     string    `yaml:"actor"`
	Action    string    `yaml:"action"`
	Timestamp time.Time `yaml:"timestamp"`
}

// Load reads a roster file. User and actor names are NFC-normalized
// so rosters written on different platforms compare equal. Role
// labels must parse; everything else (ages included) passes through
// as written.
func Load(path string) ([]model.UserRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var specs []userSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, errclass.ErrRosterCorrupt.WithMessagef("parse roster %s: %v", path, err)
	}

	users := make([]model.UserRecord, 0, len(specs))
	for i, spec := range specs {
		role, err := model.ParseRole(spec.Role)
		if err != nil {
			return nil, fmt.Errorf("roster entry %d (%s): %w", i, spec.Name, err)
		}

		activities := make([]model.ActivityRecord, 0, len(spec.Activities))
		for _, a := range spec.Activities {
			activities = append(activities, model.ActivityRecord{
				Actor:     norm.NFC.String(a.Actor),
				Action:    a.Action,
				Timestamp: a.Timestamp,
			})
		}

		users = append(users, model.UserRecord{
			Name:       norm.NFC.String(spec.Name),
			Age:        spec.Age,
			Active:     spec.Active,
			Role:       role,
			Address:    model.Address(spec.Address),
			Activities: activities,
		})
	}

	return users, nil
}

// Save writes a roster file, creating parent directories as needed.
func Save(path string, users []model.UserRecord) error {
	specs := make([]userSpec, 0, len(users))
	for _, user := range users {
		activities := make([]activitySpec, 0, len(user.Activities))
		for _, a := range user.Activities {
			activities = append(activities, activitySpec{
				Actor:     a.Actor,
				Action:    a.Action,
				Timestamp: a.Timestamp,
			})
		}
		specs = append(specs, userSpec{
			Name:       user.Name,
			Age:        user.Age,
			Active:     user.Active,
			Role:       user.Role.Label(),
			Address:    user.Address,
			Activities: activities,
		})
	}

	data, err := yaml.Marshal(specs)
	if err != nil {
		return fmt.Errorf("marshal roster: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create roster dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write roster: %w", err)
	}

	return nil
}

// Sample returns the canonical demonstration roster: Alice
// 25/active/Admin, Bob 17/inactive/User, Charlie 30/active/Guest.
func Sample() []model.UserRecord {
	return []model.UserRecord{
		{
			Name:   "Alice",
			Age:    25,
			Active: true,
			Role:   model.RoleAdmin,
			Address: model.Address{
				"street":  "123 Main St",
				"city":    "Metropolis",
				"country": "USA",
			},
			Activities: []model.ActivityRecord{
				{Actor: "Alice", Action: "login", Timestamp: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
				{Actor: "Alice", Action: "purchase", Timestamp: time.Date(2023, 2, 15, 0, 0, 0, 0, time.UTC)},
			},
		},
		{
			Name:   "Bob",
			Age:    17,
			Active: false,
			Role:   model.RoleUser,
			Address: model.Address{
				"street":  "456 Elm St",
				"city":    "Gotham",
				"country": "USA",
			},
			Activities: []model.ActivityRecord{
				{Actor: "Bob", Action: "logout", Timestamp: time.Date(2023, 3, 22, 0, 0, 0, 0, time.UTC)},
			},
		},
		{
			Name:   "Charlie",
			Age:    30,
			Active: true,
			Role:   model.RoleGuest,
			Address: model.Address{
				"street":  "789 Oak St",
				"city":    "Star City",
				"country": "USA",
			},
			Activities: []model.ActivityRecord{
				{Actor: "Charlie", Action: "login", Timestamp: time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC)},
			},
		},
	}
}
