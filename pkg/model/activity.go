package model

import "time"

// ActivityRecord is a single entry in a user's activity history.
// Records are value types: created where the history is constructed,
// never mutated afterwards.
type ActivityRecord struct {
	Actor     string    `json:"actor" yaml:"actor"`
	Action    string    `json:"action" yaml:"action"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}
