// Package uar provides the high-level library API for UAR (User
// Activity Reporter).
//
// This package is the primary integration point for external
// consumers. It wraps internal packages into a clean, stable public
// API: the report generator, the activity formatter and predicate
// constructors, and roster file I/O.
//
// # Concurrency Safety
//
// Report generation is a pure, synchronous, in-memory transformation.
// It holds no process-wide state, so independent callers with
// disjoint inputs may invoke it concurrently. If a caller-supplied
// activity predicate blocks or mutates shared state, that is the
// caller's concern.
//
// # Usage
//
//	users, err := uar.LoadRoster("users.yaml")
//	if err != nil {
//	    // ...
//	}
//	entries, err := uar.Generate(users, uar.DefaultMinAge, uar.Options{
//	    IncludeInactive: true,
//	    ActivityFilter:  uar.ActivityFilterOptions{ExcludeAction: "logout"}.Predicate(),
//	})
package uar
