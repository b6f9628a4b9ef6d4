/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package schema

import (
	"fmt"
	"sort"

	"github.com/calderops/provar/internal/model"
)

// ViolationKind classifies a single schema violation
type ViolationKind int

const (
	// MissingParameter means a required parameter is absent from the configuration
	MissingParameter ViolationKind = iota

	// ShapeMismatch means a parameter value does not have its declared shape
	ShapeMismatch

	// UnexpectedParameter means the configuration carries a parameter the
	// schema does not declare
	UnexpectedParameter
)

// Violation describes one way a resolved configuration deviates from its schema
type Violation struct {
	Kind      ViolationKind
	Parameter string
	Want      Shape // populated for MissingParameter and ShapeMismatch
	Got       Shape // populated for ShapeMismatch
}

// String returns a human-readable description of the violation
func (v Violation) String() string {
	switch v.Kind {
	case MissingParameter:
		return fmt.Sprintf("required parameter %q is missing (expected %s)", v.Parameter, v.Want)
	case ShapeMismatch:
		return fmt.Sprintf("parameter %q has shape %s, expected %s", v.Parameter, v.Got, v.Want)
	case UnexpectedParameter:
		return fmt.Sprintf("unexpected parameter %q is not declared in the schema", v.Parameter)
	default:
		return fmt.Sprintf("unknown violation for parameter %q", v.Parameter)
	}
}

// ValidationResult holds every violation found in one validation pass.
// An empty violation list means the configuration is usable.
type ValidationResult struct {
	Violations []Violation
}

// Valid reports whether the configuration passed validation
func (r ValidationResult) Valid() bool {
	return len(r.Violations) == 0
}

// Messages returns all violations as human-readable strings
func (r ValidationResult) Messages() []string {
	messages := make([]string, len(r.Violations))
	for i, violation := range r.Violations {
		messages[i] = violation.String()
	}
	return messages
}

// Validate checks the resolved configuration against the schema. It collects
// every violation in a single pass rather than stopping at the first, so
// callers can report everything wrong at once. Violations are ordered by
// parameter name within each check for deterministic output.
func Validate(cfg *model.ResolvedConfiguration, s Schema) ValidationResult {
	var violations []Violation

	declared := make([]string, 0, len(s))
	for name := range s {
		declared = append(declared, name)
	}
	sort.Strings(declared)

	for _, name := range declared {
		want := s[name]
		value, ok := cfg.Get(name)
		if !ok {
			violations = append(violations, Violation{
				Kind:      MissingParameter,
				Parameter: name,
				Want:      want,
			})
			continue
		}
		if got := ShapeOf(value); got != want {
			violations = append(violations, Violation{
				Kind:      ShapeMismatch,
				Parameter: name,
				Want:      want,
				Got:       got,
			})
		}
	}

	for _, name := range cfg.Names() {
		if _, ok := s[name]; !ok {
			violations = append(violations, Violation{
				Kind:      UnexpectedParameter,
				Parameter: name,
			})
		}
	}

	return ValidationResult{Violations: violations}
}
