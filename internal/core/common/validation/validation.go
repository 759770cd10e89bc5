// Package validation implements aggregated request-parameter validation.
// Every supplied field is evaluated against its own rules independently;
// nothing short-circuits. Failures are collected and then rendered in a
// fixed priority order so the aggregated error message is deterministic
// regardless of evaluation or input order.
package validation

import (
	"strconv"
	"time"
)

// Rule reports whether a supplied (non-empty) value is acceptable.
type Rule func(value string) bool

type Validator struct {
	failed map[string]struct{}
}

func New() *Validator {
	return &Validator{failed: make(map[string]struct{})}
}

// Check evaluates a field against its rules. Absent fields never fail:
// only supplied-and-malformed values are recorded.
func (v *Validator) Check(field, value string, rules ...Rule) {
	if value == "" {
		return
	}
	for _, rule := range rules {
		if !rule(value) {
			v.failed[field] = struct{}{}
			return
		}
	}
}

// Failed returns the failing field names filtered and ordered against the
// given priority list. Fields that failed but do not appear in the list are
// dropped; the list is the contract.
func (v *Validator) Failed(priority []string) []string {
	if len(v.failed) == 0 {
		return nil
	}
	ordered := make([]string, 0, len(v.failed))
	for _, field := range priority {
		if _, ok := v.failed[field]; ok {
			ordered = append(ordered, field)
		}
	}
	return ordered
}

// MaxLength accepts values of at most max bytes.
func MaxLength(max int) Rule {
	return func(value string) bool {
		return len(value) <= max
	}
}

// ZonedDateTime accepts strict ISO-8601 timestamps with a zone offset.
func ZonedDateTime() Rule {
	return func(value string) bool {
		_, err := time.Parse(time.RFC3339, value)
		return err == nil
	}
}

// IntInRange accepts decimal integers within [min, max]. Non-numeric input
// fails the rule rather than erroring.
func IntInRange(min, max int64) Rule {
	return func(value string) bool {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return false
		}
		return n >= min && n <= max
	}
}

// MemberOf accepts values the given predicate recognizes.
func MemberOf(valid func(string) bool) Rule {
	return func(value string) bool {
		return valid(value)
	}
}
