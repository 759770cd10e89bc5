// Package backend decides which downstream service answers a request and
// classifies downstream outcomes for the error translator.
package backend

import (
	"errors"
	"fmt"
)

// Source identifies one of the two backing services.
type Source int

const (
	SourceConnector Source = iota
	SourceLedger
)

func (s Source) String() string {
	switch s {
	case SourceConnector:
		return "connector"
	case SourceLedger:
		return "ledger"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Strategy values accepted in the X-Ledger request header.
const (
	StrategyLedgerOnly    = "ledger-only"
	StrategyConnectorOnly = "connector-only"
)

// Resolve turns a per-request strategy hint into an ordered plan of sources
// to attempt. An explicit single-source strategy disables fallback entirely.
// The default plan is connector first with a ledger fallback that only runs
// on a confirmed not-found from the connector. Unknown hints get the default
// plan; callers log them.
//
// Resolve is pure: same input, same plan, no I/O.
func Resolve(strategy string) []Source {
	switch strategy {
	case StrategyLedgerOnly:
		return []Source{SourceLedger}
	case StrategyConnectorOnly:
		return []Source{SourceConnector}
	default:
		return []Source{SourceConnector, SourceLedger}
	}
}

// KnownStrategy reports whether a non-empty hint is one this gateway
// understands.
func KnownStrategy(strategy string) bool {
	return strategy == "" || strategy == StrategyLedgerOnly || strategy == StrategyConnectorOnly
}

// ErrNotFound is a confirmed absence: the source answered authoritatively
// that the resource does not exist. It is the only outcome that triggers
// fallback to the next source in the plan.
var ErrNotFound = errors.New("resource not found")

// DownstreamError is any downstream response outside the expected
// success/not-found contract, including transport failures and timeouts.
// It never triggers fallback; masking a backend fault as not-found would
// hide genuine faults.
type DownstreamError struct {
	Source Source
	Status int
	Cause  error
}

func (e *DownstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s responded unexpectedly: %v", e.Source, e.Cause)
	}
	return fmt.Sprintf("%s responded with status %d", e.Source, e.Status)
}

func (e *DownstreamError) Unwrap() error {
	return e.Cause
}
