// Package ahberrors defines the error kinds surfaced by every stage of the
// condition-expression pipeline. The core fails fast: none of these are
// recovered internally, so misuse at any layer is visible to the caller.
package ahberrors

import (
	"context"
	"fmt"
)

// SyntaxError reports a parser failure at a specific offset.
type SyntaxError struct {
	Offset   int
	Expected []string
	Input    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: expected one of %v in %q", e.Offset, e.Expected, e.Input)
}

// UnknownPackage is returned when a package resolver has no expression for
// a package key encountered while expanding.
type UnknownPackage struct {
	Key string
}

func (e *UnknownPackage) Error() string {
	return fmt.Sprintf("no package resolver entry for key %q", e.Key)
}

// PackageCycle is returned when expanding a package key re-introduces a key
// already on the current expansion chain.
type PackageCycle struct {
	KeyPath []string
}

func (e *PackageCycle) Error() string {
	return fmt.Sprintf("package expansion cycle: %v", e.KeyPath)
}

// UnknownKeyEvaluator is returned when no content evaluator handles a key
// for the given edifact format and version.
type UnknownKeyEvaluator struct {
	Key     string
	Format  string
	Version string
}

func (e *UnknownKeyEvaluator) Error() string {
	return fmt.Sprintf("no evaluator for key %q (format=%s version=%s)", e.Key, e.Format, e.Version)
}

// NonsensicalComposition is returned when the fulfilled-value algebra has no
// defined result for an operator/operand-kind combination, e.g. neutral on
// either side of or/xor.
type NonsensicalComposition struct {
	Op        string
	LeftKind  string
	RightKind string
}

func (e *NonsensicalComposition) Error() string {
	return fmt.Sprintf("nonsensical composition: %s %s %s", e.LeftKind, e.Op, e.RightKind)
}

// InvalidIndicatorPosition is returned when a requirement-indicator token
// (Muss/Soll/Kann/X/O/U-as-indicator) is found where a condition-expression
// token was expected.
type InvalidIndicatorPosition struct {
	Token  string
	Offset int
}

func (e *InvalidIndicatorPosition) Error() string {
	return fmt.Sprintf("indicator token %q not valid at offset %d inside a condition expression", e.Token, e.Offset)
}

// Cancelled wraps context.Canceled so a run aborted mid-evaluation can still
// be matched with errors.Is(err, context.Canceled) by callers.
type Cancelled struct {
	Cause error
}

func (e *Cancelled) Error() string { return fmt.Sprintf("evaluation cancelled: %v", e.Cause) }
func (e *Cancelled) Unwrap() error { return context.Canceled }

// EvaluatorFailure wraps an error returned by a user-supplied content
// evaluator so it bubbles up through the core instead of being swallowed.
// Panics are not recovered.
type EvaluatorFailure struct {
	Key   string
	Inner error
}

func (e *EvaluatorFailure) Error() string {
	return fmt.Sprintf("content evaluator failed for key %q: %v", e.Key, e.Inner)
}

func (e *EvaluatorFailure) Unwrap() error { return e.Inner }
