// Package content defines the narrow external-collaborator interfaces:
// requirement-constraint and format-constraint evaluators, a hints
// provider, a package resolver, plus the DI registry that selects an
// implementation of each by (edifact format, format version). Every
// method may suspend — the evaluator only calls them at leaf nodes and
// during package expansion.
package content

import (
	"context"

	"github.com/hochfrequenz/go-ahbicht/algebra"
)

// RcEvaluator answers "is requirement-constraint key fulfilled?" for a
// single key against the supplied data and scope.
type RcEvaluator interface {
	Evaluate(ctx context.Context, key string, data EvaluatableData) (algebra.Fulfilled, error)
}

// FcResult is the outcome of evaluating a single format-constraint leaf.
type FcResult struct {
	Fulfilled    bool
	ErrorMessage string
}

// FcEvaluator answers "does the entered text satisfy format-constraint
// key?".
type FcEvaluator interface {
	Evaluate(ctx context.Context, key string, enteredText string) (FcResult, error)
}

// HintsProvider maps a hint key to its display text. A missing mapping
// returns ok=false rather than an error — an AHB table may reference a
// hint key the provider doesn't (yet) carry text for.
type HintsProvider interface {
	HintText(ctx context.Context, key string) (text string, ok bool, err error)
}

// PackageResolver maps a package key (without its trailing "P") to the
// condition-expression string it expands to. A missing mapping returns
// ok=false; the expander turns that into ahberrors.UnknownPackage.
type PackageResolver interface {
	Resolve(ctx context.Context, key string) (expression string, ok bool, err error)
}

// EvaluatableData is the per-run, immutable data RcEvaluator implementations
// consult. The core never interprets its contents — it is opaque payload
// handed through to the registered evaluator.
type EvaluatableData struct {
	EdifactFormat  string
	FormatVersion  string
	Scope          string
	Payload        map[string]any
}
