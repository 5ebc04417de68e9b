package content

import (
	"context"

	"github.com/hochfrequenz/go-ahbicht/algebra"
)

// MapRcEvaluator is a fixed-table RcEvaluator: every key not present in the
// map evaluates as UNKNOWN. Intended for tests and CLI demonstration, not
// production use, where RC answers normally come from a live data source.
type MapRcEvaluator map[string]algebra.Fulfilled

func (m MapRcEvaluator) Evaluate(_ context.Context, key string, _ EvaluatableData) (algebra.Fulfilled, error) {
	if f, ok := m[key]; ok {
		return f, nil
	}
	return algebra.UNKNOWN, nil
}

// MapFcEvaluator is a fixed-table FcEvaluator keyed by format-constraint
// key.
type MapFcEvaluator map[string]FcResult

func (m MapFcEvaluator) Evaluate(_ context.Context, key string, _ string) (FcResult, error) {
	if r, ok := m[key]; ok {
		return r, nil
	}
	return FcResult{Fulfilled: true}, nil
}

// MapHintsProvider is a fixed-table HintsProvider.
type MapHintsProvider map[string]string

func (m MapHintsProvider) HintText(_ context.Context, key string) (string, bool, error) {
	text, ok := m[key]
	return text, ok, nil
}

// MapPackageResolver is a fixed-table PackageResolver.
type MapPackageResolver map[string]string

func (m MapPackageResolver) Resolve(_ context.Context, key string) (string, bool, error) {
	expr, ok := m[key]
	return expr, ok, nil
}

// Fixtures is the JSON-deserializable shape of a map-backed LogicBundle,
// used to drive the CLI's evaluate subcommand and golden-file tests
// without standing up a real content evaluator.
type Fixtures struct {
	RequirementConstraints map[string]string `json:"requirement_constraints"`
	FormatConstraints      map[string]bool   `json:"format_constraints"`
	Hints                  map[string]string `json:"hints"`
	Packages               map[string]string `json:"packages"`
}

// Bundle builds a LogicBundle from f, parsing each requirement-constraint
// value ("TRUE"/"FALSE"/"UNKNOWN"/"NEUTRAL") into its algebra.Fulfilled.
func (f Fixtures) Bundle() LogicBundle {
	rc := make(MapRcEvaluator, len(f.RequirementConstraints))
	for k, v := range f.RequirementConstraints {
		rc[k] = parseFulfilled(v)
	}
	fc := make(MapFcEvaluator, len(f.FormatConstraints))
	for k, v := range f.FormatConstraints {
		fc[k] = FcResult{Fulfilled: v}
	}
	return LogicBundle{
		Rc:       rc,
		Fc:       fc,
		Hints:    MapHintsProvider(f.Hints),
		Packages: MapPackageResolver(f.Packages),
	}
}

func parseFulfilled(s string) algebra.Fulfilled {
	switch s {
	case "TRUE":
		return algebra.TRUE
	case "FALSE":
		return algebra.FALSE
	case "NEUTRAL":
		return algebra.NEUTRAL
	default:
		return algebra.UNKNOWN
	}
}
