package evaluation

import (
	"context"

	"github.com/hochfrequenz/go-ahbicht/ahbexpression"
	"github.com/hochfrequenz/go-ahbicht/content"
	"github.com/hochfrequenz/go-ahbicht/pkgexpand"
)

// EvaluateAhbExpression drives the whole (indicator, condition-tree)
// sequence produced by ahbexpression.Parse: each pair's tree is expanded,
// reduced to a requirement-constraint verdict, and its format-constraint
// residual evaluated unconditionally — an empty residual (such as the one a
// FALSE then_also gate leaves behind) evaluates vacuously true, so FC always
// carries a definite result alongside RC. The
// first pair whose requirement constraints are fulfilled wins outright,
// short-circuiting the remaining pairs; if none are fulfilled the last
// pair's result stands, since an AHB entry with no fulfilled alternative
// still needs a definite indicator and result to report.
func EvaluateAhbExpression(ctx context.Context, pairs []ahbexpression.Pair, bundle content.LogicBundle, data content.EvaluatableData) (AhbExpressionEvaluationResult, error) {
	if len(pairs) == 0 {
		return AhbExpressionEvaluationResult{}, nil
	}

	var last AhbExpressionEvaluationResult
	for _, pair := range pairs {
		result, err := evaluatePair(ctx, pair, bundle, data)
		if err != nil {
			return AhbExpressionEvaluationResult{}, err
		}
		last = result
		if result.RC.Fulfilled {
			return result, nil
		}
	}
	return last, nil
}

func evaluatePair(ctx context.Context, pair ahbexpression.Pair, bundle content.LogicBundle, data content.EvaluatableData) (AhbExpressionEvaluationResult, error) {
	tree := pair.Tree
	if tree != nil && bundle.Packages != nil {
		expanded, err := pkgexpand.Expand(ctx, tree, bundle.Packages)
		if err != nil {
			return AhbExpressionEvaluationResult{}, err
		}
		tree = expanded
	}

	rc, err := ReduceRequirementConstraints(ctx, tree, bundle, data)
	if err != nil {
		return AhbExpressionEvaluationResult{}, err
	}

	fc, err := EvaluateFormatConstraints(ctx, rc.FormatConstraintsExpression, bundle, data.Scope)
	if err != nil {
		return AhbExpressionEvaluationResult{}, err
	}

	return AhbExpressionEvaluationResult{
		RequirementIndicator: pair.Indicator.Kind.String(),
		RC:                   rc,
		FC:                   fc,
	}, nil
}
