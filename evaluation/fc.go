package evaluation

import (
	"context"
	"strings"

	"github.com/hochfrequenz/go-ahbicht/condition"
	"github.com/hochfrequenz/go-ahbicht/content"
	"github.com/hochfrequenz/go-ahbicht/internal/ahberrors"
	"github.com/hochfrequenz/go-ahbicht/internal/runctx"
)

// EvaluateFormatConstraints implements parses the residual FC
// expression (if non-empty) and reduces it under two-valued boolean logic,
// where each leaf's truth value comes from bundle's FcEvaluator and
// juxtaposition means "and". scope is used to look up the
// user-entered text for each leaf from the per-run context handle.
func EvaluateFormatConstraints(ctx context.Context, residualExpression string, bundle content.LogicBundle, scope string) (FormatConstraintEvaluationResult, error) {
	if residualExpression == "" {
		// An empty residual is vacuously true.
		return FormatConstraintEvaluationResult{Fulfilled: true}, nil
	}

	tree, err := condition.Parse(condition.Sanitize(residualExpression))
	if err != nil {
		return FormatConstraintEvaluationResult{}, err
	}

	enteredText := runctx.EnteredText(ctx, scope)

	fulfilled, errs, err := fcEval(ctx, tree, bundle, enteredText)
	if err != nil {
		return FormatConstraintEvaluationResult{}, err
	}

	result := FormatConstraintEvaluationResult{Fulfilled: fulfilled}
	if !fulfilled {
		result.ErrorMessage = strings.Join(errs, "; ")
	}
	return result, nil
}

// fcEval returns the boolean value of the FC tree plus the error messages
// of every leaf that individually evaluated to false, collected regardless
// of how the leaves combine logically.
func fcEval(ctx context.Context, n condition.Node, bundle content.LogicBundle, enteredText string) (bool, []string, error) {
	switch v := n.(type) {
	case *condition.Leaf:
		if bundle.Fc == nil {
			return false, nil, &ahberrors.UnknownKeyEvaluator{Key: v.Key}
		}
		res, err := bundle.Fc.Evaluate(ctx, v.Key, enteredText)
		if err != nil {
			return false, nil, &ahberrors.EvaluatorFailure{Key: v.Key, Inner: err}
		}
		if res.Fulfilled {
			return true, nil, nil
		}
		if res.ErrorMessage != "" {
			return false, []string{res.ErrorMessage}, nil
		}
		return false, nil, nil

	case *condition.Composition:
		leftOK, leftErrs, err := fcEval(ctx, v.Left, bundle, enteredText)
		if err != nil {
			return false, nil, err
		}
		rightOK, rightErrs, err := fcEval(ctx, v.Right, bundle, enteredText)
		if err != nil {
			return false, nil, err
		}
		errs := append(leftErrs, rightErrs...)

		switch v.Op {
		case condition.OpAnd, condition.OpThenAlso:
			return leftOK && rightOK, errs, nil
		case condition.OpOr:
			return leftOK || rightOK, errs, nil
		case condition.OpXor:
			return leftOK != rightOK, errs, nil
		default:
			return false, nil, &ahberrors.NonsensicalComposition{Op: v.Op.String()}
		}

	default:
		return true, nil, nil
	}
}
