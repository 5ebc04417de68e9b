package evaluation

import (
	"context"
	"sort"
	"strings"

	"github.com/hochfrequenz/go-ahbicht/algebra"
	"github.com/hochfrequenz/go-ahbicht/condition"
	"github.com/hochfrequenz/go-ahbicht/content"
	"github.com/hochfrequenz/go-ahbicht/internal/ahberrors"
	"github.com/hochfrequenz/go-ahbicht/internal/obs"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// reduced is the internal post-order working value the evaluator produces
// for every node it visits: a fulfilled verdict plus the ancillary
// format-constraint residual and hint text carried up from its subtree. It
// is never exposed outside this package; the root's reduced value is
// collapsed into a RequirementConstraintEvaluationResult by
// ReduceRequirementConstraints.
type reduced struct {
	fulfilled algebra.Fulfilled
	fcResidual string
	hints      []string
	hasRCLeaf  bool
}

// ReduceRequirementConstraints runs the C7 post-order reduction over tree,
// consulting bundle's RcEvaluator/HintsProvider for leaves, and collapses
// the root value into the public result.
func ReduceRequirementConstraints(ctx context.Context, tree condition.Node, bundle content.LogicBundle, data content.EvaluatableData) (RequirementConstraintEvaluationResult, error) {
	if tree == nil {
		// A bare indicator with no condition expression evaluates to TRUE,
		// unconditionally.
		return RequirementConstraintEvaluationResult{Fulfilled: true, IsConditional: false}, nil
	}

	r, err := reduceNode(ctx, tree, bundle, data)
	if err != nil {
		return RequirementConstraintEvaluationResult{}, err
	}

	fulfilled := r.fulfilled == algebra.TRUE || (r.fulfilled == algebra.NEUTRAL && !r.hasRCLeaf)
	return RequirementConstraintEvaluationResult{
		Fulfilled:                   fulfilled,
		IsConditional:               r.hasRCLeaf,
		FormatConstraintsExpression: r.fcResidual,
		Hints:                       strings.Join(r.hints, "\n"),
	}, nil
}

func reduceNode(ctx context.Context, n condition.Node, bundle content.LogicBundle, data content.EvaluatableData) (reduced, error) {
	if err := ctx.Err(); err != nil {
		return reduced{}, &ahberrors.Cancelled{Cause: err}
	}
	switch v := n.(type) {
	case *condition.Leaf:
		return reduceLeaf(ctx, v, bundle, data)
	case *condition.Composition:
		return reduceComposition(ctx, v, bundle, data)
	default:
		return reduced{fulfilled: algebra.NEUTRAL}, nil
	}
}

func reduceLeaf(ctx context.Context, leaf *condition.Leaf, bundle content.LogicBundle, data content.EvaluatableData) (reduced, error) {
	switch leaf.Kind {
	case condition.KindRequirementConstraint:
		if bundle.Rc == nil {
			return reduced{}, &ahberrors.UnknownKeyEvaluator{Key: leaf.Key, Format: data.EdifactFormat, Version: data.FormatVersion}
		}
		f, err := bundle.Rc.Evaluate(ctx, leaf.Key, data)
		if err != nil {
			return reduced{}, &ahberrors.EvaluatorFailure{Key: leaf.Key, Inner: err}
		}
		obs.L().Debug("evaluated requirement constraint leaf", zap.String("key", leaf.Key), zap.String("fulfilled", f.String()))
		return reduced{fulfilled: f, hasRCLeaf: true}, nil

	case condition.KindHint:
		if bundle.Hints == nil {
			return reduced{fulfilled: algebra.NEUTRAL}, nil
		}
		text, ok, err := bundle.Hints.HintText(ctx, leaf.Key)
		if err != nil {
			return reduced{}, &ahberrors.EvaluatorFailure{Key: leaf.Key, Inner: err}
		}
		if !ok {
			return reduced{fulfilled: algebra.NEUTRAL}, nil
		}
		return reduced{fulfilled: algebra.NEUTRAL, hints: []string{text}}, nil

	case condition.KindFormatConstraint:
		return reduced{fulfilled: algebra.NEUTRAL, fcResidual: "[" + leaf.Key + "]"}, nil

	case condition.KindTimeCondition:
		// Open Question: time-condition handling is only
		// sketched in the source. Treated as neutral until clarified.
		return reduced{fulfilled: algebra.NEUTRAL}, nil

	case condition.KindPackage:
		// No leaf should carry a package key by the time reduction runs.
		// Reaching this means a caller evaluated an unexpanded tree.
		return reduced{}, &ahberrors.UnknownKeyEvaluator{Key: leaf.Key, Format: data.EdifactFormat, Version: data.FormatVersion}

	default:
		return reduced{fulfilled: algebra.NEUTRAL}, nil
	}
}

func reduceComposition(ctx context.Context, comp *condition.Composition, bundle content.LogicBundle, data content.EvaluatableData) (reduced, error) {
	var left, right reduced
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := reduceNode(gctx, comp.Left, bundle, data)
		left = r
		return err
	})
	g.Go(func() error {
		r, err := reduceNode(gctx, comp.Right, bundle, data)
		right = r
		return err
	})
	if err := g.Wait(); err != nil {
		return reduced{}, err
	}

	if comp.Op == condition.OpThenAlso && left.fulfilled == algebra.NEUTRAL && !left.hasRCLeaf {
		// A gate that carries no requirement-constraint leaf anywhere in it
		// reduces to NEUTRAL on hints alone (or is empty) and can never
		// resolve TRUE or FALSE — it can't gate anything. Covers both a bare
		// Hint leaf and a hint-only subtree such as ([500] U [501]).
		return reduced{}, &ahberrors.NonsensicalComposition{Op: "then_also", LeftKind: "Hint", RightKind: nodeKindLabel(comp.Right)}
	}

	switch comp.Op {
	case condition.OpAnd:
		return combineCommutative(comp.Op, left, right, algebra.And(left.fulfilled, right.fulfilled), nil)
	case condition.OpOr:
		f, err := algebra.Or(left.fulfilled, right.fulfilled)
		if err != nil {
			return reduced{}, err
		}
		return combineCommutative(comp.Op, left, right, f, nil)
	case condition.OpXor:
		f, err := algebra.Xor(left.fulfilled, right.fulfilled)
		if err != nil {
			return reduced{}, err
		}
		return combineCommutative(comp.Op, left, right, f, nil)
	case condition.OpThenAlso:
		return combineThenAlso(left, right), nil
	default:
		return reduced{}, &ahberrors.NonsensicalComposition{Op: comp.Op.String(), LeftKind: "?", RightKind: "?"}
	}
}

func combineCommutative(op condition.CompositionOp, left, right reduced, fulfilled algebra.Fulfilled, _ error) (reduced, error) {
	return reduced{
		fulfilled:  fulfilled,
		fcResidual: mergeResidual(op, left.fcResidual, right.fcResidual),
		hints:      mergeHints(left.hints, right.hints),
		hasRCLeaf:  left.hasRCLeaf || right.hasRCLeaf,
	}, nil
}

func combineThenAlso(left, right reduced) reduced {
	switch left.fulfilled {
	case algebra.TRUE:
		return reduced{fulfilled: right.fulfilled, fcResidual: right.fcResidual, hints: right.hints, hasRCLeaf: left.hasRCLeaf || right.hasRCLeaf}
	case algebra.FALSE:
		return reduced{fulfilled: algebra.NEUTRAL, hasRCLeaf: left.hasRCLeaf}
	default:
		// UNKNOWN (and, per the Open Question, NEUTRAL) gates
		// keep the payload's ancillary data — it may still apply.
		return reduced{fulfilled: algebra.UNKNOWN, fcResidual: right.fcResidual, hints: right.hints, hasRCLeaf: left.hasRCLeaf || right.hasRCLeaf}
	}
}

// mergeHints concatenates and deduplicates hint texts, then sorts
// lexicographically so sibling evaluation order never affects the result.
func mergeHints(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, h := range append(append([]string{}, a...), b...) {
		if seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, h)
	}
	sort.Strings(out)
	return out
}

// mergeResidual combines two format-constraint residual expressions using
// the outer composition's operator.
// An empty residual is the identity. For the commutative operators (U, O, X)
// the two operands are ordered by their string form so the result does not
// depend on which side each came from; then_also keeps left-right order.
func mergeResidual(op condition.CompositionOp, a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	if op == condition.OpThenAlso {
		return "(" + a + ")(" + b + ")"
	}
	if b < a {
		a, b = b, a
	}
	return "(" + a + ") " + op.String() + " (" + b + ")"
}

func nodeKindLabel(n condition.Node) string {
	switch v := n.(type) {
	case *condition.Leaf:
		return v.Kind.String()
	case *condition.Composition:
		return "Composition(" + v.Op.String() + ")"
	default:
		return "Unknown"
	}
}
