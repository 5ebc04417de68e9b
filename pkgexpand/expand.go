// Package pkgexpand implements the package expander: iterative
// substitution of package-key leaves via an injected resolver until a
// fix point, detecting unresolved keys and expansion cycles.
package pkgexpand

import (
	"context"

	"github.com/hochfrequenz/go-ahbicht/condition"
	"github.com/hochfrequenz/go-ahbicht/content"
	"github.com/hochfrequenz/go-ahbicht/internal/ahberrors"
	"github.com/hochfrequenz/go-ahbicht/internal/obs"
	"go.uber.org/zap"
)

// Expand returns a fresh tree with every package-key leaf reachable from n
// recursively substituted by the expression its resolver returns, parsed
// with condition.Parse and spliced in place. It is idempotent on a tree
// that has no package leaves.
func Expand(ctx context.Context, n condition.Node, resolver content.PackageResolver) (condition.Node, error) {
	return expand(ctx, n, resolver, nil)
}

func expand(ctx context.Context, n condition.Node, resolver content.PackageResolver, chain []string) (condition.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ahberrors.Cancelled{Cause: err}
	}
	switch v := n.(type) {
	case nil:
		return nil, nil
	case *condition.Leaf:
		if !v.IsPackage() {
			return v, nil
		}
		return expandPackageLeaf(ctx, v, resolver, chain)
	case *condition.Composition:
		left, err := expand(ctx, v.Left, resolver, chain)
		if err != nil {
			return nil, err
		}
		right, err := expand(ctx, v.Right, resolver, chain)
		if err != nil {
			return nil, err
		}
		return condition.NewComposition(v.Op, left, right), nil
	default:
		return n, nil
	}
}

func expandPackageLeaf(ctx context.Context, leaf *condition.Leaf, resolver content.PackageResolver, chain []string) (condition.Node, error) {
	for _, seen := range chain {
		if seen == leaf.Key {
			obs.L().Warn("package expansion cycle detected", zap.String("key", leaf.Key), zap.Strings("chain", chain))
			return nil, &ahberrors.PackageCycle{KeyPath: append(append([]string{}, chain...), leaf.Key)}
		}
	}

	number := condition.PackageNumber(leaf.Key)
	expr, ok, err := resolver.Resolve(ctx, number)
	if err != nil {
		return nil, &ahberrors.EvaluatorFailure{Key: leaf.Key, Inner: err}
	}
	if !ok {
		return nil, &ahberrors.UnknownPackage{Key: leaf.Key}
	}

	obs.L().Debug("resolved package", zap.String("key", leaf.Key), zap.String("expression", expr))

	parsed, err := condition.Parse(condition.Sanitize(expr))
	if err != nil {
		return nil, err
	}

	nextChain := append(append([]string{}, chain...), leaf.Key)
	return expand(ctx, parsed, resolver, nextChain)
}
