package condition

import "sort"

// CategorizedKeyExtract holds the five disjoint sorted key sets produced by
// walking a tree: one bucket per key kind.
type CategorizedKeyExtract struct {
	HintKeys                  []string `json:"hint_keys"`
	PackageKeys               []string `json:"package_keys"`
	RequirementConstraintKeys []string `json:"requirement_constraint_keys"`
	FormatConstraintKeys      []string `json:"format_constraint_keys"`
	TimeConditionKeys         []string `json:"time_condition_keys"`
}

// ExtractCategorizedKeys walks n and returns the five disjoint sorted sets
// of keys reachable from it, deduplicated.
func ExtractCategorizedKeys(n Node) *CategorizedKeyExtract {
	seen := map[KeyKind]map[string]bool{
		KindRequirementConstraint: {},
		KindHint:                  {},
		KindFormatConstraint:      {},
		KindPackage:               {},
		KindTimeCondition:         {},
	}
	walk(n, seen)

	extract := &CategorizedKeyExtract{}
	extract.RequirementConstraintKeys = sortedKeys(seen[KindRequirementConstraint])
	extract.HintKeys = sortedKeys(seen[KindHint])
	extract.FormatConstraintKeys = sortedKeys(seen[KindFormatConstraint])
	extract.PackageKeys = sortedKeys(seen[KindPackage])
	extract.TimeConditionKeys = sortedKeys(seen[KindTimeCondition])
	return extract
}

func walk(n Node, seen map[KeyKind]map[string]bool) {
	if n == nil {
		return
	}
	switch v := n.(type) {
	case *Leaf:
		seen[v.Kind][v.Key] = true
	case *Composition:
		walk(v.Left, seen)
		walk(v.Right, seen)
	}
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
