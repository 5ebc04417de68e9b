package condition

import (
	"strconv"
	"strings"
)

// KeyKind classifies a condition key by its surface form. Classification
// never consults a lookup table — it is derived purely from the key's
// suffix and numeric value.
type KeyKind int

const (
	KindRequirementConstraint KeyKind = iota
	KindHint
	KindFormatConstraint
	KindPackage
	KindTimeCondition
)

func (k KeyKind) String() string {
	switch k {
	case KindRequirementConstraint:
		return "RequirementConstraint"
	case KindHint:
		return "Hint"
	case KindFormatConstraint:
		return "FormatConstraint"
	case KindPackage:
		return "Package"
	case KindTimeCondition:
		return "TimeCondition"
	default:
		return "Unknown"
	}
}

// timeConditionFloor is the numeric band above which a plain (non-Q-suffix)
// key is treated as a time condition rather than an out-of-range format
// constraint. This boundary isn't pinned down by any concrete rule, so any
// numeric key at or above it is classified as a time condition rather than
// erroring, and evaluated as neutral until time conditions get real
// semantics.
const timeConditionFloor = 1000

// ClassifyKey returns the KeyKind of a bare key string (without brackets).
func ClassifyKey(key string) KeyKind {
	if strings.HasSuffix(key, "P") {
		return KindPackage
	}
	if strings.HasSuffix(key, "Q") {
		return KindTimeCondition
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return KindTimeCondition
	}
	switch {
	case n >= 1 && n <= 499:
		return KindRequirementConstraint
	case n >= 500 && n <= 899:
		return KindHint
	case n >= 900 && n <= 999:
		return KindFormatConstraint
	case n >= timeConditionFloor:
		return KindTimeCondition
	default:
		return KindTimeCondition
	}
}

// PackageNumber strips the trailing "P" from a package key, returning the
// bare numeric key used to look the package up in a PackageResolver.
func PackageNumber(key string) string {
	return strings.TrimSuffix(key, "P")
}
