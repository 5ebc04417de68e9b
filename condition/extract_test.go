package condition

import (
	"reflect"
	"testing"
)

func TestExtractCategorizedKeysDeduplicatesAndSorts(t *testing.T) {
	tree, err := Parse("[3] U [2] U [3] U [501] U [123P]")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	got := ExtractCategorizedKeys(tree)
	want := &CategorizedKeyExtract{
		HintKeys:                  []string{"501"},
		PackageKeys:               []string{"123P"},
		RequirementConstraintKeys: []string{"2", "3"},
		FormatConstraintKeys:      nil,
		TimeConditionKeys:         nil,
	}
	if !reflect.DeepEqual(got.RequirementConstraintKeys, want.RequirementConstraintKeys) {
		t.Errorf("RequirementConstraintKeys = %v, want %v", got.RequirementConstraintKeys, want.RequirementConstraintKeys)
	}
	if !reflect.DeepEqual(got.HintKeys, want.HintKeys) {
		t.Errorf("HintKeys = %v, want %v", got.HintKeys, want.HintKeys)
	}
	if !reflect.DeepEqual(got.PackageKeys, want.PackageKeys) {
		t.Errorf("PackageKeys = %v, want %v", got.PackageKeys, want.PackageKeys)
	}
	if len(got.FormatConstraintKeys) != 0 {
		t.Errorf("FormatConstraintKeys = %v, want empty", got.FormatConstraintKeys)
	}
	if len(got.TimeConditionKeys) != 0 {
		t.Errorf("TimeConditionKeys = %v, want empty", got.TimeConditionKeys)
	}
}

func TestExtractCategorizedKeysOnNilTree(t *testing.T) {
	got := ExtractCategorizedKeys(nil)
	if len(got.RequirementConstraintKeys)+len(got.HintKeys)+len(got.PackageKeys)+len(got.FormatConstraintKeys)+len(got.TimeConditionKeys) != 0 {
		t.Errorf("expected all buckets empty for a nil tree, got %+v", got)
	}
}
