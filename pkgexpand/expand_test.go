package pkgexpand

import (
	"context"
	"testing"

	"github.com/hochfrequenz/go-ahbicht/condition"
	"github.com/hochfrequenz/go-ahbicht/content"
)

func TestExpandSubstitutesPackageLeaf(t *testing.T) {
	tree, err := condition.Parse("[2] U [123P]")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	resolver := content.MapPackageResolver{"123": "[3] O [4]"}

	got, err := Expand(context.Background(), tree, resolver)
	if err != nil {
		t.Fatalf("unexpected expand error: %v", err)
	}

	want, err := condition.Parse("[2] U ([3] O [4])")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if !condition.Equal(got, want) {
		t.Errorf("Expand(%q) = %s, want %s", tree, got, want)
	}
}

func TestExpandIsIdempotentOnPackagelessTree(t *testing.T) {
	tree, err := condition.Parse("[2] U [3]")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	got, err := Expand(context.Background(), tree, content.MapPackageResolver{})
	if err != nil {
		t.Fatalf("unexpected expand error: %v", err)
	}
	if !condition.Equal(got, tree) {
		t.Errorf("Expand(%s) = %s, want unchanged", tree, got)
	}
}

func TestExpandDetectsCycle(t *testing.T) {
	tree, err := condition.Parse("[1P]")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	resolver := content.MapPackageResolver{
		"1": "[2P]",
		"2": "[1P]",
	}
	if _, err := Expand(context.Background(), tree, resolver); err == nil {
		t.Error("expected a package-cycle error")
	}
}

func TestExpandReportsUnknownPackage(t *testing.T) {
	tree, err := condition.Parse("[999P]")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if _, err := Expand(context.Background(), tree, content.MapPackageResolver{}); err == nil {
		t.Error("expected an unknown-package error")
	}
}

func TestExpandRecursesIntoNestedPackages(t *testing.T) {
	tree, err := condition.Parse("[1P]")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	resolver := content.MapPackageResolver{
		"1": "[2P]",
		"2": "[3] U [4]",
	}
	got, err := Expand(context.Background(), tree, resolver)
	if err != nil {
		t.Fatalf("unexpected expand error: %v", err)
	}
	want, err := condition.Parse("[3] U [4]")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if !condition.Equal(got, want) {
		t.Errorf("Expand(%s) = %s, want %s", tree, got, want)
	}
}
