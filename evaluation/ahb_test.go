package evaluation

import (
	"context"
	"testing"

	"github.com/hochfrequenz/go-ahbicht/ahbexpression"
	"github.com/hochfrequenz/go-ahbicht/content"
)

func TestEvaluateAhbExpressionEmptyPairsReturnsZeroValue(t *testing.T) {
	got, err := EvaluateAhbExpression(context.Background(), nil, content.LogicBundle{}, content.EvaluatableData{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (AhbExpressionEvaluationResult{}) {
		t.Errorf("got %+v, want the zero value", got)
	}
}

func TestEvaluateAhbExpressionFirstFulfilledPairWinsAndShortCircuits(t *testing.T) {
	pairs, err := ahbexpression.Parse("Muss [2] Kann [3]")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	bundle := content.Fixtures{
		RequirementConstraints: map[string]string{"2": "TRUE", "3": "FALSE"},
	}.Bundle()

	got, err := EvaluateAhbExpression(context.Background(), pairs, bundle, content.EvaluatableData{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.RequirementIndicator != "Muss" {
		t.Errorf("got indicator %q, want %q (the first fulfilled pair)", got.RequirementIndicator, "Muss")
	}
	if !got.RC.Fulfilled {
		t.Error("expected the winning pair's RC to be fulfilled")
	}
}

func TestEvaluateAhbExpressionFallsBackToLastPairWhenNoneFulfilled(t *testing.T) {
	pairs, err := ahbexpression.Parse("Muss [2] Kann [3]")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	bundle := content.Fixtures{
		RequirementConstraints: map[string]string{"2": "FALSE", "3": "FALSE"},
	}.Bundle()

	got, err := EvaluateAhbExpression(context.Background(), pairs, bundle, content.EvaluatableData{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.RequirementIndicator != "Kann" {
		t.Errorf("got indicator %q, want %q (the last pair, since none fulfilled)", got.RequirementIndicator, "Kann")
	}
	if got.RC.Fulfilled {
		t.Error("expected the fallback result's RC to be unfulfilled")
	}
}

func TestEvaluateAhbExpressionFcIsVacuouslyTrueWhenRcUnfulfilled(t *testing.T) {
	pairs, err := ahbexpression.Parse("Muss [2][901]")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	bundle := content.Fixtures{
		RequirementConstraints: map[string]string{"2": "FALSE"},
		FormatConstraints:      map[string]bool{"901": false},
	}.Bundle()

	got, err := EvaluateAhbExpression(context.Background(), pairs, bundle, content.EvaluatableData{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.RC.Fulfilled {
		t.Error("expected RC to be unfulfilled: the then_also gate [2] is FALSE")
	}
	// The then_also gate being FALSE drops the [901] residual entirely
	// (it never applied), so FC is evaluated against an empty residual and
	// comes back vacuously true, not skipped.
	if !got.FC.Fulfilled {
		t.Errorf("expected FC to be vacuously fulfilled, got %+v", got.FC)
	}
}

func TestEvaluateAhbExpressionExpandsPackagesBeforeReducing(t *testing.T) {
	pairs, err := ahbexpression.Parse("Muss [1P]")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	bundle := content.Fixtures{
		RequirementConstraints: map[string]string{"2": "TRUE"},
		Packages:               map[string]string{"1": "[2]"},
	}.Bundle()

	got, err := EvaluateAhbExpression(context.Background(), pairs, bundle, content.EvaluatableData{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.RC.Fulfilled {
		t.Error("expected the expanded package's requirement constraint to be fulfilled")
	}
}
