package evaluation

import (
	"context"
	"testing"

	"github.com/hochfrequenz/go-ahbicht/content"
	"github.com/hochfrequenz/go-ahbicht/internal/runctx"
)

func TestEvaluateFormatConstraintsEmptyResidualIsVacuouslyTrue(t *testing.T) {
	got, err := EvaluateFormatConstraints(context.Background(), "", content.LogicBundle{}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Fulfilled {
		t.Error("expected an empty residual to be vacuously fulfilled")
	}
}

func TestEvaluateFormatConstraintsSingleLeaf(t *testing.T) {
	bundle := content.Fixtures{FormatConstraints: map[string]bool{"901": true}}.Bundle()
	got, err := EvaluateFormatConstraints(context.Background(), "[901]", bundle, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Fulfilled {
		t.Error("expected [901] to be fulfilled per the fixtures")
	}
}

func TestEvaluateFormatConstraintsAndRequiresBoth(t *testing.T) {
	bundle := content.Fixtures{FormatConstraints: map[string]bool{"901": true, "902": false}}.Bundle()
	got, err := EvaluateFormatConstraints(context.Background(), "[901] U [902]", bundle, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Fulfilled {
		t.Error("expected AND to be unfulfilled when one operand fails")
	}
}

func TestEvaluateFormatConstraintsThenAlsoBehavesAsAnd(t *testing.T) {
	bundle := content.Fixtures{FormatConstraints: map[string]bool{"901": true, "902": true}}.Bundle()
	got, err := EvaluateFormatConstraints(context.Background(), "[901][902]", bundle, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Fulfilled {
		t.Error("expected then_also to require both leaves, like AND")
	}
}

func TestEvaluateFormatConstraintsCollectsErrorMessages(t *testing.T) {
	bundle := content.Fixtures{}.Bundle()
	bundle.Fc = content.MapFcEvaluator{
		"901": content.FcResult{Fulfilled: false, ErrorMessage: "bad format"},
	}
	got, err := EvaluateFormatConstraints(context.Background(), "[901]", bundle, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Fulfilled || got.ErrorMessage != "bad format" {
		t.Errorf("got %+v, want Fulfilled=false ErrorMessage=%q", got, "bad format")
	}
}

func TestEvaluateFormatConstraintsUsesEnteredTextFromRunContext(t *testing.T) {
	var seen string
	bundle := content.LogicBundle{
		Fc: fcEvaluatorFunc(func(_ context.Context, _ string, enteredText string) (content.FcResult, error) {
			seen = enteredText
			return content.FcResult{Fulfilled: true}, nil
		}),
	}
	handle := runctx.NewHandle()
	handle.EnteredText["Dokument/1"] = "12345"
	ctx := runctx.WithHandle(context.Background(), handle)

	if _, err := EvaluateFormatConstraints(ctx, "[901]", bundle, "Dokument/1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != "12345" {
		t.Errorf("got entered text %q, want %q", seen, "12345")
	}
}

type fcEvaluatorFunc func(ctx context.Context, key string, enteredText string) (content.FcResult, error)

func (f fcEvaluatorFunc) Evaluate(ctx context.Context, key string, enteredText string) (content.FcResult, error) {
	return f(ctx, key, enteredText)
}
