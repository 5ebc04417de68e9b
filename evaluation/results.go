// Package evaluation implements the requirement-constraint evaluator,
// the format-constraint evaluator, and the AHB evaluator: the
// two-pass reduction from a condition tree down to a fulfilled/not-fulfilled
// verdict plus its format-constraint residual and hint text.
package evaluation

// RequirementConstraintEvaluationResult is the outcome of reducing one
// (indicator, condition-tree) pair's requirement-constraint side.
type RequirementConstraintEvaluationResult struct {
	Fulfilled                   bool   `json:"requirement_constraints_fulfilled"`
	IsConditional                bool   `json:"requirement_is_conditional"`
	FormatConstraintsExpression string `json:"format_constraints_expression,omitempty"`
	Hints                        string `json:"hints,omitempty"`
}

// FormatConstraintEvaluationResult is the outcome of evaluating the residual
// format-constraint expression.
type FormatConstraintEvaluationResult struct {
	Fulfilled    bool   `json:"format_constraints_fulfilled"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// AhbExpressionEvaluationResult is the final, stitched-together outcome of
// evaluating a whole AHB expression: the effective requirement
// indicator plus its RC and FC results.
type AhbExpressionEvaluationResult struct {
	RequirementIndicator string                                 `json:"requirement_indicator"`
	RC                    RequirementConstraintEvaluationResult `json:"requirement_constraint_evaluation_result"`
	FC                    FormatConstraintEvaluationResult       `json:"format_constraint_evaluation_result"`
}

// EvaluatedFormatConstraint is the per-leaf outcome the FC evaluator
// produces for a single format-constraint key.
type EvaluatedFormatConstraint struct {
	Fulfilled    bool   `json:"format_constraint_fulfilled"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// ContentEvaluationResult bundles the per-leaf outcomes a single content
// evaluator call can produce, for callers that want one payload covering
// whichever of RC/hint/FC applies to a given key rather than three
// separate round trips.
type ContentEvaluationResult struct {
	Fulfilled        *bool                      `json:"requirement_constraint_fulfilled,omitempty"`
	HintText         string                     `json:"hint,omitempty"`
	FormatConstraint *EvaluatedFormatConstraint `json:"format_constraint,omitempty"`
}
