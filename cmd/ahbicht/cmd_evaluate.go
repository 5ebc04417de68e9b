package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hochfrequenz/go-ahbicht/ahbexpression"
	"github.com/hochfrequenz/go-ahbicht/content"
	"github.com/hochfrequenz/go-ahbicht/evaluation"
	"github.com/hochfrequenz/go-ahbicht/internal/runctx"
	"github.com/spf13/cobra"
)

var (
	evaluateFixturesFile string
	evaluateFormat       string
	evaluateVersion      string
	evaluateScope        string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [ahb-expression]",
	Short: "Evaluate an AHB expression against a fixtures file",
	Long: `Evaluates an AHB expression end to end, driving it through package
expansion, requirement-constraint reduction and format-constraint
reduction using a fixtures file in place of live content evaluators.

A fixtures file looks like:
  {
    "requirement_constraints": {"2": "TRUE", "3": "FALSE"},
    "format_constraints": {"901": true},
    "hints": {"502": "send the invoice reference"},
    "packages": {"123": "[2] U [3]"}
  }`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs, err := ahbexpression.Parse(args[0])
		if err != nil {
			return err
		}

		bundle, err := loadFixtureBundle(evaluateFixturesFile)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		ctx = runctx.WithHandle(ctx, runctx.NewHandle())

		data := content.EvaluatableData{
			EdifactFormat: evaluateFormat,
			FormatVersion: evaluateVersion,
			Scope:         evaluateScope,
		}

		result, err := evaluation.EvaluateAhbExpression(ctx, pairs, bundle, data)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	evaluateCmd.Flags().StringVar(&evaluateFixturesFile, "fixtures", "", "JSON fixtures file (required)")
	evaluateCmd.Flags().StringVar(&evaluateFormat, "format", "UTILMD", "edifact format")
	evaluateCmd.Flags().StringVar(&evaluateVersion, "format-version", "FV2504", "edifact format version")
	evaluateCmd.Flags().StringVar(&evaluateScope, "scope", "", "evaluation scope")
	_ = evaluateCmd.MarkFlagRequired("fixtures")
}

func loadFixtureBundle(path string) (content.LogicBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return content.LogicBundle{}, fmt.Errorf("reading fixtures file: %w", err)
	}
	var f content.Fixtures
	if err := json.Unmarshal(data, &f); err != nil {
		return content.LogicBundle{}, fmt.Errorf("parsing fixtures file: %w", err)
	}
	return f.Bundle(), nil
}
