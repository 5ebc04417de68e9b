package main

import (
	"encoding/json"
	"fmt"

	"github.com/hochfrequenz/go-ahbicht/condition"
	"github.com/hochfrequenz/go-ahbicht/jsonmodel"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var parseCmd = &cobra.Command{
	Use:   "parse [condition-expression]",
	Short: "Parse a condition expression and print its verbose tree as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := condition.Parse(condition.Sanitize(args[0]))
		if err != nil {
			return err
		}
		rendered := "<empty>"
		if tree != nil {
			rendered = tree.String()
		}
		logger.Debug("parsed condition expression", zap.String("input", args[0]), zap.String("tree", rendered))

		out, err := json.MarshalIndent(jsonmodel.Verbose(tree), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}
