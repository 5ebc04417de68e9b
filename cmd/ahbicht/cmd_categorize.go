package main

import (
	"encoding/json"
	"fmt"

	"github.com/hochfrequenz/go-ahbicht/condition"
	"github.com/spf13/cobra"
)

var categorizeCmd = &cobra.Command{
	Use:   "categorize [condition-expression]",
	Short: "Parse a condition expression and list its keys by category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := condition.Parse(condition.Sanitize(args[0]))
		if err != nil {
			return err
		}

		extract := condition.ExtractCategorizedKeys(tree)

		out, err := json.MarshalIndent(extract, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}
