package main

import (
	"encoding/json"
	"fmt"

	"github.com/hochfrequenz/go-ahbicht/ahbexpression"
	"github.com/hochfrequenz/go-ahbicht/jsonmodel"
	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split [ahb-expression]",
	Short: "Split an AHB expression into its (indicator, condition-tree) pairs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs, err := ahbexpression.Parse(args[0])
		if err != nil {
			return err
		}

		type pairOut struct {
			Indicator string               `json:"requirement_indicator"`
			Tree      jsonmodel.VerboseNode `json:"tree"`
		}
		out := make([]pairOut, 0, len(pairs))
		for _, p := range pairs {
			out = append(out, pairOut{Indicator: p.Indicator.Kind.String(), Tree: jsonmodel.Verbose(p.Tree)})
		}

		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}
