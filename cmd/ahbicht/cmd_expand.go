package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hochfrequenz/go-ahbicht/condition"
	"github.com/hochfrequenz/go-ahbicht/content"
	"github.com/hochfrequenz/go-ahbicht/jsonmodel"
	"github.com/hochfrequenz/go-ahbicht/pkgexpand"
	"github.com/spf13/cobra"
)

var expandPackagesFile string

var expandCmd = &cobra.Command{
	Use:   "expand [condition-expression]",
	Short: "Parse and expand package references in a condition expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := condition.Parse(condition.Sanitize(args[0]))
		if err != nil {
			return err
		}

		resolver, err := loadPackageResolver(expandPackagesFile)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		expanded, err := pkgexpand.Expand(ctx, tree, resolver)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(jsonmodel.Verbose(expanded), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	expandCmd.Flags().StringVar(&expandPackagesFile, "packages", "", "JSON file mapping package number to its condition expression")
}

func loadPackageResolver(path string) (content.PackageResolver, error) {
	if path == "" {
		return content.MapPackageResolver{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading packages file: %w", err)
	}
	m := make(map[string]string)
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing packages file: %w", err)
	}
	return content.MapPackageResolver(m), nil
}
