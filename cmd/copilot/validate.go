package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/career-copilot/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON record against its schema",
	Long: `Validate a resume, job or gap report JSON file against the embedded JSON Schema for its kind,
or against a JSON Schema file given with --schema.`,
	RunE: runValidate,
}

var (
	validateKind   string
	validateSchema string
	validateInput  string
)

func init() {
	kinds := make([]string, len(schemas.Kinds))
	for i, k := range schemas.Kinds {
		kinds[i] = string(k)
	}
	validateCmd.Flags().StringVarP(&validateKind, "kind", "k", "", "Record kind: "+strings.Join(kinds, ", "))
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Path to a JSON Schema file to validate against instead of --kind")
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to JSON file")
	validateCmd.MarkFlagsMutuallyExclusive("kind", "schema")
	validateCmd.MarkFlagsOneRequired("kind", "schema")
	_ = validateCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if validateSchema != "" {
		if err := schemas.ValidateJSON(validateSchema, validateInput); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid against %s\n", validateInput, validateSchema)
		return nil
	}

	kind, err := schemas.ParseKind(validateKind)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(validateInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	if err := schemas.Validate(kind, data); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is a valid %s\n", validateInput, kind)
	return nil
}
