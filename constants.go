package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// Output formats
const (
	jsonOutputFormat  = "json"
	tableOutputFormat = "table"
	csvOutputFormat   = "csv"
)

// validateOutputFormat returns the --output flag value if it is one of valid.
func validateOutputFormat(cmd *cobra.Command, valid ...string) (string, error) {
	if len(valid) == 0 {
		valid = []string{tableOutputFormat, jsonOutputFormat}
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	if !slices.Contains(valid, outputFormat) {
		return "", fmt.Errorf("invalid output format: %s (must be one of %v)", outputFormat, valid)
	}

	return outputFormat, nil
}
