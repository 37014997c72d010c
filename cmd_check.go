package main

import (
	"fmt"

	"github.com/Rshep3087/qtrs/fiscal"
	"github.com/spf13/cobra"
)

// newCheckCmd creates the check command used to validate year and quarter input.
func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate year and quarter input",
		Long:  `Validate year and quarter strings the same way report commands do.`,
	}

	yearCmd := &cobra.Command{
		Use:   "year YEAR",
		Short: "Validate a 4-digit year between the base year and now",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			y, err := fiscal.ParseYear(args[0], a.cfg.BaseYear)
			if err != nil {
				a.log.Error("year rejected", "input", args[0], "error", err)
				return err
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), y)
			return err
		},
	}

	quarterCmd := &cobra.Command{
		Use:   "quarter QUARTER",
		Short: "Validate a quarter 1-4, or 0 for all quarters",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			q, err := fiscal.ParseQuarter(args[0])
			if err != nil {
				a.log.Error("quarter rejected", "input", args[0], "error", err)
				return err
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), q.Int())
			return err
		},
	}

	cmd.AddCommand(yearCmd, quarterCmd)
	return cmd
}
