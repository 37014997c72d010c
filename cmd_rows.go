package main

import (
	"fmt"

	"github.com/Rshep3087/qtrs/fiscal"
	"github.com/spf13/cobra"
)

// newRowsCmd creates the rows command, which prints the row offset of a year.
func newRowsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rows YEAR",
		Short: "Row offset of a year in the spreadsheet layout",
		Long: `Print how many rows below the base year's block the block of YEAR starts,
counting one extra header row every --header-span years.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			layout := a.cfg.Layout()
			if c.Flags().Changed("span") {
				layout.YearSpan, _ = c.Flags().GetInt("span")
			}
			if c.Flags().Changed("header-span") {
				layout.HeaderSpan, _ = c.Flags().GetInt("header-span")
			}

			y, err := fiscal.ParseYear(args[0], layout.BaseYear)
			if err != nil {
				return err
			}

			offset := layout.Row(y)
			a.log.Debug("year span", "target", y, "base", layout.BaseYear,
				"year_span", layout.YearSpan, "header_span", layout.HeaderSpan, "offset", offset)

			_, err = fmt.Fprintln(c.OutOrStdout(), offset)
			return err
		},
	}

	cmd.Flags().Int("span", 0, "Rows per year, not counting header rows (default from config)")
	cmd.Flags().Int("header-span", 0, "Years between header rows, 0 for none (default from config)")

	return cmd
}
