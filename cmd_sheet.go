package main

import (
	"fmt"
	"strings"

	"github.com/Rshep3087/qtrs/fiscal"
	"github.com/Rshep3087/qtrs/jsonfile"
	"github.com/Rshep3087/qtrs/sheets"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// newSheetCmd creates the sheet command and its subcommands.
func newSheetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Spreadsheet update commands",
		Long:  `Commands for building spreadsheet value updates laid out by fiscal quarter.`,
	}

	cellsCmd := &cobra.Command{
		Use:   "cells",
		Short: "Build a batch update for quarterly cells",
		Long: `Build the batch update body for one column of the quarterly sheet.
Values are given as QUARTER=VALUE pairs, e.g. --value 1=1200.50 --value 2=980.`,
		RunE: func(c *cobra.Command, _ []string) error {
			return a.sheetCellsRun(c)
		},
	}
	cellsCmd.Flags().String("sheet", "", "Sheet name (default from config)")
	cellsCmd.Flags().String("col", "", "Column to update (required)")
	cellsCmd.Flags().String("year", "", "Year to update")
	cellsCmd.Flags().String("quarter", "0", "Quarter to update, 0 for all")
	cellsCmd.Flags().StringSlice("value", nil, "QUARTER=VALUE pair (can be specified multiple times)")
	cellsCmd.Flags().BoolP("interactive", "i", false, "Prompt for the year and quarter")
	cellsCmd.Flags().Bool("save", false, "Also save the batch to a time-stamped JSON file")
	_ = cellsCmd.MarkFlagRequired("col")

	cmd.AddCommand(cellsCmd)
	return cmd
}

func (a *app) sheetCellsRun(cmd *cobra.Command) error {
	col, _ := cmd.Flags().GetString("col")
	yearText, _ := cmd.Flags().GetString("year")
	quarterText, _ := cmd.Flags().GetString("quarter")
	pairs, _ := cmd.Flags().GetStringSlice("value")
	interactive, _ := cmd.Flags().GetBool("interactive")
	save, _ := cmd.Flags().GetBool("save")

	if interactive {
		if err := a.promptYearQuarter(&yearText, &quarterText); err != nil {
			return err
		}
	}

	y, err := fiscal.ParseYear(yearText, a.cfg.BaseYear)
	if err != nil {
		return err
	}
	q, err := fiscal.ParseQuarter(quarterText)
	if err != nil {
		return err
	}

	values, err := parseQuarterValues(pairs)
	if err != nil {
		return err
	}

	grid := a.grid()
	if name, _ := cmd.Flags().GetString("sheet"); name != "" {
		grid.Sheet = name
	}

	batch := sheets.NewBatch(grid.Fill(strings.ToUpper(col), y, q, values))
	a.log.Info("built sheet batch", "sheet", grid.Sheet, "year", y, "quarter", q, "cells", len(batch.Data))

	if save {
		path, err := jsonfile.Save("sheet_"+grid.Sheet, batch, jsonfile.SaveOptions{Folder: a.cfg.JSONFolder})
		if err != nil {
			return err
		}
		a.log.Info("saved sheet batch", "file", path)
	}

	return outputJSON(cmd.OutOrStdout(), batch)
}

func (a *app) grid() *sheets.Grid {
	return sheets.NewGrid(a.cfg.Sheet.Name, a.cfg.Sheet.BaseRow, a.cfg.Layout(), a.log)
}

// promptYearQuarter asks for the year and quarter until both are valid.
func (a *app) promptYearQuarter(yearText, quarterText *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Year").
				Description(fmt.Sprintf("%d or later", a.cfg.BaseYear)).
				Value(yearText).
				Validate(func(s string) error {
					_, err := fiscal.ParseYear(s, a.cfg.BaseYear)
					return err
				}),
			huh.NewInput().
				Title("Quarter").
				Description("1-4, or 0 for all four").
				Value(quarterText).
				Validate(func(s string) error {
					_, err := fiscal.ParseQuarter(s)
					return err
				}),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("prompt cancelled: %w", err)
	}
	return nil
}

// parseQuarterValues parses QUARTER=VALUE pairs. Numeric values become
// decimals, anything else is sent as text.
func parseQuarterValues(pairs []string) (map[int]any, error) {
	values := make(map[int]any, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("invalid value %q (expected QUARTER=VALUE)", p)
		}

		q, err := fiscal.ParseQuarter(strings.TrimSpace(k))
		if err != nil {
			return nil, err
		}
		if q.All() {
			return nil, fmt.Errorf("invalid value %q: quarter must be 1-4", p)
		}

		v = strings.TrimSpace(v)
		if d, err := decimal.NewFromString(v); err == nil {
			values[q.Int()] = d
		} else {
			values[q.Int()] = v
		}
	}
	return values, nil
}
