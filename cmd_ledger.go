package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/Rshep3087/qtrs/fiscal"
	"github.com/Rshep3087/qtrs/ledger"
	"github.com/Rshep3087/qtrs/sheets"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// newLedgerCmd creates the ledger command and its subcommands.
func newLedgerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger split commands",
		Long:  `Commands for totalling exported ledger splits by fiscal quarter.`,
	}

	splitsCmd := &cobra.Command{
		Use:   "splits FILE...",
		Short: "Total debits and credits per quarter",
		Long: `Read split exports (CSV with date, account and amount columns) and total the
debits and credits of an account and its sub-accounts for each selected quarter.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return a.ledgerSplitsRun(c, args)
		},
	}
	splitsCmd.Flags().String("year", "", "Fiscal year to total (required)")
	splitsCmd.Flags().String("quarter", "0", "Quarter to total, 0 for all")
	splitsCmd.Flags().String("account", "", "Account path, e.g. Expenses:Auto (default all accounts)")
	splitsCmd.Flags().String("currency", "", "Currency for display (default from config)")
	splitsCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table, json or csv")
	splitsCmd.Flags().String("col", "", "Emit a sheet batch filling this column with the totals instead")
	_ = splitsCmd.MarkFlagRequired("year")

	cmd.AddCommand(splitsCmd)
	return cmd
}

func (a *app) ledgerSplitsRun(cmd *cobra.Command, files []string) error {
	outputFormat, err := validateOutputFormat(cmd, tableOutputFormat, jsonOutputFormat, csvOutputFormat)
	if err != nil {
		return err
	}

	yearText, _ := cmd.Flags().GetString("year")
	quarterText, _ := cmd.Flags().GetString("quarter")
	account, _ := cmd.Flags().GetString("account")
	currency, _ := cmd.Flags().GetString("currency")
	col, _ := cmd.Flags().GetString("col")
	if currency == "" {
		currency = a.cfg.Currency
	}

	y, err := fiscal.ParseYear(yearText, a.cfg.BaseYear)
	if err != nil {
		return err
	}
	q, err := fiscal.ParseQuarter(quarterText)
	if err != nil {
		return err
	}

	splits, err := ledger.LoadFiles(cmd.Context(), files...)
	if err != nil {
		return fmt.Errorf("failed to load splits: %w", err)
	}
	a.log.Debug("loaded splits", "files", len(files), "splits", len(splits))

	periods := slices.Collect(y.Quarters(q, a.cfg.StartMonth))
	totals := ledger.Aggregate(periods, splits, account, a.log)

	if col != "" {
		return outputJSON(cmd.OutOrStdout(), a.totalsBatch(strings.ToUpper(col), y, q, totals))
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd.OutOrStdout(), totals)
	case csvOutputFormat:
		return ledger.WriteCSV(cmd.OutOrStdout(), totals)
	case tableOutputFormat:
		return a.outputTotalsTable(cmd.OutOrStdout(), account, currency, totals)
	default:
		return errors.New("unsupported output format")
	}
}

// totalsBatch places each quarter total in its row of the configured sheet.
func (a *app) totalsBatch(col string, y fiscal.Year, q fiscal.Quarter, totals []ledger.Totals) sheets.Batch {
	values := make(map[int]any, len(totals))
	for i, t := range totals {
		n := i + 1
		if !q.All() {
			n = q.Int()
		}
		values[n] = t.Total
	}
	return sheets.NewBatch(a.grid().Fill(col, y, q, values))
}

func accountTitle(account string) string {
	if account == "" {
		return "All Accounts"
	}
	parts := strings.Split(account, ledger.AccountSeparator)
	for i, p := range parts {
		parts[i] = titleCaser.String(p)
	}
	return strings.Join(parts, " / ")
}

func (a *app) outputTotalsTable(w io.Writer, account, currency string, totals []ledger.Totals) error {
	t := a.theme.createStyledTable("PERIOD START", "PERIOD END", "DEBITS", "CREDITS", "TOTAL", "SPLITS")
	for _, tt := range totals {
		t.Row(
			tt.Period.StartDate(),
			tt.Period.EndDate(),
			ledger.Money(tt.Debits, currency).Display(),
			ledger.Money(tt.Credits, currency).Display(),
			ledger.Money(tt.Total, currency).Display(),
			fmt.Sprint(tt.Splits),
		)
	}

	if _, err := fmt.Fprintln(w, a.theme.titleStyle().Render(accountTitle(account))); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, t)
	return err
}
