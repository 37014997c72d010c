package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/Rshep3087/qtrs/fiscal"
	"github.com/Rshep3087/qtrs/jsonfile"
	"github.com/spf13/cobra"
)

// quarterStart is the JSON form of a quarter start.
type quarterStart struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// newQuartersCmd creates the quarters command and its subcommands.
func newQuartersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quarters",
		Short: "Quarter boundary commands",
		Long:  `Commands for computing fiscal quarter start and end dates.`,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List consecutive quarters",
		Long:  `List the start and end date of a number of consecutive quarters.`,
		RunE: func(c *cobra.Command, _ []string) error {
			return a.quartersListRun(c)
		},
	}
	addStartFlags(listCmd)
	listCmd.Flags().IntP("count", "n", fiscal.YearQuarters, "Number of quarters to list")
	listCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
	listCmd.Flags().Bool("save", false, "Also save the quarters to a time-stamped JSON file")

	nextCmd := &cobra.Command{
		Use:   "next",
		Short: "Show the start of the following quarter",
		RunE: func(c *cobra.Command, _ []string) error {
			return a.quartersNextRun(c)
		},
	}
	addStartFlags(nextCmd)
	nextCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")

	endCmd := &cobra.Command{
		Use:   "end",
		Short: "Show the last day of a quarter",
		RunE: func(c *cobra.Command, _ []string) error {
			return a.quartersEndRun(c)
		},
	}
	addStartFlags(endCmd)

	cmd.AddCommand(listCmd, nextCmd, endCmd)
	return cmd
}

// addStartFlags adds the --year and --month flags that locate a quarter start.
// A zero month means the configured fiscal start month.
func addStartFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("year", "y", time.Now().Year(), "Year of the first quarter")
	cmd.Flags().IntP("month", "m", 0, "Month the first quarter starts in (default: fiscal start month)")
}

func (a *app) startFlags(cmd *cobra.Command) (int, int) {
	year, _ := cmd.Flags().GetInt("year")
	month, _ := cmd.Flags().GetInt("month")
	if !cmd.Flags().Changed("month") {
		month = a.cfg.StartMonth
	}
	return year, month
}

func (a *app) quartersListRun(cmd *cobra.Command) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	year, month := a.startFlags(cmd)
	count, _ := cmd.Flags().GetInt("count")
	save, _ := cmd.Flags().GetBool("save")

	a.log.Debug("listing quarters", "year", year, "month", month, "count", count)
	periods := slices.AppendSeq([]fiscal.Period{}, fiscal.QuarterBoundaries(year, month, count))

	if save {
		path, err := jsonfile.Save("quarters", periods, jsonfile.SaveOptions{Folder: a.cfg.JSONFolder})
		if err != nil {
			return err
		}
		a.log.Info("saved quarters", "file", path)
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd.OutOrStdout(), periods)
	case tableOutputFormat:
		return a.outputPeriodsTable(cmd.OutOrStdout(), periods)
	default:
		return errors.New("unsupported output format")
	}
}

func (a *app) outputPeriodsTable(w io.Writer, periods []fiscal.Period) error {
	t := a.theme.createStyledTable("#", "START", "END")
	for i, p := range periods {
		t.Row(strconv.Itoa(i+1), p.StartDate(), p.EndDate())
	}

	_, err := fmt.Fprintln(w, t)
	return err
}

func (a *app) quartersNextRun(cmd *cobra.Command) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	year, month := a.startFlags(cmd)
	ny, nm := fiscal.NextQuarterStart(year, month)
	a.log.Debug("next quarter start", "year", year, "month", month, "next_year", ny, "next_month", nm)

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd.OutOrStdout(), quarterStart{Year: ny, Month: nm})
	case tableOutputFormat:
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%04d-%02d\n", ny, nm)
		return err
	default:
		return errors.New("unsupported output format")
	}
}

func (a *app) quartersEndRun(cmd *cobra.Command) error {
	year, month := a.startFlags(cmd)
	end := fiscal.CurrentQuarterEnd(year, month)

	_, err := fmt.Fprintln(cmd.OutOrStdout(), end.Format(fiscal.DateFormat))
	return err
}
