package main

import (
	"fmt"
	"os"

	"github.com/Rshep3087/qtrs/jsonfile"
	"github.com/spf13/cobra"
)

// newJSONCmd creates the json command and its subcommands.
func newJSONCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "json",
		Short: "JSON file helpers",
	}

	formatCmd := &cobra.Command{
		Use:   "format FILE",
		Short: "Print a JSON file with consistent indentation",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read JSON file: %w", err)
			}

			out, err := jsonfile.Format(data, a.indent(c))
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			_, err = c.OutOrStdout().Write(out)
			return err
		},
	}
	formatCmd.Flags().String("indent", "4", "Indent width")

	fromCSVCmd := &cobra.Command{
		Use:   "from-csv CSV JSON",
		Short: "Convert a CSV file to a JSON array of objects",
		Long:  `Convert a CSV file with a header row to a JSON array of objects. The JSON file must not exist.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			if err := jsonfile.FromCSV(args[0], args[1], a.indent(c)); err != nil {
				return err
			}
			a.log.Info("converted CSV to JSON", "csv", args[0], "json", args[1])
			return nil
		},
	}
	fromCSVCmd.Flags().String("indent", "4", "Indent width")

	cmd.AddCommand(formatCmd, fromCSVCmd)
	return cmd
}

// indent reads --indent, falling back to the default width on bad input.
func (a *app) indent(cmd *cobra.Command) int {
	s, _ := cmd.Flags().GetString("indent")
	n, ok := jsonfile.ParseIndent(s)
	if !ok {
		a.log.Warn("bad JSON indent, using default", "indent", s, "default", n)
	}
	return n
}
