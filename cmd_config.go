package main

import (
	"fmt"

	"github.com/Rshep3087/qtrs/config"
	"github.com/spf13/cobra"
)

// newConfigCmd creates the config command and its subcommands.
func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration commands",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(c *cobra.Command, _ []string) error {
			file := a.configPath
			if file == "" {
				file = "(defaults)"
			}

			t := a.theme.createStyledTable("SETTING", "VALUE", "DESCRIPTION")
			t.Rows(config.Rows(a.cfg)...)

			if _, err := fmt.Fprintln(c.OutOrStdout(), a.theme.titleStyle().Render(file)); err != nil {
				return err
			}
			_, err := fmt.Fprintln(c.OutOrStdout(), t)
			return err
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write a default configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			path := config.AppName + ".toml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteFile(path, config.Default()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(c.OutOrStdout(), path)
			return err
		},
	}

	cmd.AddCommand(showCmd, initCmd)
	return cmd
}
