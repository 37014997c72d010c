package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Rshep3087/qtrs/config"
	"github.com/Rshep3087/qtrs/logging"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// rootOptions holds the values of the global flags.
type rootOptions struct {
	cfgFile    string
	debug      bool
	startMonth int
	baseYear   int
	logFolder  string
}

// app is the state shared by the commands of one run. It is filled in by the
// root PersistentPreRunE before any command body executes.
type app struct {
	cfg        config.Config
	configPath string
	log        *logging.Logger
	theme      Theme
}

// newRootCmd creates the qtrs command tree around a. The caller closes a once
// the command has run, whether or not it failed.
func newRootCmd(a *app) *cobra.Command {
	opts := &rootOptions{}
	defaults := config.Default()

	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Fiscal quarter arithmetic for reports and spreadsheets",
		Long: `qtrs computes fiscal quarter boundaries, validates year and quarter input,
locates yearly blocks of spreadsheet rows and totals ledger splits by quarter.`,
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return a.setup(c, opts)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is ./qtrs.toml)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().IntVar(&opts.startMonth, "start-month", defaults.StartMonth, "first month (1-12) of the fiscal year")
	rootCmd.PersistentFlags().IntVar(&opts.baseYear, "base-year", defaults.BaseYear, "earliest year accepted on input")
	rootCmd.PersistentFlags().StringVar(&opts.logFolder, "log-folder", defaults.LogFolder, "folder for the run log file (empty to disable)")

	rootCmd.AddCommand(newQuartersCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newRowsCmd(a))
	rootCmd.AddCommand(newSheetCmd(a))
	rootCmd.AddCommand(newLedgerCmd(a))
	rootCmd.AddCommand(newJSONCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	a := &app{}
	err := fang.Execute(context.Background(), newRootCmd(a))
	if cerr := a.close(err); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration and creates the run logger.
func (a *app) setup(c *cobra.Command, opts *rootOptions) error {
	// a missing .env is fine
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(config.AppName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	flags := c.Flags()
	bindFlag(v, flags, "debug", "debug")
	bindFlag(v, flags, "start_month", "start-month")
	bindFlag(v, flags, "base_year", "base-year")
	bindFlag(v, flags, "log_folder", "log-folder")

	path := opts.cfgFile
	if path == "" {
		path = config.FindFile()
	}

	cfg := config.Default()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		var err error
		cfg, err = config.LoadFile(path)
		if err != nil {
			return err
		}
	}

	// flags and QTRS_* environment variables win over the file
	cfg.Debug = v.GetBool("debug")
	cfg.StartMonth = v.GetInt("start_month")
	cfg.BaseYear = v.GetInt("base_year")
	cfg.LogFolder = v.GetString("log_folder")
	if id := v.GetString("sheet.id"); id != "" {
		cfg.Sheet.ID = id
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	lo := logging.Options{}
	if cfg.LoggingConfig != "" {
		var err error
		lo, err = logging.LoadOptions(cfg.LoggingConfig)
		if err != nil {
			return err
		}
	}
	if lo.Name == "" {
		lo.Name = strings.ReplaceAll(c.CommandPath(), " ", "_")
	}
	if lo.Folder == "" {
		lo.Folder = cfg.LogFolder
	}
	lo.Console = c.ErrOrStderr()

	logger, err := logging.New(lo)
	if err != nil {
		return err
	}
	if cfg.Debug {
		logger.SetConsoleLevel(log.DebugLevel)
	}

	a.cfg = cfg
	a.configPath = path
	a.log = logger
	a.theme = newTheme(cfg.Colors)

	a.log.Debug("configuration loaded", "file", path, "start_month", cfg.StartMonth, "base_year", cfg.BaseYear)
	return nil
}

func bindFlag(v *viper.Viper, flags *pflag.FlagSet, key, name string) {
	if f := flags.Lookup(name); f != nil {
		_ = v.BindPFlag(key, f)
	}
}

// close writes the closing log line, including runErr if the command failed,
// and closes the run log.
func (a *app) close(runErr error) error {
	if a.log == nil {
		return nil
	}
	if runErr != nil {
		a.log.Error("run failed", "err", runErr)
	}
	a.log.Debug("run finished", "log_file", a.log.Path())
	err := a.log.Close()
	a.log = nil
	return err
}

// outputJSON writes data as indented JSON.
func outputJSON(w io.Writer, data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}
