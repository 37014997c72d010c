package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Rshep3087/qtrs/fiscal"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// AppName names the config file, its folders and the environment prefix.
const AppName = "qtrs"

// Config represents the application configuration structure.
type Config struct {
	// Debug enables debug logging on the console
	Debug bool `toml:"debug"`
	// StartMonth is the calendar month that starts the fiscal year
	StartMonth int `toml:"start_month" validate:"min=1,max=12"`
	// BaseYear is the earliest year accepted on input
	BaseYear int `toml:"base_year" validate:"gte=1000,lte=9999"`
	// LogFolder receives one log file per run; empty disables file logging
	LogFolder string `toml:"log_folder"`
	// LoggingConfig is an optional YAML file with logging options
	LoggingConfig string `toml:"logging_config"`
	// JSONFolder receives saved JSON output when it exists
	JSONFolder string `toml:"json_folder"`
	// Currency is used to display ledger totals
	Currency string `toml:"currency" validate:"len=3"`
	// Sheet describes the quarterly spreadsheet layout
	Sheet Sheet `toml:"sheet"`
	// Colors overrides the output theme
	Colors Colors `toml:"colors"`
}

// Sheet describes where quarterly values go in the spreadsheet.
type Sheet struct {
	// ID is the spreadsheet identifier, kept out of logs and output
	ID string `toml:"id"`
	// Name is the sheet (tab) name
	Name string `toml:"name" validate:"required"`
	// BaseRow is the row of Q1 of the layout's base year
	BaseRow int `toml:"base_row" validate:"gte=1"`
	// YearSpan is the number of rows per year, not counting header rows
	YearSpan int `toml:"year_span" validate:"gte=0"`
	// HeaderSpan is the number of years between header rows
	HeaderSpan int `toml:"header_span" validate:"gte=0"`
}

// Colors holds optional theme colors as hex or ANSI codes.
type Colors struct {
	Primary       string `toml:"primary"`
	Error         string `toml:"error"`
	Border        string `toml:"border"`
	Text          string `toml:"text"`
	SecondaryText string `toml:"secondary_text"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		StartMonth: 1,
		BaseYear:   2010,
		LogFolder:  "logs",
		JSONFolder: "json",
		Currency:   "USD",
		Sheet: Sheet{
			Name:       "Budget",
			BaseRow:    3,
			YearSpan:   4,
			HeaderSpan: 0,
		},
	}
}

// Layout returns the row layout of the configured sheet.
func (c Config) Layout() fiscal.Layout {
	return fiscal.Layout{BaseYear: c.BaseYear, YearSpan: c.Sheet.YearSpan, HeaderSpan: c.Sheet.HeaderSpan}
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// FilePaths returns the list of possible configuration file paths
// in order of precedence (first found wins).
func FilePaths() []string {
	var paths []string

	// Current directory (highest precedence)
	paths = append(paths, AppName+".toml")

	// User config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, AppName, "config.toml"))
	}

	// User home directory
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, "."+AppName+".toml"))
	}

	// System-wide config directory (lowest precedence)
	paths = append(paths, filepath.Join("/etc", AppName, "config.toml"))

	return paths
}

// FindFile returns the first existing config file, or "" if none is found.
func FindFile() string {
	for _, path := range FilePaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadFile loads configuration from a TOML file on top of the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse TOML config file %s: %w", path, err)
	}

	return cfg, nil
}

// WriteFile writes cfg as TOML, refusing to replace an existing file.
func WriteFile(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return f.Close()
}

func maskSensitiveValue(value string) string {
	if value == "" {
		return "(not set)"
	}

	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}

	return value[:4] + strings.Repeat("*", len(value)-4)
}

// Rows returns setting, value and description rows for display.
func Rows(config Config) [][]string {
	return [][]string{
		{"Debug", strconv.FormatBool(config.Debug), "Enable debug logging"},
		{"Start Month", strconv.Itoa(config.StartMonth), "First month of the fiscal year"},
		{"Base Year", strconv.Itoa(config.BaseYear), "Earliest year accepted on input"},
		{"Log Folder", orUnset(config.LogFolder), "Folder for per-run log files"},
		{"JSON Folder", orUnset(config.JSONFolder), "Folder for saved JSON output"},
		{"Currency", config.Currency, "Currency of ledger totals"},
		{"Sheet ID", maskSensitiveValue(config.Sheet.ID), "Spreadsheet identifier"},
		{"Sheet Name", config.Sheet.Name, "Sheet receiving quarterly values"},
		{"Base Row", strconv.Itoa(config.Sheet.BaseRow), "Row of Q1 in the base year"},
		{"Year Span", strconv.Itoa(config.Sheet.YearSpan), "Rows per year, excluding headers"},
		{"Header Span", strconv.Itoa(config.Sheet.HeaderSpan), "Years between header rows"},
	}
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
