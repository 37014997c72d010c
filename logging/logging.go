// Package logging sets up the per-run logger used by the qtrs commands: a
// console logger, an optional time-stamped log file and an in-memory copy of
// everything written to the file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// FileTimestamp names log and JSON files so that every run gets its own file.
const FileTimestamp = "D2006-01-02T15-04-05"

const (
	defaultConsoleLevel = log.WarnLevel
	defaultFileLevel    = log.DebugLevel
	defaultSuffix       = "log"
)

// Sink is the subset of logger methods that library packages depend on.
// Both *Logger and *log.Logger satisfy it.
type Sink interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

// Options configures a Logger. The YAML form mirrors the logging config file.
type Options struct {
	// Name is the base name of the log file and the console prefix.
	Name string `yaml:"name"`
	// Folder receives the log file. Empty disables file logging.
	Folder string `yaml:"folder"`
	// Suffix is the log file extension, "log" by default.
	Suffix       string `yaml:"suffix"`
	ConsoleLevel string `yaml:"console_level"`
	FileLevel    string `yaml:"file_level"`

	// Console defaults to os.Stderr.
	Console io.Writer `yaml:"-"`
	// Now defaults to time.Now and stamps the log file name.
	Now func() time.Time `yaml:"-"`
}

// LoadOptions reads Options from a YAML file.
func LoadOptions(path string) (Options, error) {
	var o Options
	data, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("failed to read logging config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return o, fmt.Errorf("failed to parse logging config %s: %w", path, err)
	}
	return o, nil
}

// Logger fans each message out to the console and to the log file, each with
// its own level, and keeps a copy of the messages that reached the file level.
type Logger struct {
	console   *log.Logger
	file      *log.Logger
	fileLevel log.Level

	f    *os.File
	path string

	mu    sync.Mutex
	saved []string
}

// New creates a Logger. The caller owns it and must Close it when the run ends.
func New(opts Options) (*Logger, error) {
	consoleLevel, err := parseLevel(opts.ConsoleLevel, defaultConsoleLevel)
	if err != nil {
		return nil, err
	}
	fileLevel, err := parseLevel(opts.FileLevel, defaultFileLevel)
	if err != nil {
		return nil, err
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	l := &Logger{
		console: log.NewWithOptions(console, log.Options{
			Level:  consoleLevel,
			Prefix: opts.Name,
		}),
		fileLevel: fileLevel,
	}

	if opts.Folder == "" {
		return l, nil
	}

	if err := os.MkdirAll(opts.Folder, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log folder %s: %w", opts.Folder, err)
	}

	suffix := opts.Suffix
	if suffix == "" {
		suffix = defaultSuffix
	}
	name := opts.Name
	if name == "" {
		name = "qtrs"
	}
	l.path = filepath.Join(opts.Folder, name+"_"+now().Format(FileTimestamp)+"."+suffix)

	l.f, err = os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", l.path, err)
	}

	l.file = log.NewWithOptions(l.f, log.Options{
		Level:           fileLevel,
		ReportTimestamp: true,
		ReportCaller:    true,
		CallerOffset:    2,
		Formatter:       log.LogfmtFormatter,
	})

	return l, nil
}

// Discard returns a Logger that writes nowhere. Useful in tests.
func Discard() *Logger {
	l, _ := New(Options{Console: io.Discard})
	return l
}

func parseLevel(s string, def log.Level) (log.Level, error) {
	if s == "" {
		return def, nil
	}
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return def, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

// SetConsoleLevel changes the console level, e.g. when --debug is passed.
func (l *Logger) SetConsoleLevel(lvl log.Level) { l.console.SetLevel(lvl) }

// Path returns the log file path, or "" when file logging is disabled.
func (l *Logger) Path() string { return l.path }

func (l *Logger) Debug(msg interface{}, keyvals ...interface{}) {
	l.log(log.DebugLevel, msg, keyvals...)
}

func (l *Logger) Info(msg interface{}, keyvals ...interface{}) {
	l.log(log.InfoLevel, msg, keyvals...)
}

func (l *Logger) Warn(msg interface{}, keyvals ...interface{}) {
	l.log(log.WarnLevel, msg, keyvals...)
}

func (l *Logger) Error(msg interface{}, keyvals ...interface{}) {
	l.log(log.ErrorLevel, msg, keyvals...)
}

func (l *Logger) log(lvl log.Level, msg interface{}, keyvals ...interface{}) {
	l.console.Log(lvl, msg, keyvals...)
	if l.file != nil {
		l.file.Log(lvl, msg, keyvals...)
	}
	if lvl >= l.fileLevel {
		l.mu.Lock()
		l.saved = append(l.saved, fmt.Sprint(msg))
		l.mu.Unlock()
	}
}

// Show prints msg to w and logs it at info level.
func (l *Logger) Show(w io.Writer, msg string) {
	fmt.Fprintln(w, msg)
	l.Info(msg)
}

// Saved returns a copy of the messages logged at or above the file level.
func (l *Logger) Saved() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.saved))
	copy(out, l.saved)
	return out
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	l.file = nil
	return err
}
