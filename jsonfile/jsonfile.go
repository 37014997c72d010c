// Package jsonfile saves, reformats and converts JSON files.
package jsonfile

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Rshep3087/qtrs/logging"
	"github.com/tidwall/pretty"
)

// DefaultIndent is used whenever an indent is missing or invalid.
const DefaultIndent = 4

// SaveOptions controls where and how Save writes.
type SaveOptions struct {
	// Folder is used when it exists, otherwise the current directory.
	Folder string
	// Indent defaults to DefaultIndent.
	Indent int
	// Now stamps the file name and defaults to time.Now.
	Now func() time.Time
}

// Save writes data as indented JSON to <folder>/<name>_<timestamp>.json and
// returns the path written.
func Save(name string, data any, opts SaveOptions) (string, error) {
	dir := "."
	if opts.Folder != "" {
		if fi, err := os.Stat(opts.Folder); err == nil && fi.IsDir() {
			dir = opts.Folder
		}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	indent := opts.Indent
	if indent <= 0 {
		indent = DefaultIndent
	}

	out, err := json.MarshalIndent(data, "", strings.Repeat(" ", indent))
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}

	path := filepath.Join(dir, name+"_"+now().Format(logging.FileTimestamp)+".json")
	if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("failed to write JSON file %s: %w", path, err)
	}
	return path, nil
}

// Format re-indents a JSON document. Invalid JSON is rejected.
func Format(data []byte, indent int) ([]byte, error) {
	if !json.Valid(data) {
		return nil, errors.New("input is not valid JSON")
	}
	if indent <= 0 {
		indent = DefaultIndent
	}
	return pretty.PrettyOptions(data, &pretty.Options{
		Width:  80,
		Indent: strings.Repeat(" ", indent),
	}), nil
}

// ParseIndent converts s to an indent. It reports false and returns
// DefaultIndent when s is not a positive integer.
func ParseIndent(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return DefaultIndent, false
	}
	return n, true
}

// FromCSV converts a CSV file with a header row into a JSON array of objects
// keyed by the header. It refuses to overwrite jsonPath.
func FromCSV(csvPath, jsonPath string, indent int) error {
	in, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer in.Close()

	rows, err := readRows(in)
	if err != nil {
		return fmt.Errorf("%s: %w", csvPath, err)
	}

	if indent <= 0 {
		indent = DefaultIndent
	}
	data, err := json.MarshalIndent(rows, "", strings.Repeat(" ", indent))
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	out, err := os.OpenFile(jsonPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	if _, err := out.Write(append(data, '\n')); err != nil {
		out.Close()
		return fmt.Errorf("failed to write JSON file: %w", err)
	}
	return out.Close()
}

// readRows returns one map per record, keyed by the header row.
func readRows(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	rows := []map[string]string{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, h := range header {
			row[h] = rec[i]
		}
		rows = append(rows, row)
	}
}
