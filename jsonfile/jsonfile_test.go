package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/carlmjohnson/be"
)

func fixedNow() time.Time { return time.Date(2021, 8, 26, 9, 30, 0, 0, time.UTC) }

func TestSave(t *testing.T) {
	dir := t.TempDir()

	path, err := Save("quarters", map[string]int{"q": 1}, SaveOptions{Folder: dir, Now: fixedNow, Indent: 2})
	be.NilErr(t, err)
	be.Equal(t, filepath.Join(dir, "quarters_D2021-08-26T09-30-00.json"), path)

	data, err := os.ReadFile(path)
	be.NilErr(t, err)
	be.Equal(t, "{\n  \"q\": 1\n}\n", string(data))
}

func TestSaveMissingFolderFallsBack(t *testing.T) {
	t.Chdir(t.TempDir())

	path, err := Save("out", []int{1}, SaveOptions{Folder: "does-not-exist", Now: fixedNow})
	be.NilErr(t, err)
	be.Equal(t, "out_D2021-08-26T09-30-00.json", path)

	_, err = os.Stat(path)
	be.NilErr(t, err)
}

func TestFormat(t *testing.T) {
	out, err := Format([]byte(`{"a":1,"b":[1,2]}`), 2)
	be.NilErr(t, err)
	be.In(t, "\n  \"a\": 1", string(out))
	be.True(t, json.Valid(out))

	_, err = Format([]byte(`{"a":`), 2)
	be.Nonzero(t, err)
}

func TestParseIndent(t *testing.T) {
	n, ok := ParseIndent("2")
	be.True(t, ok)
	be.Equal(t, 2, n)

	for _, s := range []string{"", "x", "-3", "0"} {
		n, ok := ParseIndent(s)
		be.False(t, ok)
		be.Equal(t, DefaultIndent, n)
	}
}

func TestFromCSV(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "in.csv")
	jsonPath := filepath.Join(dir, "out.json")
	be.NilErr(t, os.WriteFile(csvPath, []byte("name,qtr\nrent,1\nfood,2\n"), 0o600))

	be.NilErr(t, FromCSV(csvPath, jsonPath, 2))

	data, err := os.ReadFile(jsonPath)
	be.NilErr(t, err)

	var rows []map[string]string
	be.NilErr(t, json.Unmarshal(data, &rows))
	be.Equal(t, 2, len(rows))
	be.Equal(t, "rent", rows[0]["name"])
	be.Equal(t, "2", rows[1]["qtr"])

	// existing output is never overwritten
	be.Nonzero(t, FromCSV(csvPath, jsonPath, 2))

	be.Nonzero(t, FromCSV(filepath.Join(dir, "missing.csv"), filepath.Join(dir, "x.json"), 2))
}
