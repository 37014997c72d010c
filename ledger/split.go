// Package ledger groups account splits exported from a bookkeeping program
// into per-quarter debit and credit totals.
package ledger

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DateFormat is the layout of the date column.
const DateFormat = "2006-01-02"

// AccountSeparator separates the levels of an account path, e.g. "Expenses:Auto:Gas".
const AccountSeparator = ":"

// Split is one posting of a transaction to an account.
type Split struct {
	Date        time.Time       `json:"date"`
	Account     string          `json:"account"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

var requiredColumns = []string{"date", "account", "amount"}

// ReadSplits reads splits from CSV with a header row. The date, account and
// amount columns are required, description is optional; column order is free.
func ReadSplits(r io.Reader) ([]Split, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty splits file")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("missing required column %q", c)
		}
	}
	descCol, hasDesc := cols["description"]

	var splits []Split
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read splits: %w", err)
		}
		line, _ := cr.FieldPos(0)

		d, err := time.Parse(DateFormat, strings.TrimSpace(rec[cols["date"]]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid date %q (expected YYYY-MM-DD)", line, rec[cols["date"]])
		}

		amt, err := decimal.NewFromString(strings.TrimSpace(rec[cols["amount"]]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid amount %q: %w", line, rec[cols["amount"]], err)
		}

		s := Split{
			Date:    d,
			Account: strings.TrimSpace(rec[cols["account"]]),
			Amount:  amt,
		}
		if hasDesc {
			s.Description = rec[descCol]
		}
		splits = append(splits, s)
	}

	return splits, nil
}

// LoadFiles reads every file concurrently and returns their splits in the
// order the paths were given.
func LoadFiles(ctx context.Context, paths ...string) ([]Split, error) {
	results := make([][]Split, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := os.Open(p)
			if err != nil {
				return fmt.Errorf("failed to open splits file: %w", err)
			}
			defer f.Close()

			splits, err := ReadSplits(f)
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
			results[i] = splits
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Split
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}

// InAccount reports whether the split belongs to account or one of its
// descendants. An empty account matches everything.
func (s Split) InAccount(account string) bool {
	if account == "" {
		return true
	}
	return s.Account == account || strings.HasPrefix(s.Account, account+AccountSeparator)
}
