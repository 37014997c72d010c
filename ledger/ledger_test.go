package ledger

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/Rshep3087/qtrs/fiscal"
	"github.com/Rshep3087/qtrs/logging"
	"github.com/carlmjohnson/be"
	"github.com/shopspring/decimal"
)

const splitsCSV = `date,account,amount,description
2022-01-15,Expenses:Auto:Gas,45.10,fill up
2022-03-31,Expenses:Auto,-10.00,refund
2022-04-01,Expenses:Auto:Repair,300,brakes
2022-08-20,Expenses:Food,12.50,lunch
2021-12-31,Expenses:Auto:Gas,99,too early
2023-01-01,Expenses:Auto:Gas,99,too late
`

func TestReadSplits(t *testing.T) {
	splits, err := ReadSplits(strings.NewReader(splitsCSV))
	be.NilErr(t, err)
	be.Equal(t, 6, len(splits))

	first := splits[0]
	be.Equal(t, time.Date(2022, 1, 15, 0, 0, 0, 0, time.UTC), first.Date)
	be.Equal(t, "Expenses:Auto:Gas", first.Account)
	be.Equal(t, "45.1", first.Amount.String())
	be.Equal(t, "fill up", first.Description)
}

func TestReadSplitsColumnOrder(t *testing.T) {
	in := "Amount, Account, Date\n-5,Income:Salary,2020-02-02\n"
	splits, err := ReadSplits(strings.NewReader(in))
	be.NilErr(t, err)
	be.Equal(t, 1, len(splits))
	be.Equal(t, "Income:Salary", splits[0].Account)
	be.Equal(t, "-5", splits[0].Amount.String())
	be.Equal(t, "", splits[0].Description)
}

func TestReadSplitsErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: "empty splits file"},
		{name: "missing column", in: "date,amount\n2020-01-01,5\n", want: `missing required column "account"`},
		{name: "bad date", in: "date,account,amount\n01/02/2020,A,5\n", want: "line 2: invalid date"},
		{name: "bad amount", in: "date,account,amount\n2020-01-02,A,five\n", want: "line 2: invalid amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadSplits(strings.NewReader(tt.in))
			be.Nonzero(t, err)
			be.In(t, tt.want, err.Error())
		})
	}
}

func TestInAccount(t *testing.T) {
	s := Split{Account: "Expenses:Auto:Gas"}
	be.True(t, s.InAccount(""))
	be.True(t, s.InAccount("Expenses"))
	be.True(t, s.InAccount("Expenses:Auto"))
	be.True(t, s.InAccount("Expenses:Auto:Gas"))
	be.False(t, s.InAccount("Expenses:Au"))
	be.False(t, s.InAccount("Income"))
}

func TestAggregate(t *testing.T) {
	splits, err := ReadSplits(strings.NewReader(splitsCSV))
	be.NilErr(t, err)

	periods := slices.Collect(fiscal.QuarterBoundaries(2022, 1, 4))
	totals := Aggregate(periods, splits, "Expenses:Auto", logging.Discard())
	be.Equal(t, 4, len(totals))

	be.Equal(t, "45.1", totals[0].Debits.String())
	be.Equal(t, "-10", totals[0].Credits.String())
	be.Equal(t, "35.1", totals[0].Total.String())
	be.Equal(t, 2, totals[0].Splits)

	be.Equal(t, "300", totals[1].Total.String())
	be.Equal(t, 1, totals[1].Splits)

	be.True(t, totals[2].Total.IsZero())
	be.True(t, totals[3].Total.IsZero())
}

func TestAggregateAllAccounts(t *testing.T) {
	splits, err := ReadSplits(strings.NewReader(splitsCSV))
	be.NilErr(t, err)

	periods := slices.Collect(fiscal.QuarterBoundaries(2022, 1, 4))
	totals := Aggregate(periods, splits, "", nil)

	sum := decimal.Zero
	for _, tt := range totals {
		sum = sum.Add(tt.Total)
	}
	be.Equal(t, "347.6", sum.String())
}

func TestMoney(t *testing.T) {
	be.Equal(t, "$35.10", Money(decimal.RequireFromString("35.1"), "usd").Display())
	be.Equal(t, "-$40.25", Money(decimal.RequireFromString("-40.25"), "USD").Display())
}

func TestWriteCSV(t *testing.T) {
	p := fiscal.Period{
		Start: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2022, 3, 31, 0, 0, 0, 0, time.UTC),
	}
	totals := []Totals{{
		Period:  p,
		Debits:  decimal.RequireFromString("45.1"),
		Credits: decimal.RequireFromString("-10"),
		Total:   decimal.RequireFromString("35.1"),
	}}

	var buf bytes.Buffer
	be.NilErr(t, WriteCSV(&buf, totals))
	be.Equal(t, "period start,period end,debits,credits,TOTAL\n2022-01-01,2022-03-31,45.1,-10,35.1\n", buf.String())
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	be.NilErr(t, os.WriteFile(a, []byte("date,account,amount\n2022-01-01,A,1\n"), 0o600))
	be.NilErr(t, os.WriteFile(b, []byte("date,account,amount\n2022-02-01,B,2\n2022-03-01,B,3\n"), 0o600))

	splits, err := LoadFiles(context.Background(), a, b)
	be.NilErr(t, err)
	be.Equal(t, 3, len(splits))
	be.Equal(t, "A", splits[0].Account)
	be.Equal(t, "B", splits[2].Account)

	_, err = LoadFiles(context.Background(), a, filepath.Join(dir, "missing.csv"))
	be.Nonzero(t, err)
}
