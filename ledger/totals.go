package ledger

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/Rshep3087/qtrs/fiscal"
	"github.com/Rshep3087/qtrs/logging"
	"github.com/shopspring/decimal"
)

// Totals holds the sums of one period. Credits are negative amounts.
type Totals struct {
	Period  fiscal.Period   `json:"period"`
	Debits  decimal.Decimal `json:"debits"`
	Credits decimal.Decimal `json:"credits"`
	Total   decimal.Decimal `json:"total"`
	Splits  int             `json:"splits"`
}

// Aggregate buckets every split of account (and its sub-accounts) into the
// period containing its date. Splits outside all periods are skipped.
func Aggregate(periods []fiscal.Period, splits []Split, account string, log logging.Sink) []Totals {
	totals := make([]Totals, len(periods))
	for i, p := range periods {
		totals[i] = Totals{Period: p}
	}

	starts := fiscal.Starts(periods)
	skipped := 0
	for _, s := range splits {
		if !s.InAccount(account) {
			continue
		}

		i, ok := fiscal.Locate(starts, periods, s.Date)
		if !ok {
			skipped++
			continue
		}

		t := &totals[i]
		if s.Amount.IsNegative() {
			t.Credits = t.Credits.Add(s.Amount)
		} else {
			t.Debits = t.Debits.Add(s.Amount)
		}
		t.Total = t.Total.Add(s.Amount)
		t.Splits++
	}

	if log != nil {
		log.Debug("aggregated splits", "account", account, "periods", len(periods), "splits", len(splits), "skipped", skipped)
	}

	return totals
}

// Money converts an amount to go-money for display in the given currency.
func Money(amount decimal.Decimal, currency string) *money.Money {
	code := strings.ToUpper(currency)
	fraction := 2
	if c := money.GetCurrency(code); c != nil {
		fraction = c.Fraction
	}
	minor := amount.Shift(int32(fraction)).Round(0).IntPart()
	return money.New(minor, code)
}

// WriteCSV writes totals as CSV with a header row.
func WriteCSV(w io.Writer, totals []Totals) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"period start", "period end", "debits", "credits", "TOTAL"}); err != nil {
		return err
	}
	for _, t := range totals {
		rec := []string{
			t.Period.StartDate(),
			t.Period.EndDate(),
			t.Debits.String(),
			t.Credits.String(),
			t.Total.String(),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
