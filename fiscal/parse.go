package fiscal

import (
	"iter"
	"strconv"
	"time"
)

// Year is a year that passed ParseYear validation.
type Year struct{ y int }

// Int returns the year as a plain integer.
func (y Year) Int() int { return y.y }

func (y Year) String() string { return strconv.Itoa(y.y) }

// Quarter selects one quarter (1..4) of a fiscal year, or all of them (0).
type Quarter struct{ q int }

// AllQuarters is the quarter value meaning "every quarter of the year".
const AllQuarters = 0

// Int returns the quarter as a plain integer.
func (q Quarter) Int() int { return q.q }

// All reports whether q selects the whole year.
func (q Quarter) All() bool { return q.q == AllQuarters }

func (q Quarter) String() string {
	if q.All() {
		return "all"
	}
	return "Q" + strconv.Itoa(q.q)
}

// ParseYear validates text as a 4-digit year between baseYear and the current
// year, both inclusive.
func ParseYear(text string, baseYear int) (Year, error) {
	return ParseYearAt(text, baseYear, time.Now())
}

// ParseYearAt is ParseYear with the year of now as the latest valid year.
func ParseYearAt(text string, baseYear int, now time.Time) (Year, error) {
	current := now.Year()
	if len(text) != 4 || !isDigits(text) {
		return Year{}, &InvalidYearError{Input: text, BaseYear: baseYear, MaxYear: current}
	}

	y, err := strconv.Atoi(text)
	if err != nil || y < baseYear || y > current {
		return Year{}, &InvalidYearError{Input: text, BaseYear: baseYear, MaxYear: current}
	}

	return Year{y: y}, nil
}

// ParseQuarter validates text as a single digit between 0 and 4.
func ParseQuarter(text string) (Quarter, error) {
	if len(text) != 1 || !isDigits(text) {
		return Quarter{}, &InvalidQuarterError{Input: text}
	}

	q := int(text[0] - '0')
	if q < AllQuarters || q > YearQuarters {
		return Quarter{}, &InvalidQuarterError{Input: text}
	}

	return Quarter{q: q}, nil
}

// Quarters yields the periods selected by q in the fiscal year y, where the
// fiscal year starts in startMonth of y.
func (y Year) Quarters(q Quarter, startMonth int) iter.Seq[Period] {
	if q.All() {
		return QuarterBoundaries(y.y, startMonth, YearQuarters)
	}

	sy, sm := y.y, startMonth
	for range q.q - 1 {
		sy, sm = NextQuarterStart(sy, sm)
	}
	return QuarterBoundaries(sy, sm, 1)
}

// isDigits reports whether s is non-empty and made only of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
