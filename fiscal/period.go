package fiscal

import (
	"fmt"
	"sort"
	"time"
)

// DateFormat is the layout used to print period boundaries.
const DateFormat = "2006-01-02"

// Period is one quarter, inclusive on both ends. Start and End are midnight UTC.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (p Period) String() string {
	return fmt.Sprintf("%s - %s", p.StartDate(), p.EndDate())
}

// StartDate returns the formatted first day of the period.
func (p Period) StartDate() string {
	return p.Start.Format(DateFormat)
}

// EndDate returns the formatted last day of the period.
func (p Period) EndDate() string {
	return p.End.Format(DateFormat)
}

// Contains reports whether the calendar day of t lies within the period.
func (p Period) Contains(t time.Time) bool {
	d := truncateDay(t)
	return !d.Before(p.Start) && !d.After(p.End)
}

// Starts returns the start date of every period, in order.
func Starts(periods []Period) []time.Time {
	starts := make([]time.Time, len(periods))
	for i, p := range periods {
		starts[i] = p.Start
	}
	return starts
}

// Locate returns the index of the period containing t. starts must be the
// sorted result of Starts(periods). It reports false when t falls before the
// first period or after the end of the last one.
func Locate(starts []time.Time, periods []Period, t time.Time) (int, bool) {
	if len(periods) == 0 || len(starts) != len(periods) {
		return -1, false
	}

	d := truncateDay(t)
	// index of the last start <= d
	i := sort.Search(len(starts), func(i int) bool { return starts[i].After(d) }) - 1
	if i < 0 || !periods[i].Contains(d) {
		return -1, false
	}

	return i, true
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
