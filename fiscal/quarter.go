// Package fiscal implements quarter arithmetic for laying out financial data
// by fiscal period.
//
// Quarters are three calendar months long and start at a configurable month,
// so a fiscal year starting in April has Q1 = April..June.
package fiscal

import (
	"iter"
	"time"
)

const (
	// QuarterMonths is the number of calendar months in a quarter.
	QuarterMonths = 3
	// YearMonths is the number of calendar months in a year.
	YearMonths = 12
	// YearQuarters is the number of quarters in a fiscal year.
	YearQuarters = 4
)

// NextQuarterStart returns the year and month that start the quarter following
// the one starting at startYear/startMonth. Any integer month is accepted;
// months outside 1..12 roll into neighbouring years.
func NextQuarterStart(startYear, startMonth int) (year, month int) {
	next := startMonth + QuarterMonths
	// floor division so that months <= 0 roll back a year instead of toward zero
	year = startYear + floorDiv(next-1, YearMonths)
	month = floorMod(next-1, YearMonths) + 1
	return year, month
}

// CurrentQuarterEnd returns the last day of the quarter starting at
// startYear/startMonth: one calendar day before the next quarter starts.
func CurrentQuarterEnd(startYear, startMonth int) time.Time {
	y, m := NextQuarterStart(startYear, startMonth)
	return firstOfMonth(y, m).AddDate(0, 0, -1)
}

// QuarterBoundaries yields num consecutive quarters, the first one starting on
// day 1 of startYear/startMonth. A non-positive num yields nothing.
func QuarterBoundaries(startYear, startMonth, num int) iter.Seq[Period] {
	return func(yield func(Period) bool) {
		y, m := startYear, startMonth
		for range max(num, 0) {
			p := Period{Start: firstOfMonth(y, m), End: CurrentQuarterEnd(y, m)}
			if !yield(p) {
				return
			}
			y, m = NextQuarterStart(y, m)
		}
	}
}

// firstOfMonth normalises out-of-range months the same way NextQuarterStart does.
func firstOfMonth(year, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
