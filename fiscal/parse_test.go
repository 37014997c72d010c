package fiscal

import (
	"errors"
	"slices"
	"strconv"
	"testing"
	"time"

	"github.com/carlmjohnson/be"
)

var mid2024 = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestParseYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		base    int
		want    int
		wantErr bool
	}{
		{name: "valid", text: "2013", base: 2010, want: 2013},
		{name: "base year inclusive", text: "2010", base: 2010, want: 2010},
		{name: "current year inclusive", text: "2024", base: 2010, want: 2024},
		{name: "two digits", text: "13", base: 2010, wantErr: true},
		{name: "before base", text: "1999", base: 2010, wantErr: true},
		{name: "next year", text: "2025", base: 2010, wantErr: true},
		{name: "not numeric", text: "20a3", base: 2010, wantErr: true},
		{name: "five digits", text: "20130", base: 2010, wantErr: true},
		{name: "signed", text: "+201", base: 2010, wantErr: true},
		{name: "empty", text: "", base: 2010, wantErr: true},
		{name: "whitespace", text: " 2013", base: 2010, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			y, err := ParseYearAt(tt.text, tt.base, mid2024)
			if tt.wantErr {
				be.True(t, errors.Is(err, ErrInvalidYear))
				be.False(t, errors.Is(err, ErrInvalidQuarter))

				var yearErr *InvalidYearError
				be.True(t, errors.As(err, &yearErr))
				be.Equal(t, tt.text, yearErr.Input)
				be.Equal(t, 2024, yearErr.MaxYear)
				return
			}
			be.NilErr(t, err)
			be.Equal(t, tt.want, y.Int())
		})
	}
}

func TestParseYearUsesCurrentYear(t *testing.T) {
	t.Parallel()
	current := time.Now().Year()

	_, err := ParseYear(strconv.Itoa(current+1), 2010)
	be.True(t, errors.Is(err, ErrInvalidYear))

	y, err := ParseYear(strconv.Itoa(current), 2010)
	be.NilErr(t, err)
	be.Equal(t, current, y.Int())
}

func TestParseYearAtYearEnd(t *testing.T) {
	t.Parallel()

	newYearsEve := time.Date(2019, 12, 31, 23, 59, 0, 0, time.UTC)
	_, err := ParseYearAt("2020", 2010, newYearsEve)
	be.True(t, errors.Is(err, ErrInvalidYear))

	y, err := ParseYearAt("2020", 2010, newYearsEve.Add(time.Minute))
	be.NilErr(t, err)
	be.Equal(t, 2020, y.Int())
}

func TestParseQuarter(t *testing.T) {
	for want := 0; want <= 4; want++ {
		q, err := ParseQuarter(strconv.Itoa(want))
		be.NilErr(t, err)
		be.Equal(t, want, q.Int())
	}

	for _, text := range []string{"5", "12", "", "a", "-1", "1.0", " 1"} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseQuarter(text)
			be.True(t, errors.Is(err, ErrInvalidQuarter))

			var qErr *InvalidQuarterError
			be.True(t, errors.As(err, &qErr))
			be.Equal(t, text, qErr.Input)
		})
	}
}

func TestQuarterString(t *testing.T) {
	all, err := ParseQuarter("0")
	be.NilErr(t, err)
	be.True(t, all.All())
	be.Equal(t, "all", all.String())

	q3, err := ParseQuarter("3")
	be.NilErr(t, err)
	be.False(t, q3.All())
	be.Equal(t, "Q3", q3.String())
}

func TestYearQuarters(t *testing.T) {
	t.Parallel()

	y, err := ParseYearAt("2021", 2010, mid2024)
	be.NilErr(t, err)

	all, _ := ParseQuarter("0")
	be.Equal(t, 4, len(slices.Collect(y.Quarters(all, 1))))

	q3, _ := ParseQuarter("3")
	got := slices.Collect(y.Quarters(q3, 1))
	be.AllEqual(t, []Period{{Start: date(2021, 7, 1), End: date(2021, 9, 30)}}, got)

	// fiscal year starting in April puts Q4 in the next calendar year
	q4, _ := ParseQuarter("4")
	got = slices.Collect(y.Quarters(q4, 4))
	be.AllEqual(t, []Period{{Start: date(2022, 1, 1), End: date(2022, 3, 31)}}, got)
}
