package fiscal

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestYearSpan(t *testing.T) {
	tests := []struct {
		name    string
		target  int
		base    int
		yrSpan  int
		hdrSpan int
		want    int
	}{
		{name: "with header rows", target: 2015, base: 2010, yrSpan: 3, hdrSpan: 4, want: 16},
		{name: "no header rows", target: 2015, base: 2010, yrSpan: 3, hdrSpan: 0, want: 15},
		{name: "negative header span", target: 2015, base: 2010, yrSpan: 3, hdrSpan: -2, want: 15},
		{name: "same year", target: 2012, base: 2012, yrSpan: 7, hdrSpan: 3, want: 0},
		{name: "exact header multiple", target: 2018, base: 2010, yrSpan: 2, hdrSpan: 4, want: 18},
		{name: "target before base", target: 2008, base: 2010, yrSpan: 3, hdrSpan: 4, want: -7},
		{name: "zero span", target: 2020, base: 2010, yrSpan: 0, hdrSpan: 5, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.want, YearSpan(tt.target, tt.base, tt.yrSpan, tt.hdrSpan))
		})
	}
}

func TestYearSpanSameYearIsZero(t *testing.T) {
	for target := 1990; target < 2030; target += 7 {
		for span := 0; span < 5; span++ {
			for hdr := -1; hdr < 6; hdr++ {
				be.Equal(t, 0, YearSpan(target, target, span, hdr))
			}
		}
	}
}

func TestYearSpanMonotonic(t *testing.T) {
	for _, hdr := range []int{0, 1, 3, 4} {
		prev := YearSpan(2010, 2010, 2, hdr)
		for target := 2011; target < 2040; target++ {
			cur := YearSpan(target, 2010, 2, hdr)
			be.True(t, cur >= prev)
			prev = cur
		}
	}
}

func TestLayoutRow(t *testing.T) {
	t.Parallel()

	y, err := ParseYearAt("2015", 2010, mid2024)
	be.NilErr(t, err)

	l := Layout{BaseYear: 2010, YearSpan: 3, HeaderSpan: 4}
	be.Equal(t, 16, l.Row(y))
}
