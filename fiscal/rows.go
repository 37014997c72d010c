package fiscal

// YearSpan returns the row offset of targetYear in a table that starts at
// baseYear, allots yrSpan rows per year and inserts one header row every
// hdrSpan years. A non-positive hdrSpan means there are no header rows.
// Years before baseYear give negative offsets.
func YearSpan(targetYear, baseYear, yrSpan, hdrSpan int) int {
	diff := targetYear - baseYear
	hdr := 0
	if hdrSpan > 0 {
		hdr = floorDiv(diff, hdrSpan)
	}
	return diff*yrSpan + hdr
}

// Layout describes how years are laid out down a spreadsheet.
type Layout struct {
	// BaseYear is the first year in the table.
	BaseYear int `json:"base_year"`
	// YearSpan is the number of rows per year, excluding header rows.
	YearSpan int `json:"year_span"`
	// HeaderSpan is the number of years between header rows.
	HeaderSpan int `json:"header_span"`
}

// Row returns the row offset of y within the layout.
func (l Layout) Row(y Year) int {
	return YearSpan(y.Int(), l.BaseYear, l.YearSpan, l.HeaderSpan)
}
