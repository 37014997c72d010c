// Package sheets builds spreadsheet value-update batches for quarterly
// reports laid out with one block of rows per year.
package sheets

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/Rshep3087/qtrs/fiscal"
	"github.com/Rshep3087/qtrs/logging"
	"github.com/shopspring/decimal"
)

// UserEntered makes the spreadsheet parse values as if typed by a user.
const UserEntered = "USER_ENTERED"

// Cell is one range update.
type Cell struct {
	Range  string     `json:"range"`
	Values [][]string `json:"values"`
}

// Batch is the body of a batch values update request.
type Batch struct {
	ValueInputOption string `json:"valueInputOption"`
	Data             []Cell `json:"data"`
}

// NewBatch wraps cells in a batch that uses USER_ENTERED input.
func NewBatch(cells []Cell) Batch {
	if cells == nil {
		cells = []Cell{}
	}
	return Batch{ValueInputOption: UserEntered, Data: cells}
}

// FillCell appends the update of sheet!{col}{row} to cells and returns the
// extended slice.
func FillCell(sheet, col string, row int, value any, cells []Cell) []Cell {
	return append(cells, Cell{
		Range:  sheet + "!" + col + strconv.Itoa(row),
		Values: [][]string{{formatValue(value)}},
	})
}

func formatValue(v any) string {
	switch v := v.(type) {
	case decimal.Decimal:
		return v.String()
	case *decimal.Decimal:
		if v == nil {
			return ""
		}
		return v.String()
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Grid locates quarter rows on one sheet.
type Grid struct {
	Sheet   string        `json:"sheet"`
	BaseRow int           `json:"base_row"`
	Layout  fiscal.Layout `json:"layout"`

	log logging.Sink
}

// NewGrid returns a Grid that logs every filled cell to log.
func NewGrid(sheet string, baseRow int, layout fiscal.Layout, log logging.Sink) *Grid {
	return &Grid{Sheet: sheet, BaseRow: baseRow, Layout: layout, log: log}
}

// QuarterRow returns the row of quarter (1..4) of year y.
func (g *Grid) QuarterRow(y fiscal.Year, quarter int) int {
	return g.BaseRow + g.Layout.Row(y) + quarter - 1
}

// Fill adds a cell in col for each quarter selected by q that has an entry in
// values, keyed by quarter number 1..4. Cells come out in quarter order.
func (g *Grid) Fill(col string, y fiscal.Year, q fiscal.Quarter, values map[int]any) []Cell {
	cells := []Cell{}
	for _, n := range slices.Sorted(maps.Keys(values)) {
		if n < 1 || n > fiscal.YearQuarters || (!q.All() && n != q.Int()) {
			continue
		}
		row := g.QuarterRow(y, n)
		cells = FillCell(g.Sheet, col, row, values[n], cells)
		if g.log != nil {
			g.log.Debug("fill cell", "range", cells[len(cells)-1].Range, "value", values[n])
		}
	}
	return cells
}
