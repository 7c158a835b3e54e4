package results

import "github.com/shopspring/decimal"

// ColumnSummary holds exact statistics over the numeric cells of one column.
// Cells that do not parse as numbers are skipped and counted separately, so
// a mixed column still yields a summary of its numeric part.
type ColumnSummary struct {
	Column     string
	Count      int
	NonNumeric int
	Min        decimal.Decimal
	Max        decimal.Decimal
	Mean       decimal.Decimal
}

// Summarize computes min/max/mean over the numeric cells of the named
// column using decimal arithmetic, avoiding float drift on long result
// files. It returns false when the column does not exist or contains no
// numeric cells.
func (t *Table) Summarize(column string) (*ColumnSummary, bool) {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return nil, false
	}

	summary := &ColumnSummary{Column: column}
	sum := decimal.Zero

	for _, row := range t.Rows {
		value, err := decimal.NewFromString(row[idx])
		if err != nil {
			summary.NonNumeric++
			continue
		}
		if summary.Count == 0 {
			summary.Min = value
			summary.Max = value
		} else {
			if value.LessThan(summary.Min) {
				summary.Min = value
			}
			if value.GreaterThan(summary.Max) {
				summary.Max = value
			}
		}
		sum = sum.Add(value)
		summary.Count++
	}

	if summary.Count == 0 {
		return nil, false
	}

	summary.Mean = sum.DivRound(decimal.NewFromInt(int64(summary.Count)), 6)
	return summary, true
}
