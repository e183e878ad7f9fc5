package retrofit

import (
	"cmp"
	"fmt"
	"slices"
)

// CashflowRecord is one year of the retrofit cashflow projection. Amounts
// are in thousands.
type CashflowRecord struct {
	Year       int    `json:"year"`
	Capex      Money  `json:"capexDelta"`   // signed, usually negative
	Savings    Money  `json:"savingsDelta"` // never negative
	Cumulative *Money `json:"cumulative,omitempty"`
}

// Net returns the year's net cash movement.
func (r CashflowRecord) Net() Money { return r.Capex.Add(r.Savings) }

// CumulativeOrZero returns the cumulative position, zero when omitted.
func (r CashflowRecord) CumulativeOrZero() Money {
	if r.Cumulative == nil {
		return Money{}
	}
	return *r.Cumulative
}

// BuildCashflowSeries validates a cashflow projection and fills in the
// cumulative position.
//
// Records must be sorted by strictly increasing year; gaps are allowed but
// unsorted input and duplicate years are rejected, see SortCashflow. If any
// record omits its cumulative, every cumulative is recomputed as the running
// sum of capex and savings, starting from the first record's own deltas.
// Otherwise the supplied cumulatives are kept.
func BuildCashflowSeries(records []CashflowRecord) ([]CashflowRecord, error) {
	complete := true
	for i, r := range records {
		subject := fmt.Sprintf("cashflow[%d]", r.Year)
		if r.Savings.IsNegative() {
			return nil, invalid(subject, "negative savings %s", r.Savings)
		}
		if i > 0 {
			prev := records[i-1].Year
			switch {
			case r.Year == prev:
				return nil, invalid(subject, "duplicate year")
			case r.Year < prev:
				return nil, invalid(subject, "year follows %d, records must be sorted by year", prev)
			}
		}
		if r.Cumulative == nil {
			complete = false
		}
	}

	series := make([]CashflowRecord, len(records))
	var running Money
	for i, r := range records {
		var cumulative Money
		if complete {
			cumulative = *r.Cumulative
		} else {
			running = running.Add(r.Net())
			cumulative = running
		}
		series[i] = CashflowRecord{Year: r.Year, Capex: r.Capex, Savings: r.Savings, Cumulative: &cumulative}
	}
	return series, nil
}

// SortCashflow returns a copy of records sorted by year. It reports whether
// the input was out of order. Duplicate years are left for
// BuildCashflowSeries to reject.
func SortCashflow(records []CashflowRecord) (sorted []CashflowRecord, moved bool) {
	byYear := func(a, b CashflowRecord) int { return cmp.Compare(a.Year, b.Year) }
	sorted = slices.Clone(records)
	if slices.IsSortedFunc(sorted, byYear) {
		return sorted, false
	}
	slices.SortStableFunc(sorted, byYear)
	return sorted, true
}

// PaybackYear returns the first year whose cumulative position is back to
// zero or above after having been negative.
func PaybackYear(series []CashflowRecord) (year int, ok bool) {
	underwater := false
	for _, r := range series {
		c := r.CumulativeOrZero()
		if c.IsNegative() {
			underwater = true
			continue
		}
		if underwater {
			return r.Year, true
		}
	}
	return 0, false
}

// CashflowTotals sums capex and savings over a series.
func CashflowTotals(series []CashflowRecord) (capex, savings Money) {
	for _, r := range series {
		capex = capex.Add(r.Capex)
		savings = savings.Add(r.Savings)
	}
	return capex, savings
}
