package retrofit

import (
	"slices"
	"strconv"
)

// OpexCategory compares one operating expense before and after retrofit.
type OpexCategory struct {
	Category string `json:"category"`
	Before   Money  `json:"before"`
	After    Money  `json:"after"`
}

// Savings returns Before - After.
func (c OpexCategory) Savings() Money { return c.Before.Sub(c.After) }

// SavingsPct returns the savings as a ratio of Before, 0 when Before is zero.
func (c OpexCategory) SavingsPct() Ratio {
	r, _ := c.Savings().Ratio(c.Before)
	return r
}

// OpexComparison totals an operating expense comparison.
type OpexComparison struct {
	Categories  []OpexCategory `json:"categories"` // in the order supplied
	TotalBefore Money          `json:"totalBefore"`
	TotalAfter  Money          `json:"totalAfter"`
	SavingsPct  Ratio          `json:"savingsPct"`      // (TotalBefore - TotalAfter) / TotalBefore
	Empty       bool           `json:"empty,omitempty"` // TotalBefore was zero, SavingsPct is 0
}

// TotalSavings returns TotalBefore - TotalAfter.
func (c OpexComparison) TotalSavings() Money { return c.TotalBefore.Sub(c.TotalAfter) }

// BuildOpexComparison sums before and after amounts over all categories.
func BuildOpexComparison(categories []OpexCategory) (OpexComparison, error) {
	cmp := OpexComparison{Categories: slices.Clone(categories)}
	if cmp.Categories == nil {
		cmp.Categories = []OpexCategory{}
	}
	for _, c := range categories {
		if c.Before.IsNegative() || c.After.IsNegative() {
			return OpexComparison{}, invalid("opex category "+strconv.Quote(c.Category), "negative amount")
		}
		cmp.TotalBefore = cmp.TotalBefore.Add(c.Before)
		cmp.TotalAfter = cmp.TotalAfter.Add(c.After)
	}
	pct, ok := cmp.TotalSavings().Ratio(cmp.TotalBefore)
	cmp.SavingsPct = pct
	cmp.Empty = !ok
	return cmp, nil
}
