package retrofit

import (
	"slices"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// ShareTolerance is how far supplied band shares may sum away from 100.
const ShareTolerance = 0.5

// EPCBand is one energy performance rating band of a portfolio snapshot.
type EPCBand struct {
	Label  string  `json:"label"`  // rating and target year, e.g. "C (2030 ready)"
	Rating string  `json:"rating"` // e.g. "C", "E-G"
	Share  Percent `json:"percentageShare"`
	Units  int     `json:"unitCount"`
	Color  string  `json:"colorToken"`
}

// EPCAggregate is the result of AggregateEPC.
type EPCAggregate struct {
	TotalUnits int       `json:"totalUnits"`
	Bands      []EPCBand `json:"bands"`
	Empty      bool      `json:"empty,omitempty"` // no units at all
}

// AggregateEPC sums the unit counts of bands. Shares are derived from unit
// counts unless at least one band supplies its own share, in which case the
// supplied shares are kept and must sum to 100.
func AggregateEPC(bands []EPCBand) (EPCAggregate, error) {
	total := 0
	supplied := false
	for _, b := range bands {
		if b.Units < 0 {
			return EPCAggregate{}, invalid("epc band "+strconv.Quote(b.Label), "negative unit count %d", b.Units)
		}
		if b.Share < 0 || b.Share > 100 {
			return EPCAggregate{}, invalid("epc band "+strconv.Quote(b.Label), "share %v outside [0,100]", b.Share)
		}
		if b.Share != 0 {
			supplied = true
		}
		total += b.Units
	}

	agg := EPCAggregate{TotalUnits: total, Bands: slices.Clone(bands)}
	if agg.Bands == nil {
		agg.Bands = []EPCBand{}
	}

	agg.Empty = total == 0
	if supplied {
		shares := make([]float64, len(bands))
		for i, b := range bands {
			shares[i] = float64(b.Share)
		}
		if sum := floats.Sum(shares); !scalar.EqualWithinAbs(sum, 100, ShareTolerance) {
			return EPCAggregate{}, invalid("epc bands", "supplied shares sum to %.2f, want 100", sum)
		}
		return agg, nil
	}

	if agg.Empty {
		return agg, nil
	}
	for i := range agg.Bands {
		agg.Bands[i].Share = Percent(100 * float64(agg.Bands[i].Units) / float64(total))
	}
	return agg, nil
}

// Ratio returns the band's share as a 0–1 ratio.
func (b EPCBand) Ratio() Ratio { return b.Share.Ratio() }
