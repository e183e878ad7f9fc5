package retrofit

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// Percent is a share expressed on a 0–100 scale, as EPC band shares are.
type Percent float64

// Equal compares with some precision.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	return scalar.EqualWithinAbs(float64(p), float64(q), precision)
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// Ratio converts the percentage to a 0–1 fraction.
func (p Percent) Ratio() Ratio { return Ratio(p / 100) }

// Ratio is a 0–1 fraction, the input of FormatPercentage.
type Ratio float64

// Equal compares with some precision.
func (r Ratio) Equal(s Ratio) bool {
	const precision = 0.000001
	return scalar.EqualWithinAbs(float64(r), float64(s), precision)
}

// String renders the ratio as a whole percentage, e.g. "43%".
func (r Ratio) String() string { return FormatPercentage(float64(r), 0) }

// Percent converts the fraction to a 0–100 share.
func (r Ratio) Percent() Percent { return Percent(r * 100) }
