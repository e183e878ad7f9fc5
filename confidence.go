package retrofit

// ConfidenceDistribution classifies the data points behind the dashboard by
// reliability. Total may include unclassified points.
type ConfidenceDistribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
	Total  int `json:"total"`
}

// ConfidenceShares holds each tier's share of the total.
type ConfidenceShares struct {
	High         Ratio `json:"high"`
	Medium       Ratio `json:"medium"`
	Low          Ratio `json:"low"`
	Unclassified Ratio `json:"unclassified"`
	Empty        bool  `json:"empty,omitempty"` // Total was zero, all shares are zero
}

// AggregateConfidence divides each tier count by the total. A zero total
// yields zero shares flagged as Empty so that bars render as zero-width
// segments.
func AggregateConfidence(d ConfidenceDistribution) (ConfidenceShares, error) {
	if d.High < 0 || d.Medium < 0 || d.Low < 0 || d.Total < 0 {
		return ConfidenceShares{}, invalid("confidence distribution", "negative count in %+v", d)
	}
	classified := d.High + d.Medium + d.Low
	if classified > d.Total {
		return ConfidenceShares{}, invalid("confidence distribution", "classified points %d exceed total %d", classified, d.Total)
	}
	if d.Total == 0 {
		return ConfidenceShares{Empty: true}, nil
	}
	total := float64(d.Total)
	return ConfidenceShares{
		High:         Ratio(float64(d.High) / total),
		Medium:       Ratio(float64(d.Medium) / total),
		Low:          Ratio(float64(d.Low) / total),
		Unclassified: Ratio(float64(d.Total-classified) / total),
	}, nil
}
