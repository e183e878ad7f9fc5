package retrofit

import (
	"fmt"
	"strconv"
)

// Portfolio is the raw input of a dashboard.
type Portfolio struct {
	Currency   string                 `json:"currency,omitempty"`
	EPC        []EPCBand              `json:"epc"`
	Rules      []ComplianceTierRule   `json:"rules"`
	Confidence ConfidenceDistribution `json:"confidence"`
	Cashflow   []CashflowRecord       `json:"cashflow"`
	Opex       []OpexCategory         `json:"opex"`
}

// Dashboard holds every derived metric of a portfolio.
type Dashboard struct {
	Currency         string
	EPC              EPCAggregate
	Compliance       []ComplianceTier
	ConfidenceCounts ConfidenceDistribution
	Confidence       ConfidenceShares
	Cashflow         []CashflowRecord
	Opex             OpexComparison
	Warnings         []DegenerateInputWarning
}

// NewDashboard aggregates a portfolio. Validation errors of any dataset
// abort the computation; degenerate datasets are reported as warnings.
func NewDashboard(p Portfolio) (*Dashboard, error) {
	d := &Dashboard{Currency: p.Currency, ConfidenceCounts: p.Confidence}
	if d.Currency == "" {
		d.Currency = DefaultCurrency
	}

	var err error
	if d.EPC, err = AggregateEPC(p.EPC); err != nil {
		return nil, fmt.Errorf("aggregating epc bands: %w", err)
	}
	if d.EPC.Empty {
		d.warn("epc", "no units in portfolio")
	}

	if d.Compliance, err = BucketCompliance(d.EPC.Bands, p.Rules); err != nil {
		return nil, fmt.Errorf("bucketing compliance tiers: %w", err)
	}

	if d.Confidence, err = AggregateConfidence(p.Confidence); err != nil {
		return nil, fmt.Errorf("aggregating confidence: %w", err)
	}
	if d.Confidence.Empty {
		d.warn("confidence", "total is zero")
	}

	if d.Cashflow, err = BuildCashflowSeries(p.Cashflow); err != nil {
		return nil, fmt.Errorf("building cashflow series: %w", err)
	}
	if len(d.Cashflow) == 0 {
		d.warn("cashflow", "no records")
	}

	if d.Opex, err = BuildOpexComparison(p.Opex); err != nil {
		return nil, fmt.Errorf("building opex comparison: %w", err)
	}
	if d.Opex.Empty {
		d.warn("opex", "total before retrofit is zero")
	}
	return d, nil
}

func (d *Dashboard) warn(subject, reason string) {
	d.Warnings = append(d.Warnings, DegenerateInputWarning{Subject: subject, Reason: reason})
}

// Money formats an amount in the dashboard currency.
func (d *Dashboard) Money(m Money) string { return m.Format(d.Currency) }

// Card is one KPI card of the dashboard header.
type Card struct {
	Title    string   `json:"title"`
	Value    string   `json:"value"`
	Detail   string   `json:"detail"`
	Severity Severity `json:"severity,omitempty"`
}

// Cards returns the KPI cards in display order.
func (d *Dashboard) Cards() []Card {
	cards := make([]Card, 0, 6)

	cards = append(cards, Card{
		Title:  "Units",
		Value:  strconv.Itoa(d.EPC.TotalUnits),
		Detail: fmt.Sprintf("%d EPC bands", len(d.EPC.Bands)),
	})

	var compliant Percent
	var compliantUnits int
	worst := Severity("")
	for _, t := range d.Compliance {
		if t.Severity == SeverityOK {
			compliant += t.Share
			compliantUnits += t.Units
		}
		if t.Units > 0 || t.Share > 0 {
			worst = worse(worst, t.Severity)
		}
	}
	compliance := Card{
		Title:    "Compliant",
		Value:    compliant.Ratio().String(),
		Detail:   fmt.Sprintf("%d of %d units", compliantUnits, d.EPC.TotalUnits),
		Severity: worst,
	}
	if d.EPC.Empty {
		compliance.Detail = "no units"
	}
	cards = append(cards, compliance)

	capex, savings := CashflowTotals(d.Cashflow)
	cards = append(cards, Card{
		Title:  "Net capex",
		Value:  d.Money(capex),
		Detail: fmt.Sprintf("%s savings over %d years", d.Money(savings), len(d.Cashflow)),
	})

	payback := Card{Title: "Payback", Value: Unavailable, Detail: "not within projection", Severity: SeverityWarning}
	if year, ok := PaybackYear(d.Cashflow); ok {
		payback.Value = strconv.Itoa(year)
		payback.Severity = SeverityOK
	}
	if n := len(d.Cashflow); n > 0 {
		last := d.Cashflow[n-1]
		payback.Detail = fmt.Sprintf("%s cumulative by %d", d.Money(last.CumulativeOrZero()), last.Year)
	}
	cards = append(cards, payback)

	opex := Card{Title: "Opex savings", Value: Unavailable, Detail: "no baseline"}
	if !d.Opex.Empty {
		opex.Value = d.Opex.SavingsPct.String()
		opex.Detail = fmt.Sprintf("%s → %s per year", d.Money(d.Opex.TotalBefore), d.Money(d.Opex.TotalAfter))
	}
	cards = append(cards, opex)

	confidence := Card{Title: "Data confidence", Value: Unavailable, Detail: "no data points"}
	if !d.Confidence.Empty {
		confidence.Value = d.Confidence.High.String()
		confidence.Detail = fmt.Sprintf("high confidence, %d data points", d.ConfidenceCounts.Total)
	}
	cards = append(cards, confidence)

	return cards
}

func worse(a, b Severity) Severity {
	rank := map[Severity]int{"": 0, SeverityOK: 1, SeverityWarning: 2, SeverityCritical: 3}
	if rank[b] > rank[a] {
		return b
	}
	return a
}
