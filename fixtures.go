package retrofit

// Sample datasets rendered when no portfolio data is supplied. They are
// demo values: production paths must pass real data to NewDashboard and use
// these only through SamplePortfolio.

// SampleEPCBands is a 320 unit portfolio split over four rating bands.
func SampleEPCBands() []EPCBand {
	return []EPCBand{
		{Label: "A-B (2030 ready)", Rating: "A-B", Units: 48, Color: "emerald-500"},
		{Label: "C (2030 ready)", Rating: "C", Units: 96, Color: "lime-500"},
		{Label: "D (2027 ready)", Rating: "D", Units: 120, Color: "amber-500"},
		{Label: "E-G (below 2027)", Rating: "E-G", Units: 56, Color: "red-500"},
	}
}

// SampleComplianceRules groups ratings against the 2027 and 2030 deadlines.
func SampleComplianceRules() []ComplianceTierRule {
	return []ComplianceTierRule{
		{Name: "Compliant 2030", Severity: SeverityOK, Members: []string{"A-B", "C"}},
		{Name: "Compliant 2027", Severity: SeverityWarning, Members: []string{"D"}},
		{Name: "Below 2027", Severity: SeverityCritical, Members: []string{"E-G"}},
	}
}

// SampleConfidence has 12 unclassified data points.
func SampleConfidence() ConfidenceDistribution {
	return ConfidenceDistribution{High: 182, Medium: 96, Low: 30, Total: 320}
}

// SampleCashflow is a ten year projection without precomputed cumulatives.
// It pays back in 2033.
func SampleCashflow() []CashflowRecord {
	return []CashflowRecord{
		{Year: 2025, Capex: K(-2000), Savings: K(100)},
		{Year: 2026, Capex: K(-800), Savings: K(200)},
		{Year: 2027, Capex: K(-300), Savings: K(350)},
		{Year: 2028, Capex: K(0), Savings: K(420)},
		{Year: 2029, Capex: K(0), Savings: K(450)},
		{Year: 2030, Capex: K(-150), Savings: K(480)},
		{Year: 2031, Capex: K(0), Savings: K(500)},
		{Year: 2032, Capex: K(0), Savings: K(520)},
		{Year: 2033, Capex: K(0), Savings: K(540)},
		{Year: 2034, Capex: K(0), Savings: K(560)},
	}
}

// SampleOpex compares annual operating expenses before and after retrofit.
func SampleOpex() []OpexCategory {
	return []OpexCategory{
		{Category: "Energy", Before: K(420), After: K(240)},
		{Category: "Maintenance", Before: K(180), After: K(150)},
		{Category: "Insurance", Before: K(95), After: K(90)},
		{Category: "Management", Before: K(60), After: K(45)},
	}
}

// SamplePortfolio bundles every sample dataset.
func SamplePortfolio() Portfolio {
	return Portfolio{
		Currency:   DefaultCurrency,
		EPC:        SampleEPCBands(),
		Rules:      SampleComplianceRules(),
		Confidence: SampleConfidence(),
		Cashflow:   SampleCashflow(),
		Opex:       SampleOpex(),
	}
}
