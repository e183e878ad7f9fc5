package retrofit

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Severity tags a compliance tier.
type Severity string

const (
	SeverityOK       Severity = "ok"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// ParseSeverity parses a severity name.
func ParseSeverity(s string) (Severity, error) {
	switch sev := Severity(strings.ToLower(strings.TrimSpace(s))); sev {
	case SeverityOK, SeverityWarning, SeverityCritical:
		return sev, nil
	default:
		return "", fmt.Errorf("unknown severity %q", s)
	}
}

// ComplianceTierRule maps a set of band labels or ratings to one tier.
type ComplianceTierRule struct {
	Name     string   `json:"name"`
	Severity Severity `json:"severity"`
	Members  []string `json:"members"` // band labels or ratings, inclusive
}

func (r ComplianceTierRule) matches(b EPCBand) bool {
	return slices.Contains(r.Members, b.Label) || (b.Rating != "" && slices.Contains(r.Members, b.Rating))
}

// ComplianceTier is the share of a portfolio falling in one regulatory tier.
type ComplianceTier struct {
	Name     string   `json:"name"`
	Severity Severity `json:"severity"`
	Share    Percent  `json:"percentageShare"` // sum of the member bands' shares
	Units    int      `json:"unitCount"`       // sum of the member bands' units
	Bands    []string `json:"bands"`           // labels of the member bands, in band order
}

// BucketCompliance sums the shares of bands per tier. Every band must match
// exactly one rule; a band matching none or several is a configuration error.
// Tiers are returned in rule order, including tiers without any band.
func BucketCompliance(bands []EPCBand, rules []ComplianceTierRule) ([]ComplianceTier, error) {
	if err := validateRules(rules); err != nil {
		return nil, err
	}

	tiers := make([]ComplianceTier, len(rules))
	for i, r := range rules {
		tiers[i] = ComplianceTier{Name: r.Name, Severity: r.Severity, Bands: []string{}}
	}

	for _, b := range bands {
		var hits []int
		for i, r := range rules {
			if r.matches(b) {
				hits = append(hits, i)
			}
		}
		subject := "epc band " + strconv.Quote(b.Label)
		switch len(hits) {
		case 0:
			return nil, invalid(subject, "matches no compliance tier")
		case 1:
			t := &tiers[hits[0]]
			t.Share += b.Share
			t.Units += b.Units
			t.Bands = append(t.Bands, b.Label)
		default:
			names := make([]string, len(hits))
			for j, i := range hits {
				names[j] = strconv.Quote(rules[i].Name)
			}
			return nil, invalid(subject, "matches several compliance tiers: %s", strings.Join(names, ", "))
		}
	}
	return tiers, nil
}

func validateRules(rules []ComplianceTierRule) error {
	seen := make(map[string]bool, len(rules))
	for i, r := range rules {
		if strings.TrimSpace(r.Name) == "" {
			return invalid(fmt.Sprintf("compliance rule #%d", i+1), "empty name")
		}
		if seen[r.Name] {
			return invalid("compliance rule "+strconv.Quote(r.Name), "duplicate name")
		}
		seen[r.Name] = true
		if _, err := ParseSeverity(string(r.Severity)); err != nil {
			return invalid("compliance rule "+strconv.Quote(r.Name), "%v", err)
		}
	}
	return nil
}

// Tier returns the tier with the given name.
func Tier(tiers []ComplianceTier, name string) (ComplianceTier, bool) {
	i := slices.IndexFunc(tiers, func(t ComplianceTier) bool { return t.Name == name })
	if i < 0 {
		return ComplianceTier{}, false
	}
	return tiers[i], true
}
