package retrofit

import (
	"context"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	json "github.com/goccy/go-json"
)

// Selectors locate each dataset of a portfolio inside a JSON document, as
// JSONPath expressions. An empty selector skips the dataset.
type Selectors struct {
	Currency   string
	EPC        string
	Rules      string
	Confidence string
	Cashflow   string
	Opex       string
}

// DefaultSelectors reads each dataset from the top level key of the same
// name, the layout Portfolio itself marshals to.
func DefaultSelectors() Selectors {
	return Selectors{
		Currency:   "$.currency",
		EPC:        "$.epc",
		Rules:      "$.rules",
		Confidence: "$.confidence",
		Cashflow:   "$.cashflow",
		Opex:       "$.opex",
	}
}

// DecodePortfolio reads a single JSON document from r and extracts every
// dataset with its selector. A selector that resolves to nothing leaves its
// dataset empty. Amounts keep their exact decimal representation.
func DecodePortfolio(r io.Reader, sel Selectors) (Portfolio, error) {
	var doc any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return Portfolio{}, fmt.Errorf("decoding portfolio document: %w", err)
	}

	var p Portfolio
	steps := []struct {
		path string
		into any
	}{
		{sel.Currency, &p.Currency},
		{sel.EPC, &p.EPC},
		{sel.Rules, &p.Rules},
		{sel.Confidence, &p.Confidence},
		{sel.Cashflow, &p.Cashflow},
		{sel.Opex, &p.Opex},
	}
	for _, s := range steps {
		if err := extract(doc, s.path, s.into); err != nil {
			return Portfolio{}, err
		}
	}
	return p, nil
}

// extract evaluates path against doc and decodes the result into v. An
// invalid path is an error, a path that selects nothing leaves v untouched.
func extract(doc any, path string, v any) error {
	if path == "" {
		return nil
	}
	eval, err := jsonpath.New(path)
	if err != nil {
		return fmt.Errorf("parsing selector %q: %w", path, err)
	}
	jval, err := eval(context.Background(), doc)
	if err != nil || jval == nil {
		// unknown key or out of range index
		return nil
	}
	raw, err := json.Marshal(jval)
	if err != nil {
		return fmt.Errorf("re-encoding %q: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("format error in %q: %w", path, err)
	}
	return nil
}

// EncodePortfolio writes p as an indented JSON document that DecodePortfolio
// reads back with DefaultSelectors.
func EncodePortfolio(w io.Writer, p Portfolio) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
