// Package catalog defines the product model shared by the API client and
// the shopping cart.
package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ID is a product or account identity as the retailer API returns it. The
// backend is inconsistent about whether ids are JSON numbers or strings, so
// both decode to the string form.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// Product describes a catalog entry. Fields mirror the retailer API wire
// format; everything beyond the identity and price is carried verbatim into
// cart lines.
type Product struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Price       Price  `json:"price"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Featured    bool   `json:"featured,omitempty"`
	Stock       int    `json:"stock,omitempty"`
}

// Price is a product price as the API returns it: usually a JSON number,
// occasionally a preformatted string such as "$ 12.500". The raw form is
// preserved for round-tripping; Amount normalizes it for arithmetic.
type Price struct {
	num    float64
	text   string
	isText bool
}

// NewPrice returns a numeric Price.
func NewPrice(v float64) Price {
	return Price{num: v}
}

// PriceFromString returns a Price carrying a preformatted string value.
func PriceFromString(s string) Price {
	return Price{text: s, isText: true}
}

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*p = Price{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = Price{text: s, isText: true}
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = Price{num: n}
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	if p.isText {
		return json.Marshal(p.text)
	}
	return json.Marshal(p.num)
}

// Amount returns the numeric value of the price. String prices have
// non-numeric characters (currency symbols, spaces) stripped first; a value
// that still does not parse counts as zero.
func (p Price) Amount() float64 {
	if !p.isText {
		return p.num
	}
	return parseLoose(p.text)
}

// parseLoose mimics the storefront's historical parseFloat behavior: strip
// everything outside [0-9.-], then take the longest numeric prefix.
func parseLoose(s string) float64 {
	var b []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' {
			b = append(b, c)
		}
	}
	for end := len(b); end > 0; end-- {
		if v, err := strconv.ParseFloat(string(b[:end]), 64); err == nil {
			return v
		}
	}
	return 0
}
