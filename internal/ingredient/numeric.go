package ingredient

import (
	"strconv"
	"strings"
)

// vulgarFractions maps single-rune fractions that show up in scraped
// ingredient lines.
var vulgarFractions = map[string]float64{
	"½": 0.5,
	"⅓": 1.0 / 3.0,
	"⅔": 2.0 / 3.0,
	"¼": 0.25,
	"¾": 0.75,
	"⅛": 0.125,
}

// numericValue parses an integer, decimal, a/b fraction, or vulgar
// fraction token.
func numericValue(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if v, ok := vulgarFractions[s]; ok {
		return v, true
	}
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// isFraction reports whether the token is a standalone fraction, the shape
// that combines with a preceding whole number ("2 1/2").
func isFraction(s string) bool {
	s = strings.TrimSpace(s)
	if _, ok := vulgarFractions[s]; ok {
		return true
	}
	_, _, ok := strings.Cut(s, "/")
	if !ok {
		return false
	}
	_, valid := numericValue(s)
	return valid
}
