// Package convert answers unit-conversion questions from fixed volume and
// mass tables. No densities: converting across kinds is refused.
package convert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sous-chef/souschef/internal/domain"
)

type kind int

const (
	kindVolume kind = iota
	kindMass
)

type entry struct {
	kind   kind
	factor float64 // in milliliters for volume, grams for mass
}

var units = map[string]entry{
	"teaspoon":   {kindVolume, 4.93},
	"tsp":        {kindVolume, 4.93},
	"tablespoon": {kindVolume, 14.79},
	"tbsp":       {kindVolume, 14.79},
	"cup":        {kindVolume, 236.59},
	"pint":       {kindVolume, 473.18},
	"quart":      {kindVolume, 946.35},
	"gallon":     {kindVolume, 3785.41},
	"milliliter": {kindVolume, 1},
	"ml":         {kindVolume, 1},
	"liter":      {kindVolume, 1000},
	"litre":      {kindVolume, 1000},
	"l":          {kindVolume, 1000},

	"gram":     {kindMass, 1},
	"g":        {kindMass, 1},
	"kilogram": {kindMass, 1000},
	"kg":       {kindMass, 1000},
	"ounce":    {kindMass, 28.35},
	"oz":       {kindMass, 28.35},
	"pound":    {kindMass, 453.59},
	"lb":       {kindMass, 453.59},
}

// Convert converts amount between two units of the same measurement kind.
// Unknown units and volume-to-mass requests return ErrNotFound.
func Convert(amount float64, from, to string) (float64, error) {
	f, ok := units[normalize(from)]
	if !ok {
		return 0, fmt.Errorf("%w: unknown unit %q", domain.ErrNotFound, from)
	}
	t, ok := units[normalize(to)]
	if !ok {
		return 0, fmt.Errorf("%w: unknown unit %q", domain.ErrNotFound, to)
	}
	if f.kind != t.kind {
		return 0, fmt.Errorf("%w: cannot convert %s to %s without a density", domain.ErrNotFound, from, to)
	}
	return amount * f.factor / t.factor, nil
}

// Known reports whether a unit name is in the conversion tables.
func Known(unit string) bool {
	_, ok := units[normalize(unit)]
	return ok
}

// FormatAmount trims a converted value for display: two decimals, with
// trailing zeros dropped ("473.18", "2").
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func normalize(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	u = strings.TrimSuffix(u, ".")
	if _, ok := units[u]; ok {
		return u
	}
	if s := strings.TrimSuffix(u, "s"); s != u {
		if _, ok := units[s]; ok {
			return s
		}
	}
	return u
}
