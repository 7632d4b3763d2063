package ingredient

import "strings"

// measureWords is the closed set of measurement words recognized as units,
// keyed by singular lowercase form.
var measureWords = map[string]struct{}{
	"teaspoon":   {},
	"tsp":        {},
	"tablespoon": {},
	"tbsp":       {},
	"cup":        {},
	"pint":       {},
	"quart":      {},
	"liter":      {},
	"litre":      {},
	"milliliter": {},
	"ml":         {},
	"gram":       {},
	"g":          {},
	"kilogram":   {},
	"kg":         {},
	"ounce":      {},
	"oz":         {},
	"pound":      {},
	"lb":         {},
	"clove":      {},
	"bunch":      {},
	"sprig":      {},
	"stalk":      {},
	"stick":      {},
	"slice":      {},
	"piece":      {},
	"can":        {},
	"jar":        {},
	"package":    {},
	"packet":     {},
	"pinch":      {},
	"dash":       {},
	"handful":    {},
	"head":       {},
}

// isMeasureWord reports whether a token names a unit of measure. Plural
// surface forms match their singular entry.
func isMeasureWord(text, lemma string) bool {
	for _, cand := range []string{lemma, text} {
		cand = strings.ToLower(strings.TrimSuffix(cand, "."))
		if cand == "" {
			continue
		}
		if _, ok := measureWords[cand]; ok {
			return true
		}
		if s := strings.TrimSuffix(cand, "s"); s != cand {
			if _, ok := measureWords[s]; ok {
				return true
			}
		}
		if s := strings.TrimSuffix(cand, "es"); s != cand {
			if _, ok := measureWords[s]; ok {
				return true
			}
		}
	}
	return false
}
