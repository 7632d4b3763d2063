// Package ingredient parses raw ingredient lines into structured records.
//
// Extraction is an ordered pipeline of pure stages over the tagged token
// list: quantity, then unit, then descriptor, then name, then preparation.
// Each stage consumes the tokens it matched, so ambiguous lines resolve
// deterministically left to right.
package ingredient

import (
	"strings"

	"go.uber.org/zap"

	"github.com/sous-chef/souschef/internal/domain"
)

// prepWords are past-participle cooking verbs that describe preparation
// rather than the ingredient itself.
var prepWords = map[string]struct{}{
	"chopped":   {},
	"diced":     {},
	"minced":    {},
	"sliced":    {},
	"grated":    {},
	"shredded":  {},
	"peeled":    {},
	"seeded":    {},
	"crushed":   {},
	"melted":    {},
	"softened":  {},
	"beaten":    {},
	"whisked":   {},
	"drained":   {},
	"rinsed":    {},
	"packed":    {},
	"sifted":    {},
	"toasted":   {},
	"cubed":     {},
	"trimmed":   {},
	"halved":    {},
	"quartered": {},
	"divided":   {},
}

// Parser turns raw ingredient lines into domain.Ingredient records.
type Parser struct {
	tagger domain.Tagger
	log    *zap.SugaredLogger
}

// NewParser returns a parser backed by the given tagger.
func NewParser(tagger domain.Tagger, log *zap.SugaredLogger) *Parser {
	return &Parser{tagger: tagger, log: log}
}

// Parse extracts structured fields from one ingredient line. It never
// fails: on any ambiguity the conservative partial record wins, with Raw
// kept verbatim and the trimmed line standing in for the name.
func (p *Parser) Parse(line string) domain.Ingredient {
	rec := domain.Ingredient{Raw: line, Name: strings.TrimSpace(line)}

	toks, err := p.tagger.Tag(line)
	if err != nil || len(toks) == 0 {
		if err != nil {
			p.log.Debugw("tagging failed, keeping raw line", "line", line, "error", err)
		}
		return rec
	}

	f := fields{rest: toks, unitAnchor: -1}
	for _, stage := range []func(*fields){
		quantityStage,
		unitStage,
		descriptorStage,
		nameStage,
		preparationStage,
	} {
		stage(&f)
	}

	rec.Quantity = f.quantity
	rec.Unit = f.unit
	rec.Descriptor = f.descriptor
	rec.Preparation = f.preparation
	if f.name != "" {
		rec.Name = f.name
	}

	p.log.Debugw("parsed ingredient",
		"raw", line, "name", rec.Name, "quantity", rec.Quantity,
		"unit", rec.Unit, "descriptor", rec.Descriptor, "prep", rec.Preparation)
	return rec
}

// ParseAll parses every line, preserving order.
func (p *Parser) ParseAll(lines []string) []domain.Ingredient {
	out := make([]domain.Ingredient, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, p.Parse(line))
	}
	return out
}

// fields is the running pipeline state. rest holds the tokens no stage has
// consumed yet; unitAnchor is where the unit stage should look, the slot
// right after the consumed quantity.
type fields struct {
	rest       []domain.Token
	unitAnchor int

	quantity    float64
	unit        string
	descriptor  string
	name        string
	preparation string
}

// quantityStage consumes the first numeric run. A whole number immediately
// followed by a fraction combines additively ("2 1/2" is 2.5). Later
// numeric tokens are left alone.
func quantityStage(f *fields) {
	for i, tok := range f.rest {
		v, ok := numericValue(tok.Text)
		if !ok {
			continue
		}
		consumed := 1
		if !isFraction(tok.Text) && i+1 < len(f.rest) && isFraction(f.rest[i+1].Text) {
			if frac, ok := numericValue(f.rest[i+1].Text); ok {
				v += frac
				consumed = 2
			}
		}
		f.quantity = v
		f.unitAnchor = i
		f.rest = append(f.rest[:i], f.rest[i+consumed:]...)
		return
	}
}

// unitStage consumes a measurement word immediately following the
// quantity, keeping its surface form lowercased ("cups"). A trailing "of"
// is dropped so it cannot leak into the name.
func unitStage(f *fields) {
	i := f.unitAnchor
	if i < 0 || i >= len(f.rest) {
		return
	}
	tok := f.rest[i]
	if !isMeasureWord(tok.Text, tok.Lemma) {
		return
	}
	f.unit = strings.ToLower(tok.Text)
	f.rest = append(f.rest[:i], f.rest[i+1:]...)
	if i < len(f.rest) && strings.EqualFold(f.rest[i].Text, "of") {
		f.rest = append(f.rest[:i], f.rest[i+1:]...)
	}
}

// descriptorStage consumes the adjectives sitting directly before the head
// noun run, skipping preparation participles.
func descriptorStage(f *fields) {
	start, _, ok := nounRun(f.rest)
	if !ok {
		return
	}
	first := start
	for first > 0 && f.rest[first-1].POS == domain.POSAdj && !isPrepWord(f.rest[first-1]) {
		first--
	}
	if first == start {
		return
	}
	words := make([]string, 0, start-first)
	for _, tok := range f.rest[first:start] {
		words = append(words, tok.Text)
	}
	f.descriptor = strings.Join(words, " ")
	f.rest = append(f.rest[:first], f.rest[start:]...)
}

// nameStage consumes the head noun run, keeping surface forms so plural
// names survive ("basil leaves").
func nameStage(f *fields) {
	start, end, ok := nounRun(f.rest)
	if !ok {
		return
	}
	words := make([]string, 0, end-start+1)
	for _, tok := range f.rest[start : end+1] {
		words = append(words, tok.Text)
	}
	f.name = strings.Join(words, " ")
	f.rest = append(f.rest[:start], f.rest[end+1:]...)
}

// preparationStage gathers preparation phrases from whatever is left:
// each participle plus the adverbs directly before it ("finely chopped"),
// phrases joined with ", ".
func preparationStage(f *fields) {
	var phrases []string
	var advs []string
	for _, tok := range f.rest {
		switch {
		case tok.POS == domain.POSAdv:
			advs = append(advs, tok.Text)
		case isPrepWord(tok):
			phrases = append(phrases, strings.Join(append(advs, tok.Text), " "))
			advs = nil
		default:
			advs = nil
		}
	}
	f.preparation = strings.Join(phrases, ", ")
}

// nounRun finds the first contiguous run of noun tokens that are not
// preparation participles.
func nounRun(rest []domain.Token) (start, end int, ok bool) {
	for i, tok := range rest {
		if !isNounish(tok) {
			continue
		}
		end = i
		for end+1 < len(rest) && isNounish(rest[end+1]) {
			end++
		}
		return i, end, true
	}
	return 0, 0, false
}

func isNounish(tok domain.Token) bool {
	if tok.POS != domain.POSNoun && tok.POS != domain.POSProperN {
		return false
	}
	return !isPrepWord(tok)
}

func isPrepWord(tok domain.Token) bool {
	for _, cand := range []string{tok.Lemma, tok.Text} {
		if _, ok := prepWords[strings.ToLower(cand)]; ok {
			return true
		}
	}
	return tok.POS == domain.POSVerb && strings.HasSuffix(strings.ToLower(tok.Text), "ed")
}
