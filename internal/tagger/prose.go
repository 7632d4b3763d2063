// Package tagger adapts the prose NLP tokenizer to the Token contract the
// ingredient parser and lookup layers consume.
package tagger

import (
	"fmt"
	"strings"

	prose "github.com/jdkato/prose/v2"

	"github.com/sous-chef/souschef/internal/domain"
)

// Prose tags lines with prose's part-of-speech model. Penn Treebank tags
// are mapped to the universal set in domain.
type Prose struct{}

var _ domain.Tagger = (*Prose)(nil)

// New returns a ready tagger.
func New() *Prose { return &Prose{} }

// Tag tokenizes and tags one line.
func (p *Prose) Tag(line string) ([]domain.Token, error) {
	doc, err := prose.NewDocument(line,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("tagger: %w", err)
	}

	raw := doc.Tokens()
	out := make([]domain.Token, 0, len(raw))
	for _, t := range raw {
		pos := universalPOS(t.Tag)
		out = append(out, domain.Token{
			Text:  t.Text,
			Lemma: lemma(t.Text, pos),
			POS:   pos,
			IsNum: t.Tag == "CD" || isNumericText(t.Text),
		})
	}
	return out, nil
}

// universalPOS collapses Penn Treebank tags into the universal tagset.
func universalPOS(tag string) string {
	switch {
	case tag == "NN" || tag == "NNS":
		return domain.POSNoun
	case tag == "NNP" || tag == "NNPS":
		return domain.POSProperN
	case strings.HasPrefix(tag, "JJ"):
		return domain.POSAdj
	case strings.HasPrefix(tag, "RB"):
		return domain.POSAdv
	case strings.HasPrefix(tag, "VB"):
		return domain.POSVerb
	case tag == "CD":
		return domain.POSNum
	case tag == "," || tag == "." || tag == ":" || tag == "(" || tag == ")" ||
		tag == "``" || tag == "''" || tag == "HYPH" || tag == "SYM":
		return domain.POSPunct
	default:
		return domain.POSOther
	}
}

// lemma approximates a lemma: lowercase, with regular plural suffixes
// stripped from nouns. prose has no lemmatizer, and singular forms are all
// the downstream matching needs.
func lemma(text, pos string) string {
	l := strings.ToLower(text)
	if pos != domain.POSNoun && pos != domain.POSProperN {
		return l
	}
	switch {
	case strings.HasSuffix(l, "ies") && len(l) > 4:
		return strings.TrimSuffix(l, "ies") + "y"
	case strings.HasSuffix(l, "ves") && len(l) > 4:
		return strings.TrimSuffix(l, "ves") + "f"
	case strings.HasSuffix(l, "oes") || strings.HasSuffix(l, "ses") ||
		strings.HasSuffix(l, "xes") || strings.HasSuffix(l, "ches") ||
		strings.HasSuffix(l, "shes"):
		return strings.TrimSuffix(l, "es")
	case strings.HasSuffix(l, "s") && !strings.HasSuffix(l, "ss") && len(l) > 3:
		return strings.TrimSuffix(l, "s")
	default:
		return l
	}
}

func isNumericText(s string) bool {
	if s == "" {
		return false
	}
	hasDigit := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == '.' || r == '/':
		default:
			if _, ok := vulgarRunes[r]; !ok {
				return false
			}
			hasDigit = true
		}
	}
	return hasDigit
}

var vulgarRunes = map[rune]struct{}{
	'½': {}, '⅓': {}, '⅔': {}, '¼': {}, '¾': {}, '⅛': {},
}
