package ingredient

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/sous-chef/souschef/internal/domain"
)

// cannedTagger returns preset tokens per line, the way the NLP tagger
// would produce them.
type cannedTagger struct {
	tokens map[string][]domain.Token
	err    error
}

func (c *cannedTagger) Tag(line string) ([]domain.Token, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.tokens[line], nil
}

func tok(text, lemma, pos string) domain.Token {
	return domain.Token{Text: text, Lemma: lemma, POS: pos, IsNum: pos == domain.POSNum}
}

func TestParseExtractsAllFields(t *testing.T) {
	line := "2 1/2 cups finely chopped fresh basil leaves"
	tagger := &cannedTagger{tokens: map[string][]domain.Token{
		line: {
			tok("2", "2", domain.POSNum),
			tok("1/2", "1/2", domain.POSNum),
			tok("cups", "cup", domain.POSNoun),
			tok("finely", "finely", domain.POSAdv),
			tok("chopped", "chop", domain.POSVerb),
			tok("fresh", "fresh", domain.POSAdj),
			tok("basil", "basil", domain.POSNoun),
			tok("leaves", "leaf", domain.POSNoun),
		},
	}}
	p := NewParser(tagger, zap.NewNop().Sugar())

	rec := p.Parse(line)

	assert.Equal(t, line, rec.Raw)
	assert.InDelta(t, 2.5, rec.Quantity, 1e-9)
	assert.Equal(t, "cups", rec.Unit)
	assert.Equal(t, "fresh", rec.Descriptor)
	assert.Equal(t, "finely chopped", rec.Preparation)
	assert.Contains(t, rec.Name, "basil leaves")
}

func TestParse(t *testing.T) {
	tagger := &cannedTagger{tokens: map[string][]domain.Token{
		"salt": {
			tok("salt", "salt", domain.POSNoun),
		},
		"2 eggs": {
			tok("2", "2", domain.POSNum),
			tok("eggs", "egg", domain.POSNoun),
		},
		"2 cups of flour": {
			tok("2", "2", domain.POSNum),
			tok("cups", "cup", domain.POSNoun),
			tok("of", "of", domain.POSOther),
			tok("flour", "flour", domain.POSNoun),
		},
		"1/2 teaspoon salt": {
			tok("1/2", "1/2", domain.POSNum),
			tok("teaspoon", "teaspoon", domain.POSNoun),
			tok("salt", "salt", domain.POSNoun),
		},
		"3 large eggs, beaten": {
			tok("3", "3", domain.POSNum),
			tok("large", "large", domain.POSAdj),
			tok("eggs", "egg", domain.POSNoun),
			tok(",", ",", domain.POSPunct),
			tok("beaten", "beat", domain.POSVerb),
		},
		"2 eggs plus 1 yolk": {
			tok("2", "2", domain.POSNum),
			tok("eggs", "egg", domain.POSNoun),
			tok("plus", "plus", domain.POSOther),
			tok("1", "1", domain.POSNum),
			tok("yolk", "yolk", domain.POSNoun),
		},
	}}
	p := NewParser(tagger, zap.NewNop().Sugar())

	tests := []struct {
		line string
		want domain.Ingredient
	}{
		{
			line: "salt",
			want: domain.Ingredient{Raw: "salt", Name: "salt"},
		},
		{
			line: "2 eggs",
			want: domain.Ingredient{Raw: "2 eggs", Name: "eggs", Quantity: 2},
		},
		{
			line: "2 cups of flour",
			want: domain.Ingredient{Raw: "2 cups of flour", Name: "flour", Quantity: 2, Unit: "cups"},
		},
		{
			line: "1/2 teaspoon salt",
			want: domain.Ingredient{Raw: "1/2 teaspoon salt", Name: "salt", Quantity: 0.5, Unit: "teaspoon"},
		},
		{
			line: "3 large eggs, beaten",
			want: domain.Ingredient{Raw: "3 large eggs, beaten", Name: "eggs", Quantity: 3, Descriptor: "large", Preparation: "beaten"},
		},
		{
			// Only the first numeric run feeds the quantity.
			line: "2 eggs plus 1 yolk",
			want: domain.Ingredient{Raw: "2 eggs plus 1 yolk", Name: "eggs", Quantity: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Parse(tt.line))
		})
	}
}

func TestParseKeepsRawOnTaggerFailure(t *testing.T) {
	tagger := &cannedTagger{err: errors.New("model unavailable")}
	p := NewParser(tagger, zap.NewNop().Sugar())

	rec := p.Parse("  2 cups sugar  ")

	assert.Equal(t, "  2 cups sugar  ", rec.Raw)
	assert.Equal(t, "2 cups sugar", rec.Name)
	assert.Zero(t, rec.Quantity)
}

func TestParseAllSkipsBlankLines(t *testing.T) {
	tagger := &cannedTagger{tokens: map[string][]domain.Token{}}
	p := NewParser(tagger, zap.NewNop().Sugar())

	recs := p.ParseAll([]string{"salt", "", "  ", "pepper"})
	assert.Len(t, recs, 2)
}

func TestNumericValue(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"2", 2, true},
		{"2.5", 2.5, true},
		{"1/2", 0.5, true},
		{"3/4", 0.75, true},
		{"½", 0.5, true},
		{"1/0", 0, false},
		{"cups", 0, false},
	}
	for _, tt := range tests {
		got, ok := numericValue(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.InDelta(t, tt.want, got, 1e-9, tt.in)
		}
	}
}
