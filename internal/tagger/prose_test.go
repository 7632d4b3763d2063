package tagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sous-chef/souschef/internal/domain"
)

func TestUniversalPOS(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"NN", domain.POSNoun},
		{"NNS", domain.POSNoun},
		{"NNP", domain.POSProperN},
		{"JJ", domain.POSAdj},
		{"JJR", domain.POSAdj},
		{"RB", domain.POSAdv},
		{"VB", domain.POSVerb},
		{"VBN", domain.POSVerb},
		{"CD", domain.POSNum},
		{",", domain.POSPunct},
		{"IN", domain.POSOther},
		{"DT", domain.POSOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, universalPOS(tt.tag), tt.tag)
	}
}

func TestLemma(t *testing.T) {
	tests := []struct {
		text string
		pos  string
		want string
	}{
		{"Cups", domain.POSNoun, "cup"},
		{"leaves", domain.POSNoun, "leaf"},
		{"berries", domain.POSNoun, "berry"},
		{"tomatoes", domain.POSNoun, "tomato"},
		{"molasses", domain.POSNoun, "molasses"},
		{"eggs", domain.POSNoun, "egg"},
		{"Finely", domain.POSAdv, "finely"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, lemma(tt.text, tt.pos), tt.text)
	}
}

func TestIsNumericText(t *testing.T) {
	for _, s := range []string{"2", "2.5", "1/2", "½"} {
		assert.True(t, isNumericText(s), s)
	}
	for _, s := range []string{"", "cups", "a", "2nd"} {
		assert.False(t, isNumericText(s), s)
	}
}

func TestTagFlagsNumbers(t *testing.T) {
	p := New()

	toks, err := p.Tag("2 cups flour")
	require.NoError(t, err)
	require.NotEmpty(t, toks)

	assert.Equal(t, "2", toks[0].Text)
	assert.True(t, toks[0].IsNum)

	for _, tok := range toks {
		assert.NotEmpty(t, tok.Lemma)
		assert.NotEmpty(t, tok.POS)
	}
}
