package lookup

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sous-chef/souschef/internal/domain"
)

// nounTagger tags every word as a noun, which is all topicNouns needs.
type nounTagger struct{}

func (nounTagger) Tag(line string) ([]domain.Token, error) {
	var toks []domain.Token
	for _, f := range strings.Fields(line) {
		toks = append(toks, domain.Token{Text: f, Lemma: f, POS: domain.POSNoun})
	}
	return toks, nil
}

var pestoIngredients = []domain.Ingredient{
	{Raw: "2 1/2 cups finely chopped fresh basil leaves", Name: "basil leaves", Quantity: 2.5, Unit: "cups", Descriptor: "fresh", Preparation: "finely chopped"},
	{Raw: "3 cloves garlic", Name: "garlic", Quantity: 3, Unit: "cloves"},
	{Raw: "salt to taste", Name: "salt"},
}

func newLookup(t *testing.T) *Lookup {
	t.Helper()
	return New(nounTagger{}, zap.NewNop().Sugar())
}

func TestQuantityDirectMatch(t *testing.T) {
	l := newLookup(t)

	got, err := l.Quantity("basil", nil, pestoIngredients)
	require.NoError(t, err)
	assert.Equal(t, "2.5 cups fresh basil leaves, finely chopped", got)
}

func TestQuantityViaNounExtraction(t *testing.T) {
	l := newLookup(t)

	got, err := l.Quantity("much garlic need", nil, pestoIngredients)
	require.NoError(t, err)
	assert.Equal(t, "3 cloves garlic", got)
}

func TestQuantityWithoutAmountFallsBackToRaw(t *testing.T) {
	l := newLookup(t)

	got, err := l.Quantity("salt", nil, pestoIngredients)
	require.NoError(t, err)
	assert.Equal(t, "salt to taste", got)
}

func TestQuantityVagueTopicUsesCurrentStep(t *testing.T) {
	l := newLookup(t)
	step := &domain.Step{Position: 2, Text: "Add the garlic and then the basil."}

	got, err := l.Quantity("that", step, pestoIngredients)
	require.NoError(t, err)
	assert.Contains(t, got, "basil")
}

func TestQuantityVagueTopicWithoutStep(t *testing.T) {
	l := newLookup(t)

	_, err := l.Quantity("it", nil, pestoIngredients)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestQuantityMiss(t *testing.T) {
	l := newLookup(t)

	_, err := l.Quantity("saffron", nil, pestoIngredients)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestTimeFromStep(t *testing.T) {
	l := newLookup(t)
	step := &domain.Step{Text: "Simmer for 10 to 12 minutes until thickened."}

	got, err := l.Time(step, nil)
	require.NoError(t, err)
	assert.Equal(t, "10 to 12 minutes", got)
}

func TestTimeFallsBackToTotalTime(t *testing.T) {
	l := newLookup(t)
	step := &domain.Step{Text: "Stir well."}
	recipe := &domain.Recipe{TotalTime: "45 minutes"}

	got, err := l.Time(step, recipe)
	require.NoError(t, err)
	assert.Contains(t, got, "45 minutes")
}

func TestTimeMiss(t *testing.T) {
	l := newLookup(t)

	_, err := l.Time(&domain.Step{Text: "Stir well."}, &domain.Recipe{})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestTemperatureFromStep(t *testing.T) {
	l := newLookup(t)

	tests := []struct {
		text string
		want string
	}{
		{"Bake at 350°F for 20 minutes.", "350°F"},
		{"Heat the oven to 180 degrees C.", "180 degrees C"},
		{"Roast at 425 F until golden.", "425 F"},
	}
	for _, tt := range tests {
		got, err := l.Temperature(&domain.Step{Text: tt.text})
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.want, got)
	}
}

func TestTemperatureMiss(t *testing.T) {
	l := newLookup(t)

	_, err := l.Temperature(&domain.Step{Text: "Stir well."})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = l.Temperature(nil)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestFormatQuantity(t *testing.T) {
	got := FormatQuantity(domain.Ingredient{Name: "flour", Quantity: 2, Unit: "cups"})
	assert.Equal(t, "2 cups flour", got)
}
