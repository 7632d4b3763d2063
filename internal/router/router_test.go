package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/sous-chef/souschef/internal/domain"
)

func newRouter(t *testing.T) *Router {
	t.Helper()
	return New(zap.NewNop().Sugar())
}

func TestClassifyNavigation(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		input string
		want  domain.NavCommand
	}{
		{"next", domain.NavNext},
		{"NEXT", domain.NavNext},
		{"continue", domain.NavNext},
		{"previous", domain.NavPrevious},
		{"go back", domain.NavPrevious},
		{"repeat", domain.NavRepeat},
		{"say that again", domain.NavRepeat},
		{"where am i", domain.NavWhereAmI},
		{"what step am i on?", domain.NavWhereAmI},
		{"how many steps", domain.NavStepCount},
		{"what's left", domain.NavRemaining},
		{"ingredients", domain.NavIngredients},
		{"show me the ingredients", domain.NavIngredients},
		{"steps", domain.NavSteps},
		{"overview", domain.NavOverview},
		{"help", domain.NavHelp},
		{"quit", domain.NavQuit},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			q := r.Classify(tt.input)
			assert.Equal(t, domain.QueryNavigation, q.Kind)
			assert.Equal(t, tt.want, q.Nav)
		})
	}
}

func TestClassifyLoad(t *testing.T) {
	r := newRouter(t)

	q := r.Classify("load https://example.com/pasta")
	assert.Equal(t, domain.QueryLoad, q.Kind)
	assert.Equal(t, "https://example.com/pasta", q.Topic)
}

func TestClassifyConversion(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		input  string
		amount float64
		from   string
		to     string
	}{
		{"what is 2 cups in ml", 2, "cups", "ml"},
		{"what is 2 cups in ml?", 2, "cups", "ml"},
		{"convert 1/2 cup to tablespoons", 0.5, "cup", "tablespoons"},
		{"2 1/2 cups in liters", 2.5, "cups", "liters"},
		{"½ cup in ml", 0.5, "cup", "ml"},
		{"what is 2½ cups in ml", 2.5, "cups", "ml"},
		{"convert 1 ¾ cups to ml", 1.75, "cups", "ml"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			q := r.Classify(tt.input)
			assert.Equal(t, domain.QueryConversion, q.Kind)
			assert.InDelta(t, tt.amount, q.Amount, 1e-9)
			assert.Equal(t, tt.from, q.FromUnit)
			assert.Equal(t, tt.to, q.ToUnit)
		})
	}
}

func TestClassifyExternal(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		input string
		kind  domain.ExternalKind
		topic string
	}{
		{"how to julienne carrots", domain.ExternalHowTo, "julienne carrots"},
		{"how do I fold egg whites", domain.ExternalHowTo, "fold egg whites"},
		{"what is a bain-marie?", domain.ExternalDefinition, "bain-marie"},
		{"what can i use instead of buttermilk", domain.ExternalSubstitute, "buttermilk"},
		{"i don't have shallots", domain.ExternalMissing, "shallots"},
		{"safe temperature for chicken", domain.ExternalSafety, "chicken"},
		{"can i freeze this", domain.ExternalStorage, "can i freeze this"},
		{"can i make this ahead", domain.ExternalMakeAhead, "can i make this ahead"},
		{"the sauce is too salty", domain.ExternalTrouble, "the sauce is too salty"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			q := r.Classify(tt.input)
			assert.Equal(t, domain.QueryExternal, q.Kind)
			assert.Equal(t, tt.kind, q.External)
			assert.Equal(t, tt.topic, q.Topic)
		})
	}
}

func TestClassifyStepParam(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		input string
		param domain.ParamKind
		topic string
	}{
		{"how much basil do I need", domain.ParamQuantity, "basil"},
		{"how many eggs", domain.ParamQuantity, "eggs"},
		{"how much of that", domain.ParamQuantity, "that"},
		{"how long do I bake it", domain.ParamTime, ""},
		{"how long?", domain.ParamTime, ""},
		{"what temperature should the oven be", domain.ParamTemperature, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			q := r.Classify(tt.input)
			assert.Equal(t, domain.QueryStepParam, q.Kind)
			assert.Equal(t, tt.param, q.Param)
			assert.Equal(t, tt.topic, q.Topic)
		})
	}
}

func TestClassifyUnknown(t *testing.T) {
	r := newRouter(t)

	for _, input := range []string{"asdkfj", "", "   ", "purple monkey dishwasher"} {
		q := r.Classify(input)
		assert.Equal(t, domain.QueryUnknown, q.Kind, "%q", input)
	}
}

func TestConversionBeatsDefinition(t *testing.T) {
	r := newRouter(t)

	// "what is ..." is usually a definition, but a measured amount makes
	// it a conversion.
	q := r.Classify("what is 2 cups in ml")
	assert.Equal(t, domain.QueryConversion, q.Kind)

	q = r.Classify("what is a roux")
	assert.Equal(t, domain.QueryExternal, q.Kind)
	assert.Equal(t, domain.ExternalDefinition, q.External)
}
