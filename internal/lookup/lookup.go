// Package lookup answers step-parameter questions from the current step
// text and the parsed ingredient records. Everything here is read-only.
package lookup

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sous-chef/souschef/internal/domain"
)

var (
	timeRe = regexp.MustCompile(`(?i)\b(?:about\s+|around\s+)?\d+(?:\s*(?:to|-|–)\s*\d+)?\s*(?:second|minute|min|hour|hr)s?\b`)
	tempRe = regexp.MustCompile(`(?i)\b\d{2,3}\s*(?:°\s*[FC]\b|degrees?(?:\s+[FC])?\b|[FC]\b)`)
)

// skipWords are nouns that show up in questions without naming an
// ingredient.
var skipWords = map[string]struct{}{
	"much": {}, "many": {}, "lot": {}, "bit": {}, "amount": {}, "quantity": {},
	"step": {}, "recipe": {}, "time": {}, "temperature": {}, "temp": {},
	"minute": {}, "hour": {}, "degree": {}, "oven": {}, "stove": {}, "pan": {},
	"need": {}, "use": {}, "i": {}, "we": {},
}

// vagueWords make a quantity question refer back to the current step.
var vagueWords = map[string]struct{}{
	"that": {}, "it": {}, "this": {}, "them": {}, "those": {},
}

// Lookup resolves quantity/time/temperature questions.
type Lookup struct {
	tagger domain.Tagger
	log    *zap.SugaredLogger
}

// New returns a lookup backed by the given tagger.
func New(tagger domain.Tagger, log *zap.SugaredLogger) *Lookup {
	return &Lookup{tagger: tagger, log: log}
}

// Quantity answers "how much X". The topic is matched against the
// ingredient records, directly first and then by its nouns. A vague topic
// ("that", "it") resolves to the ingredient most recently mentioned in the
// current step. Misses return ErrNotFound.
func (l *Lookup) Quantity(topic string, current *domain.Step, ingredients []domain.Ingredient) (string, error) {
	topic = strings.ToLower(strings.TrimSpace(topic))

	if _, vague := vagueWords[topic]; vague {
		if current == nil {
			return "", fmt.Errorf("%w: nothing to refer back to", domain.ErrNotFound)
		}
		ing, ok := lastMentioned(current.Text, ingredients)
		if !ok {
			return "", fmt.Errorf("%w: no ingredient mentioned in this step", domain.ErrNotFound)
		}
		return FormatQuantity(ing), nil
	}

	if ing, ok := matchIngredient(topic, ingredients); ok {
		return FormatQuantity(ing), nil
	}

	// Fall back to the nouns of the question, skipping filler words.
	for _, noun := range l.topicNouns(topic) {
		if ing, ok := matchIngredient(noun, ingredients); ok {
			return FormatQuantity(ing), nil
		}
	}

	return "", fmt.Errorf("%w: %q is not in the ingredient list", domain.ErrNotFound, topic)
}

// Time answers "how long". The current step is scanned for a duration
// expression; with none there, the recipe total time answers instead.
func (l *Lookup) Time(current *domain.Step, recipe *domain.Recipe) (string, error) {
	if current != nil {
		if m := timeRe.FindString(current.Text); m != "" {
			return m, nil
		}
	}
	if recipe != nil && recipe.TotalTime != "" {
		return fmt.Sprintf("the whole recipe takes %s", recipe.TotalTime), nil
	}
	return "", fmt.Errorf("%w: no time mentioned in this step", domain.ErrNotFound)
}

// Temperature answers "what temperature" from the current step text.
func (l *Lookup) Temperature(current *domain.Step) (string, error) {
	if current != nil {
		if m := tempRe.FindString(current.Text); m != "" {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: no temperature mentioned in this step", domain.ErrNotFound)
}

// FormatQuantity renders an ingredient record as a spoken-style amount:
// "2.5 cups fresh basil leaves". Records without a quantity fall back to
// the raw line.
func FormatQuantity(ing domain.Ingredient) string {
	if ing.Quantity == 0 {
		if strings.TrimSpace(ing.Raw) != "" {
			return strings.TrimSpace(ing.Raw)
		}
		return ing.Name
	}
	parts := []string{trimFloat(ing.Quantity)}
	if ing.Unit != "" {
		parts = append(parts, ing.Unit)
	}
	if ing.Descriptor != "" {
		parts = append(parts, ing.Descriptor)
	}
	parts = append(parts, ing.Name)
	s := strings.Join(parts, " ")
	if ing.Preparation != "" {
		s += ", " + ing.Preparation
	}
	return s
}

// topicNouns extracts candidate ingredient nouns from a question topic.
func (l *Lookup) topicNouns(topic string) []string {
	toks, err := l.tagger.Tag(topic)
	if err != nil {
		l.log.Debugw("tagging question failed", "topic", topic, "error", err)
		return nil
	}
	var nouns []string
	for _, tok := range toks {
		if tok.POS != domain.POSNoun && tok.POS != domain.POSProperN {
			continue
		}
		lem := strings.ToLower(tok.Lemma)
		if _, skip := skipWords[lem]; skip {
			continue
		}
		nouns = append(nouns, lem)
	}
	return nouns
}

// matchIngredient finds the first record whose name or raw line contains
// the candidate, case-insensitively and tolerant of plural endings.
func matchIngredient(cand string, ingredients []domain.Ingredient) (domain.Ingredient, bool) {
	cand = strings.ToLower(strings.TrimSpace(cand))
	if cand == "" {
		return domain.Ingredient{}, false
	}
	singular := strings.TrimSuffix(cand, "s")
	for _, ing := range ingredients {
		name := strings.ToLower(ing.Name)
		raw := strings.ToLower(ing.Raw)
		if strings.Contains(name, cand) || strings.Contains(name, singular) ||
			strings.Contains(raw, cand) || strings.Contains(raw, singular) {
			return ing, true
		}
	}
	return domain.Ingredient{}, false
}

// lastMentioned finds the ingredient whose name appears latest in the
// step text.
func lastMentioned(stepText string, ingredients []domain.Ingredient) (domain.Ingredient, bool) {
	text := strings.ToLower(stepText)
	best := -1
	var found domain.Ingredient
	for _, ing := range ingredients {
		name := strings.ToLower(ing.Name)
		if name == "" {
			continue
		}
		// Match on the name's head word so "basil leaves" still hits
		// a step that just says "basil".
		idx := strings.LastIndex(text, name)
		if idx < 0 {
			head := headWord(name)
			idx = strings.LastIndex(text, head)
		}
		if idx > best {
			best = idx
			found = ing
		}
	}
	return found, best >= 0
}

func headWord(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	return fields[0]
}

func trimFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
