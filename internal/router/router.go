// Package router classifies free-text user input into navigation commands,
// unit conversions, external clarifications, and step-parameter questions.
package router

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/sous-chef/souschef/internal/domain"
)

// Router matches user input against a fixed regex lexicon. Swap this out
// for an LLM-backed classifier when ready.
type Router struct {
	log      *zap.SugaredLogger
	nav      []navRule
	external []externalRule
	param    []paramRule
}

type navRule struct {
	regex *regexp.Regexp
	cmd   domain.NavCommand
}

type externalRule struct {
	regex *regexp.Regexp
	kind  domain.ExternalKind
	// topicGroup is the capture group holding the subject; 0 means the
	// whole input is the topic.
	topicGroup int
}

type paramRule struct {
	regex      *regexp.Regexp
	param      domain.ParamKind
	topicGroup int
}

var (
	loadRe = regexp.MustCompile(`(?i)^load\s+(\S+)$`)

	convertRe = regexp.MustCompile(`(?i)^(?:what\s+is|what's|convert)?\s*(\d+(?:\.\d+)?(?:\s+\d+/\d+)?|\d+/\d+|\d*\s*[½⅓⅔¼¾⅛])\s*([a-z]+)\s+(?:in|to)\s+([a-z]+)$`)
)

// vulgarFractions mirrors the single-rune fractions the ingredient parser
// accepts, so "½ cup in ml" converts the same way "1/2 cup" parses.
var vulgarFractions = map[rune]float64{
	'½': 0.5,
	'⅓': 1.0 / 3.0,
	'⅔': 2.0 / 3.0,
	'¼': 0.25,
	'¾': 0.75,
	'⅛': 0.125,
}

// New builds the router lexicon.
func New(log *zap.SugaredLogger) *Router {
	r := &Router{log: log}

	r.nav = []navRule{
		{regexp.MustCompile(`(?i)^(next|n|continue|done|start|begin|go on|advance)$`), domain.NavNext},
		{regexp.MustCompile(`(?i)^(previous|prev|back|go back|last step)$`), domain.NavPrevious},
		{regexp.MustCompile(`(?i)^(repeat|again|say that again|what was that|come again)$`), domain.NavRepeat},
		{regexp.MustCompile(`(?i)^(what step(\s+am\s+i\s+on)?|where am i|where are we|which step)$`), domain.NavWhereAmI},
		{regexp.MustCompile(`(?i)^how many steps( are (there|left))?$`), domain.NavStepCount},
		{regexp.MustCompile(`(?i)^(what'?s left|what remains|remaining( steps)?)$`), domain.NavRemaining},
		{regexp.MustCompile(`(?i)^(ingredients?|ingredient list|show (me )?(the )?ingredients)$`), domain.NavIngredients},
		{regexp.MustCompile(`(?i)^(steps|directions|show (me )?(all )?(the )?steps)$`), domain.NavSteps},
		{regexp.MustCompile(`(?i)^(overview|recipe|summary|about)$`), domain.NavOverview},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.NavHelp},
		{regexp.MustCompile(`(?i)^(quit|exit|stop|q|bye)$`), domain.NavQuit},
	}

	r.external = []externalRule{
		{regexp.MustCompile(`(?i)^how\s+(?:do\s+(?:i|you)\s+|to\s+)(.+)$`), domain.ExternalHowTo, 1},
		{regexp.MustCompile(`(?i)^what\s+can\s+i\s+use\s+instead\s+of\s+(.+)$`), domain.ExternalSubstitute, 1},
		{regexp.MustCompile(`(?i)\b(?:instead\s+of|substitut(?:e|ion)\s+for|sub\s+for)\s+(.+)$`), domain.ExternalSubstitute, 1},
		{regexp.MustCompile(`(?i)^i\s+(?:don'?t|do\s+not)\s+have\s+(?:any\s+)?(.+)$`), domain.ExternalMissing, 1},
		{regexp.MustCompile(`(?i)\bsafe\s+(?:internal\s+)?temp(?:erature)?\s+(?:for\s+)?(.+)$`), domain.ExternalSafety, 1},
		{regexp.MustCompile(`(?i)^is\s+(.+?)\s+(?:safe|done|cooked)(?:\s+to\s+eat)?$`), domain.ExternalSafety, 1},
		{regexp.MustCompile(`(?i)\b(?:can\s+i\s+freeze|how\s+long\s+(?:does|will|can)\s+.*\s+(?:keep|last)|how\s+(?:do|should)\s+i\s+store)\b`), domain.ExternalStorage, 0},
		{regexp.MustCompile(`(?i)\b(?:make\s+(?:this|it)?\s*(?:a\s+day\s+)?ahead|overnight|the\s+night\s+before|in\s+advance)\b`), domain.ExternalMakeAhead, 0},
		{regexp.MustCompile(`(?i)\b(?:too\s+(?:salty|thick|thin|dry|wet|sweet|spicy)|(?:is|it'?s)\s+burning|won'?t\s+(?:melt|thicken|rise)|curdl(?:ed|ing)|fix)\b`), domain.ExternalTrouble, 0},
		{regexp.MustCompile(`(?i)^what\s+(?:is|are|does)\s+(?:a\s+|an\s+|the\s+)?(.+?)(?:\s+mean)?$`), domain.ExternalDefinition, 1},
	}

	r.param = []paramRule{
		{regexp.MustCompile(`(?i)^how\s+(?:much|many)\s+(?:of\s+)?(.+?)(?:\s+(?:do|does|should)\s+(?:i|we|it)\s+(?:need|use|take|go in))?$`), domain.ParamQuantity, 1},
		{regexp.MustCompile(`(?i)^how\s+long\b.*$`), domain.ParamTime, 0},
		{regexp.MustCompile(`(?i)^(?:when\s+is\s+it\s+(?:done|ready)|for\s+how\s+long)$`), domain.ParamTime, 0},
		{regexp.MustCompile(`(?i)^(?:what|which)\s+temp(?:erature)?\b.*$`), domain.ParamTemperature, 0},
		{regexp.MustCompile(`(?i)^how\s+hot\b.*$`), domain.ParamTemperature, 0},
	}

	return r
}

// Classify converts one utterance into a Query. Unmatched input comes back
// as QueryUnknown; callers answer it with a clarification prompt and leave
// all state alone.
func (r *Router) Classify(input string) domain.Query {
	q := domain.Query{Kind: domain.QueryUnknown, Raw: input}

	trimmed := strings.TrimSpace(input)
	trimmed = strings.TrimRight(trimmed, "?!. ")
	if trimmed == "" {
		return q
	}

	if m := loadRe.FindStringSubmatch(strings.TrimSpace(input)); m != nil {
		q.Kind = domain.QueryLoad
		q.Topic = strings.TrimRight(m[1], "?!.")
		return q
	}

	for _, rule := range r.nav {
		if rule.regex.MatchString(trimmed) {
			r.log.Debugw("matched navigation", "input", trimmed, "command", rule.cmd)
			q.Kind = domain.QueryNavigation
			q.Nav = rule.cmd
			return q
		}
	}

	if m := convertRe.FindStringSubmatch(trimmed); m != nil {
		if amount, ok := parseAmount(m[1]); ok {
			r.log.Debugw("matched conversion", "input", trimmed)
			q.Kind = domain.QueryConversion
			q.Amount = amount
			q.FromUnit = m[2]
			q.ToUnit = m[3]
			return q
		}
	}

	for _, rule := range r.external {
		m := rule.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		r.log.Debugw("matched external", "input", trimmed, "kind", rule.kind)
		q.Kind = domain.QueryExternal
		q.External = rule.kind
		q.Topic = trimmed
		if rule.topicGroup > 0 {
			q.Topic = strings.TrimSpace(m[rule.topicGroup])
		}
		return q
	}

	for _, rule := range r.param {
		m := rule.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		r.log.Debugw("matched step param", "input", trimmed, "param", rule.param)
		q.Kind = domain.QueryStepParam
		q.Param = rule.param
		if rule.topicGroup > 0 {
			q.Topic = strings.TrimSpace(m[rule.topicGroup])
		}
		return q
	}

	r.log.Debugw("no match", "input", trimmed)
	return q
}

// parseAmount handles "2", "2.5", "1/2", "2 1/2", and vulgar-fraction
// forms like "½" or "2½".
func parseAmount(s string) (float64, bool) {
	total := 0.0
	for _, part := range strings.Fields(s) {
		if r, size := utf8.DecodeLastRuneInString(part); size > 0 {
			if frac, ok := vulgarFractions[r]; ok {
				total += frac
				part = part[:len(part)-size]
				if part == "" {
					continue
				}
			}
		}
		if num, den, ok := strings.Cut(part, "/"); ok {
			n, err1 := strconv.ParseFloat(num, 64)
			d, err2 := strconv.ParseFloat(den, 64)
			if err1 != nil || err2 != nil || d == 0 {
				return 0, false
			}
			total += n / d
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return 0, false
		}
		total += v
	}
	return total, true
}
