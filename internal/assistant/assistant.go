// Package assistant dispatches classified queries against the active
// recipe session and produces every user-facing response.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/sous-chef/souschef/internal/convert"
	"github.com/sous-chef/souschef/internal/domain"
	"github.com/sous-chef/souschef/internal/links"
	"github.com/sous-chef/souschef/internal/lookup"
	"github.com/sous-chef/souschef/internal/router"
	"github.com/sous-chef/souschef/internal/session"
	"github.com/sous-chef/souschef/internal/steps"
)

// Printer is the assistant's output surface. The Bubble Tea UI implements
// it; tests capture lines instead.
type Printer interface {
	Chat(text string)        // conversational replies
	Step(text string)        // step headers and section titles
	Instruction(text string) // step bodies and list items
	Hint(text string)        // secondary guidance
	Urgent(text string)      // errors
	Blank()
}

// Assistant owns the current session and answers one utterance at a time.
// Navigation is the only thing that moves the cursor; every other query
// leaves all state untouched.
type Assistant struct {
	router *router.Router
	loader *session.Loader
	lookup *lookup.Lookup
	out    Printer
	log    *zap.SugaredLogger

	mu   sync.RWMutex
	sess *session.Session
}

// New wires the assistant.
func New(r *router.Router, l *session.Loader, lk *lookup.Lookup, out Printer, log *zap.SugaredLogger) *Assistant {
	return &Assistant{router: r, loader: l, lookup: lk, out: out, log: log}
}

// Handle processes one utterance. It returns true when the user asked to
// quit.
func (a *Assistant) Handle(ctx context.Context, input string) bool {
	q := a.router.Classify(input)
	a.log.Debugw("handling query", "kind", q.Kind, "input", input)

	switch q.Kind {
	case domain.QueryLoad:
		a.handleLoad(ctx, q.Topic)
	case domain.QueryNavigation:
		return a.handleNavigation(q.Nav)
	case domain.QueryConversion:
		a.handleConversion(q)
	case domain.QueryExternal:
		a.handleExternal(q)
	case domain.QueryStepParam:
		a.handleStepParam(q)
	default:
		a.out.Chat("I didn't catch that. Try 'next', 'repeat', or ask about an ingredient — 'help' lists everything.")
	}
	return false
}

// StatusLine renders the status-bar summary: loaded recipe plus step
// progress. Safe to call from the UI goroutine.
func (a *Assistant) StatusLine() string {
	a.mu.RLock()
	s := a.sess
	a.mu.RUnlock()

	if s == nil {
		return "no recipe loaded — load <url>"
	}
	title := s.Recipe.Title
	if title == "" {
		title = s.Recipe.URL
	}
	pos, total := s.Cursor.Position()
	switch s.Cursor.State() {
	case steps.StateNotStarted:
		return fmt.Sprintf("%s — %d steps, not started", title, total)
	case steps.StateFinished:
		return fmt.Sprintf("%s — all %d steps done", title, total)
	default:
		return fmt.Sprintf("%s — step %d/%d", title, pos, total)
	}
}

func (a *Assistant) session() *session.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.sess
}

func (a *Assistant) setSession(s *session.Session) {
	a.mu.Lock()
	a.sess = s
	a.mu.Unlock()
}

// ── Loading ──────────────────────────────────────────────────────

func (a *Assistant) handleLoad(ctx context.Context, url string) {
	a.out.Hint("Fetching and reading the recipe, one moment...")

	sess, err := a.loader.Load(ctx, url)
	if err != nil {
		a.log.Warnw("load failed", "url", url, "error", err)
		if errors.Is(err, domain.ErrParseIncomplete) {
			a.out.Urgent("I couldn't understand that page as a recipe. Try a different URL.")
		} else {
			a.out.Urgent(fmt.Sprintf("Loading failed: %v", err))
			a.out.Chat("Check the URL and try again.")
		}
		if a.session() != nil {
			a.out.Hint("Your current recipe is untouched.")
		}
		return
	}

	// The old session, cursor and all, is gone for good.
	a.setSession(sess)
	a.showOverview(sess)
	a.out.Chat("Say 'next' when you're ready for the first step.")
}

func (a *Assistant) showOverview(s *session.Session) {
	r := s.Recipe
	title := r.Title
	if title == "" {
		title = r.URL
	}
	a.out.Step(fmt.Sprintf("=== %s ===", title))
	if r.Servings != "" {
		a.out.Hint("Servings: " + r.Servings)
	}
	if r.PrepTime != "" {
		a.out.Hint("Prep: " + r.PrepTime)
	}
	if r.CookTime != "" {
		a.out.Hint("Cook: " + r.CookTime)
	}
	if r.TotalTime != "" {
		a.out.Hint("Total: " + r.TotalTime)
	}
	a.out.Hint(fmt.Sprintf("%d ingredients, %d steps", len(r.Ingredients), s.Steps.Count()))
}

// ── Navigation ───────────────────────────────────────────────────

func (a *Assistant) handleNavigation(cmd domain.NavCommand) bool {
	switch cmd {
	case domain.NavHelp:
		a.showHelp()
		return false
	case domain.NavQuit:
		a.out.Chat("Happy cooking — goodbye!")
		return true
	}

	s := a.session()
	if s == nil {
		a.out.Chat("No recipe loaded yet. Paste one with: load <url>")
		return false
	}

	switch cmd {
	case domain.NavNext:
		step, err := s.Cursor.Next()
		if err != nil {
			a.out.Chat("That was the last step — nothing left to do. Enjoy!")
			return false
		}
		a.showStep(s, step)
	case domain.NavPrevious:
		step, err := s.Cursor.Previous()
		if err != nil {
			a.out.Chat("You're already at the first step.")
			return false
		}
		a.showStep(s, step)
	case domain.NavRepeat:
		step, err := s.Cursor.Current()
		switch {
		case errors.Is(err, domain.ErrNotStarted):
			a.out.Chat("We haven't started yet — say 'next' for step one.")
		case errors.Is(err, domain.ErrNoMoreSteps):
			a.out.Chat("All steps are done. Say 'previous' to revisit the last one.")
		default:
			a.showStep(s, step)
		}
	case domain.NavWhereAmI:
		a.showPosition(s)
	case domain.NavStepCount:
		a.out.Chat(fmt.Sprintf("This recipe has %d steps.", s.Steps.Count()))
	case domain.NavRemaining:
		a.showRemaining(s)
	case domain.NavIngredients:
		a.showIngredients(s)
	case domain.NavSteps:
		a.showSteps(s)
	case domain.NavOverview:
		a.showOverview(s)
	}
	return false
}

func (a *Assistant) showStep(s *session.Session, step domain.Step) {
	_, total := s.Cursor.Position()
	a.out.Step(fmt.Sprintf("Step %d/%d", step.Position, total))
	a.out.Instruction(step.Text)
}

func (a *Assistant) showPosition(s *session.Session) {
	pos, total := s.Cursor.Position()
	switch s.Cursor.State() {
	case steps.StateNotStarted:
		a.out.Chat(fmt.Sprintf("Not started yet — %d steps are waiting. Say 'next' to begin.", total))
	case steps.StateFinished:
		a.out.Chat(fmt.Sprintf("All %d steps are done.", total))
	default:
		a.out.Chat(fmt.Sprintf("You're on step %d of %d.", pos, total))
	}
}

func (a *Assistant) showRemaining(s *session.Session) {
	rem := s.Cursor.Remaining()
	if len(rem) == 0 {
		a.out.Chat("Nothing left — you're at the end.")
		return
	}
	a.out.Step(fmt.Sprintf("%d steps to go:", len(rem)))
	for _, step := range rem {
		a.out.Instruction(fmt.Sprintf("  %d. %s", step.Position, step.Text))
	}
}

func (a *Assistant) showIngredients(s *session.Session) {
	a.out.Step("Ingredients:")
	for _, ing := range s.Recipe.Ingredients {
		a.out.Instruction("  - " + strings.TrimSpace(ing.Raw))
	}
}

func (a *Assistant) showSteps(s *session.Session) {
	a.out.Step("Steps:")
	for _, step := range s.Steps.All() {
		a.out.Instruction(fmt.Sprintf("  %d. %s", step.Position, step.Text))
	}
}

// ── Conversion ───────────────────────────────────────────────────

func (a *Assistant) handleConversion(q domain.Query) {
	result, err := convert.Convert(q.Amount, q.FromUnit, q.ToUnit)
	if err != nil {
		a.log.Debugw("conversion refused", "from", q.FromUnit, "to", q.ToUnit, "error", err)
		a.out.Chat(fmt.Sprintf("I can't convert %s to %s.", q.FromUnit, q.ToUnit))
		return
	}
	a.out.Chat(fmt.Sprintf("%s %s is about %s %s.",
		convert.FormatAmount(q.Amount), q.FromUnit, convert.FormatAmount(result), q.ToUnit))
}

// ── External clarification ───────────────────────────────────────

var externalLead = map[domain.ExternalKind]string{
	domain.ExternalHowTo:      "That's a technique question — these should show you:",
	domain.ExternalDefinition: "Here's where to look that up:",
	domain.ExternalSubstitute: "Substitutions depend on the dish — compare a few suggestions:",
	domain.ExternalMissing:    "Missing an ingredient happens — look up a stand-in:",
	domain.ExternalSafety:     "Food safety is worth double-checking at the source:",
	domain.ExternalStorage:    "Storage and keeping times vary — check:",
	domain.ExternalMakeAhead:  "Make-ahead advice depends on the recipe — see:",
	domain.ExternalTrouble:    "Let's get that fixed — these walk through it:",
}

func (a *Assistant) handleExternal(q domain.Query) {
	lead, ok := externalLead[q.External]
	if !ok {
		lead = "That's outside this recipe — here's where to look:"
	}
	pair := links.Build(q.Topic)
	a.out.Chat(lead)
	a.out.Instruction("  search: " + pair.Search)
	a.out.Instruction("  video:  " + pair.Video)
}

// ── Step parameters ──────────────────────────────────────────────

func (a *Assistant) handleStepParam(q domain.Query) {
	s := a.session()
	if s == nil {
		a.out.Chat("No recipe loaded yet. Paste one with: load <url>")
		return
	}
	current := s.CurrentStep()

	switch q.Param {
	case domain.ParamQuantity:
		answer, err := a.lookup.Quantity(q.Topic, current, s.Recipe.Ingredients)
		if err != nil {
			a.out.Chat(fmt.Sprintf("I couldn't find %q in the ingredient list.", q.Topic))
			return
		}
		a.out.Chat("You need " + answer + ".")
	case domain.ParamTime:
		answer, err := a.lookup.Time(current, s.Recipe)
		if err != nil {
			a.out.Chat("This step doesn't mention a time.")
			return
		}
		a.out.Chat("About " + answer + ".")
	case domain.ParamTemperature:
		answer, err := a.lookup.Temperature(current)
		if err != nil {
			a.out.Chat("This step doesn't mention a temperature.")
			return
		}
		a.out.Chat(answer + ".")
	}
}

func (a *Assistant) showHelp() {
	a.out.Step("Commands:")
	a.out.Instruction("  load <url>        Load a recipe from a web page")
	a.out.Instruction("  next / continue   Move to the next step")
	a.out.Instruction("  previous / back   Go back one step")
	a.out.Instruction("  repeat / again    Show the current step again")
	a.out.Instruction("  where am i        Show your position in the recipe")
	a.out.Instruction("  what's left       List the remaining steps")
	a.out.Instruction("  ingredients       List the ingredients")
	a.out.Instruction("  steps             List every step")
	a.out.Instruction("  overview          Recipe summary (servings, times)")
	a.out.Instruction("  help              Show this message")
	a.out.Instruction("  quit / exit       Leave")
	a.out.Blank()
	a.out.Step("Questions:")
	a.out.Instruction("  how much basil do I need    Ingredient amounts")
	a.out.Instruction("  how long / what temperature Current-step details")
	a.out.Instruction("  what is 2 cups in ml        Unit conversion")
	a.out.Instruction("  how to julienne carrots     Technique links")
}
