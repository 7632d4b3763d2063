// Package session owns the aggregate for one loaded recipe: the parsed
// ingredient records, the step registry, and the navigation cursor.
// Exactly one session is live at a time; loading a new recipe replaces it
// wholesale.
package session

import (
	"github.com/google/uuid"

	"github.com/sous-chef/souschef/internal/domain"
	"github.com/sous-chef/souschef/internal/steps"
)

// Session is a loaded recipe plus the navigation state over it.
type Session struct {
	ID     string
	Recipe *domain.Recipe
	Steps  *steps.Registry
	Cursor *steps.Cursor
}

// New builds a fresh session over a parsed recipe, cursor not yet started.
func New(rec *domain.Recipe) *Session {
	texts := make([]string, 0, len(rec.Steps))
	for _, s := range rec.Steps {
		texts = append(texts, s.Text)
	}
	reg := steps.NewRegistry(texts)
	return &Session{
		ID:     uuid.NewString(),
		Recipe: rec,
		Steps:  reg,
		Cursor: steps.NewCursor(reg),
	}
}

// CurrentStep returns the step the cursor points at, or nil when cooking
// has not started or is finished.
func (s *Session) CurrentStep() *domain.Step {
	step, err := s.Cursor.Current()
	if err != nil {
		return nil
	}
	return &step
}
