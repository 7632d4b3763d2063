// Package steps holds the ordered step registry of a loaded recipe and the
// navigation cursor over it.
package steps

import (
	"fmt"
	"strings"

	"github.com/sous-chef/souschef/internal/domain"
)

// Registry is the ordered list of atomic steps. It is loaded once per
// recipe and read-only afterwards.
type Registry struct {
	steps []domain.Step
}

// NewRegistry builds a registry from atomic step texts, in order.
func NewRegistry(texts []string) *Registry {
	r := &Registry{}
	r.Load(texts)
	return r
}

// Load replaces the registry contents. Positions are assigned 1-based in
// input order. Blank entries are dropped.
func (r *Registry) Load(texts []string) {
	r.steps = r.steps[:0]
	for _, t := range texts {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		r.steps = append(r.steps, domain.Step{Position: len(r.steps) + 1, Text: t})
	}
}

// Count returns the number of steps.
func (r *Registry) Count() int { return len(r.steps) }

// Get returns the step at 0-based index i.
func (r *Registry) Get(i int) (domain.Step, error) {
	if i < 0 || i >= len(r.steps) {
		return domain.Step{}, fmt.Errorf("%w: %d (have %d steps)", domain.ErrOutOfRange, i, len(r.steps))
	}
	return r.steps[i], nil
}

// All returns a copy of the steps in order.
func (r *Registry) All() []domain.Step {
	out := make([]domain.Step, len(r.steps))
	copy(out, r.steps)
	return out
}
