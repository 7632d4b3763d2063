package steps

import (
	"sync"

	"github.com/sous-chef/souschef/internal/domain"
)

// State describes where the cursor is.
type State int

const (
	// StateNotStarted is the initial state, before the first "next".
	StateNotStarted State = iota
	// StateAt means the cursor points at a step.
	StateAt
	// StateFinished means the cursor has moved past the last step.
	StateFinished
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateAt:
		return "at"
	case StateFinished:
		return "finished"
	default:
		return "not_started"
	}
}

const notStarted = -1

// Cursor tracks the current position in a registry. Positions move only
// through Next and Previous; every query method is read-only. All methods
// are safe for concurrent use: the UI goroutine polls position while the
// app loop navigates.
//
// Internally pos is notStarted, a valid index in [0, N), or N once the
// last step has been passed.
type Cursor struct {
	reg *Registry

	mu  sync.Mutex
	pos int
}

// NewCursor returns a cursor over reg, not yet started.
func NewCursor(reg *Registry) *Cursor {
	return &Cursor{reg: reg, pos: notStarted}
}

// State reports the current cursor state.
func (c *Cursor) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.pos == notStarted:
		return StateNotStarted
	case c.pos >= c.reg.Count():
		return StateFinished
	default:
		return StateAt
	}
}

// Next advances to the following step and returns it. From the initial
// state it moves to the first step. Advancing past the last step finishes
// the session and returns ErrNoMoreSteps, as does any further "next".
func (c *Cursor) Next() (domain.Step, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.reg.Count()
	if c.pos >= n-1 {
		c.pos = n
		return domain.Step{}, domain.ErrNoMoreSteps
	}
	c.pos++
	return c.reg.Get(c.pos)
}

// Previous moves back one step and returns it. At the first step (or
// before starting) it returns ErrAtFirstStep and stays put. After
// finishing, it returns to the last step.
func (c *Cursor) Previous() (domain.Step, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.reg.Count()
	switch {
	case c.pos <= 0:
		return domain.Step{}, domain.ErrAtFirstStep
	case c.pos >= n:
		c.pos = n - 1
	default:
		c.pos--
	}
	return c.reg.Get(c.pos)
}

// Current returns the step the cursor points at without moving. Before the
// first "next" it returns ErrNotStarted; after the last step it returns
// ErrNoMoreSteps.
func (c *Cursor) Current() (domain.Step, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pos == notStarted {
		return domain.Step{}, domain.ErrNotStarted
	}
	if c.pos >= c.reg.Count() {
		return domain.Step{}, domain.ErrNoMoreSteps
	}
	return c.reg.Get(c.pos)
}

// Position returns the 1-based position of the current step and the total
// step count. Position is 0 before starting and N after finishing.
func (c *Cursor) Position() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.reg.Count()
	switch {
	case c.pos == notStarted:
		return 0, n
	case c.pos >= n:
		return n, n
	}
	return c.pos + 1, n
}

// Remaining returns the steps after the current one, in order. Before
// starting it returns every step; at the last step and after finishing it
// returns nothing.
func (c *Cursor) Remaining() []domain.Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.reg.Count()
	start := c.pos + 1
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	return c.reg.All()[start:]
}
