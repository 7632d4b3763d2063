package steps

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sous-chef/souschef/internal/domain"
)

func threeStepCursor(t *testing.T) *Cursor {
	t.Helper()
	return NewCursor(NewRegistry([]string{"Boil water.", "Add pasta.", "Drain."}))
}

func TestCursorStartsNotStarted(t *testing.T) {
	c := threeStepCursor(t)

	assert.Equal(t, StateNotStarted, c.State())

	_, err := c.Current()
	assert.True(t, errors.Is(err, domain.ErrNotStarted))

	pos, total := c.Position()
	assert.Equal(t, 0, pos)
	assert.Equal(t, 3, total)
}

func TestCursorNextWalksEveryStep(t *testing.T) {
	c := threeStepCursor(t)

	for want := 1; want <= 3; want++ {
		s, err := c.Next()
		require.NoError(t, err)
		assert.Equal(t, want, s.Position)
		assert.Equal(t, StateAt, c.State())
	}

	// Past the last step the cursor finishes and stays finished.
	_, err := c.Next()
	assert.True(t, errors.Is(err, domain.ErrNoMoreSteps))
	assert.Equal(t, StateFinished, c.State())

	_, err = c.Next()
	assert.True(t, errors.Is(err, domain.ErrNoMoreSteps))
	assert.Equal(t, StateFinished, c.State())
}

func TestCursorPreviousBeforeStart(t *testing.T) {
	c := threeStepCursor(t)

	_, err := c.Previous()
	assert.True(t, errors.Is(err, domain.ErrAtFirstStep))
	assert.Equal(t, StateNotStarted, c.State())
}

func TestCursorPreviousAtFirstStep(t *testing.T) {
	c := threeStepCursor(t)
	_, err := c.Next()
	require.NoError(t, err)

	_, err = c.Previous()
	assert.True(t, errors.Is(err, domain.ErrAtFirstStep))

	// Cursor did not move.
	s, err := c.Current()
	require.NoError(t, err)
	assert.Equal(t, 1, s.Position)
}

func TestCursorPreviousStepsBack(t *testing.T) {
	c := threeStepCursor(t)
	c.Next()
	c.Next()

	s, err := c.Previous()
	require.NoError(t, err)
	assert.Equal(t, 1, s.Position)
}

func TestCursorPreviousAfterFinish(t *testing.T) {
	c := threeStepCursor(t)
	c.Next()
	c.Next()
	c.Next()
	c.Next() // finishes

	s, err := c.Previous()
	require.NoError(t, err)
	assert.Equal(t, 3, s.Position)
	assert.Equal(t, StateAt, c.State())
}

func TestCursorRepeatIsIdempotent(t *testing.T) {
	c := threeStepCursor(t)
	c.Next()
	c.Next()

	first, err := c.Current()
	require.NoError(t, err)
	second, err := c.Current()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, first.Position)
}

func TestCursorCurrentAfterFinish(t *testing.T) {
	c := threeStepCursor(t)
	for i := 0; i < 4; i++ {
		c.Next()
	}

	_, err := c.Current()
	assert.True(t, errors.Is(err, domain.ErrNoMoreSteps))
}

func TestCursorRemaining(t *testing.T) {
	c := threeStepCursor(t)

	assert.Len(t, c.Remaining(), 3, "everything remains before starting")

	c.Next()
	rem := c.Remaining()
	require.Len(t, rem, 2)
	assert.Equal(t, 2, rem[0].Position)

	c.Next()
	c.Next()
	assert.Empty(t, c.Remaining(), "nothing remains at the last step")

	c.Next()
	assert.Empty(t, c.Remaining(), "nothing remains after finishing")
}

func TestCursorQueriesDoNotMove(t *testing.T) {
	c := threeStepCursor(t)
	c.Next()

	c.Remaining()
	c.Position()
	c.State()
	c.Current()

	s, err := c.Current()
	require.NoError(t, err)
	assert.Equal(t, 1, s.Position)
}

// Exercises navigation from one goroutine while another polls the
// read-only queries, the way the UI status bar does. Meaningful under
// the race detector.
func TestCursorConcurrentNavigationAndPolling(t *testing.T) {
	c := NewCursor(NewRegistry([]string{"Boil water.", "Add pasta.", "Drain."}))
	done := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
				c.Position()
				c.State()
				c.Remaining()
			}
		}
	}()

	for i := 0; i < 200; i++ {
		c.Next()
		c.Previous()
	}
	close(done)
	wg.Wait()

	pos, total := c.Position()
	assert.Equal(t, 1, pos)
	assert.Equal(t, 3, total)
}

func TestCursorEmptyRegistry(t *testing.T) {
	c := NewCursor(NewRegistry(nil))

	_, err := c.Next()
	assert.True(t, errors.Is(err, domain.ErrNoMoreSteps))
}
