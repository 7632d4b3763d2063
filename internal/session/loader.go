package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sous-chef/souschef/internal/domain"
	"github.com/sous-chef/souschef/internal/ingredient"
)

// Loader builds a session from a URL: fetch the page, segment it into
// atomic steps and ingredient lines, parse each line into a record.
type Loader struct {
	fetcher   domain.Fetcher
	segmenter domain.Segmenter
	parser    *ingredient.Parser
	log       *zap.SugaredLogger
}

// NewLoader wires the load pipeline.
func NewLoader(fetcher domain.Fetcher, segmenter domain.Segmenter, parser *ingredient.Parser, log *zap.SugaredLogger) *Loader {
	return &Loader{fetcher: fetcher, segmenter: segmenter, parser: parser, log: log}
}

// Load runs the pipeline. A recipe that cannot be segmented into at least
// one step is ErrParseIncomplete; either way no partial session escapes.
func (l *Loader) Load(ctx context.Context, url string) (*Session, error) {
	raw, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", url, err)
	}

	seg, err := l.segmenter.Segment(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("segmenting %s: %w", url, err)
	}
	if len(seg.Steps) == 0 {
		return nil, fmt.Errorf("segmenting %s: %w", url, domain.ErrParseIncomplete)
	}

	rec := &domain.Recipe{
		URL:         url,
		Title:       seg.Title,
		Ingredients: l.parser.ParseAll(seg.Ingredients),
		Servings:    seg.Servings,
		PrepTime:    seg.PrepTime,
		CookTime:    seg.CookTime,
		TotalTime:   seg.TotalTime,
	}
	for i, text := range seg.Steps {
		rec.Steps = append(rec.Steps, domain.Step{Position: i + 1, Text: text})
	}

	sess := New(rec)
	l.log.Infow("session ready",
		"session_id", sess.ID, "url", url, "title", rec.Title,
		"ingredients", len(rec.Ingredients), "steps", len(rec.Steps))
	return sess, nil
}
