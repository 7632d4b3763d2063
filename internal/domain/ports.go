package domain

import "context"

// Fetcher retrieves recipe content from a URL. Implementations can scrape
// live pages or serve canned fixtures in tests.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*RawRecipe, error)
}

// Segmenter normalizes scraped recipe content into atomic steps and raw
// ingredient lines. The production implementation calls an LLM.
type Segmenter interface {
	Segment(ctx context.Context, raw *RawRecipe) (*SegmentedRecipe, error)
}

// Tagger tokenizes a line into spans carrying lemma, part-of-speech, and a
// numeric flag. Implementations can be NLP-backed or canned for tests.
type Tagger interface {
	Tag(line string) ([]Token, error)
}
