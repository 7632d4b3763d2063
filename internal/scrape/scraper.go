// Package scrape fetches recipe pages and pulls out the schema.org
// JSON-LD recipe block. Pages without one still come back with their text
// so the segmenter can take over.
package scrape

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"

	"github.com/sous-chef/souschef/internal/domain"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// pageTextLimit caps the fallback text handed to the segmenter.
const pageTextLimit = 20000

// Collector fetches recipe pages.
type Collector struct {
	ua      string
	timeout time.Duration
	log     *zap.SugaredLogger
}

var _ domain.Fetcher = (*Collector)(nil)

// Option configures the collector.
type Option func(*Collector)

// WithUserAgent overrides the browser User-Agent sent with requests. An
// empty value keeps the default, so config values can be passed through
// unconditionally.
func WithUserAgent(ua string) Option {
	return func(c *Collector) {
		if ua != "" {
			c.ua = ua
		}
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Collector) { c.timeout = d }
}

// New creates a collector.
func New(log *zap.SugaredLogger, opts ...Option) *Collector {
	c := &Collector{
		ua:      defaultUserAgent,
		timeout: 20 * time.Second,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch downloads the page and extracts its recipe data.
func (c *Collector) Fetch(ctx context.Context, pageURL string) (*domain.RawRecipe, error) {
	col := colly.NewCollector(
		colly.UserAgent(c.ua),
		colly.StdlibContext(ctx),
	)
	col.SetRequestTimeout(c.timeout)

	raw := &domain.RawRecipe{URL: pageURL}
	var recipe *jsonLDRecipe
	var pageTitle string

	col.OnHTML(`script[type="application/ld+json"]`, func(e *colly.HTMLElement) {
		if recipe != nil {
			return
		}
		if r, ok := decodeRecipe([]byte(e.Text)); ok {
			recipe = r
		}
	})
	col.OnHTML("title", func(e *colly.HTMLElement) {
		if pageTitle == "" {
			pageTitle = strings.TrimSpace(e.Text)
		}
	})
	col.OnHTML("body", func(e *colly.HTMLElement) {
		if raw.PageText != "" {
			return
		}
		text := strings.Join(strings.Fields(e.Text), " ")
		if len(text) > pageTextLimit {
			text = text[:pageTextLimit]
		}
		raw.PageText = text
	})

	if err := col.Visit(pageURL); err != nil {
		return nil, fmt.Errorf("scrape: fetching %s: %w", pageURL, err)
	}
	col.Wait()

	if recipe == nil {
		c.log.Debugw("no recipe json-ld, falling back to page text", "url", pageURL)
		if raw.PageText == "" {
			return nil, fmt.Errorf("scrape: empty page %s: %w", pageURL, domain.ErrParseIncomplete)
		}
		raw.Title = pageTitle
		return raw, nil
	}

	raw.Title = recipe.name
	if raw.Title == "" {
		raw.Title = pageTitle
	}
	raw.Ingredients = recipe.ingredients
	raw.Instructions = recipe.instructions
	raw.Servings = recipe.yield
	raw.PrepTime = HumanizeISO8601(recipe.prepTime)
	raw.CookTime = HumanizeISO8601(recipe.cookTime)
	raw.TotalTime = HumanizeISO8601(recipe.totalTime)

	c.log.Infow("scraped recipe",
		"url", pageURL, "title", raw.Title,
		"ingredients", len(raw.Ingredients), "instructions", len(raw.Instructions))
	return raw, nil
}
