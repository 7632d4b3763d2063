package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/sous-chef/souschef/internal/domain"
)

// Segmenter implements domain.Segmenter on top of the chat client.
type Segmenter struct {
	client *Client
	log    *zap.SugaredLogger
}

var _ domain.Segmenter = (*Segmenter)(nil)

// NewSegmenter wraps a chat client.
func NewSegmenter(client *Client, log *zap.SugaredLogger) *Segmenter {
	return &Segmenter{client: client, log: log}
}

// Segment asks the model to break the scraped content into raw ingredient
// lines and atomic steps. A reply with no usable steps, after every
// fallback, is ErrParseIncomplete.
func (s *Segmenter) Segment(ctx context.Context, raw *domain.RawRecipe) (*domain.SegmentedRecipe, error) {
	reply, err := s.client.Chat(ctx, PromptSegment, buildSegmentInput(raw))
	if err != nil {
		return nil, fmt.Errorf("llm: segment: %w", err)
	}

	seg, err := parseReply(reply)
	if err != nil {
		return nil, err
	}

	// The scraper's structured data wins over whatever the model echoed.
	if seg.Title == "" {
		seg.Title = raw.Title
	}
	if seg.Servings == "" {
		seg.Servings = raw.Servings
	}
	if seg.PrepTime == "" {
		seg.PrepTime = raw.PrepTime
	}
	if seg.CookTime == "" {
		seg.CookTime = raw.CookTime
	}
	if seg.TotalTime == "" {
		seg.TotalTime = raw.TotalTime
	}

	s.log.Infow("segmented recipe",
		"title", seg.Title, "ingredients", len(seg.Ingredients), "steps", len(seg.Steps))
	return seg, nil
}

// buildSegmentInput renders the scraped page as a plain-text context
// block: structured fields when the scraper found them, raw page text
// otherwise.
func buildSegmentInput(raw *domain.RawRecipe) string {
	var b strings.Builder
	if raw.Title != "" {
		fmt.Fprintf(&b, "TITLE: %s\n", raw.Title)
	}
	if raw.Servings != "" {
		fmt.Fprintf(&b, "SERVINGS: %s\n", raw.Servings)
	}
	if len(raw.Ingredients) > 0 {
		b.WriteString("\nINGREDIENT LINES:\n")
		for _, line := range raw.Ingredients {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}
	if len(raw.Instructions) > 0 {
		b.WriteString("\nINSTRUCTIONS:\n")
		for i, line := range raw.Instructions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, line)
		}
	}
	if len(raw.Ingredients) == 0 && len(raw.Instructions) == 0 {
		b.WriteString("\nPAGE TEXT:\n")
		b.WriteString(raw.PageText)
	}
	return b.String()
}

// segPayload is the strict JSON contract from PromptSegment.
type segPayload struct {
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Servings    string   `json:"servings"`
	PrepTime    string   `json:"prep_time"`
	CookTime    string   `json:"cook_time"`
	TotalTime   string   `json:"total_time"`
}

// parseReply accepts the strict JSON contract, JSON wrapped in code
// fences or prose, or the delimited plain-text fallback.
func parseReply(reply string) (*domain.SegmentedRecipe, error) {
	reply = stripCodeFence(reply)

	var p segPayload
	if err := json.Unmarshal([]byte(reply), &p); err != nil {
		// Some models wrap the JSON in prose; try the outermost braces.
		if start, end := strings.Index(reply, "{"), strings.LastIndex(reply, "}"); start >= 0 && end > start {
			err = json.Unmarshal([]byte(reply[start:end+1]), &p)
		}
		if err != nil {
			return parseDelimited(reply)
		}
	}

	seg := &domain.SegmentedRecipe{
		Title:       strings.TrimSpace(p.Title),
		Ingredients: cleanLines(p.Ingredients),
		Steps:       cleanLines(p.Steps),
		Servings:    strings.TrimSpace(p.Servings),
		PrepTime:    strings.TrimSpace(p.PrepTime),
		CookTime:    strings.TrimSpace(p.CookTime),
		TotalTime:   strings.TrimSpace(p.TotalTime),
	}
	if len(seg.Steps) == 0 {
		return nil, fmt.Errorf("llm: reply had no steps: %w", domain.ErrParseIncomplete)
	}
	return seg, nil
}

var listPrefixRe = regexp.MustCompile(`^(?:[-*•]|\d+[.)])\s*`)

// parseDelimited handles the INGREDIENTS:/STEPS: plain-text fallback,
// tolerating blank lines and stray list markers.
func parseDelimited(reply string) (*domain.SegmentedRecipe, error) {
	seg := &domain.SegmentedRecipe{}
	section := ""
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		upper := strings.ToUpper(strings.TrimSuffix(line, ":"))
		switch upper {
		case "INGREDIENTS":
			section = "ingredients"
			continue
		case "STEPS", "INSTRUCTIONS", "DIRECTIONS":
			section = "steps"
			continue
		}
		item := listPrefixRe.ReplaceAllString(line, "")
		if item == "" {
			continue
		}
		switch section {
		case "ingredients":
			seg.Ingredients = append(seg.Ingredients, item)
		case "steps":
			seg.Steps = append(seg.Steps, item)
		}
	}
	if len(seg.Steps) == 0 {
		return nil, fmt.Errorf("llm: unparseable reply: %w", domain.ErrParseIncomplete)
	}
	return seg, nil
}

// stripCodeFence removes a surrounding markdown code fence, with or
// without a language tag.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func cleanLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return out
}
