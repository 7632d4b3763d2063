package scrape

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// jsonLDRecipe is the normalized form of a schema.org Recipe node.
type jsonLDRecipe struct {
	name         string
	ingredients  []string
	instructions []string
	yield        string
	prepTime     string
	cookTime     string
	totalTime    string
}

// decodeRecipe parses a JSON-LD script body and finds the Recipe node.
// Publishers wrap these in every shape imaginable: a single object, a
// top-level array, or an @graph list.
func decodeRecipe(data []byte) (*jsonLDRecipe, bool) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, false
	}
	node, ok := findRecipeNode(root)
	if !ok {
		return nil, false
	}

	r := &jsonLDRecipe{
		name:      stringField(node, "name"),
		yield:     yieldField(node),
		prepTime:  stringField(node, "prepTime"),
		cookTime:  stringField(node, "cookTime"),
		totalTime: stringField(node, "totalTime"),
	}
	r.ingredients = stringList(node["recipeIngredient"])
	if len(r.ingredients) == 0 {
		r.ingredients = stringList(node["ingredients"])
	}
	r.instructions = instructionTexts(node["recipeInstructions"])

	if len(r.ingredients) == 0 && len(r.instructions) == 0 {
		return nil, false
	}
	return r, true
}

func findRecipeNode(root any) (map[string]any, bool) {
	switch v := root.(type) {
	case map[string]any:
		if isRecipeType(v["@type"]) {
			return v, true
		}
		if graph, ok := v["@graph"].([]any); ok {
			return findRecipeNode(graph)
		}
	case []any:
		for _, item := range v {
			if node, ok := findRecipeNode(item); ok {
				return node, true
			}
		}
	}
	return nil, false
}

func isRecipeType(t any) bool {
	switch v := t.(type) {
	case string:
		return strings.EqualFold(v, "Recipe")
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && strings.EqualFold(s, "Recipe") {
				return true
			}
		}
	}
	return false
}

// instructionTexts flattens recipeInstructions: plain strings, HowToStep
// objects, and HowToSection objects nesting further steps.
func instructionTexts(v any) []string {
	var out []string
	switch node := v.(type) {
	case string:
		if t := strings.TrimSpace(node); t != "" {
			out = append(out, t)
		}
	case []any:
		for _, item := range node {
			out = append(out, instructionTexts(item)...)
		}
	case map[string]any:
		if items, ok := node["itemListElement"]; ok {
			out = append(out, instructionTexts(items)...)
			break
		}
		if t := strings.TrimSpace(stringField(node, "text")); t != "" {
			out = append(out, t)
		} else if t := strings.TrimSpace(stringField(node, "name")); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func stringList(v any) []string {
	var out []string
	switch node := v.(type) {
	case string:
		if t := strings.TrimSpace(node); t != "" {
			out = append(out, t)
		}
	case []any:
		for _, item := range node {
			if s, ok := item.(string); ok {
				if t := strings.TrimSpace(s); t != "" {
					out = append(out, t)
				}
			}
		}
	}
	return out
}

func stringField(node map[string]any, key string) string {
	s, _ := node[key].(string)
	return strings.TrimSpace(s)
}

// yieldField handles recipeYield as a string, number, or list.
func yieldField(node map[string]any) string {
	switch v := node["recipeYield"].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return fmt.Sprintf("%g", v)
	case []any:
		for _, item := range v {
			switch s := item.(type) {
			case string:
				if t := strings.TrimSpace(s); t != "" {
					return t
				}
			case float64:
				return fmt.Sprintf("%g", s)
			}
		}
	}
	return ""
}

var isoDurationRe = regexp.MustCompile(`(?i)^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// HumanizeISO8601 renders a schema.org duration for display:
// "PT1H30M" becomes "1 hour 30 minutes". Anything that is not an ISO-8601
// duration passes through untouched.
func HumanizeISO8601(s string) string {
	m := isoDurationRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return s
	}
	var parts []string
	add := func(n string, word string) {
		if n == "" || n == "0" {
			return
		}
		if n == "1" {
			parts = append(parts, "1 "+word)
			return
		}
		parts = append(parts, n+" "+word+"s")
	}
	add(m[1], "hour")
	add(m[2], "minute")
	add(m[3], "second")
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " ")
}
