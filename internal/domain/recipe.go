// Package domain defines the core types and interfaces for the chef assistant.
// All other packages depend on domain; domain depends on nothing.
package domain

// Recipe is a fully parsed recipe, ready for navigation and questions.
type Recipe struct {
	URL         string
	Title       string
	Ingredients []Ingredient
	Steps       []Step
	Servings    string
	PrepTime    string // humanized, e.g. "30 minutes"
	CookTime    string
	TotalTime   string
}

// Ingredient is one parsed ingredient line. Raw always holds the verbatim
// source line, even when field extraction fails. Records are immutable
// once built.
type Ingredient struct {
	Raw         string
	Name        string
	Quantity    float64 // 0 means unspecified
	Unit        string  // "cups", "tablespoons", "grams", ""
	Descriptor  string  // "fresh", "large", ""
	Preparation string  // "finely chopped", "beaten", ""
}

// Step is a single atomic instruction.
type Step struct {
	Position int // 1-based
	Text     string
}

// RawRecipe is what the scraper could pull off the page, before the
// segmenter has normalized it. Structured fields are filled when the page
// carried machine-readable recipe data; PageText is the fallback.
type RawRecipe struct {
	URL          string
	Title        string
	Ingredients  []string
	Instructions []string
	Servings     string
	PrepTime     string
	CookTime     string
	TotalTime    string
	PageText     string
}

// SegmentedRecipe is the segmenter's output: raw ingredient lines plus
// atomic step texts, one action per step.
type SegmentedRecipe struct {
	Title       string
	Ingredients []string
	Steps       []string
	Servings    string
	PrepTime    string
	CookTime    string
	TotalTime   string
}
