// Package categories assigns spending categories to transaction descriptions
// using ordered keyword lists.
package categories

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"kumbara/internal/models"
)

//go:embed categories.yaml
var defaultTable []byte

// Categorizer matches descriptions against an ordered category table.
// The first category in declared order with a matching keyword wins.
type Categorizer struct {
	categories []models.Category
	fallback   models.Category
	byName     map[string]int
}

// New builds a categorizer from an ordered category table. The table must
// contain exactly one category without keywords, which becomes the fallback.
func New(table []models.Category) (*Categorizer, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("category table is empty")
	}

	c := &Categorizer{
		categories: make([]models.Category, 0, len(table)),
		byName:     make(map[string]int, len(table)),
	}

	fallbacks := 0
	for _, cat := range table {
		name := strings.TrimSpace(cat.Name)
		if name == "" {
			return nil, fmt.Errorf("category without a name")
		}
		if _, dup := c.byName[name]; dup {
			return nil, fmt.Errorf("duplicate category %q", name)
		}

		keywords := make([]string, 0, len(cat.Keywords))
		for _, kw := range cat.Keywords {
			if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
				keywords = append(keywords, kw)
			}
		}

		normalized := models.Category{Name: name, Keywords: keywords, Color: cat.Color, Icon: cat.Icon}
		if normalized.IsFallback() {
			fallbacks++
			c.fallback = normalized
		}
		c.byName[name] = len(c.categories)
		c.categories = append(c.categories, normalized)
	}

	if fallbacks != 1 {
		return nil, fmt.Errorf("category table must have exactly one fallback category, got %d", fallbacks)
	}
	return c, nil
}

// Default returns the categorizer for the built-in category table.
func Default() *Categorizer {
	var table []models.Category
	if err := yaml.Unmarshal(defaultTable, &table); err != nil {
		panic(fmt.Sprintf("categories: invalid embedded table: %v", err))
	}
	c, err := New(table)
	if err != nil {
		panic(fmt.Sprintf("categories: invalid embedded table: %v", err))
	}
	return c
}

// Categorize returns the category name for a free-text description. It never
// fails: descriptions matching no keyword get the fallback category.
func (c *Categorizer) Categorize(description string) string {
	desc := strings.ToLower(strings.TrimSpace(description))
	if desc == "" {
		return c.fallback.Name
	}

	for _, cat := range c.categories {
		if cat.IsFallback() {
			continue
		}
		for _, kw := range cat.Keywords {
			if strings.Contains(desc, kw) {
				return cat.Name
			}
		}
	}
	return c.fallback.Name
}

// ColorOf returns the display color of a category, or the fallback color for
// unknown names.
func (c *Categorizer) ColorOf(name string) string {
	return c.lookup(name).Color
}

// IconOf returns the display icon of a category, or the fallback icon for
// unknown names.
func (c *Categorizer) IconOf(name string) string {
	return c.lookup(name).Icon
}

// AllCategoryNames returns every category name in declared order.
func (c *Categorizer) AllCategoryNames() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// Categories returns copies of the category definitions in declared order.
func (c *Categorizer) Categories() []models.Category {
	out := make([]models.Category, len(c.categories))
	for i, cat := range c.categories {
		cat.Keywords = append([]string(nil), cat.Keywords...)
		out[i] = cat
	}
	return out
}

// IsKnown reports whether name is one of the configured categories.
func (c *Categorizer) IsKnown(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// FallbackName returns the name of the fallback category.
func (c *Categorizer) FallbackName() string {
	return c.fallback.Name
}

func (c *Categorizer) lookup(name string) models.Category {
	if i, ok := c.byName[name]; ok {
		return c.categories[i]
	}
	return c.fallback
}
