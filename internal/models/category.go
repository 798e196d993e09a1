package models

// Category represents a spending category with its display attributes and the
// keywords used to assign it automatically. A category without keywords is the
// fallback bucket.
type Category struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
	Color    string   `yaml:"color" json:"color"`
	Icon     string   `yaml:"icon" json:"icon"`
}

// IsFallback reports whether the category is the keyword-less fallback bucket.
func (c Category) IsFallback() bool {
	return len(c.Keywords) == 0
}
