package domain

// DefaultCategoryColor is used when a category is saved without a color.
const DefaultCategoryColor = "#FFFFFF"

type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Color string `json:"cor"`
}
