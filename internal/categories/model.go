package categories

import "errors"

// Category groups products for navigation and reporting. Categories carry no
// archive state: they are created, edited or deleted outright.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

func (c Category) RecordID() string     { return c.ID }
func (c Category) RecordArchived() bool { return false }

// ErrCategoryInUse blocks deletion while active products still reference the
// category.
var ErrCategoryInUse = errors.New("categories: category referenced by active products")
