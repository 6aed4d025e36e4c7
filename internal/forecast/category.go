package forecast

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned by ParseCategory for names outside the
// closed category set.
var ErrUnknownCategory = errors.New("unknown category")

// Category is a product classification accepted by the predictor.
// The zero value means "no category selected".
type Category string

const (
	Electronics Category = "Electronics"
	Beauty      Category = "Beauty"
	Clothing    Category = "Clothing"
)

// Categories lists the selectable categories in display order.
var Categories = []Category{Electronics, Beauty, Clothing}

// Valid reports whether c is one of Categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the category name.
func (c Category) String() string { return string(c) }

// ParseCategory matches name case-insensitively against Categories.
func ParseCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	for _, c := range Categories {
		if strings.EqualFold(name, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w %q (valid: %s)", ErrUnknownCategory, name, joinCategories())
}

func joinCategories() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
