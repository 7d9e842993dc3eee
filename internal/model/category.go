package model

import "fmt"

// Category is the label the classification service assigns to a message template.
type Category string

// The three categories a template can receive.
const (
	CategoryUtility        Category = "Utility"
	CategoryMarketing      Category = "Marketing"
	CategoryAuthentication Category = "Authentication"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryUtility,
	CategoryMarketing,
	CategoryAuthentication,
}

// ParseCategory converts a wire value into a Category.
// Matching is exact; the service always sends the capitalized form.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}

func (c Category) String() string {
	return string(c)
}
