/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides design token types produced from Figma nodes.
package token

import (
	"fmt"
	"strings"
)

// Token is a single named design value within a category.
type Token struct {
	// Key is the normalized, lowercase identifier (e.g., "blue-500").
	Key string `json:"-"`

	// Value is either a literal (hex string, rem/ratio number, "4px")
	// or an alias expression like "{color.blue.500.value}".
	Value any `json:"value"`

	// Note records the raw measurement before conversion (e.g., "24px").
	Note string `json:"-"`
}

// IsAlias returns true if the token's value is an alias expression.
func (t *Token) IsAlias() bool {
	s, ok := t.Value.(string)
	return ok && IsAlias(s)
}

// Category identifies a token grouping sharing a value shape and output wrapper.
type Category string

const (
	// ColorPrimitive holds raw palette colors.
	ColorPrimitive Category = "color.primitive"

	// ColorSemantic holds purpose-named colors, possibly aliasing primitives.
	ColorSemantic Category = "color.semantic"

	// SizeSpacing holds spacing scale values in rem.
	SizeSpacing Category = "size.spacing"

	// SizeRadius holds corner radii.
	SizeRadius Category = "size.radius"

	// SizeIcon holds icon sizes in rem.
	SizeIcon Category = "size.icon"

	// TextTypography holds font sizes, line heights and the base font family.
	TextTypography Category = "text.typography"
)

// AllCategories returns every category in output order.
func AllCategories() []Category {
	return []Category{
		ColorPrimitive,
		ColorSemantic,
		SizeSpacing,
		SizeRadius,
		SizeIcon,
		TextTypography,
	}
}

// ValidCategories returns all valid category strings.
func ValidCategories() []string {
	all := AllCategories()
	result := make([]string, len(all))
	for i, c := range all {
		result[i] = string(c)
	}
	return result
}

// ParseCategory converts a string to a Category.
// Short forms like "primitive" or "spacing" are accepted.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "color.primitive", "primitive":
		return ColorPrimitive, nil
	case "color.semantic", "semantic", "semantics":
		return ColorSemantic, nil
	case "size.spacing", "spacing":
		return SizeSpacing, nil
	case "size.radius", "radius":
		return SizeRadius, nil
	case "size.icon", "icon":
		return SizeIcon, nil
	case "text.typography", "typography":
		return TextTypography, nil
	default:
		return "", fmt.Errorf("unknown category: %s (valid: %s)", s, strings.Join(ValidCategories(), ", "))
	}
}

// Group returns the first segment of the category (e.g., "color").
func (c Category) Group() string {
	group, _, _ := strings.Cut(string(c), ".")
	return group
}

// Name returns the second segment of the category (e.g., "primitive").
func (c Category) Name() string {
	_, name, _ := strings.Cut(string(c), ".")
	return name
}
