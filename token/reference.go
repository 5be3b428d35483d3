/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"
)

// AliasSuffix terminates every alias path, following the style-dictionary convention.
const AliasSuffix = "value"

// aliasPattern matches a whole-value alias like {color.blue.500.value}.
var aliasPattern = regexp.MustCompile(`^\{([^{}]+)\}$`)

// AliasExpression builds an alias expression from a group and a token path.
// AliasExpression("color", []string{"blue", "500"}) returns "{color.blue.500.value}".
func AliasExpression(group string, path []string) string {
	parts := make([]string, 0, len(path)+2)
	parts = append(parts, group)
	parts = append(parts, path...)
	parts = append(parts, AliasSuffix)
	return "{" + strings.Join(parts, ".") + "}"
}

// ParseAlias extracts the dotted path from an alias expression,
// without the trailing ".value" segment.
// Returns the path segments and true if valid, nil and false otherwise.
func ParseAlias(value string) ([]string, bool) {
	matches := aliasPattern.FindStringSubmatch(value)
	if len(matches) != 2 {
		return nil, false
	}
	parts := strings.Split(matches[1], ".")
	if len(parts) > 1 && parts[len(parts)-1] == AliasSuffix {
		parts = parts[:len(parts)-1]
	}
	for _, p := range parts {
		if p == "" {
			return nil, false
		}
	}
	return parts, true
}

// IsAlias returns true if the value is a whole-value alias expression.
func IsAlias(value string) bool {
	return aliasPattern.MatchString(value)
}
