/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract

import (
	"strings"

	"bennypowers.dev/figtokens/figma"
	"bennypowers.dev/figtokens/naming"
	"bennypowers.dev/figtokens/token"
)

// AliasGroup is the token group semantic colors alias into.
const AliasGroup = "color"

// StyleIndex maps style names to their records.
type StyleIndex map[string]figma.Style

// NewStyleIndex indexes styles by name. On duplicate names the last record wins.
func NewStyleIndex(styles []figma.Style) StyleIndex {
	index := make(StyleIndex, len(styles))
	for _, s := range styles {
		index[s.Name] = s
	}
	return index
}

// Resolve returns the alias expression described by the style named name.
// It returns false when there is no such style or its description is empty or
// blank, meaning the literal value should be used. Runs of whitespace in the
// description become one path separator: "Blue 500" resolves to
// "{color.blue.500.value}".
// Alias targets are not checked.
func (idx StyleIndex) Resolve(name string) (string, bool) {
	style, ok := idx[name]
	if !ok || style.Description == "" {
		return "", false
	}
	path := strings.Fields(naming.Lower(style.Description))
	if len(path) == 0 {
		return "", false
	}
	return token.AliasExpression(AliasGroup, path), true
}
