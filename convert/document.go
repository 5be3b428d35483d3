/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"bennypowers.dev/figtokens/token"
)

// BaseFamilyKey is the typography literal holding the base font family.
const BaseFamilyKey = "base-family"

// Document is one category's tokens ready for serialization.
type Document struct {
	Category token.Category

	// Wrapper holds the top-level keys the tokens nest under, outermost first.
	Wrapper []string

	Tokens *token.Set
}

// AssembleOptions configures document assembly.
type AssembleOptions struct {
	// Wrapper overrides the category's default wrapper keys.
	Wrapper []string

	// BaseFontFamily is injected into typography documents. Empty omits it.
	BaseFontFamily string

	// SortKeys orders tokens alphabetically by key.
	SortKeys bool
}

// DefaultWrapper returns the wrapper keys a category's document nests under.
func DefaultWrapper(c token.Category) []string {
	switch c {
	case token.SizeRadius:
		return []string{"radius"}
	case token.TextTypography:
		return []string{"text"}
	default:
		return []string{c.Group()}
	}
}

// Assemble builds a category document from extracted tokens.
// Category literals are appended after the extracted tokens, then the
// whole mapping is sorted when SortKeys is set. The input set is not modified.
func Assemble(category token.Category, set *token.Set, opts AssembleOptions) *Document {
	tokens := token.NewSet()
	if set != nil {
		tokens.Merge(set)
	}

	if category == token.TextTypography && opts.BaseFontFamily != "" {
		tokens.Put(&token.Token{Key: BaseFamilyKey, Value: opts.BaseFontFamily})
	}

	if opts.SortKeys {
		tokens = tokens.Sorted()
	}

	wrapper := opts.Wrapper
	if len(wrapper) == 0 {
		wrapper = DefaultWrapper(category)
	}

	return &Document{
		Category: category,
		Wrapper:  append([]string(nil), wrapper...),
		Tokens:   tokens,
	}
}
