/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package dtcg provides DTCG-style JSON formatting for design tokens.
package dtcg

import (
	"bennypowers.dev/figtokens/convert/formatter"
	"bennypowers.dev/figtokens/token"
)

// Formatter outputs {"$value": v, "$description": note} records.
type Formatter struct{}

// New creates a new DTCG formatter.
func New() *Formatter {
	return &Formatter{}
}

// Entry renders a token record. The note, when present, becomes the description.
func (f *Formatter) Entry(tok *token.Token) any {
	entry := formatter.NewObject()
	entry.Set("$value", tok.Value)
	if tok.Note != "" {
		entry.Set("$description", tok.Note)
	}
	return entry
}

// Nested implements formatter.Formatter.
func (f *Formatter) Nested() bool {
	return true
}
