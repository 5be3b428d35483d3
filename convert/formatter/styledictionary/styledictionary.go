/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package styledictionary formats tokens as Style Dictionary records.
package styledictionary

import (
	"bennypowers.dev/figtokens/convert/formatter"
	"bennypowers.dev/figtokens/token"
)

// Formatter outputs {"value": v, "attributes": {"note": n}} records.
type Formatter struct{}

// New creates a new Style Dictionary formatter.
func New() *Formatter {
	return &Formatter{}
}

// Entry renders a token record. Attributes are present only when the token has a note.
func (f *Formatter) Entry(tok *token.Token) any {
	entry := formatter.NewObject()
	entry.Set("value", tok.Value)
	if tok.Note != "" {
		attributes := formatter.NewObject()
		attributes.Set("note", tok.Note)
		entry.Set("attributes", attributes)
	}
	return entry
}

// Nested implements formatter.Formatter.
func (f *Formatter) Nested() bool {
	return true
}
