/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flatjson provides flat key-value JSON formatting for design tokens.
package flatjson

import (
	"bennypowers.dev/figtokens/token"
)

// Formatter outputs bare values keyed by token key, without wrapper keys.
type Formatter struct{}

// New creates a new flat JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

// Entry returns the token's value. Notes are dropped.
func (f *Formatter) Entry(tok *token.Token) any {
	return tok.Value
}

// Nested implements formatter.Formatter.
func (f *Formatter) Nested() bool {
	return false
}
