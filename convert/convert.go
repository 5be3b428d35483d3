/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert assembles extracted tokens into per-category documents
// and serializes them as JSON.
package convert

import (
	"fmt"

	"bennypowers.dev/figtokens/convert/formatter"
)

// Options configures document serialization.
type Options struct {
	// Indent pretty-prints output with the given indent. Empty means compact.
	Indent string

	// Format specifies the output format (default FormatStyleDictionary).
	Format Format
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Format: FormatStyleDictionary,
	}
}

// Build converts a document to its JSON object, tokens in document order.
func Build(doc *Document, opts Options) (*formatter.Object, error) {
	f, err := NewFormatter(opts.Format)
	if err != nil {
		return nil, err
	}

	body := formatter.NewObject()
	if doc.Tokens != nil {
		for _, tok := range doc.Tokens.Tokens() {
			body.Set(tok.Key, f.Entry(tok))
		}
	}

	if !f.Nested() {
		return body, nil
	}

	for i := len(doc.Wrapper) - 1; i >= 0; i-- {
		outer := formatter.NewObject()
		outer.Set(doc.Wrapper[i], body)
		body = outer
	}
	return body, nil
}

// Serialize renders a document as JSON. Output has no trailing newline.
func Serialize(doc *Document, opts Options) ([]byte, error) {
	obj, err := Build(doc, opts)
	if err != nil {
		return nil, err
	}
	data, err := formatter.MarshalIndent(obj, opts.Indent)
	if err != nil {
		return nil, fmt.Errorf("serializing %s: %w", doc.Category, err)
	}
	return data, nil
}
