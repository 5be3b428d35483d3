/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/figtokens/convert"
	"bennypowers.dev/figtokens/testutil"
	"bennypowers.dev/figtokens/token"
)

func newSet(tokens ...*token.Token) *token.Set {
	set := token.NewSet()
	for _, tok := range tokens {
		set.Put(tok)
	}
	return set
}

func typographySet() *token.Set {
	return newSet(
		&token.Token{Key: "heading-large-size", Value: "2rem", Note: "32px"},
		&token.Token{Key: "heading-large-line", Value: 1.5, Note: "150%"},
	)
}

func TestAssemble_EmptySpacing(t *testing.T) {
	doc := convert.Assemble(token.SizeSpacing, token.NewSet(), convert.AssembleOptions{})
	got, err := convert.Serialize(doc, convert.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, `{"size":{}}`, string(got))
}

func TestAssemble_NilSet(t *testing.T) {
	doc := convert.Assemble(token.SizeRadius, nil, convert.AssembleOptions{})
	got, err := convert.Serialize(doc, convert.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, `{"radius":{}}`, string(got))
}

func TestAssemble_EmptyTypographyHasBaseFamily(t *testing.T) {
	doc := convert.Assemble(token.TextTypography, token.NewSet(), convert.AssembleOptions{
		BaseFontFamily: "UDShinGoPr6N, sans-serif",
	})
	got, err := convert.Serialize(doc, convert.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, `{"text":{"base-family":{"value":"UDShinGoPr6N, sans-serif"}}}`, string(got))
}

func TestAssemble_BaseFamilyAppendedLast(t *testing.T) {
	doc := convert.Assemble(token.TextTypography, typographySet(), convert.AssembleOptions{
		BaseFontFamily: "Inter",
	})
	assert.Equal(t, []string{"heading-large-size", "heading-large-line", "base-family"}, doc.Tokens.Keys())
}

func TestAssemble_SortKeys(t *testing.T) {
	input := typographySet()
	doc := convert.Assemble(token.TextTypography, input, convert.AssembleOptions{
		BaseFontFamily: "Inter",
		SortKeys:       true,
	})
	assert.Equal(t, []string{"base-family", "heading-large-line", "heading-large-size"}, doc.Tokens.Keys())
	assert.Equal(t, 2, input.Len(), "input set must not be modified")
}

func TestAssemble_Wrappers(t *testing.T) {
	tests := []struct {
		category token.Category
		want     []string
	}{
		{token.ColorPrimitive, []string{"color"}},
		{token.ColorSemantic, []string{"color"}},
		{token.SizeSpacing, []string{"size"}},
		{token.SizeRadius, []string{"radius"}},
		{token.SizeIcon, []string{"size"}},
		{token.TextTypography, []string{"text"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			doc := convert.Assemble(tt.category, nil, convert.AssembleOptions{})
			assert.Equal(t, tt.want, doc.Wrapper)
		})
	}
}

func TestSerialize_NestedWrapper(t *testing.T) {
	set := newSet(&token.Token{Key: "primary", Value: "{color.blue.500.value}"})
	doc := convert.Assemble(token.ColorSemantic, set, convert.AssembleOptions{
		Wrapper: []string{"color", "brand"},
	})
	got, err := convert.Serialize(doc, convert.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, `{"color":{"brand":{"primary":{"value":"{color.blue.500.value}"}}}}`, string(got))
}

func TestSerialize_Golden(t *testing.T) {
	doc := convert.Assemble(token.TextTypography, typographySet(), convert.AssembleOptions{
		BaseFontFamily: "UDShinGoPr6N, sans-serif",
	})

	tests := []struct {
		name string
		opts convert.Options
	}{
		{"typography-style-dictionary", convert.Options{Format: convert.FormatStyleDictionary}},
		{"typography-style-dictionary-indented", convert.Options{Format: convert.FormatStyleDictionary, Indent: "  "}},
		{"typography-dtcg", convert.Options{Format: convert.FormatDTCG, Indent: "  "}},
		{"typography-flat", convert.Options{Format: convert.FormatFlatJSON, Indent: "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := convert.Serialize(doc, tt.opts)
			require.NoError(t, err)
			testutil.Golden(t).Assert(t, tt.name, got)
		})
	}
}
