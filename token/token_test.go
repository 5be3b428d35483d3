/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"reflect"
	"testing"

	"bennypowers.dev/figtokens/token"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Category
		wantErr  bool
	}{
		{input: "color.primitive", expected: token.ColorPrimitive},
		{input: "primitive", expected: token.ColorPrimitive},
		{input: "Semantic", expected: token.ColorSemantic},
		{input: "semantics", expected: token.ColorSemantic},
		{input: "spacing", expected: token.SizeSpacing},
		{input: "size.radius", expected: token.SizeRadius},
		{input: "icon", expected: token.SizeIcon},
		{input: " typography ", expected: token.TextTypography},
		{input: "shadow", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := token.ParseCategory(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseCategory(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCategory_GroupAndName(t *testing.T) {
	if g := token.SizeSpacing.Group(); g != "size" {
		t.Errorf("Group() = %q, want %q", g, "size")
	}
	if n := token.TextTypography.Name(); n != "typography" {
		t.Errorf("Name() = %q, want %q", n, "typography")
	}
}

func TestSet_PutLastWriteWins(t *testing.T) {
	s := token.NewSet()
	s.Put(&token.Token{Key: "b", Value: "#000000"})
	s.Put(&token.Token{Key: "a", Value: "#111111"})
	s.Put(&token.Token{Key: "b", Value: "#ffffff"})

	if s.Len() != 2 {
		t.Fatalf("expected 2 tokens, got %d", s.Len())
	}
	if got := s.Keys(); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Errorf("Keys() = %v, want [b a]", got)
	}
	tok, ok := s.Get("b")
	if !ok {
		t.Fatal("expected key b")
	}
	if tok.Value != "#ffffff" {
		t.Errorf("expected later write to win, got %v", tok.Value)
	}
}

func TestSet_Sorted(t *testing.T) {
	s := token.NewSet()
	for _, k := range []string{"spacing-md", "spacing-lg", "spacing-2xs"} {
		s.Put(&token.Token{Key: k, Value: 1.0})
	}

	sorted := s.Sorted()
	if got := sorted.Keys(); !reflect.DeepEqual(got, []string{"spacing-2xs", "spacing-lg", "spacing-md"}) {
		t.Errorf("Sorted().Keys() = %v", got)
	}
	if got := s.Keys(); got[0] != "spacing-md" {
		t.Errorf("Sorted() must not reorder the receiver, got %v", got)
	}
}

func TestSet_Merge(t *testing.T) {
	a := token.NewSet()
	a.Put(&token.Token{Key: "x", Value: 1.0})
	b := token.NewSet()
	b.Put(&token.Token{Key: "y", Value: 2.0})
	b.Put(&token.Token{Key: "x", Value: 3.0})

	a.Merge(b)
	if got := a.Keys(); !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Errorf("Keys() = %v, want [x y]", got)
	}
	if tok, _ := a.Get("x"); tok.Value != 3.0 {
		t.Errorf("expected merged value 3, got %v", tok.Value)
	}
}

func TestAliasExpression(t *testing.T) {
	got := token.AliasExpression("color", []string{"blue", "500"})
	if got != "{color.blue.500.value}" {
		t.Errorf("AliasExpression() = %q", got)
	}
}

func TestParseAlias(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
		ok       bool
	}{
		{name: "style dictionary alias", input: "{color.blue.500.value}", expected: []string{"color", "blue", "500"}, ok: true},
		{name: "no value suffix", input: "{color.white}", expected: []string{"color", "white"}, ok: true},
		{name: "literal hex", input: "#ff0000", ok: false},
		{name: "embedded alias", input: "solid {color.white.value}", ok: false},
		{name: "empty segment", input: "{color..value}", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := token.ParseAlias(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseAlias(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseAlias(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToken_IsAlias(t *testing.T) {
	if !(&token.Token{Value: "{color.blue.500.value}"}).IsAlias() {
		t.Error("expected alias")
	}
	if (&token.Token{Value: 1.5}).IsAlias() {
		t.Error("numeric value is never an alias")
	}
}
