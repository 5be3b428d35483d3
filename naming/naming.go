/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package naming classifies Figma nodes into token categories by their
// display names, using a prioritized, declarative rule table.
package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/figtokens/token"
)

// Source is the node collection a rule reads from.
type Source int

const (
	// Styles is the collection of nodes behind published styles.
	Styles Source = iota

	// Components is the collection of nodes behind published components.
	Components
)

func (s Source) String() string {
	if s == Components {
		return "components"
	}
	return "styles"
}

// Delimiter selects how a name is split into segments.
type Delimiter int

const (
	// Slash splits on "/" only: "Primitive/Blue/500".
	Slash Delimiter = iota

	// SlashOrSpace treats spaces as "/": "Semantic/Text Primary".
	SlashOrSpace

	// SlashElseSpace splits on "/" when present, otherwise on runs of
	// whitespace: "Spacing/MD" or "Spacing 4".
	SlashElseSpace
)

// Rule declares how names of one category are recognized and keyed.
type Rule struct {
	Category token.Category
	Source   Source

	// Contains is a substring the raw name must contain. Empty matches any name.
	Contains string

	// NodeType is the node type the node must have. Empty matches any type.
	NodeType string

	Delimiter Delimiter

	// KeepHead includes the first segment in the key ("heading-large").
	KeepHead bool

	// KeyPrefix is prepended to the key ("spacing-md").
	KeyPrefix string
}

// Parsed is a name broken into category, discriminator and key segments.
type Parsed struct {
	Category token.Category

	// Head is the lowercased first segment.
	Head string

	// Segments are the lowercased key segments, prefix and head included when configured.
	Segments []string
}

// Key joins the segments with "-".
func (p Parsed) Key() string {
	return strings.Join(p.Segments, "-")
}

// Tail returns the segments after any key prefix or kept head.
func (p Parsed) Tail(r Rule) []string {
	skip := 0
	if r.KeyPrefix != "" {
		skip++
	}
	if r.KeepHead {
		skip++
	}
	return p.Segments[min(skip, len(p.Segments)):]
}

// Matches reports whether a node's name and type satisfy the rule's predicates.
func (r Rule) Matches(name, nodeType string) bool {
	if r.NodeType != "" && nodeType != r.NodeType {
		return false
	}
	if r.Contains != "" && !strings.Contains(name, r.Contains) {
		return false
	}
	return true
}

// Parse splits name according to the rule. It returns false when the name
// has no key segment after the discriminator.
func (r Rule) Parse(name string) (Parsed, bool) {
	segments := Split(name, r.Delimiter)
	if len(segments) < 2 {
		return Parsed{}, false
	}

	for i, s := range segments {
		segments[i] = Lower(s)
	}

	head := segments[0]
	keySegments := make([]string, 0, len(segments)+1)
	if r.KeyPrefix != "" {
		keySegments = append(keySegments, r.KeyPrefix)
	}
	if r.KeepHead {
		keySegments = append(keySegments, head)
	}
	keySegments = append(keySegments, segments[1:]...)

	return Parsed{
		Category: r.Category,
		Head:     head,
		Segments: keySegments,
	}, true
}

// Split breaks a name into trimmed, non-empty segments.
func Split(name string, d Delimiter) []string {
	var raw []string
	switch d {
	case SlashOrSpace:
		raw = strings.Split(strings.ReplaceAll(name, " ", "/"), "/")
	case SlashElseSpace:
		if strings.Contains(name, "/") {
			raw = strings.Split(name, "/")
		} else {
			raw = strings.Fields(name)
		}
	default:
		raw = strings.Split(name, "/")
	}

	segments := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// Lower lowercases s with Unicode-aware case mapping.
// A new Caser is created per call because Casers are not safe for concurrent use.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Table is an ordered list of rules. Earlier rules take priority in listings,
// but a node is classified into every category whose rule matches.
type Table []Rule

// DefaultRules returns the standard naming convention.
func DefaultRules() Table {
	return Table{
		{Category: token.ColorPrimitive, Source: Styles, Contains: "Primitive", Delimiter: Slash},
		{Category: token.ColorSemantic, Source: Styles, Contains: "Semantic", Delimiter: SlashOrSpace},
		{Category: token.TextTypography, Source: Styles, NodeType: "TEXT", Delimiter: Slash, KeepHead: true},
		{Category: token.SizeSpacing, Source: Components, Contains: "Spacing", Delimiter: SlashElseSpace, KeyPrefix: "spacing"},
		{Category: token.SizeRadius, Source: Components, Contains: "Radius", Delimiter: SlashElseSpace, KeyPrefix: "radius"},
		{Category: token.SizeIcon, Source: Components, Contains: "Icon", Delimiter: SlashElseSpace, KeyPrefix: "icon"},
	}
}

// ComponentTypography reads typography from components wrapping a text node
// of the same name, instead of from text styles.
var ComponentTypography = Rule{
	Category:  token.TextTypography,
	Source:    Components,
	NodeType:  "COMPONENT",
	Delimiter: Slash,
	KeepHead:  true,
}

// With returns a copy of the table with rule replacing the rule of the same category.
// The rule is appended when no rule for its category exists.
func (t Table) With(rule Rule) Table {
	result := make(Table, 0, len(t)+1)
	replaced := false
	for _, r := range t {
		if r.Category == rule.Category {
			result = append(result, rule)
			replaced = true
			continue
		}
		result = append(result, r)
	}
	if !replaced {
		result = append(result, rule)
	}
	return result
}

// Rule returns the rule for a category.
func (t Table) Rule(c token.Category) (Rule, bool) {
	for _, r := range t {
		if r.Category == c {
			return r, true
		}
	}
	return Rule{}, false
}

// Classify returns every parse of a node from source, in table order.
func (t Table) Classify(source Source, name, nodeType string) []Parsed {
	var result []Parsed
	for _, r := range t {
		if r.Source != source || !r.Matches(name, nodeType) {
			continue
		}
		if p, ok := r.Parse(name); ok {
			result = append(result, p)
		}
	}
	return result
}
