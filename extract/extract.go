/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package extract turns classified Figma nodes into design tokens, one
// handler per token category.
package extract

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"bennypowers.dev/figtokens/figma"
	"bennypowers.dev/figtokens/internal/logger"
	"bennypowers.dev/figtokens/naming"
	"bennypowers.dev/figtokens/token"
	"bennypowers.dev/figtokens/units"
)

// Radius units.
const (
	RadiusPx  = "px"
	RadiusRem = "rem"
)

// Typography sources.
const (
	TypographyFromStyles     = "styles"
	TypographyFromComponents = "components"
)

// ErrMalformedNode is wrapped by every ExtractError.
var ErrMalformedNode = errors.New("malformed node")

// ExtractError reports a classified node lacking the property its category reads.
// The naming convention was violated upstream; extraction aborts rather than
// emit a null token.
type ExtractError struct {
	Category token.Category
	NodeID   string
	NodeName string
	Reason   string
}

// Error implements the error interface.
func (e *ExtractError) Error() string {
	return fmt.Sprintf("%s: node %s (%q): %s", e.Category, e.NodeID, e.NodeName, e.Reason)
}

// Unwrap returns ErrMalformedNode.
func (e *ExtractError) Unwrap() error {
	return ErrMalformedNode
}

// Options configures extraction.
type Options struct {
	// RootFontSize is the pixel size of 1rem.
	RootFontSize float64

	// RadiusUnit is RadiusPx ("4px" strings) or RadiusRem (numbers).
	RadiusUnit string

	// TypographySource is TypographyFromStyles or TypographyFromComponents.
	TypographySource string

	// SortNodes orders each collection by raw node name before extraction.
	SortNodes bool

	// KeepTransparentAlpha emits "00" alpha for paints with opacity 0.
	KeepTransparentAlpha bool

	// Ignore lists doublestar patterns of node names to skip.
	Ignore []string

	// Rules overrides the naming convention. Nil selects naming.DefaultRules.
	Rules naming.Table
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		RootFontSize:     units.DefaultRootFontSize,
		RadiusUnit:       RadiusPx,
		TypographySource: TypographyFromStyles,
		SortNodes:        true,
	}
}

// Match is a node classified into a category.
type Match struct {
	Node   *figma.Node
	Parsed naming.Parsed
}

// Classification groups matches by category, each in collection order.
type Classification map[token.Category][]Match

// Extractor extracts tokens from one snapshot's node collections.
type Extractor struct {
	opts   Options
	rules  naming.Table
	styles StyleIndex
}

// New creates an extractor. The style list backs semantic color aliases.
func New(styles []figma.Style, opts Options) *Extractor {
	rules := opts.Rules
	if rules == nil {
		rules = naming.DefaultRules()
		if opts.TypographySource == TypographyFromComponents {
			rules = rules.With(naming.ComponentTypography)
		}
	}
	if opts.RootFontSize <= 0 {
		opts.RootFontSize = units.DefaultRootFontSize
	}
	return &Extractor{
		opts:   opts,
		rules:  rules,
		styles: NewStyleIndex(styles),
	}
}

// Classify parses every node name once and groups the nodes by category.
// A node may appear under several categories.
func (e *Extractor) Classify(snap *figma.Snapshot) Classification {
	result := make(Classification)
	e.classifyInto(result, naming.Styles, snap.StyleNodes)
	e.classifyInto(result, naming.Components, snap.ComponentNodes)
	return result
}

func (e *Extractor) classifyInto(result Classification, source naming.Source, nodes *figma.NodeMap) {
	for _, id := range nodes.Unresolved() {
		logger.Warn("%s node %s could not be resolved, skipping", source, id)
	}

	ordered := nodes.Nodes()
	if e.opts.SortNodes {
		ordered = nodes.SortedByName()
	}

	for _, node := range ordered {
		if e.ignored(node.Name) {
			logger.Debug("ignoring %s node %q", source, node.Name)
			continue
		}
		for _, parsed := range e.rules.Classify(source, node.Name, node.Type) {
			result[parsed.Category] = append(result[parsed.Category], Match{Node: node, Parsed: parsed})
		}
	}
}

func (e *Extractor) ignored(name string) bool {
	for _, pattern := range e.opts.Ignore {
		if matched, _ := doublestar.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// Extract builds the token set for one category from its matches.
// Later matches overwrite earlier ones with the same key.
func (e *Extractor) Extract(category token.Category, matches []Match) (*token.Set, error) {
	rule, ok := e.rules.Rule(category)
	if !ok {
		return nil, fmt.Errorf("no naming rule for category %s", category)
	}

	var handle func(Match, naming.Rule) ([]*token.Token, error)
	switch category {
	case token.ColorPrimitive:
		handle = e.primitiveColor
	case token.ColorSemantic:
		handle = e.semanticColor
	case token.SizeSpacing, token.SizeIcon:
		handle = e.dimension
	case token.SizeRadius:
		handle = e.radius
	case token.TextTypography:
		handle = e.typography
	default:
		return nil, fmt.Errorf("unsupported category: %s", category)
	}

	set := token.NewSet()
	for _, m := range matches {
		tokens, err := handle(m, rule)
		if err != nil {
			return nil, err
		}
		for _, tok := range tokens {
			set.Put(tok)
		}
	}
	return set, nil
}

// ExtractAll classifies the snapshot and extracts every category sequentially.
func (e *Extractor) ExtractAll(snap *figma.Snapshot) (map[token.Category]*token.Set, error) {
	classified := e.Classify(snap)
	result := make(map[token.Category]*token.Set, len(token.AllCategories()))
	for _, category := range token.AllCategories() {
		set, err := e.Extract(category, classified[category])
		if err != nil {
			return nil, err
		}
		result[category] = set
	}
	return result, nil
}

func malformed(category token.Category, node *figma.Node, format string, args ...any) error {
	return &ExtractError{
		Category: category,
		NodeID:   node.ID,
		NodeName: node.Name,
		Reason:   fmt.Sprintf(format, args...),
	}
}
