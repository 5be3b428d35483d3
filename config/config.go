/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration for design token extraction.
package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/figtokens/convert"
	"bennypowers.dev/figtokens/extract"
	"bennypowers.dev/figtokens/token"
	"bennypowers.dev/figtokens/units"
)

// Radius units, as understood by the extractor.
const (
	RadiusPx  = extract.RadiusPx
	RadiusRem = extract.RadiusRem
)

// Typography sources, as understood by the extractor.
const (
	TypographyFromStyles     = extract.TypographyFromStyles
	TypographyFromComponents = extract.TypographyFromComponents
)

// DefaultBaseFontFamily is the font stack injected as text.base-family.
const DefaultBaseFontFamily = "UDShinGoPr6N, sans-serif"

// Config represents the token extraction configuration.
type Config struct {
	// RootFontSize is the pixel size that 1rem equals. Default 16.
	RootFontSize float64 `yaml:"rootFontSize" json:"rootFontSize"`

	// BaseFontFamily is emitted as the typography base-family token.
	BaseFontFamily string `yaml:"baseFontFamily" json:"baseFontFamily"`

	// RadiusUnit selects "px" strings (default) or "rem" numbers for radii.
	RadiusUnit string `yaml:"radiusUnit" json:"radiusUnit"`

	// TypographySource is "styles" (text styles, default) or "components"
	// (components wrapping a text node of the same name).
	TypographySource string `yaml:"typographySource" json:"typographySource"`

	// SortNodes orders each node collection by name before extraction.
	SortNodes bool `yaml:"sortNodes" json:"sortNodes"`

	// SortKeys orders each emitted document alphabetically by token key.
	SortKeys bool `yaml:"sortKeys" json:"sortKeys"`

	// KeepTransparentAlpha emits "00" alpha for fully transparent paints
	// instead of dropping the alpha channel.
	KeepTransparentAlpha bool `yaml:"keepTransparentAlpha" json:"keepTransparentAlpha"`

	// Indent pretty-prints output documents when non-empty.
	Indent string `yaml:"indent" json:"indent"`

	// Format is the output document format (style-dictionary, dtcg, json).
	Format string `yaml:"format" json:"format"`

	// OutDir is the directory output paths are relative to.
	OutDir string `yaml:"outDir" json:"outDir"`

	// Ignore lists glob patterns (doublestar syntax) of node names to skip,
	// e.g. "Primitive/Deprecated/**".
	Ignore []string `yaml:"ignore" json:"ignore"`

	// Categories overrides per-category output settings, keyed by category
	// ("color.primitive") or short name ("primitive").
	Categories map[string]CategorySpec `yaml:"categories" json:"categories"`
}

// CategorySpec configures one category's output document.
// It can be specified as a simple string path or as an object.
type CategorySpec struct {
	// Path is the output file path, relative to OutDir.
	Path string `yaml:"path" json:"path"`

	// Wrapper is the list of top-level keys the tokens are nested under.
	Wrapper []string `yaml:"wrapper" json:"wrapper"`

	// Disabled skips the category entirely.
	Disabled bool `yaml:"disabled" json:"disabled"`
}

// UnmarshalYAML handles both string and object forms for CategorySpec.
func (s *CategorySpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		s.Path = node.Value
		return nil
	}

	type rawCategorySpec CategorySpec
	return node.Decode((*rawCategorySpec)(s))
}

// UnmarshalJSON handles both string and object forms for CategorySpec.
func (s *CategorySpec) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		s.Path = str
		return nil
	}

	type rawCategorySpec CategorySpec
	return json.Unmarshal(data, (*rawCategorySpec)(s))
}

// defaultCategories are the built-in output locations and wrappers.
var defaultCategories = map[token.Category]CategorySpec{
	token.ColorPrimitive: {Path: "tokens/color/primitive.json", Wrapper: []string{"color"}},
	token.ColorSemantic:  {Path: "tokens/color/semantics.json", Wrapper: []string{"color"}},
	token.SizeSpacing:    {Path: "tokens/size/spacing.json", Wrapper: []string{"size"}},
	token.SizeRadius:     {Path: "tokens/size/radius.json", Wrapper: []string{"radius"}},
	token.SizeIcon:       {Path: "tokens/size/icon.json", Wrapper: []string{"size"}},
	token.TextTypography: {Path: "tokens/text/typography.json", Wrapper: []string{"text"}},
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		RootFontSize:     units.DefaultRootFontSize,
		BaseFontFamily:   DefaultBaseFontFamily,
		RadiusUnit:       RadiusPx,
		TypographySource: TypographyFromStyles,
		SortNodes:        true,
		SortKeys:         false,
		Indent:           "",
		Format:           "style-dictionary",
		OutDir:           ".",
		Ignore:           nil,
		Categories:       nil,
	}
}

// Validate checks enumerated fields, category keys and ignore patterns.
func (c *Config) Validate() error {
	var problems []string

	if c.RootFontSize <= 0 {
		problems = append(problems, fmt.Sprintf("rootFontSize must be positive, got %v", c.RootFontSize))
	}
	switch c.RadiusUnit {
	case RadiusPx, RadiusRem:
	default:
		problems = append(problems, fmt.Sprintf("radiusUnit must be %q or %q, got %q", RadiusPx, RadiusRem, c.RadiusUnit))
	}
	switch c.TypographySource {
	case TypographyFromStyles, TypographyFromComponents:
	default:
		problems = append(problems, fmt.Sprintf("typographySource must be %q or %q, got %q",
			TypographyFromStyles, TypographyFromComponents, c.TypographySource))
	}

	if _, err := convert.ParseFormat(c.Format); err != nil {
		problems = append(problems, err.Error())
	}

	for _, k := range c.categoryKeys() {
		if _, err := token.ParseCategory(k); err != nil {
			problems = append(problems, fmt.Sprintf("categories: %v", err))
		}
	}

	for _, pattern := range c.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			problems = append(problems, fmt.Sprintf("ignore: invalid pattern %q", pattern))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Category returns the effective spec for a category: configured values
// over built-in defaults.
func (c *Config) Category(cat token.Category) CategorySpec {
	spec := defaultCategories[cat]
	spec.Wrapper = append([]string(nil), spec.Wrapper...)

	for _, k := range c.categoryKeys() {
		override := c.Categories[k]
		parsed, err := token.ParseCategory(k)
		if err != nil || parsed != cat {
			continue
		}
		if override.Path != "" {
			spec.Path = override.Path
		}
		if len(override.Wrapper) > 0 {
			spec.Wrapper = append([]string(nil), override.Wrapper...)
		}
		spec.Disabled = override.Disabled
	}

	return spec
}

// categoryKeys returns the configured category keys in a stable order,
// so later keys consistently win when two keys name the same category.
func (c *Config) categoryKeys() []string {
	keys := make([]string, 0, len(c.Categories))
	for k := range c.Categories {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Enabled returns the categories that are not disabled, in output order.
func (c *Config) Enabled() []token.Category {
	var result []token.Category
	for _, cat := range token.AllCategories() {
		if !c.Category(cat).Disabled {
			result = append(result, cat)
		}
	}
	return result
}

// ResolveOutDir makes a relative OutDir relative to root.
func (c *Config) ResolveOutDir(root string) {
	if root != "" && !filepath.IsAbs(c.OutDir) {
		c.OutDir = filepath.Join(root, c.OutDir)
	}
}

// OutputPath returns where a category's document is written.
func (c *Config) OutputPath(cat token.Category) string {
	path := c.Category(cat).Path
	if filepath.IsAbs(path) || c.OutDir == "" {
		return path
	}
	return filepath.Join(c.OutDir, path)
}
