/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"bennypowers.dev/figtokens/extract"
	"bennypowers.dev/figtokens/internal/mapfs"
	"bennypowers.dev/figtokens/testutil"
	"bennypowers.dev/figtokens/token"
)

func TestLoad_YAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if cfg.RootFontSize != 10 {
		t.Errorf("expected rootFontSize 10, got %v", cfg.RootFontSize)
	}
	if cfg.BaseFontFamily != "Inter, sans-serif" {
		t.Errorf("expected baseFontFamily 'Inter, sans-serif', got %q", cfg.BaseFontFamily)
	}
	if cfg.RadiusUnit != RadiusRem {
		t.Errorf("expected radiusUnit rem, got %q", cfg.RadiusUnit)
	}
	if !cfg.SortKeys {
		t.Error("expected sortKeys true")
	}
	if !cfg.SortNodes {
		t.Error("expected sortNodes to keep its default of true")
	}
	if cfg.Indent != "  " {
		t.Errorf("expected two-space indent, got %q", cfg.Indent)
	}

	primitive := cfg.Category(token.ColorPrimitive)
	if !reflect.DeepEqual(primitive.Wrapper, []string{"color", "ubie"}) {
		t.Errorf("expected wrapper [color ubie], got %v", primitive.Wrapper)
	}
	if primitive.Path != "tokens/color/primitive.json" {
		t.Errorf("expected default primitive path, got %q", primitive.Path)
	}

	if got := cfg.OutputPath(token.SizeSpacing); got != filepath.Join("dist", "tokens/spacing.json") {
		t.Errorf("OutputPath(spacing) = %q", got)
	}
	if wrapper := cfg.Category(token.SizeSpacing).Wrapper; !reflect.DeepEqual(wrapper, []string{"size"}) {
		t.Errorf("string form should keep default wrapper, got %v", wrapper)
	}

	for _, c := range cfg.Enabled() {
		if c == token.SizeIcon {
			t.Error("expected icon category to be disabled")
		}
	}
	if len(cfg.Enabled()) != 5 {
		t.Errorf("expected 5 enabled categories, got %d", len(cfg.Enabled()))
	}
}

func TestLoad_JSON(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/json", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TypographySource != TypographyFromComponents {
		t.Errorf("expected components typography source, got %q", cfg.TypographySource)
	}
	if !cfg.KeepTransparentAlpha {
		t.Error("expected keepTransparentAlpha true")
	}
	if cfg.Format != "dtcg" {
		t.Errorf("expected format dtcg, got %q", cfg.Format)
	}

	typo := cfg.Category(token.TextTypography)
	if typo.Path != "tokens/typography.json" || !reflect.DeepEqual(typo.Wrapper, []string{"font"}) {
		t.Errorf("unexpected typography spec: %+v", typo)
	}
}

func TestLoad_YMLExtension(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/partial", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.SortKeys {
		t.Error("expected sortKeys true")
	}
	if cfg.RootFontSize != 16 {
		t.Errorf("expected default rootFontSize 16, got %v", cfg.RootFontSize)
	}
}

func TestLoad_Invalid(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/invalid", "/project")

	_, err := Load(mfs, "/project")
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"radiusUnit", "unknown category: shadow", "invalid pattern"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %q, got: %v", want, err)
		}
	}
}

func TestLoad_NotFound(t *testing.T) {
	mfs := mapfs.New()

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}

	cfg, err = LoadOrDefault(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("expected default config, got %+v", cfg)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/figma-tokens.yaml", "rootFontSize: [", 0644)

	if _, err := Load(mfs, "/project"); err == nil {
		t.Error("expected parse error")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	wantPaths := map[token.Category]string{
		token.ColorPrimitive: "tokens/color/primitive.json",
		token.ColorSemantic:  "tokens/color/semantics.json",
		token.SizeSpacing:    "tokens/size/spacing.json",
		token.SizeRadius:     "tokens/size/radius.json",
		token.SizeIcon:       "tokens/size/icon.json",
		token.TextTypography: "tokens/text/typography.json",
	}
	for cat, want := range wantPaths {
		if got := cfg.OutputPath(cat); got != want {
			t.Errorf("OutputPath(%s) = %q, want %q", cat, got, want)
		}
	}
	if len(cfg.Enabled()) != len(token.AllCategories()) {
		t.Errorf("expected all categories enabled by default")
	}
}

func TestDefault_MatchesExtractorDefaults(t *testing.T) {
	cfg := Default()
	opts := extract.DefaultOptions()
	if cfg.RadiusUnit != opts.RadiusUnit {
		t.Errorf("RadiusUnit = %q, extractor default %q", cfg.RadiusUnit, opts.RadiusUnit)
	}
	if cfg.TypographySource != opts.TypographySource {
		t.Errorf("TypographySource = %q, extractor default %q", cfg.TypographySource, opts.TypographySource)
	}
	if cfg.RootFontSize != opts.RootFontSize || cfg.SortNodes != opts.SortNodes {
		t.Errorf("RootFontSize/SortNodes = %v/%v, extractor defaults %v/%v",
			cfg.RootFontSize, cfg.SortNodes, opts.RootFontSize, opts.SortNodes)
	}

	for _, unit := range []string{extract.RadiusPx, extract.RadiusRem} {
		cfg.RadiusUnit = unit
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() rejected extractor radius unit %q: %v", unit, err)
		}
	}
}

func TestCategory_DoesNotAliasDefaults(t *testing.T) {
	cfg := Default()
	spec := cfg.Category(token.ColorPrimitive)
	spec.Wrapper[0] = "mutated"

	if got := cfg.Category(token.ColorPrimitive).Wrapper[0]; got != "color" {
		t.Errorf("mutating a returned spec leaked into defaults: %q", got)
	}
}
