/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package pipeline_test

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"bennypowers.dev/figtokens/config"
	"bennypowers.dev/figtokens/extract"
	"bennypowers.dev/figtokens/figma"
	"bennypowers.dev/figtokens/internal/logger"
	"bennypowers.dev/figtokens/pipeline"
	"bennypowers.dev/figtokens/testutil"
	"bennypowers.dev/figtokens/token"
)

const fullSnapshot = "fixtures/snapshot/full/snapshot.jsonc"

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	goleak.VerifyTestMain(m)
}

func TestRun_Golden(t *testing.T) {
	snap := testutil.LoadSnapshot(t, fullSnapshot)

	result, err := pipeline.Run(snap, config.Default())
	require.NoError(t, err)
	require.Len(t, result.Documents, len(token.AllCategories()))

	for _, out := range result.Ordered() {
		t.Run(string(out.Category), func(t *testing.T) {
			testutil.Golden(t).Assert(t, "full-"+string(out.Category), out.Data)
		})
	}
}

func TestRun_Deterministic(t *testing.T) {
	first, err := pipeline.Run(testutil.LoadSnapshot(t, fullSnapshot), config.Default())
	require.NoError(t, err)

	for range 5 {
		again, err := pipeline.Run(testutil.LoadSnapshot(t, fullSnapshot), config.Default())
		require.NoError(t, err)
		for cat, out := range first.Documents {
			assert.Equal(t, string(out.Data), string(again.Documents[cat].Data), "category %s", cat)
		}
	}
}

func TestRun_OrderedAndPaths(t *testing.T) {
	cfg := config.Default()
	cfg.OutDir = "out"

	result, err := pipeline.Run(testutil.LoadSnapshot(t, fullSnapshot), cfg)
	require.NoError(t, err)

	var categories []token.Category
	for _, out := range result.Ordered() {
		categories = append(categories, out.Category)
	}
	assert.Equal(t, token.AllCategories(), categories)
	assert.Equal(t, filepath.Join("out", "tokens", "color", "semantics.json"), result.Documents[token.ColorSemantic].Path)
}

func TestRun_EmptySnapshot(t *testing.T) {
	result, err := pipeline.Run(figma.NewSnapshot(), config.Default())
	require.NoError(t, err)

	assert.Equal(t, `{"size":{}}`, string(result.Documents[token.SizeSpacing].Data))
	assert.Equal(t, `{"text":{"base-family":{"value":"UDShinGoPr6N, sans-serif"}}}`,
		string(result.Documents[token.TextTypography].Data))
}

func TestRun_DisabledAndOnly(t *testing.T) {
	cfg := config.Default()
	cfg.Categories = map[string]config.CategorySpec{
		"icon": {Disabled: true},
	}

	result, err := pipeline.RunWithOptions(testutil.LoadSnapshot(t, fullSnapshot), cfg, pipeline.Options{
		Only: []token.Category{token.SizeIcon, token.SizeSpacing},
	})
	require.NoError(t, err)

	assert.Len(t, result.Documents, 1)
	assert.Contains(t, result.Documents, token.SizeSpacing)
}

func TestRun_ConfigOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.SortKeys = true
	cfg.BaseFontFamily = "Inter, sans-serif"
	cfg.RadiusUnit = config.RadiusRem
	cfg.Categories = map[string]config.CategorySpec{
		"semantic": {Wrapper: []string{"color", "semantic"}},
	}

	result, err := pipeline.Run(testutil.LoadSnapshot(t, fullSnapshot), cfg)
	require.NoError(t, err)

	typography := result.Documents[token.TextTypography].Document.Tokens
	assert.Equal(t, "base-family", typography.Keys()[0])

	assert.Equal(t,
		`{"radius":{"radius-none":{"value":0,"attributes":{"note":"0px"}},"radius-sm":{"value":0.25,"attributes":{"note":"4px"}}}}`,
		string(result.Documents[token.SizeRadius].Data))

	assert.Contains(t, string(result.Documents[token.ColorSemantic].Data), `{"color":{"semantic":{"border-default"`)
}

func TestRun_MalformedAborts(t *testing.T) {
	snap := testutil.LoadSnapshot(t, fullSnapshot)
	snap.ComponentNodes.Add(&figma.Node{ID: "3:1", Name: "Spacing/Broken", Type: figma.TypeComponent})

	result, err := pipeline.Run(snap, config.Default())
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, extract.ErrMalformedNode))
}

func TestRun_InvalidFormat(t *testing.T) {
	cfg := config.Default()
	cfg.Format = "yaml"

	_, err := pipeline.Run(figma.NewSnapshot(), cfg)
	assert.Error(t, err)
}
