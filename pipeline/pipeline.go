/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package pipeline runs extraction, assembly and serialization over a
// snapshot for every enabled category.
package pipeline

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"bennypowers.dev/figtokens/config"
	"bennypowers.dev/figtokens/convert"
	"bennypowers.dev/figtokens/extract"
	"bennypowers.dev/figtokens/figma"
	"bennypowers.dev/figtokens/token"
)

// Output is one serialized category document.
type Output struct {
	Category token.Category

	// Path is where the document should be written, from configuration.
	Path string

	Document *convert.Document
	Data     []byte
}

// Result holds the documents produced by a run.
type Result struct {
	Documents map[token.Category]*Output
}

// Ordered returns the documents in category output order.
func (r *Result) Ordered() []*Output {
	var result []*Output
	for _, cat := range token.AllCategories() {
		if out, ok := r.Documents[cat]; ok {
			result = append(result, out)
		}
	}
	return result
}

// Options narrows a run.
type Options struct {
	// Only restricts the run to these categories. Empty runs every enabled category.
	Only []token.Category
}

// ExtractOptions maps configuration onto extraction options.
func ExtractOptions(cfg *config.Config) extract.Options {
	return extract.Options{
		RootFontSize:         cfg.RootFontSize,
		RadiusUnit:           cfg.RadiusUnit,
		TypographySource:     cfg.TypographySource,
		SortNodes:            cfg.SortNodes,
		KeepTransparentAlpha: cfg.KeepTransparentAlpha,
		Ignore:               cfg.Ignore,
	}
}

// Run extracts, assembles and serializes every enabled category of snap.
// Categories run concurrently; the first error aborts the run.
func Run(snap *figma.Snapshot, cfg *config.Config) (*Result, error) {
	return RunWithOptions(snap, cfg, Options{})
}

// RunWithOptions is Run restricted by opts.
func RunWithOptions(snap *figma.Snapshot, cfg *config.Config, opts Options) (*Result, error) {
	if snap == nil {
		return nil, errors.New("no snapshot")
	}
	if cfg == nil {
		cfg = config.Default()
	}

	format, err := convert.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	serializeOpts := convert.Options{Indent: cfg.Indent, Format: format}

	categories := selectCategories(cfg.Enabled(), opts.Only)

	extractor := extract.New(snap.Styles, ExtractOptions(cfg))
	classified := extractor.Classify(snap)

	var (
		mu      sync.Mutex
		g       errgroup.Group
		results = make(map[token.Category]*Output, len(categories))
	)

	for _, cat := range categories {
		g.Go(func() error {
			set, err := extractor.Extract(cat, classified[cat])
			if err != nil {
				return fmt.Errorf("extracting %s: %w", cat, err)
			}

			spec := cfg.Category(cat)
			doc := convert.Assemble(cat, set, convert.AssembleOptions{
				Wrapper:        spec.Wrapper,
				BaseFontFamily: cfg.BaseFontFamily,
				SortKeys:       cfg.SortKeys,
			})
			data, err := convert.Serialize(doc, serializeOpts)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			results[cat] = &Output{
				Category: cat,
				Path:     cfg.OutputPath(cat),
				Document: doc,
				Data:     data,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Result{Documents: results}, nil
}

func selectCategories(enabled, only []token.Category) []token.Category {
	if len(only) == 0 {
		return enabled
	}
	var result []token.Category
	for _, cat := range enabled {
		if slices.Contains(only, cat) {
			result = append(result, cat)
		}
	}
	return result
}
