/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for figtokens.
package list

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/figtokens/cmd/fetch"
	"bennypowers.dev/figtokens/config"
	"bennypowers.dev/figtokens/extract"
	"bennypowers.dev/figtokens/fs"
	"bennypowers.dev/figtokens/pipeline"
	"bennypowers.dev/figtokens/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List the tokens a snapshot would produce",
	Long: `List every token extracted from a snapshot (or the live Figma file), grouped by
category, without writing any documents.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("snapshot", "s", "", "Snapshot file to read instead of fetching")
	Cmd.Flags().StringP("category", "c", "", "Only list this category")
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json")
	_ = viper.BindPFlag("list.snapshot", Cmd.Flags().Lookup("snapshot"))
	_ = viper.BindPFlag("list.category", Cmd.Flags().Lookup("category"))
	_ = viper.BindPFlag("list.format", Cmd.Flags().Lookup("format"))
}

// Options configures a listing.
type Options struct {
	Root     string
	Snapshot string
	Fetch    fetch.Options
	Category string
	Format   string
}

// Entry is one listed token.
type Entry struct {
	Category token.Category `json:"category"`
	Key      string         `json:"key"`
	Value    any            `json:"value"`
	Note     string         `json:"note,omitempty"`
}

func run(cmd *cobra.Command, _ []string) error {
	return Run(cmd.Context(), fs.NewOSFileSystem(), os.Stdout, Options{
		Root:     viper.GetString("root"),
		Snapshot: viper.GetString("list.snapshot"),
		Fetch:    fetch.CredentialOptions(),
		Category: viper.GetString("list.category"),
		Format:   viper.GetString("list.format"),
	})
}

// Run extracts tokens and writes them to w.
func Run(ctx context.Context, filesystem fs.FileSystem, w io.Writer, opts Options) error {
	cfg, err := config.LoadOrDefault(filesystem, opts.Root)
	if err != nil {
		return err
	}

	categories := token.AllCategories()
	if opts.Category != "" {
		cat, err := token.ParseCategory(opts.Category)
		if err != nil {
			return err
		}
		categories = []token.Category{cat}
	}

	snap, err := fetch.Snapshot(ctx, filesystem, opts.Snapshot, opts.Fetch)
	if err != nil {
		return err
	}

	sets, err := extract.New(snap.Styles, pipeline.ExtractOptions(cfg)).ExtractAll(snap)
	if err != nil {
		return err
	}

	var entries []Entry
	for _, cat := range categories {
		set := sets[cat]
		if cfg.SortKeys {
			set = set.Sorted()
		}
		for _, tok := range set.Tokens() {
			entries = append(entries, Entry{Category: cat, Key: tok.Key, Value: tok.Value, Note: tok.Note})
		}
	}

	switch opts.Format {
	case "json":
		return outputJSON(w, entries)
	case "table", "":
		return outputTable(w, categories, entries)
	default:
		return fmt.Errorf("unknown format: %s (valid: table, json)", opts.Format)
	}
}

func outputTable(w io.Writer, categories []token.Category, entries []Entry) error {
	title := cases.Title(language.English)
	for i, cat := range categories {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s %s\n", title.String(cat.Name()), title.String(cat.Group()))
		count := 0
		for _, e := range entries {
			if e.Category != cat {
				continue
			}
			count++
			note := e.Note
			if note == "" {
				note = "-"
			}
			fmt.Fprintf(w, "  %-32s %-28v %s\n", e.Key, e.Value, note)
		}
		if count == 0 {
			fmt.Fprintln(w, "  (none)")
		}
	}
	return nil
}

func outputJSON(w io.Writer, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(entries)
}
