/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for figtokens.
package generate

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/figtokens/cmd/fetch"
	"bennypowers.dev/figtokens/config"
	convertlib "bennypowers.dev/figtokens/convert"
	"bennypowers.dev/figtokens/fs"
	"bennypowers.dev/figtokens/internal/logger"
	"bennypowers.dev/figtokens/pipeline"
	"bennypowers.dev/figtokens/token"
)

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate token documents",
	Long: `Generate one design token document per category from a Figma file.

Without --snapshot the file is fetched live using FIGMA_TOKEN and
FIGMA_DESIGN_TOKEN_FILE_KEY.

Output Formats:
  style-dictionary  {"value": ..., "attributes": {"note": ...}} records (default)
  dtcg              {"$value": ..., "$description": ...} records
  json              Flat key-value JSON without wrapper keys

Examples:
  # Generate every category from a saved snapshot
  figtokens generate --snapshot figma-snapshot.json

  # Pretty-print into a different directory
  figtokens generate --out-dir packages/tokens --indent "  "

  # Print only the spacing document
  figtokens generate --only spacing --stdout`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("snapshot", "s", "", "Snapshot file to read instead of fetching")
	Cmd.Flags().StringP("out-dir", "o", "", "Output directory, resolved against --root when relative")
	Cmd.Flags().String("indent", "", "Indent for output JSON (default: compact)")
	Cmd.Flags().Bool("sort-keys", false, "Sort tokens alphabetically by key")
	Cmd.Flags().StringP("format", "f", "", "Output format: "+strings.Join(convertlib.ValidFormats(), ", "))
	Cmd.Flags().StringSlice("only", nil, "Only generate these categories: "+strings.Join(token.ValidCategories(), ", "))
	Cmd.Flags().Bool("stdout", false, "Print documents instead of writing files")

	for _, name := range []string{"snapshot", "out-dir", "indent", "sort-keys", "format", "only", "stdout"} {
		_ = viper.BindPFlag("generate."+name, Cmd.Flags().Lookup(name))
	}
}

// Options configures a generate run.
type Options struct {
	// Root is the directory holding .config/figma-tokens.*.
	Root string

	// Snapshot is the snapshot file to read. Empty fetches live.
	Snapshot string

	// Fetch holds credentials used when Snapshot is empty.
	Fetch fetch.Options

	// Only restricts the categories generated.
	Only []string

	// Stdout prints documents instead of writing them.
	Stdout bool

	// Override is applied to the loaded configuration.
	Override func(*config.Config)
}

func run(cmd *cobra.Command, _ []string) error {
	opts := Options{
		Root:     viper.GetString("root"),
		Snapshot: viper.GetString("generate.snapshot"),
		Fetch:    fetch.CredentialOptions(),
		Only:     viper.GetStringSlice("generate.only"),
		Stdout:   viper.GetBool("generate.stdout"),
		Override: applyFlags,
	}
	return Run(cmd.Context(), fs.NewOSFileSystem(), os.Stdout, opts)
}

// applyFlags overrides configuration with flags set on the command line.
func applyFlags(cfg *config.Config) {
	if viper.IsSet("generate.out-dir") {
		cfg.OutDir = viper.GetString("generate.out-dir")
	}
	if viper.IsSet("generate.indent") {
		cfg.Indent = viper.GetString("generate.indent")
	}
	if viper.IsSet("generate.sort-keys") {
		cfg.SortKeys = viper.GetBool("generate.sort-keys")
	}
	if viper.IsSet("generate.format") {
		cfg.Format = viper.GetString("generate.format")
	}
}

// Run loads configuration and a snapshot, then writes every generated document.
// A relative outDir, configured or overridden, is resolved against opts.Root.
func Run(ctx context.Context, filesystem fs.FileSystem, stdout io.Writer, opts Options) error {
	cfg, err := config.LoadOrDefault(filesystem, opts.Root)
	if err != nil {
		return err
	}
	if opts.Override != nil {
		opts.Override(cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	cfg.ResolveOutDir(opts.Root)

	only, err := parseCategories(opts.Only)
	if err != nil {
		return err
	}

	snap, err := fetch.Snapshot(ctx, filesystem, opts.Snapshot, opts.Fetch)
	if err != nil {
		return err
	}

	result, err := pipeline.RunWithOptions(snap, cfg, pipeline.Options{Only: only})
	if err != nil {
		return err
	}

	for _, out := range result.Ordered() {
		if opts.Stdout {
			if _, err := fmt.Fprintln(stdout, string(out.Data)); err != nil {
				return err
			}
			continue
		}
		if err := fs.WriteFileAll(filesystem, out.Path, out.Data); err != nil {
			return fmt.Errorf("writing %s: %w", out.Path, err)
		}
		logger.Info("Wrote %s", out.Path)
	}
	return nil
}

func parseCategories(names []string) ([]token.Category, error) {
	var result []token.Category
	for _, name := range names {
		cat, err := token.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		result = append(result, cat)
	}
	return result, nil
}
