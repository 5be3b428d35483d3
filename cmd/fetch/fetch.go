/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fetch provides the fetch command for figtokens.
package fetch

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/figtokens/figma"
	"bennypowers.dev/figtokens/fs"
	"bennypowers.dev/figtokens/internal/logger"
)

// Cmd is the fetch cobra command.
var Cmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download a snapshot of the Figma file's styles and components",
	Long: `Download the styles, components and their nodes from the Figma file named by
FIGMA_DESIGN_TOKEN_FILE_KEY and save them as a snapshot, so tokens can be
generated offline and reproducibly.

Examples:
  figtokens fetch -o snapshot.json
  figtokens fetch -o - | jq '.styles | length'`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "figma-snapshot.json", "Snapshot file to write, or - for stdout")
	Cmd.Flags().String("indent", "  ", "Indent for the snapshot JSON")
	Cmd.Flags().String("file-key", "", "Figma file key (overrides FIGMA_DESIGN_TOKEN_FILE_KEY)")
	Cmd.Flags().String("base-url", figma.DefaultBaseURL, "Figma API base URL")
	Cmd.Flags().Int("batch-size", figma.DefaultBatchSize, "Node ids per /nodes request")
	_ = Cmd.Flags().MarkHidden("base-url")
	_ = viper.BindPFlag("fetch.base-url", Cmd.Flags().Lookup("base-url"))
	_ = viper.BindPFlag("fetch.batch-size", Cmd.Flags().Lookup("batch-size"))
}

// Options configures a snapshot download.
type Options struct {
	Token     string
	FileKey   string
	BaseURL   string
	BatchSize int
	Output    string
	Indent    string
}

func run(cmd *cobra.Command, _ []string) error {
	output, _ := cmd.Flags().GetString("output")
	indent, _ := cmd.Flags().GetString("indent")

	opts := CredentialOptions()
	if fileKey, _ := cmd.Flags().GetString("file-key"); fileKey != "" {
		opts.FileKey = fileKey
	}
	opts.Output = output
	opts.Indent = indent

	return Run(cmd.Context(), fs.NewOSFileSystem(), os.Stdout, opts)
}

// CredentialOptions returns options filled from the environment and bound flags.
func CredentialOptions() Options {
	return Options{
		Token:     viper.GetString("token"),
		FileKey:   viper.GetString("file-key"),
		BaseURL:   viper.GetString("fetch.base-url"),
		BatchSize: viper.GetInt("fetch.batch-size"),
	}
}

// Run downloads a snapshot and writes it to opts.Output, or to stdout for "-".
func Run(ctx context.Context, filesystem fs.FileSystem, stdout io.Writer, opts Options) error {
	snap, err := Download(ctx, opts)
	if err != nil {
		return err
	}

	data, err := snap.Encode(opts.Indent)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if opts.Output == "-" {
		_, err := fmt.Fprintln(stdout, string(data))
		return err
	}
	if err := fs.WriteFileAll(filesystem, opts.Output, data); err != nil {
		return fmt.Errorf("writing %s: %w", opts.Output, err)
	}
	logger.Info("Wrote %s (%d styles, %d components)", opts.Output, len(snap.Styles), len(snap.Components))
	return nil
}

// Download fetches a snapshot from the Figma API.
// Missing credentials fail before any request is made.
func Download(ctx context.Context, opts Options) (*figma.Snapshot, error) {
	client, err := figma.NewClient(opts.Token, opts.FileKey, figma.ClientOptions{
		BaseURL:   opts.BaseURL,
		BatchSize: opts.BatchSize,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("fetching file %s", client.FileKey())
	return client.Snapshot(ctx)
}

// Snapshot loads the snapshot at path, or downloads one when path is empty.
func Snapshot(ctx context.Context, filesystem fs.FileSystem, path string, opts Options) (*figma.Snapshot, error) {
	if path == "" {
		return Download(ctx, opts)
	}
	return figma.LoadSnapshot(filesystem, path)
}
