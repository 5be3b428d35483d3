/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for figtokens.
package validate

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/figtokens/config"
	"bennypowers.dev/figtokens/fs"
	"bennypowers.dev/figtokens/validator"
)

// ErrInvalid is returned when any document fails validation.
var ErrInvalid = errors.New("validation failed")

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate generated token documents",
	Long: `Validate generated token documents: record shape, color literals and alias
syntax. Circular aliases are errors. Aliases that point at no token in the validated documents are reported
as warnings, or as errors with --strict.

Without arguments the configured output documents are validated.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on dangling aliases")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

// Options configures validation.
type Options struct {
	Root   string
	Files  []string
	Strict bool
	Quiet  bool
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")

	return Run(fs.NewOSFileSystem(), os.Stdout, os.Stderr, Options{
		Root:   viper.GetString("root"),
		Files:  args,
		Strict: strict,
		Quiet:  quiet,
	})
}

// Run validates the given files, or the configured outputs when none are given.
func Run(filesystem fs.FileSystem, stdout, stderr io.Writer, opts Options) error {
	files := opts.Files
	if len(files) == 0 {
		cfg, err := config.LoadOrDefault(filesystem, opts.Root)
		if err != nil {
			return err
		}
		cfg.ResolveOutDir(opts.Root)
		for _, cat := range cfg.Enabled() {
			files = append(files, cfg.OutputPath(cat))
		}
	}

	checker := validator.NewChecker()
	hasErrors := false

	for _, file := range files {
		if !opts.Quiet {
			fmt.Fprintf(stdout, "Validating %s...\n", file)
		}

		data, err := filesystem.ReadFile(file)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading %s: %v\n", file, err)
			hasErrors = true
			continue
		}

		for _, verr := range checker.Add(file, data) {
			fmt.Fprintf(stderr, "Error: %s\n", verr.Error())
			hasErrors = true
		}
	}

	for _, verr := range checker.Cycles() {
		fmt.Fprintf(stderr, "Error: %s\n", verr.Error())
		hasErrors = true
	}

	for _, verr := range checker.Dangling() {
		if opts.Strict {
			fmt.Fprintf(stderr, "Error: %s\n", verr.Error())
			hasErrors = true
		} else if !opts.Quiet {
			fmt.Fprintf(stderr, "Warning: %s\n", verr.Error())
		}
	}

	if hasErrors {
		return ErrInvalid
	}

	if !opts.Quiet {
		fmt.Fprintf(stdout, "All files valid (%d tokens).\n", checker.Tokens())
	}
	return nil
}
