/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for figtokens.
package cmd

import (
	"errors"
	iofs "io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/figtokens/cmd/fetch"
	"bennypowers.dev/figtokens/cmd/generate"
	"bennypowers.dev/figtokens/cmd/list"
	"bennypowers.dev/figtokens/cmd/validate"
	"bennypowers.dev/figtokens/cmd/version"
	"bennypowers.dev/figtokens/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "figtokens",
	Short: "Generate design token documents from a Figma file",
	Long: `figtokens reads the styles and components of a Figma file, classifies them by
their naming convention, and writes one design token document per category.

Credentials are read from FIGMA_TOKEN and FIGMA_DESIGN_TOKEN_FILE_KEY, which may
also be set in a .env file in the working directory.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("root", "r", ".", "Project root containing .config/figma-tokens.yaml")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug messages")
	rootCmd.PersistentFlags().String("env-file", ".env", "Dotenv file to load credentials from")
	_ = viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	viper.SetEnvPrefix("FIGTOKENS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
	_ = viper.BindEnv("token", "FIGMA_TOKEN")
	_ = viper.BindEnv("file-key", "FIGMA_DESIGN_TOKEN_FILE_KEY")

	rootCmd.AddCommand(fetch.Cmd)
	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

// setup loads the dotenv file before environment-bound settings are read.
// A missing file is not an error.
func setup(cmd *cobra.Command, _ []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return err
	}
	logger.SetVerbose(viper.GetBool("verbose"))
	return nil
}
