// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"github.com/spf13/cobra"

	"github.com/autobrr/releaserank/internal/buildinfo"
	"github.com/autobrr/releaserank/internal/config"
	"github.com/autobrr/releaserank/internal/logger"
)

// commandContext carries state shared by subcommands once the root
// PersistentPreRunE has loaded the configuration.
type commandContext struct {
	configPath string
	cfg        *config.AppConfig
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "releaserank",
		Short:         "Rank and group indexer search results",
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if skipsConfig(cmd) {
				return nil
			}
			cfg, err := config.New(ctx.configPath)
			if err != nil {
				return err
			}
			cfg.Config.Version = buildinfo.Version
			ctx.cfg = cfg

			logger.Setup(cfg.Config, cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configPath, "config", "c", "", "Configuration file or directory path")

	rootCmd.AddCommand(newRankCommand(ctx))
	rootCmd.AddCommand(newClassifyCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// skipsConfig reports whether cmd runs without loading the configuration.
func skipsConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations["skipConfig"] == "true" {
			return true
		}
	}
	return false
}

var skipConfigAnnotation = map[string]string{"skipConfig": "true"}
