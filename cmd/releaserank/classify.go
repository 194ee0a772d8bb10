// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/autobrr/releaserank/internal/display"
	"github.com/autobrr/releaserank/internal/domain"
	"github.com/autobrr/releaserank/internal/language"
	"github.com/autobrr/releaserank/internal/ranking"
	"github.com/autobrr/releaserank/internal/retention"
	"github.com/autobrr/releaserank/pkg/releases"
)

type classification struct {
	Title         string              `json:"title"`
	Descriptor    releases.Descriptor `json:"descriptor"`
	VideoRank     int                 `json:"videoRank"`
	AudioRank     int                 `json:"audioRank"`
	Tier          string              `json:"tier"`
	Retention     retention.Status    `json:"retention,omitempty"`
	PastRetention bool                `json:"pastRetention"`
	Label         display.Label       `json:"label"`
}

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var (
		preferred string
		age       int
		format    string
	)

	cmd := &cobra.Command{
		Use:   "classify <title>...",
		Short: "Show what is extracted from release titles and how they would be ranked",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatJSON && format != formatTable {
				return errors.Errorf("unknown format %q, expected %q or %q", format, formatJSON, formatTable)
			}

			opts := ctx.cfg.PipelineOptions(nil, nil)
			if cmd.Flags().Changed("language") {
				opts.PreferredLanguage = preferred
			}

			var releaseAge *int
			if cmd.Flags().Changed("age") {
				if age < 0 {
					return errors.Errorf("age must not be negative, got %d", age)
				}
				releaseAge = &age
			}

			out := make([]classification, 0, len(args))
			for _, title := range args {
				out = append(out, classify(title, releaseAge, opts.PreferredLanguage, opts.Parser, opts.Retention))
			}

			if format == formatTable {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), classificationTable(out))
				return err
			}
			return writeJSON(cmd, out)
		},
	}

	cmd.Flags().StringVar(&preferred, "language", "", "Preferred language (default from config)")
	cmd.Flags().IntVar(&age, "age", 0, "Release age in days, enables retention classification")
	cmd.Flags().StringVarP(&format, "format", "o", formatJSON, "Output format: json or table")

	return cmd
}

func classify(title string, age *int, preferred string, parser releases.ReleaseParser, thresholds *retention.Thresholds) classification {
	d := releases.Extract(parser, title)
	status := retention.Classify(age, thresholds)

	return classification{
		Title:         title,
		Descriptor:    d,
		VideoRank:     ranking.VideoQualityRank(d.Resolution),
		AudioRank:     ranking.AudioQualityRank(d.AudioCodec),
		Tier:          language.Classify(d, preferred, title).String(),
		Retention:     status,
		PastRetention: retention.IsPastRetention(age, thresholds),
		Label:         display.Format(d, domain.Release{Title: title, Age: age}, status),
	}
}

func classificationTable(rows []classification) string {
	headers := []string{"Title", "Resolution", "Video", "Audio", "Rank", "Languages", "Tier", "Retention"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignRight, alignLeft, alignLeft, alignLeft}

	table := make([][]string, 0, len(rows))
	for _, c := range rows {
		langs := strings.Join(c.Descriptor.Languages, ", ")
		if c.Descriptor.Multi {
			langs = strings.TrimSuffix("MULTi, "+langs, ", ")
		}
		table = append(table, []string{
			c.Title,
			c.Descriptor.Resolution.String(),
			strconv.Itoa(c.VideoRank),
			audioSummary(c.Descriptor),
			strconv.Itoa(c.AudioRank),
			langs,
			c.Tier,
			string(c.Retention),
		})
	}
	return renderTable(headers, table, aligns, nil)
}
