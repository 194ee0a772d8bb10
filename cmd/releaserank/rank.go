// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/autobrr/releaserank/internal/display"
	"github.com/autobrr/releaserank/internal/domain"
	"github.com/autobrr/releaserank/internal/metrics"
	"github.com/autobrr/releaserank/internal/pipeline"
	"github.com/autobrr/releaserank/internal/ranking"
	"github.com/autobrr/releaserank/pkg/releases"
)

const (
	formatJSON  = "json"
	formatTable = "table"
	stdinSource = "-"
)

type rankedRelease struct {
	Position int `json:"position"`
	pipeline.Item
	Tier  string        `json:"tier,omitempty"`
	Label display.Label `json:"label"`
}

type rankedBatch struct {
	Source string              `json:"source"`
	Items  []rankedRelease     `json:"items"`
	Groups *pipeline.GroupInfo `json:"groups"`
	Stats  pipeline.Stats      `json:"stats"`
}

type rankFlags struct {
	sortMethod      string
	language        string
	quality         string
	format          string
	metricsTextfile string
	noRetention     bool
	concurrency     int
}

func newRankCommand(ctx *commandContext) *cobra.Command {
	var flags rankFlags

	cmd := &cobra.Command{
		Use:   "rank [file...]",
		Short: "Rank releases read from JSON files or stdin",
		Long: `Rank reads JSON arrays of releases ({"title", "size", "age", "indexer", "downloadUrl"})
from each file, or from stdin when no file or "-" is given, and prints them ranked.
Every file is ranked independently.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.format != formatJSON && flags.format != formatTable {
				return errors.Errorf("unknown format %q, expected %q or %q", flags.format, formatJSON, formatTable)
			}
			if len(args) == 0 {
				args = []string{stdinSource}
			}
			if countOf(args, stdinSource) > 1 {
				return errors.New("stdin can only be read once")
			}

			opts, manager := rankOptions(cmd, ctx, flags)

			batches := make([]rankedBatch, len(args))
			g, gctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(max(flags.concurrency, 1))

			for i, source := range args {
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}
					results, err := readSource(cmd.InOrStdin(), source)
					if err != nil {
						return err
					}
					batches[i] = rankBatch(source, results, opts)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			if path := metricsTextfile(ctx, flags); path != "" {
				if err := manager.WriteTextfile(path); err != nil {
					return err
				}
				log.Debug().Str("path", path).Msg("wrote pipeline metrics")
			}

			if flags.format == formatTable {
				return writeTables(cmd.OutOrStdout(), batches)
			}
			return writeJSON(cmd, batches)
		},
	}

	cmd.Flags().StringVar(&flags.sortMethod, "sort", "", `Sort method: "Quality First", "Size First" or "Date First" (default from config)`)
	cmd.Flags().StringVar(&flags.language, "language", "", `Preferred language, "No Preference" disables grouping (default from config)`)
	cmd.Flags().StringVar(&flags.quality, "quality", "", `Quality filter such as "All", "1080p" or "4K + 1080p" (default from config)`)
	cmd.Flags().StringVarP(&flags.format, "format", "o", formatJSON, "Output format: json or table")
	cmd.Flags().StringVar(&flags.metricsTextfile, "metrics-textfile", "", "Write pipeline metrics to this node exporter textfile")
	cmd.Flags().BoolVar(&flags.noRetention, "no-retention", false, "Disable retention filtering")
	cmd.Flags().IntVar(&flags.concurrency, "concurrency", 4, "Number of files ranked in parallel")

	return cmd
}

// rankOptions merges command flags over the configuration. The returned
// manager collects metrics for every run.
func rankOptions(cmd *cobra.Command, ctx *commandContext, flags rankFlags) (pipeline.Options, *metrics.Manager) {
	manager := metrics.NewManager()
	observer := pipeline.MultiObserver{
		pipeline.NewLogObserver(log.Logger),
		manager.Pipeline(),
	}

	opts := ctx.cfg.PipelineOptions(nil, observer)

	if cmd.Flags().Changed("sort") {
		method, ok := ranking.ParseSortMethod(flags.sortMethod)
		if !ok {
			log.Warn().Str("sort", flags.sortMethod).Msgf("unknown sort method, using %q", method)
		}
		opts.SortMethod = method
	}
	if cmd.Flags().Changed("language") {
		opts.PreferredLanguage = flags.language
	}
	if cmd.Flags().Changed("quality") {
		filter, ok := pipeline.ParseQualityFilter(flags.quality)
		if !ok {
			log.Warn().Str("quality", flags.quality).Msgf("unknown quality filter, using %q", filter)
		}
		opts.QualityFilter = filter
	}
	if flags.noRetention {
		opts.Retention = nil
	}

	return opts, manager
}

func metricsTextfile(ctx *commandContext, flags rankFlags) string {
	if flags.metricsTextfile != "" {
		return flags.metricsTextfile
	}
	return ctx.cfg.Config.MetricsTextfile
}

func readSource(stdin io.Reader, source string) ([]domain.Release, error) {
	if source == stdinSource {
		return decodeReleases(stdin, "stdin")
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %s", source)
	}
	defer f.Close()

	return decodeReleases(f, source)
}

func decodeReleases(r io.Reader, source string) ([]domain.Release, error) {
	var results []domain.Release
	if err := json.NewDecoder(r).Decode(&results); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "could not decode releases from %s", source)
	}
	return results, nil
}

func rankBatch(source string, results []domain.Release, opts pipeline.Options) rankedBatch {
	result := pipeline.Run(results, opts)

	batch := rankedBatch{
		Source: source,
		Items:  make([]rankedRelease, 0, len(result.Items)),
		Groups: result.Groups,
		Stats:  result.Stats,
	}
	for i, item := range result.Items {
		ranked := rankedRelease{
			Position: i + 1,
			Item:     item,
			Label:    display.Format(item.Descriptor, item.Release, item.Retention),
		}
		if result.Groups != nil {
			ranked.Tier = result.Groups.TierAt(i).String()
		}
		batch.Items = append(batch.Items, ranked)
	}

	log.Info().
		Str("source", source).
		Int("input", result.Stats.Input).
		Int("output", result.Stats.Output).
		Msg("ranked releases")

	return batch
}

func writeTables(w io.Writer, batches []rankedBatch) error {
	headers := []string{"#", "Tier", "Title", "Quality", "Audio", "Size", "Age"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight}

	for i, batch := range batches {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		rows := make([][]string, 0, len(batch.Items))
		for _, item := range batch.Items {
			rows = append(rows, []string{
				strconv.Itoa(item.Position),
				item.Tier,
				item.Release.Title,
				item.Descriptor.Resolution.String(),
				audioSummary(item.Descriptor),
				sizeSummary(item.Release),
				ageSummary(item),
			})
		}

		var separators []int
		if batch.Groups != nil {
			separators = []int{batch.Groups.Group1End, batch.Groups.Group2End}
		}

		if _, err := fmt.Fprintf(w, "%s (%d of %d releases)\n%s\n", batch.Source, batch.Stats.Output, batch.Stats.Input,
			renderTable(headers, rows, aligns, separators)); err != nil {
			return err
		}
	}
	return nil
}

func audioSummary(d releases.Descriptor) string {
	return strings.TrimSpace(d.AudioCodec + " " + d.AudioChannels)
}

func sizeSummary(r domain.Release) string {
	if r.SizeOrZero() == 0 {
		return ""
	}
	return humanize.IBytes(uint64(r.Size))
}

func ageSummary(item rankedRelease) string {
	if item.Release.Age == nil {
		return ""
	}
	return fmt.Sprintf("%dd", *item.Release.Age)
}

func countOf(values []string, target string) int {
	n := 0
	for _, v := range values {
		if v == target {
			n++
		}
	}
	return n
}
