// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleBatch = `[
	{"title": "Movie.2020.GERMAN.1080p.BluRay.DTS-HD.MA", "size": 8000000000, "age": 2, "indexer": "nzbgeek"},
	{"title": "Movie.2020.1080p.WEB-DL.AC3", "size": 4000000000, "age": 10, "indexer": "drunkenslug"},
	{"title": "Movie.2020.MULTi.720p.BluRay.AC3", "size": 3000000000, "age": 1, "indexer": "nzbgeek"}
]`

// runCLI executes the root command with isolated config and returns stdout and stderr.
func runCLI(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	previous, previousLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = previous
		zerolog.SetGlobalLevel(previousLevel)
	})

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeBatch(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func decodeBatches(t *testing.T, out string) []rankedBatch {
	t.Helper()

	var batches []rankedBatch
	require.NoError(t, json.Unmarshal([]byte(out), &batches), out)
	return batches
}

func batchTitles(batch rankedBatch) []string {
	titles := make([]string, len(batch.Items))
	for i, item := range batch.Items {
		titles[i] = item.Release.Title
	}
	return titles
}

func TestRankCommand_Stdin(t *testing.T) {
	out, _, err := runCLI(t, []string{"rank", "--language", "German"}, exampleBatch)
	require.NoError(t, err)

	batches := decodeBatches(t, out)
	require.Len(t, batches, 1)

	batch := batches[0]
	assert.Equal(t, "-", batch.Source)
	assert.Equal(t, []string{
		"Movie.2020.GERMAN.1080p.BluRay.DTS-HD.MA",
		"Movie.2020.1080p.WEB-DL.AC3",
		"Movie.2020.MULTi.720p.BluRay.AC3",
	}, batchTitles(batch))

	require.NotNil(t, batch.Groups)
	assert.Equal(t, 1, batch.Groups.Group1End)
	assert.Equal(t, 2, batch.Groups.Group2End)

	assert.Equal(t, "preferred", batch.Items[0].Tier)
	assert.Equal(t, "fallback", batch.Items[1].Tier)
	assert.Equal(t, "other", batch.Items[2].Tier)
	assert.Equal(t, 1, batch.Items[0].Position)
	assert.NotEmpty(t, batch.Items[0].Label.Quality)
}

func TestRankCommand_FilesKeepArgumentOrder(t *testing.T) {
	first := writeBatch(t, "first.json", exampleBatch)
	second := writeBatch(t, "second.json", `[{"title": "Show.S01E01.720p.HDTV"}, {"title": "Show.S01E01.2160p.WEB-DL"}]`)
	empty := writeBatch(t, "empty.json", "")

	out, _, err := runCLI(t, []string{"rank", "--sort", "Size First", second, first, empty}, "")
	require.NoError(t, err)

	batches := decodeBatches(t, out)
	require.Len(t, batches, 3)
	assert.Equal(t, second, batches[0].Source)
	assert.Equal(t, first, batches[1].Source)
	assert.Equal(t, empty, batches[2].Source)

	assert.Nil(t, batches[0].Groups, "no preferred language means a single group")
	assert.Equal(t, []string{"Show.S01E01.2160p.WEB-DL", "Show.S01E01.720p.HDTV"}, batchTitles(batches[0]))
	assert.Empty(t, batches[0].Items[0].Tier)
	assert.Empty(t, batches[2].Items)
}

func TestRankCommand_QualityAndRetention(t *testing.T) {
	configPath := writeBatch(t, "config.toml", `
retentionEnabled = true
retentionFilterDays = 5
`)

	out, _, err := runCLI(t, []string{"rank", "--config", configPath, "--quality", "1080p"}, exampleBatch)
	require.NoError(t, err)

	batches := decodeBatches(t, out)
	require.Len(t, batches, 1)
	assert.Equal(t, []string{"Movie.2020.GERMAN.1080p.BluRay.DTS-HD.MA"}, batchTitles(batches[0]))
	assert.Equal(t, 1, batches[0].Stats.DroppedByRetention)
	assert.Equal(t, 1, batches[0].Stats.DroppedByQuality)

	out, _, err = runCLI(t, []string{"rank", "--config", configPath, "--no-retention"}, exampleBatch)
	require.NoError(t, err)
	assert.Len(t, decodeBatches(t, out)[0].Items, 3)
}

func TestRankCommand_Table(t *testing.T) {
	out, _, err := runCLI(t, []string{"rank", "-o", "table", "--language", "German"}, exampleBatch)
	require.NoError(t, err)

	assert.Contains(t, out, "(3 of 3 releases)")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Movie.2020.GERMAN.1080p.BluRay.DTS-HD.MA")
	assert.Contains(t, out, "preferred")
	assert.Contains(t, out, "7.5 GiB")
}

func TestRankCommand_MetricsTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "releaserank.prom")

	_, _, err := runCLI(t, []string{"rank", "--language", "German", "--metrics-textfile", path}, exampleBatch)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "releaserank_pipeline_grouped_runs_total 1")
	assert.Contains(t, string(content), `releaserank_pipeline_releases_sorted_total{tier="preferred"} 1`)
}

func TestRankCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		stdin   string
		wantErr string
	}{
		{name: "invalid json", args: []string{"rank"}, stdin: `{"title":`, wantErr: "could not decode releases from stdin"},
		{name: "missing file", args: []string{"rank", filepath.Join(os.TempDir(), "releaserank-missing.json")}, wantErr: "could not open"},
		{name: "unknown format", args: []string{"rank", "-o", "xml"}, wantErr: `unknown format "xml"`},
		{name: "stdin twice", args: []string{"rank", "-", "-"}, wantErr: "stdin can only be read once"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args, tt.stdin)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestClassifyCommand(t *testing.T) {
	out, _, err := runCLI(t, []string{
		"classify", "--language", "German",
		"Movie.2020.GERMAN.1080p.BluRay.DTS-HD.MA",
		"Movie.2020.1080p.WEB-DL.AC3",
	}, "")
	require.NoError(t, err)

	var rows []classification
	require.NoError(t, json.Unmarshal([]byte(out), &rows), out)
	require.Len(t, rows, 2)

	assert.Equal(t, "preferred", rows[0].Tier)
	assert.Equal(t, 3, rows[0].VideoRank)
	assert.Equal(t, "fallback", rows[1].Tier)
	assert.Empty(t, rows[1].Retention, "retention is disabled by default")
}

func TestClassifyCommand_Retention(t *testing.T) {
	configPath := writeBatch(t, "config.toml", "retentionEnabled = true\n")

	out, _, err := runCLI(t, []string{"classify", "--config", configPath, "--age", "100", "-o", "table", "Movie.2020.1080p"}, "")
	require.NoError(t, err)
	assert.Contains(t, out, "filtered")

	_, _, err = runCLI(t, []string{"classify"}, "")
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCLI(t, []string{"version"}, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:")

	out, _, err = runCLI(t, []string{"version", "--json"}, "")
	require.NoError(t, err)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Contains(t, info, "version")
}

func TestConfigCommands(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote sample configuration")

	out, _, err = runCLI(t, []string{"config", "show", "--config", target}, "")
	require.NoError(t, err)
	assert.Contains(t, out, target)
	assert.Contains(t, out, `"SortMethod": "Quality First"`)
}
