// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

// Package releases turns free-text release names into structured descriptors.
// Parsing is delegated to moistari/rls; everything derived from its output
// (resolution, audio, languages, edition flags) is normalized here so the
// ranking code never has to look at raw tags.
package releases

import (
	"strings"
	"time"

	"github.com/autobrr/autobrr/pkg/ttlcache"
	"github.com/moistari/rls"
)

const defaultParserTTL = 5 * time.Minute

// ReleaseParser is the external release-name parser consumed by Extract.
// Implementations may panic or return nil; Extract treats both as "nothing
// could be extracted".
type ReleaseParser interface {
	Parse(name string) *rls.Release
}

// ParserFunc adapts a plain function to ReleaseParser.
type ParserFunc func(name string) *rls.Release

// Parse calls f(name).
func (f ParserFunc) Parse(name string) *rls.Release {
	return f(name)
}

// Parser provides cached rls parsing so the same title coming back from
// several indexers is only parsed once.
type Parser struct {
	cache *ttlcache.Cache[string, rls.Release]
}

// NewParser creates a parser whose cache entries expire after ttl.
func NewParser(ttl time.Duration) *Parser {
	if ttl <= 0 {
		ttl = defaultParserTTL
	}
	return &Parser{
		cache: ttlcache.New(ttlcache.Options[string, rls.Release]{}.SetDefaultTTL(ttl)),
	}
}

// NewDefaultParser creates a parser with a 5 minute cache.
func NewDefaultParser() *Parser {
	return NewParser(defaultParserTTL)
}

var defaultParser = NewDefaultParser()

// DefaultParser returns the process-wide parser used when callers do not
// inject their own.
func DefaultParser() *Parser {
	return defaultParser
}

// Parse parses a release name using rls, with caching. A nil parser or a
// blank name yields an empty release.
func (p *Parser) Parse(name string) *rls.Release {
	name = strings.TrimSpace(name)
	if p == nil || name == "" {
		return &rls.Release{}
	}

	if cached, found := p.cache.Get(name); found {
		return &cached
	}

	release := rls.ParseString(name)
	p.cache.Set(name, release, ttlcache.DefaultTTL)

	return &release
}
