// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"unique"

	"github.com/YakDriver/noticeplop/internal/logger"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFileNames are looked up in the working directory when no config
// file is given.
var DefaultFileNames = []string{"noticeplop.toml", ".noticeplop.toml"}

var (
	ErrNoConfig             = errors.New("no config file found and none specified on the command line")
	ErrInlineWithConfigFile = errors.New("--holder and --license cannot be used when a default config file is present")
	ErrIncompleteInline     = errors.New("--holder and --license must be specified together")
)

// Pair is the holder and license a glob is assigned to. The strings are
// interned, so a Pair is cheap to copy and compare with ==.
type Pair struct {
	holder  unique.Handle[string]
	license unique.Handle[string]
}

func NewPair(holder, license string) Pair {
	return Pair{holder: unique.Make(holder), license: unique.Make(license)}
}

func (p Pair) Holder() string  { return p.holder.Value() }
func (p Pair) License() string { return p.license.Value() }

func (p Pair) String() string {
	return fmt.Sprintf("holder '%s' and license '%s'", p.Holder(), p.License())
}

// Entry is one glob of a Mapping.
type Entry struct {
	Glob string
	Pair Pair
}

// Mapping assigns each glob exactly one Pair.
type Mapping struct {
	globs map[string]Pair
}

func New() *Mapping {
	return &Mapping{globs: make(map[string]Pair)}
}

// ConflictError is returned when one glob is assigned two different pairs.
type ConflictError struct {
	Glob     string
	Source   string
	Existing Pair
	Incoming Pair
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting config for glob '%s' in %s: one has %s, another has %s",
		e.Glob, e.Source, e.Incoming, e.Existing)
}

// ParseError is returned when a config file cannot be read or decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid config file '%s': %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FromInline assigns holder and license to every glob as given. Repeated
// globs keep their first position and are logged.
func FromInline(ctx context.Context, holder, license string, globs []string) *Mapping {
	m := New()
	pair := NewPair(holder, license)
	for _, glob := range globs {
		if _, ok := m.globs[glob]; ok {
			logger.Get(ctx).Warn("glob specified multiple times", "glob", glob)
			continue
		}
		m.globs[glob] = pair
	}
	return m
}

// FromFile reads a TOML file of the form
//
//	["Holder Name"]
//	"src/**/*.go" = "MIT"
//
// Globs are resolved against the directory containing the file.
func FromFile(ctx context.Context, path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	var raw map[string]map[string]string
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	dir := filepath.Dir(path)
	m := New()
	for _, holder := range slices.Sorted(maps.Keys(raw)) {
		table := raw[holder]
		for _, glob := range slices.Sorted(maps.Keys(table)) {
			pair := NewPair(holder, table[glob])
			if err := m.insert(ctx, resolveGlob(dir, glob), pair, "'"+path+"'"); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// Merge adds every glob of other to m. Identical assignments are logged,
// different ones are a *ConflictError.
func (m *Mapping) Merge(ctx context.Context, other *Mapping) error {
	for _, e := range other.Entries() {
		if err := m.insert(ctx, e.Glob, e.Pair, "multiple configs"); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mapping) insert(ctx context.Context, glob string, pair Pair, source string) error {
	existing, ok := m.globs[glob]
	if !ok {
		m.globs[glob] = pair
		return nil
	}
	if existing == pair {
		logger.Get(ctx).Warn("glob specified multiple times", "glob", glob, "source", source)
		return nil
	}
	return &ConflictError{Glob: glob, Source: source, Existing: existing, Incoming: pair}
}

// Len returns the number of globs.
func (m *Mapping) Len() int { return len(m.globs) }

// Entries returns the globs in lexical order.
func (m *Mapping) Entries() []Entry {
	entries := make([]Entry, 0, len(m.globs))
	for _, glob := range slices.Sorted(maps.Keys(m.globs)) {
		entries = append(entries, Entry{Glob: glob, Pair: m.globs[glob]})
	}
	return entries
}

func resolveGlob(dir, glob string) string {
	if filepath.IsAbs(glob) {
		return filepath.Clean(glob)
	}
	return filepath.Join(dir, glob)
}
