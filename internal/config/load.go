// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"os"
	"path/filepath"
)

// Options is what the command line provides.
type Options struct {
	Holder  string
	License string
	// Paths are config files, or globs when Holder and License are set.
	Paths []string
	// Dir is searched for a default config file.
	Dir string
}

// Load builds the Mapping for one run. With Holder and License set, Paths
// are globs and no default config file may exist in Dir. Otherwise Paths
// are config files merged in order, falling back to a default file in Dir.
func Load(ctx context.Context, opts Options) (*Mapping, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	switch {
	case opts.Holder != "" && opts.License != "":
		if _, ok := FindDefault(dir); ok {
			return nil, ErrInlineWithConfigFile
		}
		return FromInline(ctx, opts.Holder, opts.License, opts.Paths), nil
	case opts.Holder != "" || opts.License != "":
		return nil, ErrIncompleteInline
	}

	paths := opts.Paths
	if len(paths) == 0 {
		path, ok := FindDefault(dir)
		if !ok {
			return nil, ErrNoConfig
		}
		paths = []string{path}
	}

	m, err := FromFile(ctx, paths[0])
	if err != nil {
		return nil, err
	}
	for _, path := range paths[1:] {
		other, err := FromFile(ctx, path)
		if err != nil {
			return nil, err
		}
		if err := m.Merge(ctx, other); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// FindDefault returns the first of DefaultFileNames present in dir.
func FindDefault(dir string) (string, bool) {
	for _, name := range DefaultFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}
