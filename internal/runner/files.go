// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"context"
	"path/filepath"

	"github.com/YakDriver/noticeplop/internal/config"
	"github.com/YakDriver/noticeplop/internal/logger"
	"github.com/bmatcuk/doublestar/v4"
)

// GlobFunc expands a pattern to the matching paths.
type GlobFunc func(pattern string) ([]string, error)

// DefaultGlob supports "**" and is relative to the working directory.
func DefaultGlob(pattern string) ([]string, error) {
	return doublestar.FilepathGlob(pattern)
}

type job struct {
	path string
	glob string
	pair config.Pair
}

// schedule expands every glob into jobs. In fix mode each file is claimed
// by the first pair that matches it; a different pair matching it later
// is a *PathConflictError.
func (r *Runner) schedule(ctx context.Context, entries []config.Entry) ([]job, []string, []GlobFailure, error) {
	log := logger.Get(ctx)

	var (
		jobs      []job
		unmatched []string
		failures  []GlobFailure
		claims    = make(map[string]config.Pair)
	)
	for _, e := range entries {
		paths, err := r.glob(e.Glob)
		if err != nil {
			failures = append(failures, GlobFailure{Glob: e.Glob, Err: err})
			continue
		}
		if len(paths) == 0 {
			unmatched = append(unmatched, e.Glob)
			continue
		}

		for _, path := range paths {
			info, err := r.fs.Stat(path)
			if err != nil {
				log.Debug("skipping unreadable path", "path", path, "err", err)
				continue
			}
			if !info.Mode().IsRegular() {
				continue
			}

			if r.fix {
				key := claimKey(path)
				if existing, ok := claims[key]; ok {
					if existing != e.Pair {
						return nil, nil, nil, &PathConflictError{
							Path:     path,
							Glob:     e.Glob,
							Existing: existing,
							Incoming: e.Pair,
						}
					}
					log.Debug("already scheduled", "path", path, "glob", e.Glob)
					continue
				}
				claims[key] = e.Pair
			}
			jobs = append(jobs, job{path: path, glob: e.Glob, pair: e.Pair})
		}
	}
	return jobs, unmatched, failures, nil
}

// claimKey identifies a file regardless of whether the glob that found it
// was relative or absolute.
func claimKey(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
