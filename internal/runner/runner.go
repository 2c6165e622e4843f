// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

// Package runner checks or fixes license notices for every file matched
// by a config mapping.
package runner

import (
	"context"
	"errors"
	"io"

	"github.com/YakDriver/noticeplop/internal/config"
	"github.com/YakDriver/noticeplop/internal/logger"
	"github.com/YakDriver/noticeplop/internal/notice"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// DefaultJobs caps the files processed at once, to stay under open file
// limits.
const DefaultJobs = 1024

type Options struct {
	// Fix rewrites files that fail the check.
	Fix bool
	// Jobs is the number of files processed concurrently. Zero means DefaultJobs.
	Jobs int
	// Fs defaults to the OS filesystem.
	Fs afero.Fs
	// Glob defaults to DefaultGlob.
	Glob GlobFunc
	// Progress receives a progress bar. Nil disables it.
	Progress io.Writer
}

type Runner struct {
	fix      bool
	jobs     int
	fs       afero.Fs
	glob     GlobFunc
	progress io.Writer
}

func New(opts Options) *Runner {
	r := &Runner{
		fix:      opts.Fix,
		jobs:     opts.Jobs,
		fs:       opts.Fs,
		glob:     opts.Glob,
		progress: opts.Progress,
	}
	if r.jobs <= 0 {
		r.jobs = DefaultJobs
	}
	if r.fs == nil {
		r.fs = afero.NewOsFs()
	}
	if r.glob == nil {
		r.glob = DefaultGlob
	}
	return r
}

type result struct {
	path  string
	fixed bool
	err   error
}

// Run processes every file matched by entries. A returned error means the
// run could not happen: a glob failed to expand, or in fix mode a file was
// claimed by conflicting pairs. Per-file problems are in the Report and
// are only logged at debug level.
func (r *Runner) Run(ctx context.Context, entries []config.Entry) (*Report, error) {
	log := logger.Get(ctx)

	jobs, unmatched, globFailures, err := r.schedule(ctx, entries)
	if err != nil {
		log.Error("file matched by multiple globs of conflicting config", "err", err)
		return nil, err
	}
	if len(globFailures) > 0 {
		for _, f := range globFailures {
			log.Error("error while searching for files", "glob", f.Glob, "err", f.Err)
		}
		return nil, &GlobError{Failures: globFailures}
	}
	for _, glob := range unmatched {
		log.Warn("glob did not match any file", "glob", glob)
	}

	report := &Report{Fix: r.fix, Total: len(jobs), Unmatched: unmatched}

	desc := "checking files"
	if r.fix {
		desc = "fixing files"
	}
	bar := progressbar.DefaultSilent(int64(len(jobs)), desc)
	if r.progress != nil {
		bar = progressbar.NewOptions(len(jobs),
			progressbar.OptionSetWriter(r.progress),
			progressbar.OptionSetDescription(desc),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	results := make(chan result)
	go r.dispatch(ctx, jobs, results)

	for res := range results {
		switch {
		case res.err != nil:
			report.Failures = append(report.Failures, FileFailure{Path: res.path, Err: res.err})
		case res.fixed:
			report.Fixed = append(report.Fixed, res.path)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	if err := ctx.Err(); err != nil {
		return report, err
	}

	if !report.OK() {
		log.Error("license check found issues", "files", report.Total, "issues", len(report.Failures))
		if !r.fix {
			log.Info("run with --fix to fix them automatically")
		}
		return report, nil
	}
	log.Info("license check successful", "files", report.Total, "fixed", len(report.Fixed))
	return report, nil
}

// dispatch runs jobs at most r.jobs at a time and closes results when all
// of them are done. Jobs already running are not interrupted when ctx is
// cancelled, but no new ones start.
func (r *Runner) dispatch(ctx context.Context, jobs []job, results chan<- result) {
	var g errgroup.Group
	g.SetLimit(r.jobs)
	for _, j := range jobs {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results <- r.process(ctx, j)
			return nil
		})
	}
	_ = g.Wait()
	close(results)
}

func (r *Runner) process(ctx context.Context, j job) result {
	log := logger.Get(ctx).With("path", j.path)
	holder, license := j.pair.Holder(), j.pair.License()

	err := notice.Check(r.fs, j.path, holder, license)
	if err == nil {
		return result{path: j.path}
	}
	if !r.fix {
		log.Debug(problem(err))
		return result{path: j.path, err: err}
	}

	log.Debug(problem(err))
	log.Debug("fixing")
	if err := notice.Fix(r.fs, j.path, holder, license); err != nil {
		log.Debug("failed to fix", "err", problem(err))
		return result{path: j.path, err: err}
	}
	return result{path: j.path, fixed: true}
}

func problem(err error) string {
	var p interface{ Problem() string }
	if errors.As(err, &p) {
		return p.Problem()
	}
	return err.Error()
}
