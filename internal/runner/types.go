// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/YakDriver/noticeplop/internal/config"
)

// ErrIssuesFound is wrapped by Report.Err when any file failed.
var ErrIssuesFound = errors.New("license check unsuccessful")

// FileFailure is a file that failed its check or could not be fixed.
type FileFailure struct {
	Path string
	Err  error
}

// Report is the outcome of a run that got as far as processing files.
type Report struct {
	Fix   bool
	Total int
	// Fixed lists the files that were rewritten.
	Fixed []string
	// Failures are in completion order.
	Failures []FileFailure
	// Unmatched lists globs that matched no file.
	Unmatched []string
}

// OK reports whether every file passed.
func (r *Report) OK() bool { return len(r.Failures) == 0 }

// Messages returns one message per failure.
func (r *Report) Messages() []string {
	msgs := make([]string, 0, len(r.Failures))
	for _, f := range r.Failures {
		msgs = append(msgs, f.Err.Error())
	}
	return msgs
}

// Err summarizes the failures, or returns nil if there are none.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	if r.Fix {
		return fmt.Errorf("%w: %d of %d file(s) could not be fixed automatically", ErrIssuesFound, len(r.Failures), r.Total)
	}
	return fmt.Errorf("%w: found %d issue(s) in %d file(s)", ErrIssuesFound, len(r.Failures), r.Total)
}

// GlobFailure is one glob that could not be expanded.
type GlobFailure struct {
	Glob string
	Err  error
}

// GlobError collects every glob that failed to expand. No file is
// processed when it is returned.
type GlobError struct {
	Failures []GlobFailure
}

func (e *GlobError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "got %d error(s) while searching for files:", len(e.Failures))
	for _, f := range e.Failures {
		fmt.Fprintf(&b, "\n  while globbing '%s': %v", f.Glob, f.Err)
	}
	return b.String()
}

func (e *GlobError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f.Err)
	}
	return errs
}

// PathConflictError is returned in fix mode when globs with different
// pairs match the same file.
type PathConflictError struct {
	Path     string
	Glob     string
	Existing config.Pair
	Incoming config.Pair
}

func (e *PathConflictError) Error() string {
	return fmt.Sprintf("conflicting config found for '%s' while globbing '%s': one config has %s, another has %s",
		e.Path, e.Glob, e.Incoming, e.Existing)
}
