// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package notice

import (
	"strings"

	"github.com/spf13/afero"
)

type scanState int

const (
	beforeSentinel scanState = iota
	afterSentinel
)

// rewriter collects the lines of a file that survive a rewrite. Notice
// lines above the sentinel are consumed, everything else is kept in order.
// The sentinel and the text after it are kept byte for byte in tail.
type rewriter struct {
	style Style
	year  int
	state scanState

	sawLicense   bool
	sawCopyright bool
	yearStart    int

	kept []string
	tail string
}

// feed classifies one line. rest is the unsplit text starting at line.
func (rw *rewriter) feed(lineNo int, line, rest string) *FixError {
	if rw.state == afterSentinel {
		return nil
	}
	if rw.style.IsSentinel(line) {
		rw.state = afterSentinel
		rw.tail = rest
		return nil
	}

	if _, ok := rw.style.StripLicense(line); ok {
		if rw.sawLicense {
			return &FixError{Reason: FixDuplicateLicense, Line: lineNo}
		}
		rw.sawLicense = true
		return nil
	}

	if raw, ok := rw.style.StripCopyright(line); ok {
		if rw.sawCopyright {
			return &FixError{Reason: FixDuplicateCopyright, Line: lineNo}
		}
		c := ParseCopyright(raw)
		switch {
		case c.Start > rw.year:
			return &FixError{Reason: FixFutureYear, Line: lineNo, Year: c.Start}
		case c.End > rw.year:
			return &FixError{Reason: FixFutureYear, Line: lineNo, Year: c.End}
		}
		rw.sawCopyright = true
		rw.yearStart = c.Start
		return nil
	}

	rw.kept = append(rw.kept, line)
	return nil
}

func (rw *rewriter) render(holder, license, eol string) string {
	start := rw.year
	if rw.sawCopyright {
		start = rw.yearStart
	}

	var b strings.Builder
	b.WriteString(Render(rw.style, start, holder, license, eol))
	if len(rw.kept) > 0 && rw.kept[0] != "" {
		b.WriteString(eol)
	}
	for _, line := range rw.kept {
		b.WriteString(line)
		b.WriteString(eol)
	}
	b.WriteString(rw.tail)
	return b.String()
}

// Fix rewrites path so it starts with a notice for holder and license.
// An existing copyright line keeps its start year. The sentinel line and
// everything after it are copied byte for byte. If the file contains
// "\r\n" anywhere, every line before the sentinel ends in "\r\n". Errors
// are returned as *FixError and leave the file untouched, except for a
// failed write.
func Fix(fsys afero.Fs, path, holder, license string) error {
	info, err := fsys.Stat(path)
	if err != nil {
		return &FixError{Path: path, Reason: FixReadFailed, Err: err}
	}
	content, err := afero.ReadFile(fsys, path)
	if err != nil {
		return &FixError{Path: path, Reason: FixReadFailed, Err: err}
	}

	text := string(content)
	eol := "\n"
	if strings.Contains(text, "\r\n") {
		eol = "\r\n"
	}

	rw := &rewriter{style: StyleFromPath(path), year: CurrentYear()}
	offset := 0
	for i, line := range splitLines(text) {
		if ferr := rw.feed(i+1, line, text[offset:]); ferr != nil {
			ferr.Path = path
			return ferr
		}
		if rw.state == afterSentinel {
			break
		}
		offset += lineLen(text[offset:])
	}

	out := rw.render(holder, license, eol)
	if err := afero.WriteFile(fsys, path, []byte(out), info.Mode().Perm()); err != nil {
		return &FixError{Path: path, Reason: FixWriteFailed, Err: err}
	}
	return nil
}

// lineLen returns the length of the first line of s including its
// terminator.
func lineLen(s string) int {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return i + 1
	}
	return len(s)
}
