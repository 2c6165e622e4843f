// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

// Package notice reads, checks and rewrites the two-line license notice
// at the top of a source file:
//
//	// SPDX-License-Identifier: MPL-2.0
//	// Copyright (c) 2014-2026 IBM Corp.
package notice

import (
	"strconv"
	"strings"
)

// Copyright is a parsed copyright line.
type Copyright struct {
	Start  int
	End    int
	Holder string
}

// ParseCopyright parses the "YYYY[-YYYY] HOLDER" remainder of a copyright
// line. Years that do not parse fall back to Epoch, and End is never
// before Start.
func ParseCopyright(raw string) Copyright {
	years, holder, _ := strings.Cut(raw, " ")
	first, second, hasRange := strings.Cut(years, "-")

	c := Copyright{Start: parseYear(first, Epoch), Holder: holder}
	c.End = c.Start
	if hasRange {
		c.End = parseYear(second, c.Start)
	}
	c.End = max(c.End, c.Start)
	return c
}

func parseYear(s string, fallback int) int {
	y, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return fallback
	}
	return int(y)
}

// Render returns the license and copyright lines, each terminated by eol.
// The year range ends at CurrentYear.
func Render(style Style, yearStart int, holder, license, eol string) string {
	years := strconv.Itoa(yearStart)
	if end := CurrentYear(); yearStart != end {
		years += "-" + strconv.Itoa(end)
	}

	var b strings.Builder
	b.WriteString(style.licensePrefix())
	b.WriteString(license)
	b.WriteString(eol)
	b.WriteString(style.copyrightPrefix())
	b.WriteString(years)
	b.WriteString(" ")
	b.WriteString(holder)
	b.WriteString(eol)
	return b.String()
}

// splitLines splits content the way a line reader does: "\n" and "\r\n"
// terminators are dropped and a trailing terminator does not produce an
// empty final line.
func splitLines(content string) []string {
	var lines []string
	for line := range strings.Lines(content) {
		if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
			line = strings.TrimSuffix(trimmed, "\r")
		}
		lines = append(lines, line)
	}
	return lines
}
