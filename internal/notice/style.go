// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package notice

import (
	"path/filepath"
	"slices"
	"strings"
)

// Style is the comment syntax a notice is written in.
type Style int

const (
	// LineComment notices start with "//".
	LineComment Style = iota
	// HashComment notices start with "#".
	HashComment
)

// hashExtensions must stay sorted, it is searched with binary search.
var hashExtensions = []string{
	"bash", "ini", "mk", "php", "phtml", "pl", "pm", "ps1", "psd1", "psm1",
	"py", "r", "rb", "sh", "tcl", "toml", "yaml", "yml", "zsh",
}

// StyleFromPath picks the comment style from the file extension.
// Unknown or missing extensions use LineComment.
func StyleFromPath(path string) Style {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return LineComment
	}
	if _, found := slices.BinarySearch(hashExtensions, ext); found {
		return HashComment
	}
	return LineComment
}

// Token returns the comment token, without trailing space.
func (s Style) Token() string {
	if s == HashComment {
		return "#"
	}
	return "//"
}

func (s Style) String() string {
	switch s {
	case LineComment:
		return "line"
	case HashComment:
		return "hash"
	default:
		return "unknown"
	}
}

func (s Style) licensePrefix() string   { return s.Token() + " SPDX-License-Identifier: " }
func (s Style) copyrightPrefix() string { return s.Token() + " Copyright (c) " }
func (s Style) sentinel() string        { return s.Token() + " * * * * *" }

// StripLicense returns the SPDX identifier if line is a license line.
func (s Style) StripLicense(line string) (string, bool) {
	return strings.CutPrefix(line, s.licensePrefix())
}

// StripCopyright returns the "YYYY[-YYYY] HOLDER" part if line is a copyright line.
func (s Style) StripCopyright(line string) (string, bool) {
	return strings.CutPrefix(line, s.copyrightPrefix())
}

// IsSentinel reports whether line marks the start of content that is
// never rewritten.
func (s Style) IsSentinel(line string) bool {
	return strings.HasPrefix(line, s.sentinel())
}
