// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package notice

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// Check verifies that the first two lines of path are a notice for
// holder and license ending in the current year. It never writes.
// Any problem is reported as a *CheckError.
func Check(fsys afero.Fs, path, holder, license string) error {
	style := StyleFromPath(path)

	f, err := fsys.Open(path)
	if err != nil {
		return &CheckError{Path: path, Reason: CheckReadFailed, Err: err}
	}
	defer f.Close()
	r := bufio.NewReader(f)

	line, ok, err := readLine(r)
	if err != nil {
		return &CheckError{Path: path, Reason: CheckReadFailed, Err: err}
	}
	if !ok {
		return &CheckError{Path: path, Reason: CheckMissingLicense}
	}
	actualLicense, ok := style.StripLicense(line)
	if !ok {
		return &CheckError{Path: path, Reason: CheckMissingLicense}
	}
	if actualLicense != license {
		return &CheckError{Path: path, Reason: CheckLicenseMismatch, Expected: license, Found: actualLicense}
	}

	line, ok, err = readLine(r)
	if err != nil {
		return &CheckError{Path: path, Reason: CheckReadFailed, Err: err}
	}
	if !ok {
		return &CheckError{Path: path, Reason: CheckMissingCopyright}
	}
	raw, ok := style.StripCopyright(line)
	if !ok {
		return &CheckError{Path: path, Reason: CheckMissingCopyright}
	}

	c := ParseCopyright(raw)
	if c.Holder != holder {
		return &CheckError{Path: path, Reason: CheckHolderMismatch, Expected: holder, Found: c.Holder}
	}
	if year := CurrentYear(); c.End != year {
		return &CheckError{
			Path:     path,
			Reason:   CheckYearMismatch,
			Expected: strconv.Itoa(year),
			Found:    strconv.Itoa(c.End),
		}
	}
	return nil
}

// readLine returns the next line without its terminator. ok is false at
// end of input.
func readLine(r *bufio.Reader) (line string, ok bool, err error) {
	line, err = r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}
	if line == "" {
		return "", false, nil
	}
	if trimmed, cut := strings.CutSuffix(line, "\n"); cut {
		line = strings.TrimSuffix(trimmed, "\r")
	}
	return line, true, nil
}
