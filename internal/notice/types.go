// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package notice

import "fmt"

// CheckReason says why a file failed Check.
type CheckReason int

const (
	CheckReadFailed CheckReason = iota
	CheckMissingLicense
	CheckLicenseMismatch
	CheckMissingCopyright
	CheckHolderMismatch
	CheckYearMismatch
)

// CheckError is returned by Check when a notice is missing or wrong.
type CheckError struct {
	Path     string
	Reason   CheckReason
	Expected string
	Found    string
	Err      error
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("'%s': %s", e.Path, e.Problem())
}

// Problem describes the issue without the path.
func (e *CheckError) Problem() string {
	switch e.Reason {
	case CheckReadFailed:
		return fmt.Sprintf("error while reading file: %v", e.Err)
	case CheckMissingLicense:
		return "missing license notice line"
	case CheckLicenseMismatch:
		return fmt.Sprintf("license is wrong: expected '%s', found '%s'", e.Expected, e.Found)
	case CheckMissingCopyright:
		return "missing copyright line at the top"
	case CheckHolderMismatch:
		return fmt.Sprintf("holder is wrong: expected '%s', found '%s'", e.Expected, e.Found)
	case CheckYearMismatch:
		return fmt.Sprintf("copyright info ends at %s, but we are in %s", e.Found, e.Expected)
	default:
		return "unknown problem"
	}
}

func (e *CheckError) Unwrap() error { return e.Err }

// FixReason says why Fix refused or failed to rewrite a file.
type FixReason int

const (
	FixReadFailed FixReason = iota
	FixDuplicateLicense
	FixDuplicateCopyright
	FixFutureYear
	FixWriteFailed
)

// FixError is returned by Fix. The file is left untouched unless the
// reason is FixWriteFailed.
type FixError struct {
	Path   string
	Reason FixReason
	// Line is the 1-based line that triggered the error, 0 for I/O errors.
	Line int
	Year int
	Err  error
}

func (e *FixError) Error() string {
	return fmt.Sprintf("failed to fix '%s': %s", e.Path, e.Problem())
}

// Problem describes the issue without the path.
func (e *FixError) Problem() string {
	switch e.Reason {
	case FixReadFailed:
		return fmt.Sprintf("error while reading file: %v", e.Err)
	case FixDuplicateLicense:
		return fmt.Sprintf("duplicate license lines found (line %d), not auto-fixable, please fix manually", e.Line)
	case FixDuplicateCopyright:
		return fmt.Sprintf("duplicate copyright lines found (line %d), not auto-fixable, please fix manually", e.Line)
	case FixFutureYear:
		return fmt.Sprintf("copyright year %d on line %d is in the future, we are in %d", e.Year, e.Line, CurrentYear())
	case FixWriteFailed:
		return fmt.Sprintf("error while writing file: %v", e.Err)
	default:
		return "unknown problem"
	}
}

func (e *FixError) Unwrap() error { return e.Err }
