package notice

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixContent(t *testing.T, path, input string) (string, error) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, path, []byte(input), 0o644))
	err := Fix(fsys, path, "TestHolder", "TestLicense")
	out, rerr := afero.ReadFile(fsys, path)
	require.NoError(t, rerr)
	return string(out), err
}

func TestFix(t *testing.T) {
	t.Cleanup(SetYear(2025))

	tests := []struct {
		name     string
		path     string
		input    string
		expected string
	}{
		{
			name:     "empty file",
			path:     "empty.go",
			input:    "",
			expected: "// SPDX-License-Identifier: TestLicense\n// Copyright (c) 2025 TestHolder\n",
		},
		{
			name:     "incomplete notice",
			path:     "only.go",
			input:    "// SPDX-License-Identifier: Old\n",
			expected: "// SPDX-License-Identifier: TestLicense\n// Copyright (c) 2025 TestHolder\n",
		},
		{
			name:  "missing notice",
			path:  "main.go",
			input: "package main\n\nfunc main() {}\n",
			expected: "// SPDX-License-Identifier: TestLicense\n// Copyright (c) 2025 TestHolder\n\n" +
				"package main\n\nfunc main() {}\n",
		},
		{
			name:  "last year keeps start",
			path:  "main.go",
			input: "// SPDX-License-Identifier: TestLicense\n// Copyright (c) 2024 TestHolder\n\npackage main\n",
			expected: "// SPDX-License-Identifier: TestLicense\n// Copyright (c) 2024-2025 TestHolder\n\n" +
				"package main\n",
		},
		{
			name:  "hash style",
			path:  "tool.py",
			input: "# SPDX-License-Identifier: MIT\n# Copyright (c) 2020-2023 Old Holder\nimport os\n",
			expected: "# SPDX-License-Identifier: TestLicense\n# Copyright (c) 2020-2025 TestHolder\n\n" +
				"import os\n",
		},
		{
			name:     "no trailing newline",
			path:     "main.go",
			input:    "package main",
			expected: "// SPDX-License-Identifier: TestLicense\n// Copyright (c) 2025 TestHolder\n\npackage main\n",
		},
		{
			name: "sentinel protects later notices",
			path: "vendored.go",
			input: "package main\n// * * * * *\n// SPDX-License-Identifier: MIT\n" +
				"// Copyright (c) 2011 Upstream Author\n",
			expected: "// SPDX-License-Identifier: TestLicense\n// Copyright (c) 2025 TestHolder\n\n" +
				"package main\n// * * * * *\n// SPDX-License-Identifier: MIT\n" +
				"// Copyright (c) 2011 Upstream Author\n",
		},
		{
			name:  "sentinel right after notice",
			path:  "vendored.go",
			input: "// SPDX-License-Identifier: TestLicense\n// Copyright (c) 2023 TestHolder\n// * * * * *\n// Copyright (c) 2099 Upstream\n",
			expected: "// SPDX-License-Identifier: TestLicense\n// Copyright (c) 2023-2025 TestHolder\n" +
				"// * * * * *\n// Copyright (c) 2099 Upstream\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := fixContent(t, tt.path, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestFixErrors(t *testing.T) {
	t.Cleanup(SetYear(2025))

	tests := []struct {
		name   string
		input  string
		reason FixReason
		line   int
		year   int
	}{
		{
			name:   "duplicate license",
			input:  "// SPDX-License-Identifier: A\n// Copyright (c) 2025 H\n// SPDX-License-Identifier: B\n",
			reason: FixDuplicateLicense,
			line:   3,
		},
		{
			name:   "duplicate copyright",
			input:  "// Copyright (c) 2020 H\ncode\n// Copyright (c) 2021 Other\n",
			reason: FixDuplicateCopyright,
			line:   3,
		},
		{
			name:   "future start year",
			input:  "// SPDX-License-Identifier: A\n// Copyright (c) 2030 H\n",
			reason: FixFutureYear,
			line:   2,
			year:   2030,
		},
		{
			name:   "future end year",
			input:  "// Copyright (c) 2020-2031 H\n",
			reason: FixFutureYear,
			line:   1,
			year:   2031,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := fixContent(t, "x.go", tt.input)

			var ferr *FixError
			require.ErrorAs(t, err, &ferr)
			assert.Equal(t, "x.go", ferr.Path)
			assert.Equal(t, tt.reason, ferr.Reason)
			assert.Equal(t, tt.line, ferr.Line)
			assert.Equal(t, tt.year, ferr.Year)
			assert.Equal(t, tt.input, out, "file must be left untouched")
		})
	}
}

func TestFixPreservesCRLF(t *testing.T) {
	t.Cleanup(SetYear(2025))

	out, err := fixContent(t, "win.go", "package main\r\n\r\nfunc main() {}\n")
	require.NoError(t, err)
	assert.Equal(t,
		"// SPDX-License-Identifier: TestLicense\r\n// Copyright (c) 2025 TestHolder\r\n\r\n"+
			"package main\r\n\r\nfunc main() {}\r\n",
		out)

	out, err = fixContent(t, "unix.go", "package main\n")
	require.NoError(t, err)
	assert.NotContains(t, out, "\r")
}

func TestFixKeepsSentinelTailBytes(t *testing.T) {
	t.Cleanup(SetYear(2025))

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "lf tail in crlf file",
			input: "package main\r\n// * * * * *\nupstream line\nlast",
			expected: "// SPDX-License-Identifier: TestLicense\r\n// Copyright (c) 2025 TestHolder\r\n\r\n" +
				"package main\r\n// * * * * *\nupstream line\nlast",
		},
		{
			name:  "sentinel without final newline",
			input: "// Copyright (c) 2021 Someone\n// * * * * *",
			expected: "// SPDX-License-Identifier: TestLicense\n// Copyright (c) 2021-2025 TestHolder\n" +
				"// * * * * *",
		},
		{
			name:  "crlf only after sentinel",
			input: "code\n// * * * * *\r\nkept\r\n",
			expected: "// SPDX-License-Identifier: TestLicense\r\n// Copyright (c) 2025 TestHolder\r\n\r\n" +
				"code\r\n// * * * * *\r\nkept\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := fixContent(t, "tail.go", tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)

			again, err := fixContent(t, "tail.go", out)
			require.NoError(t, err)
			assert.Equal(t, out, again)
		})
	}
}

func TestFixIdempotent(t *testing.T) {
	t.Cleanup(SetYear(2025))

	inputs := []string{
		"",
		"package main\n",
		"// SPDX-License-Identifier: Old\n",
		"// Copyright (c) 2019 Someone\n\n\npackage main\n",
		"line\r\n// * * * * *\r\n// Copyright (c) 2000 Kept\r\n",
		"// * * * * *\n",
	}
	for _, input := range inputs {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "f.go", []byte(input), 0o644))

		require.NoError(t, Fix(fsys, "f.go", "H", "L"))
		first, err := afero.ReadFile(fsys, "f.go")
		require.NoError(t, err)

		require.NoError(t, Check(fsys, "f.go", "H", "L"))

		require.NoError(t, Fix(fsys, "f.go", "H", "L"))
		second, err := afero.ReadFile(fsys, "f.go")
		require.NoError(t, err)
		assert.Equal(t, string(first), string(second), "input %q", input)
	}
}

func TestFixKeepsPermissions(t *testing.T) {
	t.Cleanup(SetYear(2025))

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "run.sh", []byte("echo hi\n"), 0o755))
	require.NoError(t, Fix(fsys, "run.sh", "H", "L"))

	info, err := fsys.Stat("run.sh")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestFixReadOnly(t *testing.T) {
	t.Cleanup(SetYear(2025))

	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "main.go", []byte("package main\n"), 0o644))

	err := Fix(afero.NewReadOnlyFs(base), "main.go", "H", "L")
	var ferr *FixError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, FixWriteFailed, ferr.Reason)
}
