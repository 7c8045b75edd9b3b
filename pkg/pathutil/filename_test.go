package pathutil_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filemanpro/fmkit/pkg/pathutil"
	"github.com/filemanpro/fmkit/pkg/platform"
)

func TestIsValidFilenameOn(t *testing.T) {
	t.Parallel()

	posix := platform.POSIX{}
	windows := platform.Windows{}

	tcs := map[string]struct {
		p     platform.Platform
		input string
		want  bool
	}{
		"plain name":                  {p: posix, input: "report.pdf", want: true},
		"empty":                       {p: posix, input: "", want: false},
		"angle bracket":               {p: posix, input: "a<b", want: false},
		"question mark":               {p: posix, input: "what?.txt", want: false},
		"forward slash":               {p: posix, input: "a/b", want: false},
		"backslash":                   {p: posix, input: `a\b`, want: false},
		"control character":           {p: posix, input: "a\x1fb", want: false},
		"tab":                         {p: posix, input: "a\tb", want: false},
		"reserved name on windows":    {p: windows, input: "CON", want: false},
		"reserved lowercase":          {p: windows, input: "nul.txt", want: false},
		"reserved name on posix":      {p: posix, input: "CON", want: true},
		"unicode name":                {p: windows, input: "тест.txt", want: true},
		"spaces are fine":             {p: windows, input: "my file.txt", want: true},
		"reserved prefix not matched": {p: windows, input: "CONSOLE.txt", want: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, pathutil.IsValidFilenameOn(tc.p, tc.input))
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"already valid":  {input: "notes.md", want: "notes.md"},
		"invalid chars":  {input: "file<with>invalid*chars?.txt", want: "file_with_invalid_chars_.txt"},
		"control chars":  {input: "a\x01b", want: "a_b"},
		"path separator": {input: "dir/name", want: "dir_name"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := pathutil.SanitizeFilename(tc.input)
			assert.Equal(t, tc.want, got)
			assert.True(t, pathutil.IsValidFilenameOn(platform.POSIX{}, got))
		})
	}

	t.Run("truncates long names", func(t *testing.T) {
		t.Parallel()

		long := make([]byte, 300)
		for i := range long {
			long[i] = 'a'
		}

		got := pathutil.SanitizeFilename(string(long))
		assert.Len(t, got, 255)
	})

	t.Run("truncation keeps valid utf8", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("a", 254) + "é"

		got := pathutil.SanitizeFilename(long)
		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, strings.Repeat("a", 254), got)
	})
}

func TestApplyCase(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		style pathutil.CaseStyle
		want  string
	}{
		"none keeps name": {input: "MyReport.PDF", style: pathutil.CaseNone, want: "MyReport.PDF"},
		"snake":           {input: "MyReport.pdf", style: pathutil.CaseSnake, want: "my_report.pdf"},
		"kebab":           {input: "MyReport.pdf", style: pathutil.CaseKebab, want: "my-report.pdf"},
		"camel":           {input: "my_report.pdf", style: pathutil.CaseCamel, want: "myReport.pdf"},
		"no extension":    {input: "MyReport", style: pathutil.CaseSnake, want: "my_report"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := pathutil.ApplyCase(tc.input, tc.style)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("unknown style", func(t *testing.T) {
		t.Parallel()

		_, err := pathutil.ApplyCase("x", pathutil.CaseStyle("shouty"))
		require.Error(t, err)
	})
}
