package pathutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/filemanpro/fmkit/pkg/pathutil"
	"github.com/filemanpro/fmkit/pkg/platform"
)

func TestExtension(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"simple":                     {input: "main.go", want: "go"},
		"multiple dots":              {input: "archive.tar.gz", want: "gz"},
		"no extension":               {input: "noext", want: ""},
		"dotfile":                    {input: ".hidden", want: ""},
		"dotfile with extension":     {input: ".bashrc.bak", want: "bak"},
		"dot in directory only":      {input: "dir.d/noext", want: ""},
		"full path":                  {input: "/home/alice/report.pdf", want: "pdf"},
		"backslash separated path":   {input: `C:\Users\alice\report.PDF`, want: "PDF"},
		"trailing dot yields empty":  {input: "name.", want: ""},
		"empty path":                 {input: "", want: ""},
		"extension case untouched":   {input: "photo.JPG", want: "JPG"},
		"separator after only dot":   {input: "a.b/c", want: ""},
		"hidden file in a directory": {input: "/etc/.hidden", want: ""},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, pathutil.Extension(tc.input))
		})
	}
}

func TestStem(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"simple":        {input: "main.go", want: "main"},
		"multiple dots": {input: "archive.tar.gz", want: "archive.tar"},
		"no extension":  {input: "noext", want: "noext"},
		"dotfile":       {input: ".hidden", want: ".hidden"},
		"full path":     {input: "/home/alice/report.pdf", want: "report"},
		"empty path":    {input: "", want: ""},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, pathutil.Stem(tc.input))
		})
	}
}

func TestSplitPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b", "c"}, pathutil.SplitPath("/a/b/c"))
	assert.Equal(t, []string{"a", "b"}, pathutil.SplitPath("a//b/"))
	assert.Equal(t, []string{"C:", "Users", "alice"}, pathutil.SplitPath(`C:\Users\alice`))
	assert.Empty(t, pathutil.SplitPath(""))
	assert.Empty(t, pathutil.SplitPath("///"))
}

func TestJoinOn(t *testing.T) {
	t.Parallel()

	posix := platform.POSIX{}

	tcs := map[string]struct {
		a    string
		b    string
		want string
	}{
		"no separators":        {a: "a", b: "b", want: "a/b"},
		"a has separator":      {a: "a/", b: "b", want: "a/b"},
		"b has separator":      {a: "a", b: "/b", want: "a/b"},
		"both have separators": {a: "a/", b: "/b", want: "a/b"},
		"empty a":              {a: "", b: "b", want: "b"},
		"empty b":              {a: "a", b: "", want: "a"},
		"both empty":           {a: "", b: "", want: ""},
		"nested components":    {a: "/root/dir", b: "sub/file.txt", want: "/root/dir/sub/file.txt"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, pathutil.JoinOn(posix, tc.a, tc.b))
		})
	}

	t.Run("windows separator", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, `C:\Users\alice`, pathutil.JoinOn(platform.Windows{}, `C:\Users`, "alice"))
		assert.Equal(t, `C:\Users\alice`, pathutil.JoinOn(platform.Windows{}, `C:\Users\`, `\alice`))
	})
}
