package pathutil

import (
	"strings"

	"github.com/filemanpro/fmkit/pkg/platform"
)

// lastComponent returns the final `/`- or `\`-delimited segment of path.
func lastComponent(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}

	return path
}

// Extension returns the substring after the last dot in the final path
// component. It returns "" when the component has no dot, or when the dot
// is its first character (dotfiles like ".bashrc" have no extension).
func Extension(path string) string {
	name := lastComponent(path)

	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}

	return name[i+1:]
}

// Stem returns the final path component with its extension removed.
func Stem(path string) string {
	name := lastComponent(path)

	ext := Extension(path)
	if ext == "" {
		return name
	}

	return name[:len(name)-len(ext)-1]
}

// SplitPath splits path into its non-empty components, accepting either
// separator character.
func SplitPath(path string) []string {
	parts := []string{}

	for part := range strings.SplitSeq(path, "/") {
		for p := range strings.SplitSeq(part, `\`) {
			if p != "" {
				parts = append(parts, p)
			}
		}
	}

	return parts
}

// Join joins a and b using the native platform separator.
// See [JoinOn] for the exact semantics.
func Join(a, b string) string {
	return JoinOn(platform.Native(), a, b)
}

// JoinOn concatenates a and b with exactly one p-separator at the boundary,
// collapsing any duplicate separator contributed by either side. The second
// argument is always interpreted relative to the first: a leading separator
// on b does not replace a, it is collapsed. Either argument being empty
// yields the other unchanged.
func JoinOn(p platform.Platform, a, b string) string {
	if a == "" {
		return b
	}

	if b == "" {
		return a
	}

	sep := p.Separator()

	aHasSep := a[len(a)-1] == sep
	bHasSep := b[0] == sep

	switch {
	case aHasSep && bHasSep:
		return a + b[1:]
	case !aHasSep && !bHasSep:
		return a + string(sep) + b
	default:
		return a + b
	}
}
