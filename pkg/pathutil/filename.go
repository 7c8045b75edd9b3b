package pathutil

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/iancoleman/strcase"

	"github.com/filemanpro/fmkit/pkg/fmerrors"
	"github.com/filemanpro/fmkit/pkg/platform"
)

// invalidFilenameChars are rejected in filenames on every platform.
const invalidFilenameChars = `<>:"/\|?*`

// maxFilenameLen is the longest filename [SanitizeFilename] will produce.
const maxFilenameLen = 255

// CaseStyle selects an optional case conversion applied to a filename stem.
type CaseStyle string

const (
	CaseNone  CaseStyle = ""
	CaseSnake CaseStyle = "snake"
	CaseKebab CaseStyle = "kebab"
	CaseCamel CaseStyle = "camel"
)

// IsValidFilename reports whether name is usable as a filename on the
// native platform. See [IsValidFilenameOn].
func IsValidFilename(name string) bool {
	return IsValidFilenameOn(platform.Native(), name)
}

// IsValidFilenameOn reports whether name is usable as a filename on p.
// Empty names, names containing any of `<>:"/\|?*`, and names containing
// ASCII control characters are rejected everywhere; reserved device names
// are rejected only where p reserves them.
func IsValidFilenameOn(p platform.Platform, name string) bool {
	if name == "" {
		return false
	}

	for _, r := range name {
		if r < 32 || strings.ContainsRune(invalidFilenameChars, r) {
			return false
		}
	}

	return !p.IsReservedName(name)
}

// SanitizeFilename rewrites name into a valid filename by replacing every
// rejected character with an underscore and truncating to at most 255
// bytes, backing off to the nearest rune boundary so the result stays
// valid UTF-8. It never rewrites reserved device names; callers that
// target Windows should check [IsValidFilenameOn] on the result.
func SanitizeFilename(name string) string {
	var b strings.Builder

	b.Grow(len(name))

	for _, r := range name {
		if r < 32 || strings.ContainsRune(invalidFilenameChars, r) {
			b.WriteRune('_')
		} else {
			b.WriteRune(r)
		}
	}

	out := b.String()
	if len(out) > maxFilenameLen {
		cut := maxFilenameLen
		for cut > 0 && !utf8.RuneStart(out[cut]) {
			cut--
		}

		out = out[:cut]
	}

	return out
}

// ApplyCase converts the stem of name to the requested [CaseStyle], keeping
// the extension untouched. [CaseNone] returns name unchanged.
func ApplyCase(name string, style CaseStyle) (string, error) {
	if style == CaseNone {
		return name, nil
	}

	stem := Stem(name)
	ext := Extension(name)

	switch style {
	case CaseSnake:
		stem = strcase.ToSnake(stem)
	case CaseKebab:
		stem = strcase.ToKebab(stem)
	case CaseCamel:
		stem = strcase.ToLowerCamel(stem)
	default:
		return "", fmt.Errorf("%w: unknown case style %q", fmerrors.ErrInvalidInput, style)
	}

	if ext == "" {
		return stem, nil
	}

	return stem + "." + ext, nil
}
