// Package classify maps file extensions to a closed set of categories,
// mirroring the grouping a file manager uses for icons and filtering.
package classify

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/filemanpro/fmkit/pkg/fmerrors"
	"github.com/filemanpro/fmkit/pkg/pathutil"
)

// Category is one of a fixed closed set of file categories.
type Category string

const (
	Source     Category = "source"
	Script     Category = "script"
	Document   Category = "document"
	Data       Category = "data"
	Image      Category = "image"
	Archive    Category = "archive"
	Executable Category = "executable"
	Unknown    Category = "unknown"
)

// Categories lists every category except [Unknown], in display order.
var Categories = []Category{Source, Script, Document, Data, Image, Archive, Executable}

// defaultTable maps lower-cased extensions to categories. It is initialized
// once and never mutated.
var defaultTable = map[string]Category{
	"c": Source, "h": Source, "cc": Source, "cpp": Source, "cxx": Source,
	"hpp": Source, "cs": Source, "go": Source, "rs": Source, "java": Source,
	"py": Source, "rb": Source, "js": Source, "ts": Source, "swift": Source,
	"kt": Source, "php": Source, "scala": Source,

	"sh": Script, "bash": Script, "zsh": Script, "bat": Script, "cmd": Script,
	"ps1": Script, "psm1": Script,

	"txt": Document, "md": Document, "rst": Document, "pdf": Document,
	"doc": Document, "docx": Document, "odt": Document, "rtf": Document,
	"html": Document, "htm": Document,

	"json": Data, "yaml": Data, "yml": Data, "xml": Data, "toml": Data,
	"ini": Data, "csv": Data, "tsv": Data, "sql": Data,

	"png": Image, "jpg": Image, "jpeg": Image, "gif": Image, "bmp": Image,
	"webp": Image, "svg": Image, "ico": Image, "tif": Image, "tiff": Image,

	"zip": Archive, "tar": Archive, "gz": Archive, "tgz": Archive,
	"bz2": Archive, "xz": Archive, "7z": Archive, "rar": Archive,

	"exe": Executable, "msi": Executable, "dll": Executable, "so": Executable,
	"dylib": Executable, "app": Executable, "bin": Executable,
}

// Classify maps the extension of path to a [Category] using the default
// table. Extension matching is case-insensitive; an extensionless path or
// an unmatched extension classifies as [Unknown].
func Classify(path string) Category {
	return DefaultRules.Classify(path)
}

// Rules is an immutable extension to category table. The zero value
// classifies everything as [Unknown].
type Rules struct {
	table map[string]Category
}

// DefaultRules holds the built-in classification table.
var DefaultRules = Rules{table: defaultTable}

// Classify maps the extension of path to a [Category].
func (r Rules) Classify(path string) Category {
	ext := strings.ToLower(pathutil.Extension(path))
	if ext == "" {
		return Unknown
	}

	if c, ok := r.table[ext]; ok {
		return c
	}

	return Unknown
}

// Extensions returns the extensions mapped to c, in no particular order.
func (r Rules) Extensions(c Category) []string {
	var exts []string

	for ext, cat := range r.table {
		if cat == c {
			exts = append(exts, ext)
		}
	}

	return exts
}

// rulesFile is the YAML schema for overriding the classification table:
// a mapping of category name to extension list.
type rulesFile map[string][]string

// LoadRules reads a category to extension-list mapping from r and returns
// the resulting [Rules]. Unknown category names are rejected; extensions
// are lower-cased and may carry a leading dot.
func LoadRules(r io.Reader) (Rules, error) {
	var rf rulesFile

	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&rf); err != nil {
		return Rules{}, fmt.Errorf("%w: %w", fmerrors.ErrInvalidFormat, err)
	}

	valid := make(map[Category]struct{}, len(Categories))
	for _, c := range Categories {
		valid[c] = struct{}{}
	}

	table := make(map[string]Category)

	for name, exts := range rf {
		c := Category(name)
		if _, ok := valid[c]; !ok {
			return Rules{}, fmt.Errorf("%w: unknown category %q", fmerrors.ErrInvalidFormat, name)
		}

		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimPrefix(ext, "."))
			if ext == "" {
				continue
			}

			table[ext] = c
		}
	}

	return Rules{table: table}, nil
}

// LoadRulesFile reads a rules mapping from the YAML file at path.
func LoadRulesFile(path string) (Rules, error) {
	f, err := os.Open(path) //nolint:gosec // Path is chosen by the invoking user.
	if errors.Is(err, fs.ErrNotExist) {
		return Rules{}, fmt.Errorf("%w: %s", fmerrors.ErrFileNotFound, path)
	}

	if err != nil {
		return Rules{}, fmt.Errorf("open rules file: %w", err)
	}
	defer f.Close() //nolint:errcheck // Best-effort close.

	return LoadRules(f)
}
