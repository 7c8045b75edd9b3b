package scan

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"gopkg.in/yaml.v3"

	"github.com/filemanpro/fmkit/pkg/fmerrors"
	"github.com/filemanpro/fmkit/pkg/pathutil"
)

// WriteYAML marshals the reports as a YAML document stream to w.
func WriteYAML(w io.Writer, reports ...*Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	for _, r := range reports {
		if r == nil {
			continue
		}

		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("%w: %w", fmerrors.ErrYAMLMarshal, err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", fmerrors.ErrYAMLMarshal, err)
	}

	return nil
}

// WriteFile writes the reports to path as YAML. A path ending in ".gz" is
// gzip-compressed transparently. Output is staged in a scratch file beside
// the target and renamed into place once fully written, so a failed write
// never leaves a partial report at path.
func WriteFile(path string, reports ...*Report) error {
	staging := pathutil.NewScratchPaths(filepath.Dir(path))

	tmp, err := staging.GetPath(path)
	if err != nil {
		return fmt.Errorf("stage report file: %w", err)
	}

	if err := writeReportFile(tmp, strings.HasSuffix(path, ".gz"), reports...); err != nil {
		_ = os.Remove(tmp)

		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)

		return fmt.Errorf("replace report file: %w", err)
	}

	return nil
}

func writeReportFile(path string, compress bool, reports ...*Report) error {
	f, err := os.Create(path) //nolint:gosec // Path is chosen by the invoking user.
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}

	var w io.Writer = f

	var gz *gzip.Writer
	if compress {
		gz = gzip.NewWriter(f)
		w = gz
	}

	werr := WriteYAML(w, reports...)

	if gz != nil {
		if err := gz.Close(); err != nil && werr == nil {
			werr = fmt.Errorf("close gzip writer: %w", err)
		}
	}

	if err := f.Close(); err != nil && werr == nil {
		werr = fmt.Errorf("close report file: %w", err)
	}

	return werr
}

// ReportDir stores one report per scanned root under a single directory.
// File names are a bijective encoding of the root path, so repeated scans
// of the same root overwrite their own report and the owning root can be
// recovered from the file name alone.
type ReportDir struct {
	paths *pathutil.EncodedPaths
}

// NewReportDir creates a [ReportDir] at dir, creating the directory as
// needed.
func NewReportDir(dir string) (*ReportDir, error) {
	ep, err := pathutil.NewEncodedPaths(dir)
	if err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}

	return &ReportDir{paths: ep}, nil
}

// Write stores r, replacing any previous report for the same root.
func (d *ReportDir) Write(r *Report) error {
	path, err := d.paths.GetPath(r.Root)
	if err != nil {
		return fmt.Errorf("report path for %q: %w", r.Root, err)
	}

	return WriteFile(path, r)
}

// Roots returns the roots that have a stored report, in collated order.
func (d *ReportDir) Roots() []string {
	roots := []string{}
	for root := range d.paths.GetPaths() {
		roots = append(roots, root)
	}

	SortNames(roots)

	return roots
}
