// Package scan walks directory trees and summarizes them: sizes, file and
// directory counts, per-extension statistics, category rollups, and the
// largest files found.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/filemanpro/fmkit/pkg/classify"
	"github.com/filemanpro/fmkit/pkg/pathutil"
)

// defaultLargest is the number of largest files kept per report.
const defaultLargest = 5

// newCollator returns a case-insensitive collator, so "README" and
// "readme.md" sort together the way a file manager displays them.
// Collators carry internal state and are not safe for concurrent use, so
// each walk gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}

// FileStat identifies one file and its size.
type FileStat struct {
	Path      string `yaml:"path"`
	Size      int64  `yaml:"size"`
	SizeHuman string `yaml:"sizeHuman"`
}

// ExtensionStat aggregates all files sharing one extension.
type ExtensionStat struct {
	Extension string `yaml:"extension"`
	Count     int64  `yaml:"count"`
	Size      int64  `yaml:"size"`
}

// Report summarizes a single scanned root.
type Report struct {
	Root           string                      `yaml:"root"`
	FileCount      int64                       `yaml:"files"`
	DirCount       int64                       `yaml:"dirs"`
	TotalSize      int64                       `yaml:"totalSize"`
	TotalSizeHuman string                      `yaml:"totalSizeHuman"`
	Extensions     []ExtensionStat             `yaml:"extensions,omitempty"`
	Categories     map[classify.Category]int64 `yaml:"categories,omitempty"`
	Largest        []FileStat                  `yaml:"largest,omitempty"`
}

// Scanner walks directory trees and produces [Report]s. The zero value is
// usable; fields may be set before the first call to Scan.
type Scanner struct {
	// Rules classifies scanned files. The zero value classifies everything
	// as unknown, so leave it unset only when categories are irrelevant.
	Rules classify.Rules

	// MaxLargest bounds the largest-file ranking. Zero means 5.
	MaxLargest int

	// Concurrency bounds how many roots ScanAll walks at once.
	// Zero means one walker per root.
	Concurrency int

	// IncludeHidden also descends into dot-directories and counts dotfiles.
	IncludeHidden bool
}

// NewScanner creates a [Scanner] using the default classification rules.
func NewScanner() *Scanner {
	return &Scanner{Rules: classify.DefaultRules}
}

// Scan walks root and returns its [Report]. Entries that cannot be
// accessed are skipped and aggregated into the returned error, alongside
// the report; the report is nil only when the walk never started.
func (s *Scanner) Scan(ctx context.Context, root string) (*Report, error) {
	r := &Report{
		Root:       root,
		Categories: map[classify.Category]int64{},
	}

	exts := map[string]*ExtensionStat{}

	var merr error

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			merr = multierror.Append(merr, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		hidden := strings.HasPrefix(d.Name(), ".") && path != root
		if hidden && !s.IncludeHidden {
			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if d.IsDir() {
			r.DirCount++

			return nil
		}

		fi, err := d.Info()
		if err != nil {
			merr = multierror.Append(merr, err)

			return nil
		}

		if !fi.Mode().IsRegular() {
			return nil
		}

		s.addFile(r, exts, path, fi.Size())

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %q: %w", root, err)
	}

	s.finalize(r, exts)

	return r, merr
}

func (s *Scanner) addFile(r *Report, exts map[string]*ExtensionStat, path string, size int64) {
	r.FileCount++
	r.TotalSize += size
	r.Categories[s.Rules.Classify(path)]++

	ext := strings.ToLower(pathutil.Extension(path))
	if ext != "" {
		es, ok := exts[ext]
		if !ok {
			es = &ExtensionStat{Extension: ext}
			exts[ext] = es
		}

		es.Count++
		es.Size += size
	}

	limit := s.MaxLargest
	if limit <= 0 {
		limit = defaultLargest
	}

	r.Largest = append(r.Largest, FileStat{Path: path, Size: size, SizeHuman: pathutil.HumanSize(size)})
	sort.SliceStable(r.Largest, func(i, j int) bool {
		return r.Largest[i].Size > r.Largest[j].Size
	})

	if len(r.Largest) > limit {
		r.Largest = r.Largest[:limit]
	}
}

func (s *Scanner) finalize(r *Report, exts map[string]*ExtensionStat) {
	r.TotalSizeHuman = pathutil.HumanSize(r.TotalSize)

	// Root itself is counted by WalkDir; reports count only children.
	if r.DirCount > 0 {
		r.DirCount--
	}

	for _, es := range exts {
		r.Extensions = append(r.Extensions, *es)
	}

	c := newCollator()

	sort.Slice(r.Extensions, func(i, j int) bool {
		if r.Extensions[i].Count != r.Extensions[j].Count {
			return r.Extensions[i].Count > r.Extensions[j].Count
		}

		return c.CompareString(r.Extensions[i].Extension, r.Extensions[j].Extension) < 0
	})
}

// ScanAll walks every root concurrently and returns the reports in input
// order. Access errors from all roots are aggregated; a report slot is nil
// only when its walk never started.
func (s *Scanner) ScanAll(ctx context.Context, roots []string) ([]*Report, error) {
	reports := make([]*Report, len(roots))
	errs := make([]error, len(roots))

	g, ctx := errgroup.WithContext(ctx)
	if s.Concurrency > 0 {
		g.SetLimit(s.Concurrency)
	}

	for i, root := range roots {
		g.Go(func() error {
			r, err := s.Scan(ctx, root)
			reports[i] = r
			errs[i] = err

			// Per-entry errors are reported, not fatal.
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	var merr error

	for _, err := range errs {
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	return reports, merr
}

// SortNames orders names case-insensitively, in place, using the same
// collation a report uses for extensions.
func SortNames(names []string) {
	newCollator().SortStrings(names)
}
