package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"

	"github.com/filemanpro/fmkit/pkg/classify"
	"github.com/filemanpro/fmkit/pkg/fmerrors"
	"github.com/filemanpro/fmkit/pkg/scan"
)

type scanArgs struct {
	output    *string
	reportDir *string
	rules     *string
	largest   *int
	gzip      *bool
	hidden    *bool
}

// NewScanCmd returns the scan command, which walks one or more roots and
// writes YAML reports to stdout, a file, or a per-root report directory.
func NewScanCmd() *cobra.Command {
	args := &scanArgs{
		output:    new(string),
		reportDir: new(string),
		rules:     new(string),
		largest:   new(int),
		gzip:      new(bool),
		hidden:    new(bool),
	}

	cmd := &cobra.Command{
		Use:   "scan ROOT [ROOT...]",
		Short: "Scan directory trees and report sizes, extensions, and categories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, roots []string) error {
			s := scan.NewScanner()
			s.MaxLargest = *args.largest
			s.IncludeHidden = *args.hidden

			if *args.rules != "" {
				r, err := classify.LoadRulesFile(*args.rules)
				if err != nil {
					return fmt.Errorf("load classification rules: %w", err)
				}

				s.Rules = r
			}

			reports, err := s.ScanAll(cc.Context(), roots)
			if err != nil {
				scanned := 0

				for _, r := range reports {
					if r != nil {
						scanned++
					}
				}

				if scanned == 0 {
					return fmt.Errorf("%w: %w", fmerrors.ErrScanFailed, err)
				}

				// Partial results: report what was readable, log the rest.
				slog.Warn("some entries could not be read", "err", err)
			}

			if *args.reportDir != "" {
				return writeReportDir(*args.reportDir, reports)
			}

			out := *args.output
			if out == "" {
				if *args.gzip {
					gz := gzip.NewWriter(cc.OutOrStdout())
					if err := scan.WriteYAML(gz, reports...); err != nil {
						return err
					}

					if err := gz.Close(); err != nil {
						return fmt.Errorf("close gzip writer: %w", err)
					}

					return nil
				}

				return scan.WriteYAML(cc.OutOrStdout(), reports...)
			}

			if *args.gzip && !strings.HasSuffix(out, ".gz") {
				out += ".gz"
			}

			return scan.WriteFile(out, reports...)
		},
	}

	cmd.Flags().StringVarP(args.output, "output", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().StringVar(args.reportDir, "report-dir", "",
		"Store one report per root in this directory, replacing earlier reports for the same roots")
	cmd.Flags().StringVar(args.rules, "rules", "", "Load classification rules from a YAML file")
	cmd.Flags().IntVar(args.largest, "largest", 5, "Number of largest files to report per root")
	cmd.Flags().BoolVar(args.gzip, "gzip", false, "Gzip-compress the output")
	cmd.Flags().BoolVar(args.hidden, "hidden", false, "Include hidden files and directories")

	cmd.MarkFlagsMutuallyExclusive("output", "report-dir")

	err := cmd.MarkFlagFilename("output")
	if err != nil {
		panic(err)
	}

	err = cmd.MarkFlagDirname("report-dir")
	if err != nil {
		panic(err)
	}

	err = cmd.MarkFlagFilename("rules", "yaml", "yml")
	if err != nil {
		panic(err)
	}

	return cmd
}

func writeReportDir(dir string, reports []*scan.Report) error {
	rd, err := scan.NewReportDir(dir)
	if err != nil {
		return fmt.Errorf("open report dir: %w", err)
	}

	for _, r := range reports {
		if r == nil {
			continue
		}

		if err := rd.Write(r); err != nil {
			return fmt.Errorf("store report for %q: %w", r.Root, err)
		}
	}

	return nil
}
