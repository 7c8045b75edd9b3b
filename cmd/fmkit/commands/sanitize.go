package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/filemanpro/fmkit/pkg/fmerrors"
	"github.com/filemanpro/fmkit/pkg/pathutil"
)

type sanitizeArgs struct {
	caseStyle *string
	check     *bool
}

// NewSanitizeCmd returns the sanitize command, which rewrites names into
// valid filenames and optionally applies a case style.
func NewSanitizeCmd() *cobra.Command {
	args := &sanitizeArgs{
		caseStyle: new(string),
		check:     new(bool),
	}

	cmd := &cobra.Command{
		Use:   "sanitize NAME [NAME...]",
		Short: "Rewrite names into valid filenames",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, names []string) error {
			if *args.check {
				ok := true

				for _, name := range names {
					valid := pathutil.IsValidFilename(name)
					ok = ok && valid

					cc.Printf("%s: %t\n", name, valid)
				}

				if !ok {
					return fmt.Errorf("%w: one or more names are invalid", fmerrors.ErrInvalidFilename)
				}

				return nil
			}

			for _, name := range names {
				out := pathutil.SanitizeFilename(name)

				out, err := pathutil.ApplyCase(out, pathutil.CaseStyle(*args.caseStyle))
				if err != nil {
					return fmt.Errorf("apply case style: %w", err)
				}

				cc.Println(out)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(args.caseStyle, "case", "", "Case style for the sanitized stem (snake, kebab, camel)")
	cmd.Flags().BoolVar(args.check, "check", false, "Only report validity, do not rewrite")

	return cmd
}
