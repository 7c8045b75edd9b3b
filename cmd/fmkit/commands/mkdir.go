package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/filemanpro/fmkit/pkg/pathutil"
)

// NewMkdirCmd returns the mkdir command, which creates directories
// recursively and tolerates ones that already exist.
func NewMkdirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir DIR [DIR...]",
		Short: "Create directories, including missing parents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, arg := range args {
				if err := pathutil.MakeDirs(pathutil.Trim(arg)); err != nil {
					return fmt.Errorf("mkdir %q: %w", arg, err)
				}
			}

			return nil
		},
	}
}
