package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/filemanpro/fmkit/pkg/classify"
	"github.com/filemanpro/fmkit/pkg/pathutil"
)

// NewInfoCmd returns the info command, which prints the components,
// classification, and on-disk details of each given path.
func NewInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info PATH [PATH...]",
		Short: "Show path components, classification, and size for paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			for _, arg := range args {
				printInfo(cc, pathutil.Trim(arg))
			}

			return nil
		},
	}
}

func printInfo(cc *cobra.Command, path string) {
	components := pathutil.SplitPath(path)

	name := path
	if len(components) > 0 {
		name = components[len(components)-1]
	}

	ext := pathutil.Extension(path)
	if ext == "" {
		ext = "(none)"
	}

	cc.Printf("%s:\n", path)
	cc.Printf("  stem: %s\n", pathutil.Stem(path))
	cc.Printf("  extension: %s\n", ext)
	cc.Printf("  components: %s\n", strings.Join(components, " "))
	cc.Printf("  category: %s\n", classify.Classify(path))
	cc.Printf("  valid filename: %t\n", pathutil.IsValidFilename(name))

	info, err := os.Stat(path)
	if err != nil {
		cc.Printf("  exists: false\n")

		return
	}

	if info.IsDir() {
		cc.Printf("  type: directory\n")
	} else {
		cc.Printf("  type: file\n")
		cc.Printf("  size: %s\n", pathutil.HumanSize(info.Size()))
	}
}
