package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/filemanpro/fmkit/pkg/pathutil"
	"github.com/filemanpro/fmkit/pkg/scan"
)

var (
	treeDirStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	treeSizeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

type treeArgs struct {
	depth  *int
	hidden *bool
}

// NewTreeCmd returns the tree command, a depth-capped recursive listing.
func NewTreeCmd() *cobra.Command {
	args := &treeArgs{
		depth:  new(int),
		hidden: new(bool),
	}

	cmd := &cobra.Command{
		Use:   "tree [DIR]",
		Short: "List a directory tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cc *cobra.Command, posArgs []string) error {
			root := "."
			if len(posArgs) == 1 {
				root = pathutil.Trim(posArgs[0])
			}

			if !pathutil.IsDirectory(root) {
				return fmt.Errorf("%q: not a directory", root)
			}

			cc.Println(treeDirStyle.Render(root))

			return printTree(cc, root, "", *args.depth, *args.hidden)
		},
	}

	cmd.Flags().IntVarP(args.depth, "depth", "d", 3, "Maximum directory depth to descend")
	cmd.Flags().BoolVar(args.hidden, "hidden", false, "Include hidden files and directories")

	return cmd
}

func printTree(cc *cobra.Command, dir, indent string, depth int, hidden bool) error {
	if depth <= 0 {
		return nil
	}

	des, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read directory: %w", err)
	}

	names := make([]string, 0, len(des))
	byName := make(map[string]os.DirEntry, len(des))

	for _, de := range des {
		name := de.Name()
		if !hidden && strings.HasPrefix(name, ".") {
			continue
		}

		names = append(names, name)
		byName[name] = de
	}

	scan.SortNames(names)

	for i, name := range names {
		de := byName[name]

		branch, childIndent := "├── ", indent+"│   "
		if i == len(names)-1 {
			branch, childIndent = "└── ", indent+"    "
		}

		if de.IsDir() {
			cc.Printf("%s%s%s\n", indent, branch, treeDirStyle.Render(name))

			err := printTree(cc, pathutil.Join(dir, name), childIndent, depth-1, hidden)
			if err != nil {
				return err
			}

			continue
		}

		size := ""
		if info, err := de.Info(); err == nil {
			size = treeSizeStyle.Render(" (" + pathutil.HumanSize(info.Size()) + ")")
		}

		cc.Printf("%s%s%s%s\n", indent, branch, name, size)
	}

	return nil
}
