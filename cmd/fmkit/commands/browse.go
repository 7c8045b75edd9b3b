package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/filemanpro/fmkit/pkg/bookmarks"
	"github.com/filemanpro/fmkit/pkg/browsetui"
	"github.com/filemanpro/fmkit/pkg/classify"
	"github.com/filemanpro/fmkit/pkg/pathutil"
	"github.com/filemanpro/fmkit/pkg/platform"
)

var ErrNotATerminal = errors.New("stdout is not a terminal")

type browseArgs struct {
	rules  *string
	noSave *bool
}

// NewBrowseCmd returns the browse command, an interactive directory
// browser. Visited directories are recorded as recent locations.
func NewBrowseCmd() *cobra.Command {
	args := &browseArgs{
		rules:  new(string),
		noSave: new(bool),
	}

	cmd := &cobra.Command{
		Use:   "browse [DIR]",
		Short: "Browse a directory tree interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cc *cobra.Command, posArgs []string) error {
			fd := os.Stdout.Fd()
			if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
				return ErrNotATerminal
			}

			if termenv.EnvNoColor() {
				lipgloss.SetColorProfile(termenv.Ascii)
			}

			root := "."
			if len(posArgs) == 1 {
				root = pathutil.Trim(posArgs[0])
			}

			root, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("resolve root: %w", err)
			}

			if !pathutil.IsDirectory(root) {
				return fmt.Errorf("%q: not a directory", root)
			}

			rules := classify.DefaultRules
			if *args.rules != "" {
				rules, err = classify.LoadRulesFile(*args.rules)
				if err != nil {
					return fmt.Errorf("load classification rules: %w", err)
				}
			}

			var store *bookmarks.Store

			var recorder browsetui.Recorder

			if !*args.noSave {
				storePath, err := bookmarks.DefaultPath(platform.Native())
				if err != nil {
					slog.Warn("recent locations unavailable", "err", err)
				} else {
					store = bookmarks.NewStore(storePath)
					if err := store.Load(); err != nil {
						slog.Warn("could not load recent locations", "err", err)
					}

					recorder = store
				}
			}

			m := browsetui.NewModel(root, rules, recorder)

			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cc.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run browser: %w", err)
			}

			if store != nil {
				if err := store.Save(); err != nil {
					slog.Warn("could not save recent locations", "err", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(args.rules, "rules", "", "Load classification rules from a YAML file")
	cmd.Flags().BoolVar(args.noSave, "no-save", false, "Do not record visited directories")

	err := cmd.MarkFlagFilename("rules", "yaml", "yml")
	if err != nil {
		panic(err)
	}

	return cmd
}
