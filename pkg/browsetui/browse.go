package browsetui

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/filemanpro/fmkit/pkg/classify"
	"github.com/filemanpro/fmkit/pkg/pathutil"
	"github.com/filemanpro/fmkit/pkg/scan"
)

// Recorder receives the directories the user visits, so that callers can
// persist them as recent locations.
type Recorder interface {
	AddRecent(path string)
}

type entry struct {
	name     string
	category classify.Category
	size     int64
	dir      bool
}

type entriesMsg struct {
	path    string
	entries []entry
}

type errMsg struct{ err error }

// Model is a [tea.Model] that browses the filesystem starting at a root
// directory. Navigation is confined to the root: entries resolving outside
// it (including through symlinks) are never entered, and ascending stops at
// the root. Entries are classified and colored by category.
type Model struct {
	rules      classify.Rules
	recorder   Recorder
	root       string
	path       string
	entries    []entry
	spinner    spinner.Model
	cursor     int
	height     int
	loading    bool
	showHidden bool
	err        error
}

// NewModel creates a browser rooted at path. The recorder may be nil.
func NewModel(path string, rules classify.Rules, recorder Recorder) Model {
	s := spinner.New()
	s.Style = spinnerStyle

	return Model{
		root:     path,
		path:     path,
		rules:    rules,
		recorder: recorder,
		spinner:  s,
		loading:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadEntries(m.path, m.showHidden, m.rules))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height

		return m, nil

	case entriesMsg:
		// Ignore results for directories we already navigated away from.
		if msg.path != m.path {
			return m, nil
		}

		m.entries = msg.entries
		m.loading = false
		m.cursor = 0
		m.err = nil

		return m, nil

	case errMsg:
		m.err = msg.err
		m.loading = false

		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if keyExits(msg) {
		return m, tea.Quit
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case "g":
		m.cursor = 0

	case "G":
		if len(m.entries) > 0 {
			m.cursor = len(m.entries) - 1
		}

	case ".":
		m.showHidden = !m.showHidden
		m.loading = true

		return m, loadEntries(m.path, m.showHidden, m.rules)

	case "enter", "l", "right":
		if m.cursor < len(m.entries) && m.entries[m.cursor].dir {
			next, err := pathutil.ResolveWithin(m.path, m.root, m.entries[m.cursor].name)
			if err != nil {
				// Symlinked directory escaping the root; stay put.
				return m, nil
			}

			m.path = next.String()
			m.loading = true

			if m.recorder != nil {
				m.recorder.AddRecent(m.path)
			}

			return m, loadEntries(m.path, m.showHidden, m.rules)
		}

	case "backspace", "h", "left":
		parent, err := pathutil.ResolveWithin(m.path, m.root, "..")
		if err != nil || parent.String() == m.path {
			// Already at the root.
			return m, nil
		}

		m.path = parent.String()
		m.loading = true

		return m, loadEntries(m.path, m.showHidden, m.rules)
	}

	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(pathStyle.Render(m.path))
	sb.WriteString("\n\n")

	switch {
	case m.err != nil:
		sb.WriteString(errStyle.Render(m.err.Error()))
		sb.WriteString("\n")

	case m.loading:
		sb.WriteString(fmt.Sprintf("%s loading\n", m.spinner.View()))

	case len(m.entries) == 0:
		sb.WriteString("  (empty)\n")

	default:
		for i, e := range m.entries {
			cursor := "  "
			if i == m.cursor {
				cursor = cursorStyle.Render("> ")
			}

			name := e.name
			if e.dir {
				name = dirStyle.Render(name + "/")
			} else {
				name = categoryStyles[e.category].Render(name)
			}

			size := ""
			if !e.dir {
				size = sizeStyle.Render(" " + pathutil.HumanSize(e.size))
			}

			sb.WriteString(fmt.Sprintf("%s%s%s\n", cursor, name, size))
		}
	}

	sb.WriteString(helpStyle.Render("enter: open • backspace: up • .: hidden • q: quit"))
	sb.WriteString("\n")

	return sb.String()
}

func loadEntries(path string, showHidden bool, rules classify.Rules) tea.Cmd {
	return func() tea.Msg {
		des, err := os.ReadDir(path)
		if err != nil {
			return errMsg{err: fmt.Errorf("read directory: %w", err)}
		}

		dirs := []entry{}
		files := []entry{}

		for _, de := range des {
			name := de.Name()
			if !showHidden && strings.HasPrefix(name, ".") {
				continue
			}

			if de.IsDir() {
				dirs = append(dirs, entry{name: name, dir: true})

				continue
			}

			// Symlinks to directories are browsable too; whether they stay
			// inside the root is decided on entry.
			if de.Type()&fs.ModeSymlink != 0 {
				if info, err := os.Stat(filepath.Join(path, name)); err == nil && info.IsDir() {
					dirs = append(dirs, entry{name: name, dir: true})

					continue
				}
			}

			e := entry{name: name, category: rules.Classify(name)}
			if info, err := de.Info(); err == nil {
				e.size = info.Size()
			}

			files = append(files, e)
		}

		sortEntries(dirs)
		sortEntries(files)

		return entriesMsg{path: path, entries: append(dirs, files...)}
	}
}

func sortEntries(es []entry) {
	names := make([]string, len(es))
	for i, e := range es {
		names[i] = e.name
	}

	scan.SortNames(names)

	byName := make(map[string]entry, len(es))
	for _, e := range es {
		byName[e.name] = e
	}

	for i, name := range names {
		es[i] = byName[name]
	}
}
