package statuspanel

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dev-shetty/easydiff/internal/diff"
	"github.com/dev-shetty/easydiff/internal/log"
	"github.com/dev-shetty/easydiff/internal/status"
)

// Model is the staging view. It owns the status snapshot, the diff of
// the selected file and the cursor across both file sections.
type Model struct {
	svc  Service
	root string
	opts Options

	width  int
	height int

	state viewState
	err   error

	snapshot status.Snapshot
	cursor   int // index into entries()

	diff       diff.ParsedDiff
	diffPath   string
	diffStaged bool
	hunkIdx    int
	wordDiff   fileWordDiff

	viewport viewport.Model
	showHelp bool
}

// New creates the staging view bound to a session.
func New(svc Service, root string) Model {
	return Model{
		svc:      svc,
		root:     root,
		opts:     DefaultOptions(),
		state:    stateLoading,
		viewport: viewport.New(0, 0),
	}
}

// WithOptions overrides the rendering options.
func (m Model) WithOptions(opts Options) Model {
	m.opts = opts
	return m
}

// Init kicks off the first status load.
func (m Model) Init() tea.Cmd {
	return loadStatusCmd(m.svc)
}

// entries returns the combined file list, unstaged first.
func (m Model) entries() []status.FileEntry {
	all := make([]status.FileEntry, 0, len(m.snapshot.Unstaged)+len(m.snapshot.Staged))
	all = append(all, m.snapshot.Unstaged...)
	all = append(all, m.snapshot.Staged...)
	return all
}

// selected returns the entry under the cursor, or nil when the tree is clean.
func (m Model) selected() *status.FileEntry {
	all := m.entries()
	if len(all) == 0 || m.cursor < 0 || m.cursor >= len(all) {
		return nil
	}
	return &all[m.cursor]
}

// currentSection is derived from the selected entry.
func (m Model) currentSection() section {
	if e := m.selected(); e != nil && e.Staged {
		return sectionStaged
	}
	return sectionUnstaged
}

// Update implements the Bubble Tea update loop.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.viewport.LineUp(3)
		case tea.MouseButtonWheelDown:
			m.viewport.LineDown(3)
		}
		return m, nil

	case StatusLoadedMsg:
		return m.applySnapshot(msg.Snapshot, msg.Err)

	case MutationDoneMsg:
		if msg.Err != nil {
			// The index is unchanged on failure; keep the view and surface
			// the error in the footer.
			m.err = msg.Err
			log.ErrorErr(log.CatUI, "staging operation failed", msg.Err)
			return m, nil
		}
		return m.applySnapshot(msg.Snapshot, nil)

	case DiffLoadedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		// Ignore stale loads for files no longer selected.
		if msg.Path != m.diffPath || msg.Staged != m.diffStaged {
			return m, nil
		}
		m.diff = msg.Diff
		m.wordDiff = fileWordDiff{}
		if m.opts.WordDiff {
			m.wordDiff = computeFileWordDiff(msg.Diff)
		}
		if m.hunkIdx >= len(m.diff.Hunks) {
			m.hunkIdx = 0
		}
		m.syncViewport()
		m.viewport.SetYOffset(m.hunkStartLine(m.hunkIdx))
		return m, nil

	case RepoChangedMsg:
		return m, loadStatusCmd(m.svc)
	}

	return m, nil
}

// applySnapshot installs a fresh snapshot, preserving selection by path
// where possible, and reloads the selected file's diff.
func (m Model) applySnapshot(snap status.Snapshot, err error) (Model, tea.Cmd) {
	if err != nil {
		m.state = stateError
		m.err = err
		return m, nil
	}

	prev := m.selected()
	m.snapshot = snap
	m.state = stateReady
	m.err = nil

	all := m.entries()
	if len(all) == 0 {
		m.cursor = 0
		m.clearDiff()
		return m, nil
	}

	oldCursor := m.cursor
	m.cursor = -1
	if prev != nil {
		for i, e := range all {
			if e.Path == prev.Path && e.Staged == prev.Staged {
				m.cursor = i
				break
			}
		}
		// The entry moved sections (staged or unstaged away); follow the
		// path to its new home before falling back to clamping.
		if m.cursor == -1 {
			for i, e := range all {
				if e.Path == prev.Path {
					m.cursor = i
					break
				}
			}
		}
	}
	if m.cursor == -1 {
		// Entry disappeared entirely; clamp the old position.
		m.cursor = max(0, min(oldCursor, len(all)-1))
	}

	return m, m.reloadDiff()
}

// reloadDiff requests the diff for the current selection.
func (m *Model) reloadDiff() tea.Cmd {
	e := m.selected()
	if e == nil {
		m.clearDiff()
		return nil
	}
	m.diffPath = e.Path
	m.diffStaged = e.Staged
	return loadDiffCmd(m.svc, e.Path, e.Staged)
}

func (m *Model) clearDiff() {
	m.diff = diff.ParsedDiff{}
	m.diffPath = ""
	m.diffStaged = false
	m.hunkIdx = 0
	m.wordDiff = fileWordDiff{}
	m.syncViewport()
	m.viewport.SetYOffset(0)
}

// syncViewport resizes the viewport to the diff pane and refreshes its
// content. Scroll offsets set in Update clamp against this content, so
// it must stay current outside of View.
func (m *Model) syncViewport() {
	_, diffWidth, contentHeight := m.layout()
	m.viewport.Width = max(diffWidth-2, 1)
	m.viewport.Height = max(contentHeight-2, 1)
	m.viewport.SetContent(m.renderDiffContent(m.viewport.Width))
}

// handleKeyMsg routes key presses through the command table.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	cmdID := keyToCommand(msg)
	if cmdID == "" {
		return m, nil
	}

	// Help overlay swallows everything except its own toggles.
	if m.showHelp && cmdID != cmdShowHelp && cmdID != cmdClose && cmdID != cmdQuit {
		return m, nil
	}

	return m.executeCommand(cmdID)
}

func (m Model) executeCommand(cmdID commandID) (Model, tea.Cmd) {
	switch cmdID {
	case cmdScrollUp:
		m.viewport.LineUp(1)
	case cmdScrollDown:
		m.viewport.LineDown(1)
	case cmdGotoTop:
		m.viewport.GotoTop()
		m.hunkIdx = 0
	case cmdGotoBottom:
		m.viewport.GotoBottom()
		if n := len(m.diff.Hunks); n > 0 {
			m.hunkIdx = n - 1
		}

	case cmdNextFile:
		return m.moveCursor(1)
	case cmdPrevFile:
		return m.moveCursor(-1)

	case cmdNextHunk:
		return m.moveHunk(1), nil
	case cmdPrevHunk:
		return m.moveHunk(-1), nil

	case cmdSwitchSection:
		return m.switchSection()

	case cmdStageItem:
		return m.stageSelected()
	case cmdUnstageItem:
		return m.unstageSelected()

	case cmdRefresh:
		return m, loadStatusCmd(m.svc)

	case cmdShowHelp:
		m.showHelp = !m.showHelp
	case cmdClose:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		return m, tea.Quit
	case cmdQuit:
		return m, tea.Quit
	}

	return m, nil
}

// moveCursor moves the file selection and loads the new file's diff.
func (m Model) moveCursor(delta int) (Model, tea.Cmd) {
	all := m.entries()
	if len(all) == 0 {
		return m, nil
	}

	next := m.cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(all) {
		next = len(all) - 1
	}
	if next == m.cursor {
		return m, nil
	}

	m.cursor = next
	m.hunkIdx = 0
	m.viewport.SetYOffset(0)
	return m, m.reloadDiff()
}

// switchSection jumps the cursor to the first entry of the other section.
func (m Model) switchSection() (Model, tea.Cmd) {
	if m.currentSection() == sectionUnstaged {
		if len(m.snapshot.Staged) == 0 {
			return m, nil
		}
		m.cursor = len(m.snapshot.Unstaged)
	} else {
		if len(m.snapshot.Unstaged) == 0 {
			return m, nil
		}
		m.cursor = 0
	}
	m.hunkIdx = 0
	m.viewport.SetYOffset(0)
	return m, m.reloadDiff()
}

// moveHunk selects the next or previous hunk and scrolls it into view.
func (m Model) moveHunk(delta int) Model {
	n := len(m.diff.Hunks)
	if n == 0 {
		return m
	}

	next := m.hunkIdx + delta
	if next < 0 {
		next = 0
	}
	if next >= n {
		next = n - 1
	}
	m.hunkIdx = next
	m.syncViewport()
	m.viewport.SetYOffset(m.hunkStartLine(next))
	return m
}

// hunkStartLine returns the rendered line offset of a hunk's header.
// The diff pane renders hunks back to back, so the offset is the sum of
// the preceding hunks' line counts.
func (m Model) hunkStartLine(idx int) int {
	offset := 0
	for i := 0; i < idx && i < len(m.diff.Hunks); i++ {
		offset += len(m.diff.Hunks[i].Lines)
	}
	return offset
}

// stageSelected stages the current hunk, or the whole file when the
// diff has no hunks (untracked and binary files have none).
func (m Model) stageSelected() (Model, tea.Cmd) {
	e := m.selected()
	if e == nil || e.Staged {
		return m, nil
	}

	if len(m.diff.Hunks) > 0 && m.hunkIdx < len(m.diff.Hunks) {
		return m, stageHunkCmd(m.svc, m.diff.Header, m.diff.Hunks[m.hunkIdx])
	}
	return m, stageFileCmd(m.svc, e.Path)
}

// unstageSelected reverses the current hunk out of the index, or the
// whole file when the staged diff has no hunks.
func (m Model) unstageSelected() (Model, tea.Cmd) {
	e := m.selected()
	if e == nil || !e.Staged {
		return m, nil
	}

	if len(m.diff.Hunks) > 0 && m.hunkIdx < len(m.diff.Hunks) {
		return m, unstageHunkCmd(m.svc, m.diff.Header, m.diff.Hunks[m.hunkIdx])
	}
	return m, unstageFileCmd(m.svc, e.Path)
}
