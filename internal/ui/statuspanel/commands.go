package statuspanel

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dev-shetty/easydiff/internal/diff"
	"github.com/dev-shetty/easydiff/internal/keys"
)

// commandID uniquely identifies commands in the staging view.
type commandID string

const (
	// Navigation
	cmdScrollUp   commandID = "scroll_up"
	cmdScrollDown commandID = "scroll_down"
	cmdNextFile   commandID = "next_file"
	cmdPrevFile   commandID = "prev_file"
	cmdNextHunk   commandID = "next_hunk"
	cmdPrevHunk   commandID = "prev_hunk"
	cmdGotoTop    commandID = "goto_top"
	cmdGotoBottom commandID = "goto_bottom"

	// Staging
	cmdStageItem   commandID = "stage_item"
	cmdUnstageItem commandID = "unstage_item"

	// Sections and lifecycle
	cmdSwitchSection commandID = "switch_section"
	cmdRefresh       commandID = "refresh"
	cmdShowHelp      commandID = "show_help"
	cmdClose         commandID = "close"
	cmdQuit          commandID = "quit"
)

// keyBindingToCommand routes key presses through executeCommand so
// navigation logic lives in one place.
var keyBindingToCommand = map[*key.Binding]commandID{
	&keys.Default.Up:            cmdScrollUp,
	&keys.Default.Down:          cmdScrollDown,
	&keys.Default.NextFile:      cmdNextFile,
	&keys.Default.PrevFile:      cmdPrevFile,
	&keys.Default.NextHunk:      cmdNextHunk,
	&keys.Default.PrevHunk:      cmdPrevHunk,
	&keys.Default.TopOfDiff:     cmdGotoTop,
	&keys.Default.EndOfDiff:     cmdGotoBottom,
	&keys.Default.StageItem:     cmdStageItem,
	&keys.Default.UnstageItem:   cmdUnstageItem,
	&keys.Default.SwitchSection: cmdSwitchSection,
	&keys.Default.Refresh:       cmdRefresh,
	&keys.Default.Help:          cmdShowHelp,
	&keys.Default.Escape:        cmdClose,
	&keys.Default.Quit:          cmdQuit,
}

// keyToCommand returns the commandID for a key message, or empty string.
func keyToCommand(msg tea.KeyMsg) commandID {
	for binding, cmdID := range keyBindingToCommand {
		if key.Matches(msg, *binding) {
			return cmdID
		}
	}
	return ""
}

// loadStatusCmd reads the current snapshot in the background.
func loadStatusCmd(svc Service) tea.Cmd {
	return func() tea.Msg {
		snap, err := svc.LoadStatus(context.Background())
		return StatusLoadedMsg{Snapshot: snap, Err: err}
	}
}

// loadDiffCmd reads one path's diff for the given side.
func loadDiffCmd(svc Service, path string, staged bool) tea.Cmd {
	return func() tea.Msg {
		d, err := svc.LoadDiff(context.Background(), path, staged)
		return DiffLoadedMsg{Path: path, Staged: staged, Diff: d, Err: err}
	}
}

func stageFileCmd(svc Service, path string) tea.Cmd {
	return func() tea.Msg {
		snap, err := svc.StageFile(context.Background(), path)
		return MutationDoneMsg{Snapshot: snap, Err: err}
	}
}

func unstageFileCmd(svc Service, path string) tea.Cmd {
	return func() tea.Msg {
		snap, err := svc.UnstageFile(context.Background(), path)
		return MutationDoneMsg{Snapshot: snap, Err: err}
	}
}

func stageHunkCmd(svc Service, header []string, h diff.Hunk) tea.Cmd {
	return func() tea.Msg {
		snap, err := svc.StageHunk(context.Background(), header, h)
		return MutationDoneMsg{Snapshot: snap, Err: err}
	}
}

func unstageHunkCmd(svc Service, header []string, h diff.Hunk) tea.Cmd {
	return func() tea.Msg {
		snap, err := svc.UnstageHunk(context.Background(), header, h)
		return MutationDoneMsg{Snapshot: snap, Err: err}
	}
}
