package statuspanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dev-shetty/easydiff/internal/status"
	"github.com/dev-shetty/easydiff/internal/ui/panes"
	"github.com/dev-shetty/easydiff/internal/ui/styles"
)

const (
	footerHeight     = 1
	fileListMaxWidth = 44
)

// View renders the staging view.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.state == stateError {
		return styles.ErrorStyle.Render("error: " + m.err.Error())
	}

	if m.showHelp {
		return m.renderHelp()
	}

	listWidth, diffWidth, contentHeight := m.layout()

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderFileListPane(listWidth, contentHeight),
		m.renderDiffPane(diffWidth, contentHeight),
	)

	return body + "\n" + m.renderFooter()
}

// layout splits the window into the file list and diff panes.
func (m Model) layout() (listWidth, diffWidth, contentHeight int) {
	contentHeight = m.height - footerHeight

	listWidth = m.width / 3
	if listWidth > fileListMaxWidth {
		listWidth = fileListMaxWidth
	}
	diffWidth = m.width - listWidth
	return listWidth, diffWidth, contentHeight
}

// renderFileListPane draws the two file sections with the cursor.
func (m Model) renderFileListPane(width, height int) string {
	var b strings.Builder
	innerWidth := max(width-2, 1)

	writeSection := func(title string, entries []status.FileEntry, offset int) {
		header := styles.FooterStyle.Render(fmt.Sprintf("%s (%d)", title, len(entries)))
		b.WriteString(header)
		b.WriteString("\n")
		for i, e := range entries {
			b.WriteString(m.renderFileRow(e, offset+i == m.cursor, innerWidth))
			b.WriteString("\n")
		}
	}

	if m.snapshot.IsEmpty() {
		b.WriteString(styles.FooterStyle.Render("working tree clean"))
	} else {
		writeSection("Unstaged", m.snapshot.Unstaged, 0)
		b.WriteString("\n")
		writeSection("Staged", m.snapshot.Staged, len(m.snapshot.Unstaged))
	}

	return panes.BorderedPane(panes.BorderConfig{
		Content:            strings.TrimRight(b.String(), "\n"),
		Width:              width,
		Height:             height,
		TopLeft:            "Files",
		Focused:            true,
		TitleColor:         styles.OverlayTitleColor,
		FocusedBorderColor: styles.BorderFocusColor,
	})
}

// renderFileRow formats one entry as "  M path", highlighting the cursor row.
func (m Model) renderFileRow(e status.FileEntry, selected bool, width int) string {
	marker := "  "
	if selected {
		marker = styles.SelectionStyle.Render("> ")
	}

	letter := styles.StatusLetterStyled(e.Code.Letter())
	path := styles.TruncateString(e.Path, max(width-5, 1))
	if selected {
		path = styles.SelectionStyle.Render(path)
	}

	return marker + letter + " " + path
}

// renderDiffPane draws the selected file's hunks with line and word
// level highlighting.
func (m Model) renderDiffPane(width, height int) string {
	title := m.diffPath
	if title == "" {
		title = "Diff"
	}

	bottomLeft := ""
	if n := len(m.diff.Hunks); n > 0 {
		bottomLeft = fmt.Sprintf("hunk %d/%d", m.hunkIdx+1, n)
	}

	rightTitle := m.currentSection().String()

	return panes.ScrollablePane(width, height, panes.ScrollableConfig{
		Viewport:           &m.viewport,
		LeftTitle:          title,
		RightTitle:         rightTitle,
		BottomLeft:         bottomLeft,
		TitleColor:         styles.OverlayTitleColor,
		FocusedBorderColor: styles.BorderFocusColor,
	}, func(wrapWidth int) string {
		return m.renderDiffContent(wrapWidth)
	})
}

// renderDiffContent renders all hunks back to back. hunkStartLine
// depends on this layout for scroll targeting.
func (m Model) renderDiffContent(width int) string {
	if m.diff.IsEmpty() {
		if e := m.selected(); e != nil && e.Code == status.Untracked {
			return styles.FooterStyle.Render("untracked file, press s to stage")
		}
		return styles.FooterStyle.Render("no changes")
	}

	var b strings.Builder
	for hi, h := range m.diff.Hunks {
		for li, line := range h.Lines {
			b.WriteString(m.renderDiffLine(hi, li, line, width))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderDiffLine styles one raw diff line.
func (m Model) renderDiffLine(hunkIdx, lineIdx int, line string, width int) string {
	current := hunkIdx == m.hunkIdx

	if lineIdx == 0 {
		header := styles.TruncateString(line, width)
		if current {
			return styles.DiffHunkStyle.Underline(true).Render(header)
		}
		return styles.DiffHunkStyle.Render(header)
	}

	switch {
	case strings.HasPrefix(line, "+"):
		if segs := m.wordDiff.segmentsFor(hunkIdx, lineIdx, false); segs != nil {
			return styles.DiffAdditionStyle.Render("+") + renderSegments(segs, styles.DiffAdditionStyle, styles.DiffAddedWordStyle)
		}
		return styles.DiffAdditionStyle.Render(styles.TruncateString(line, width))
	case strings.HasPrefix(line, "-"):
		if segs := m.wordDiff.segmentsFor(hunkIdx, lineIdx, true); segs != nil {
			return styles.DiffDeletionStyle.Render("-") + renderSegments(segs, styles.DiffDeletionStyle, styles.DiffDeletedWordStyle)
		}
		return styles.DiffDeletionStyle.Render(styles.TruncateString(line, width))
	case strings.HasPrefix(line, "\\"):
		return styles.FooterStyle.Render(line)
	default:
		return styles.DiffContextStyle.Render(styles.TruncateString(line, width))
	}
}

// renderSegments renders word diff segments, highlighting the changed runs.
func renderSegments(segs []wordSegment, base, changed lipgloss.Style) string {
	var b strings.Builder
	for _, s := range segs {
		if s.Type == segmentUnchanged {
			b.WriteString(base.Render(s.Text))
		} else {
			b.WriteString(changed.Render(s.Text))
		}
	}
	return b.String()
}

// renderFooter draws the one-line key hint bar, or the last error.
func (m Model) renderFooter() string {
	if m.err != nil {
		msg := styles.TruncateString("error: "+m.err.Error(), max(m.width-2, 1))
		return lipgloss.NewStyle().Foreground(styles.StatusErrorColor).Padding(0, 1).Render(msg)
	}

	if !m.opts.ShowFooter {
		return ""
	}

	hints := "s stage · u unstage · ]/[ hunks · J/K files · tab section · r refresh · ? help · q quit"
	return styles.FooterStyle.Render(styles.TruncateString(hints, max(m.width-2, 1)))
}

// totalDiffLines counts rendered diff lines, used by tests to validate
// scroll targets.
func (m Model) totalDiffLines() int {
	n := 0
	for _, h := range m.diff.Hunks {
		n += len(h.Lines)
	}
	return n
}
