package statuspanel

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/dev-shetty/easydiff/internal/ui/styles"
)

// helpMarkdown is the help overlay body. Rendered with glamour so the
// key table reads well at any terminal width.
const helpMarkdown = `# easydiff

## Navigation

| Key | Action |
|-----|--------|
| j / k | scroll diff |
| J / K | next / previous file |
| ] / [ | next / previous hunk |
| g / G | top / end of diff |
| tab | jump between staged and unstaged |

## Staging

| Key | Action |
|-----|--------|
| s | stage hunk (whole file when untracked) |
| u | unstage hunk (whole file when no hunks) |

## General

| Key | Action |
|-----|--------|
| r | refresh |
| ? | toggle this help |
| esc / q | close |
`

// noMarginStyle removes glamour's document margins so the overlay
// border hugs the content.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

var helpBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(styles.OverlayBorderColor).
	Padding(0, 2)

// renderHelp renders the help overlay centered in the window.
func (m Model) renderHelp() string {
	boxWidth := min(m.width-4, 64)
	if boxWidth < 20 {
		boxWidth = max(m.width-2, 10)
	}

	body := renderHelpMarkdown(helpMarkdown, boxWidth-4, m.opts.MarkdownStyle)

	box := helpBoxStyle.Width(boxWidth).Render(body)
	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

// renderHelpMarkdown renders markdown with glamour, falling back to
// word-wrapped plain text if the renderer cannot be built.
// An explicit style instead of WithAutoStyle: auto style queries the
// terminal and the responses leak into the input stream.
func renderHelpMarkdown(md string, width int, style string) string {
	if style != "dark" && style != "light" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return wordwrap.String(md, width)
	}

	out, err := r.Render(md)
	if err != nil {
		return wordwrap.String(md, width)
	}
	return out
}
