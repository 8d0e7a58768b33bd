package panes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/dev-shetty/easydiff/internal/ui/styles"
)

// ScrollIndicatorStyle is the style for scroll position indicators (e.g. "↓50%").
var ScrollIndicatorStyle = lipgloss.NewStyle().
	Foreground(styles.TextMutedColor)

// ScrollableConfig holds the configuration for rendering a scrollable pane.
type ScrollableConfig struct {
	// Viewport must be a pointer so scroll position persists across renders.
	Viewport *viewport.Model

	// LeftTitle is shown on the left of the top border.
	LeftTitle string

	// RightTitle is shown on the right of the top border, after the
	// scroll indicator.
	RightTitle string

	// BottomLeft is optional text on the bottom border, e.g. hunk position.
	BottomLeft string

	TitleColor         lipgloss.TerminalColor
	BorderColor        lipgloss.TerminalColor
	Focused            bool
	FocusedBorderColor lipgloss.TerminalColor
}

// ScrollablePane wraps viewport setup and border rendering for panes
// whose content can exceed their height. Content is top-aligned; diffs
// read from the first hunk down.
//
// contentFn receives the available width and returns the rendered content.
func ScrollablePane(
	width, height int,
	cfg ScrollableConfig,
	contentFn func(wrapWidth int) string,
) string {
	vpWidth := max(width-2, 1)
	vpHeight := max(height-2, 1)

	content := contentFn(vpWidth)

	cfg.Viewport.Width = vpWidth
	cfg.Viewport.Height = vpHeight
	cfg.Viewport.SetContent(content)

	// Clamp the offset if content shrank below the current position.
	if cfg.Viewport.YOffset > 0 {
		maxOffset := max(cfg.Viewport.TotalLineCount()-vpHeight, 0)
		if cfg.Viewport.YOffset > maxOffset {
			cfg.Viewport.SetYOffset(maxOffset)
		}
	}

	rightTitle := cfg.RightTitle
	if indicator := BuildScrollIndicator(*cfg.Viewport); indicator != "" {
		if rightTitle != "" {
			rightTitle = indicator + " " + rightTitle
		} else {
			rightTitle = indicator
		}
	}

	return BorderedPane(BorderConfig{
		Content:            cfg.Viewport.View(),
		Width:              width,
		Height:             height,
		TopLeft:            cfg.LeftTitle,
		TopRight:           rightTitle,
		BottomLeft:         cfg.BottomLeft,
		Focused:            cfg.Focused,
		TitleColor:         cfg.TitleColor,
		BorderColor:        cfg.BorderColor,
		FocusedBorderColor: cfg.FocusedBorderColor,
	})
}

// BuildScrollIndicator returns a styled scroll position indicator for
// the viewport. Empty when the content fits.
func BuildScrollIndicator(vp viewport.Model) string {
	if vp.TotalLineCount() <= vp.Height {
		return ""
	}
	pct := vp.ScrollPercent() * 100
	return ScrollIndicatorStyle.Render(fmt.Sprintf("%.0f%%", pct))
}

// PadLines pads every line of s to exactly width cells. Keeps the right
// border aligned when content carries ANSI styling.
func PadLines(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		w := lipgloss.Width(line)
		if w < width {
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	return strings.Join(lines, "\n")
}
