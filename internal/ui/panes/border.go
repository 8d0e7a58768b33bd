// Package panes contains reusable bordered pane UI components.
package panes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dev-shetty/easydiff/internal/ui/styles"
)

// Border characters (rounded)
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// BorderConfig configures the appearance of a bordered panel.
type BorderConfig struct {
	Content string // The content to render inside the border
	Width   int    // Total width including borders
	Height  int    // Total height including borders

	TopLeft     string // Title on top border, left-aligned
	TopRight    string // Title on top border, right-aligned
	BottomLeft  string // Title on bottom border, left-aligned
	BottomRight string // Title on bottom border, right-aligned

	Focused            bool                   // Whether the panel has focus
	TitleColor         lipgloss.TerminalColor // Color for title text
	BorderColor        lipgloss.TerminalColor // Border color when not focused
	FocusedBorderColor lipgloss.TerminalColor // Border color when focused
}

// BorderedPane renders content within a bordered panel with optional
// titles embedded in the top and bottom borders, lazygit style:
//
//	╭─ Title ─────── Right ─╮
//
// Nil color fallback rules:
//   - Both BorderColor and FocusedBorderColor nil: BorderDefaultColor for both states
//   - BorderColor set, FocusedBorderColor nil: BorderColor for both states
//   - BorderColor nil, FocusedBorderColor set: unfocused uses BorderDefaultColor
func BorderedPane(cfg BorderConfig) string {
	borderColor := resolveBorderColor(cfg.BorderColor, cfg.FocusedBorderColor, cfg.Focused)

	titleColor := cfg.TitleColor
	if titleColor == nil {
		titleColor = styles.BorderDefaultColor
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(titleColor)

	innerWidth := max(cfg.Width-2, 1) // -2 for left and right border

	topBorder := buildTitledBorder(borderTopLeft, borderTopRight, cfg.TopLeft, cfg.TopRight, innerWidth, borderStyle, titleStyle)
	bottomBorder := buildTitledBorder(borderBottomLeft, borderBottomRight, cfg.BottomLeft, cfg.BottomRight, innerWidth, borderStyle, titleStyle)

	contentHeight := max(cfg.Height-2, 1)

	// Lipgloss handles wrapping and truncation of overlong content.
	contentStyle := lipgloss.NewStyle().Width(innerWidth).Height(contentHeight)
	constrainedContent := contentStyle.Render(cfg.Content)

	contentLines := strings.Split(constrainedContent, "\n")
	paddedLines := make([]string, contentHeight)

	for i := range contentHeight {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}

		// Pad line to innerWidth to ensure right border aligns
		lineWidth := lipgloss.Width(line)
		if lineWidth < innerWidth {
			line = line + strings.Repeat(" ", innerWidth-lineWidth)
		}

		paddedLines[i] = borderStyle.Render(borderVertical) + line + borderStyle.Render(borderVertical)
	}

	var result strings.Builder
	result.WriteString(topBorder)
	result.WriteString("\n")
	result.WriteString(strings.Join(paddedLines, "\n"))
	result.WriteString("\n")
	result.WriteString(bottomBorder)

	return result.String()
}

func resolveBorderColor(borderColor, focusedBorderColor lipgloss.TerminalColor, focused bool) lipgloss.TerminalColor {
	if borderColor == nil && focusedBorderColor == nil {
		return styles.BorderDefaultColor
	}
	if borderColor != nil && focusedBorderColor == nil {
		return borderColor
	}
	if borderColor == nil {
		if focused {
			return focusedBorderColor
		}
		return styles.BorderDefaultColor
	}
	if focused {
		return focusedBorderColor
	}
	return borderColor
}

// buildTitledBorder creates a horizontal border with optional titles on
// either end:
//
//	╭─ Left ───────── Right ─╮
//
// Titles that do not fit are dropped right title first, then truncated.
func buildTitledBorder(cornerLeft, cornerRight, leftTitle, rightTitle string, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	if innerWidth < 1 {
		return borderStyle.Render(cornerLeft + cornerRight)
	}

	plain := func() string {
		return borderStyle.Render(cornerLeft + strings.Repeat(borderHorizontal, innerWidth) + cornerRight)
	}

	if leftTitle == "" && rightTitle == "" {
		return plain()
	}

	leftWidth := lipgloss.Width(leftTitle)
	rightWidth := lipgloss.Width(rightTitle)

	// Space needed: "─ " + left + " " + dashes(>=1) + " " + right + " ─"
	needed := 0
	switch {
	case leftTitle != "" && rightTitle != "":
		needed = 2 + leftWidth + 1 + 1 + 1 + rightWidth + 2
	case leftTitle != "":
		needed = 2 + leftWidth + 2
	default:
		needed = 2 + rightWidth + 2
	}

	if innerWidth < needed && rightTitle != "" {
		// Drop the right title and retry with the left alone.
		return buildTitledBorder(cornerLeft, cornerRight, leftTitle, "", innerWidth, borderStyle, titleStyle)
	}
	if innerWidth < needed {
		// Truncate the left title to whatever fits.
		avail := innerWidth - 4
		if avail < 1 {
			return plain()
		}
		leftTitle = styles.TruncateString(leftTitle, avail)
		leftWidth = lipgloss.Width(leftTitle)
	}

	var middleDashes int
	if leftTitle != "" && rightTitle != "" {
		middleDashes = innerWidth - leftWidth - rightWidth - 6
	} else if leftTitle != "" {
		middleDashes = innerWidth - leftWidth - 3
	} else {
		middleDashes = innerWidth - rightWidth - 3
	}
	middleDashes = max(middleDashes, 1)

	var result strings.Builder
	result.WriteString(borderStyle.Render(cornerLeft))

	if leftTitle != "" {
		result.WriteString(borderStyle.Render(borderHorizontal + " "))
		result.WriteString(titleStyle.Render(leftTitle))
		result.WriteString(borderStyle.Render(" "))
	}

	result.WriteString(borderStyle.Render(strings.Repeat(borderHorizontal, middleDashes)))

	if rightTitle != "" {
		result.WriteString(borderStyle.Render(" "))
		result.WriteString(titleStyle.Render(rightTitle))
		result.WriteString(borderStyle.Render(" " + borderHorizontal))
	}

	result.WriteString(borderStyle.Render(cornerRight))

	return result.String()
}
