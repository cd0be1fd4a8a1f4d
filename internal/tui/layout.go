package tui

import "strings"

// minSplitWidth is the narrowest terminal that still gets the preview pane.
const minSplitWidth = 80

// normalizePane forces s to exactly width columns and height lines so that
// lipgloss.JoinHorizontal lines the panes up.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}
	for i, ln := range lines {
		if width == 0 {
			lines[i] = ""
			continue
		}
		lines[i] = fitLine(ln, width)
	}
	return strings.Join(lines, "\n")
}

// splitWidths divides the terminal between the list and the preview pane. right is 0
// when the terminal is too narrow for a preview.
func splitWidths(total int) (left, right int) {
	if total < minSplitWidth {
		return total, 0
	}
	left = total * 2 / 5
	if left < 30 {
		left = 30
	}
	return left, total - left
}
