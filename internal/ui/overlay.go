package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// compose layers the overlay box over the base frame, centred, replacing the
// cells beneath it. Both strings may carry ANSI escapes; splicing is done
// column-wise so styling on either side of the box survives.
func compose(base, overlay string, width, height int) string {
	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	if len(baseLines) > height {
		baseLines = baseLines[:height]
	}
	for i, line := range baseLines {
		baseLines[i] = padLine(line, width)
	}

	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := 0
	for _, line := range overlayLines {
		if w := ansi.StringWidth(line); w > overlayWidth {
			overlayWidth = w
		}
	}
	if overlayWidth > width {
		overlayWidth = width
	}

	top := (height - len(overlayLines)) / 2
	if top < 0 {
		top = 0
	}
	left := (width - overlayWidth) / 2
	if left < 0 {
		left = 0
	}

	for i, line := range overlayLines {
		row := top + i
		if row >= len(baseLines) {
			break
		}
		line = ansi.Truncate(line, overlayWidth, "")
		line = padLine(line, overlayWidth)
		before := ansi.Cut(baseLines[row], 0, left)
		after := ansi.Cut(baseLines[row], left+overlayWidth, width)
		baseLines[row] = before + line + after
	}
	return strings.Join(baseLines, "\n")
}

func padLine(line string, width int) string {
	if w := ansi.StringWidth(line); w < width {
		return line + strings.Repeat(" ", width-w)
	}
	return ansi.Truncate(line, width, "")
}
