package shared

import "strings"

// CenterContent renders content vertically centered in the available height.
func CenterContent(content string, height int) string {
	content = strings.TrimRight(content, "\n")

	var contentLines []string
	if content != "" {
		contentLines = strings.Split(content, "\n")
	}

	if len(contentLines) >= height {
		return content
	}

	topPad := (height - len(contentLines)) / 2

	lines := make([]string, 0, height)
	for i := 0; i < topPad; i++ {
		lines = append(lines, "")
	}
	lines = append(lines, contentLines...)
	for len(lines) < height {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// VisibleWindow picks the range [start, end) of variable-height blocks that
// fits in height lines and contains cursor. The cursor block is always
// included even if it alone is taller than height.
func VisibleWindow(heights []int, cursor, height int) (int, int) {
	if len(heights) == 0 {
		return 0, 0
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(heights) {
		cursor = len(heights) - 1
	}

	start := cursor
	used := heights[cursor]
	for start > 0 && used+heights[start-1] <= height {
		start--
		used += heights[start]
	}

	end := cursor + 1
	for end < len(heights) && used+heights[end] <= height {
		used += heights[end]
		end++
	}

	return start, end
}
