package notelist

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"notedesk/internal/notes"
	"notedesk/internal/tui/shared"
	"notedesk/internal/tui/theme"
)

// View renders the title, composer, error line and note list.
func (m Model) View() string {
	var sections []string

	sections = append(sections, theme.Title.Render("Notes"), "")

	composerStyle := theme.ComposerBlurred
	if m.focus == focusComposer {
		composerStyle = theme.ComposerFocused
	}
	sections = append(sections, composerStyle.Render(m.composer.View()))

	if errMsg := m.state.ErrorMessage(); errMsg != "" {
		sections = append(sections, theme.Error.Render(errMsg))
	}

	sections = append(sections, theme.Separator.Render(strings.Repeat("─", max(1, m.width))))

	footer := theme.HelpHint.Render(m.HintText())
	if m.searchActive {
		footer = theme.SearchPrompt.Render("/") + m.searchInput.View()
	}

	header := lipgloss.JoinVertical(lipgloss.Left, sections...)
	listHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)

	return lipgloss.JoinVertical(lipgloss.Left, header, m.renderList(listHeight), footer)
}

func (m Model) renderList(height int) string {
	list := m.state.Notes()
	if len(list) == 0 {
		return shared.CenterContent(theme.Muted.Render("No notes yet."), max(1, height))
	}

	blocks := make([]string, len(list))
	heights := make([]int, len(list))
	for i, n := range list {
		blocks[i] = m.renderNote(i, n)
		heights[i] = lipgloss.Height(blocks[i])
	}

	start, end := shared.VisibleWindow(heights, m.cursor, max(1, height))
	return strings.Join(blocks[start:end], "\n")
}

func (m Model) renderNote(index int, n notes.Note) string {
	selected := m.focus == focusList && index == m.cursor

	prefix := "  "
	if selected {
		prefix = theme.Cursor.Render("> ")
	}

	bodyWidth := max(10, m.width-4)
	var body string
	if m.expanded[index] {
		body = theme.Body.Width(bodyWidth).Render(n.Content)
	} else {
		body = theme.Body.Render(n.Preview(bodyWidth))
	}
	if selected {
		body = theme.SelectedBg.Render(body)
	}

	stamp := theme.Timestamp.Render(n.FormatCreatedAt(m.timeFormat))
	indented := lipgloss.NewStyle().PaddingLeft(2).Render(body)

	return prefix + stamp + "\n" + indented
}
