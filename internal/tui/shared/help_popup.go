package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"notedesk/internal/tui/theme"
)

// HelpBind is a single key and what it does.
type HelpBind struct {
	Key  string
	Desc string
}

// HelpSection groups the keys of one focus area.
type HelpSection struct {
	Title string
	Binds []HelpBind
}

// HelpPopup describes the help overlay: which note service the session talks
// to, the key sections, and how submission errors are reported.
type HelpPopup struct {
	Title    string
	Server   string
	Sections []HelpSection
	// ErrorSample is rendered in the error style next to ErrorHint so the
	// reader can recognise the line under the composer.
	ErrorSample string
	ErrorHint   string
}

var (
	helpSectionStyle = theme.Title
	helpKeyStyle     = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary)
	helpDescStyle    = lipgloss.NewStyle().Foreground(theme.Text)
	helpBoxStyle     = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(theme.Primary).
				Padding(1, 2)
)

const helpKeyWidth = 14

// Render places the popup in the center of a width x height area.
func (p HelpPopup) Render(width, height int) string {
	line := func(key, desc string) string {
		return "  " + helpKeyStyle.Width(helpKeyWidth).Render(key) + helpDescStyle.Render(desc)
	}

	var b strings.Builder
	if p.Title != "" {
		b.WriteString(helpSectionStyle.Render(p.Title) + "\n")
	}
	if p.Server != "" {
		b.WriteString(theme.Muted.Render("Connected to ") + theme.Bold.Render(p.Server) + "\n")
	}

	for _, section := range p.Sections {
		b.WriteString("\n" + helpSectionStyle.Render(section.Title) + "\n")
		for _, bind := range section.Binds {
			b.WriteString(line(bind.Key, bind.Desc) + "\n")
		}
	}

	if p.ErrorHint != "" {
		b.WriteString("\n" + helpSectionStyle.Render("Errors") + "\n")
		if p.ErrorSample != "" {
			b.WriteString("  " + theme.Error.Render(p.ErrorSample) + "\n")
		}
		b.WriteString("  " + helpDescStyle.Render(p.ErrorHint) + "\n")
	}

	b.WriteString("\n" + theme.HelpHint.Render("Press any key to close"))

	box := helpBoxStyle.Render(strings.TrimLeft(strings.TrimRight(b.String(), "\n"), "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
