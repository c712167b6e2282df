package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"notedesk/internal/config"
	"notedesk/internal/notes/service"
	"notedesk/internal/tui/notelist"
	"notedesk/internal/tui/shared"
	"notedesk/internal/tui/theme"
)

// AppModel is the root model: it owns global keys, the help overlay and the
// status bar, and dispatches everything else to the note list view.
type AppModel struct {
	cfg      *config.Config
	noteList notelist.Model
	showHelp bool
	width    int
	height   int
	ready    bool
}

// NewAppModel creates the root application model
func NewAppModel(cfg *config.Config, svc service.SyncService) AppModel {
	return AppModel{
		cfg:      cfg,
		noteList: notelist.New(svc, cfg.TimeFormat),
	}
}

// Init triggers the initial load of the note list.
func (m AppModel) Init() tea.Cmd {
	return m.noteList.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.noteList.SetSize(msg.Width, msg.Height-2) // Reserve space for status bar
		return m, nil

	case tea.KeyMsg:
		// Global keys: ctrl+c always quits
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if !m.noteList.IsInModalState() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.noteList, cmd = m.noteList.Update(msg)
	return m, cmd
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.helpPopup().Render(m.width, m.height)
	}

	statusText := fmt.Sprintf("%s | %d note(s) | ?:help ctrl+c:quit", m.cfg.APIBaseURL, len(m.noteList.State().Notes()))
	statusBar := theme.StatusBar.Width(m.width).Render(theme.HelpHint.Render(statusText))

	return lipgloss.JoinVertical(lipgloss.Left, m.noteList.View(), statusBar)
}

func (m AppModel) helpPopup() shared.HelpPopup {
	return shared.HelpPopup{
		Title:       "Notedesk - Keyboard Shortcuts",
		Server:      m.cfg.APIBaseURL,
		Sections:    helpSections(),
		ErrorSample: service.MsgAddFailed,
		ErrorHint:   "The last add attempt's error shows under the composer. Failed reloads go to debug.log.",
	}
}

func helpSections() []shared.HelpSection {
	return []shared.HelpSection{
		{
			Title: "General",
			Binds: []shared.HelpBind{
				{Key: "?", Desc: "Show this help"},
				{Key: "q", Desc: "Quit"},
				{Key: "ctrl+c", Desc: "Force quit"},
			},
		},
		{
			Title: "Composer",
			Binds: []shared.HelpBind{
				{Key: "ctrl+s", Desc: "Add note"},
				{Key: "esc", Desc: "Browse notes"},
			},
		},
		{
			Title: "Note List",
			Binds: []shared.HelpBind{
				{Key: "j / k", Desc: "Navigate notes"},
				{Key: "g / G", Desc: "First / last note"},
				{Key: "enter", Desc: "Expand or collapse note"},
				{Key: "i / a", Desc: "Write a note"},
				{Key: "r", Desc: "Reload from server"},
				{Key: "/", Desc: "Jump to matching note"},
			},
		},
	}
}
