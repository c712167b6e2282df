package notelist

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
	"notedesk/internal/notes/service"
	"notedesk/internal/tui/messages"
)

const composerHeight = 4

type focusArea int

const (
	focusComposer focusArea = iota
	focusList
)

// Model is the note list view: a compose form above the list of notes.
type Model struct {
	svc        service.SyncService
	state      *service.State
	timeFormat string

	composer textarea.Model
	focus    focusArea

	cursor   int
	expanded map[int]bool // by list position; the list has no dedup so IDs may repeat

	// Search state
	searchActive bool
	searchInput  textinput.Model
	searchOrigin int

	width  int
	height int
}

// New creates the note list view. The composer starts focused.
func New(svc service.SyncService, timeFormat string) Model {
	ta := textarea.New()
	ta.Placeholder = "Write your note here..."
	ta.ShowLineNumbers = false
	ta.SetHeight(composerHeight)
	ta.SetWidth(60)
	ta.Focus()

	si := textinput.New()
	si.Placeholder = "Jump to..."
	si.CharLimit = 100
	si.Width = 40

	return Model{
		svc:         svc,
		state:       service.NewState(),
		timeFormat:  timeFormat,
		composer:    ta,
		focus:       focusComposer,
		expanded:    make(map[int]bool),
		searchInput: si,
	}
}

// Init loads the collection once on mount.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, messages.LoadNotes(m.svc))
}

// State exposes the underlying state store.
func (m Model) State() *service.State {
	return m.state
}

// IsInModalState reports whether the view wants every key (typing in the
// composer or the search prompt).
func (m Model) IsInModalState() bool {
	return m.focus == focusComposer || m.searchActive
}

// HintText returns hint text for the current state
func (m Model) HintText() string {
	switch {
	case m.searchActive:
		return "type to jump  enter:confirm  esc:cancel"
	case m.focus == focusComposer:
		return "ctrl+s:add note  esc:browse notes"
	}
	return "j/k:navigate  enter:expand  i:write  r:reload  /:jump  ?:help  q:quit"
}

// SetSize updates the view dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	// Account for the composer border
	m.composer.SetWidth(max(10, width-2))
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.NotesLoadedMsg:
		m.state.ApplyLoad(msg.Result)
		if msg.Result.Err == nil {
			m.expanded = make(map[int]bool)
		}
		m.clampCursor()
		return m, nil

	case messages.NoteCreatedMsg:
		m.state.ApplyCreate(msg.Result)
		if msg.Result.Outcome == service.OutcomeSucceeded {
			m.composer.Reset()
		}
		return m, nil

	case tea.KeyMsg:
		if m.searchActive {
			return m.handleSearchMode(msg)
		}
		if m.focus == focusComposer {
			return m.handleComposerKey(msg)
		}
		return m.handleListKey(msg)
	}

	// Cursor blink and other internal messages
	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}

// submit starts one submission attempt. The error is cleared and the draft
// validated before any network command is returned.
func (m Model) submit() (Model, tea.Cmd) {
	content := m.state.BeginSubmit()
	if rejected, ok := service.CheckContent(content); !ok {
		m.state.ApplyCreate(rejected)
		return m, nil
	}
	return m, messages.CreateNote(m.svc, content)
}

func (m Model) handleComposerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		return m.submit()
	case "esc":
		m.composer.Blur()
		m.focus = focusList
		return m, nil
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	m.state.SetDraft(m.composer.Value())
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	count := len(m.state.Notes())

	switch msg.String() {
	case "j", "down":
		if m.cursor < count-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = max(0, count-1)
	case "enter", " ":
		if count > 0 {
			m.expanded[m.cursor] = !m.expanded[m.cursor]
		}
	case "i", "a", "tab":
		m.focus = focusComposer
		return m, m.composer.Focus()
	case "ctrl+s":
		return m.submit()
	case "r":
		return m, messages.LoadNotes(m.svc)
	case "/":
		m.searchActive = true
		m.searchOrigin = m.cursor
		m.searchInput.SetValue("")
		return m, m.searchInput.Focus()
	}

	return m, nil
}

func (m Model) handleSearchMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchActive = false
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.searchActive = false
		m.searchInput.Blur()
		m.cursor = m.searchOrigin
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.jumpToBestMatch(m.searchInput.Value())
	return m, cmd
}

// jumpToBestMatch moves the cursor to the best fuzzy match. The list itself
// is never filtered.
func (m *Model) jumpToBestMatch(query string) {
	if query == "" {
		m.cursor = m.searchOrigin
		return
	}

	list := m.state.Notes()
	contents := make([]string, len(list))
	for i, n := range list {
		contents[i] = n.Content
	}

	matches := fuzzy.Find(query, contents)
	if len(matches) > 0 {
		m.cursor = matches[0].Index
	}
}

func (m *Model) clampCursor() {
	count := len(m.state.Notes())
	if m.cursor >= count {
		m.cursor = max(0, count-1)
	}
}
