package messages

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"notedesk/internal/notes/service"
)

// NotesLoadedMsg carries the result of a loadAll run
type NotesLoadedMsg struct {
	Result service.LoadResult
}

// NoteCreatedMsg carries the result of a create request
type NoteCreatedMsg struct {
	Result service.CreateResult
}

// LoadNotes fetches the full collection off the update loop.
func LoadNotes(svc service.SyncService) tea.Cmd {
	return func() tea.Msg {
		return NotesLoadedMsg{Result: svc.LoadAll(context.Background())}
	}
}

// CreateNote sends content to the note service off the update loop. Callers
// clear the error and validate before returning this command.
func CreateNote(svc service.SyncService, content string) tea.Cmd {
	return func() tea.Msg {
		return NoteCreatedMsg{Result: svc.CreateNote(context.Background(), content)}
	}
}
