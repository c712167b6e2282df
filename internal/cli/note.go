package cli

import (
	"context"
	"fmt"
	"strings"

	"notedesk/internal/notes"
	"notedesk/internal/notes/service"
)

func (r Runner) runAdd(args []string) int {
	state := service.NewState()
	state.SetDraft(strings.Join(args, " "))

	result := state.Submit(context.Background(), r.Svc)
	if result.Outcome != service.OutcomeSucceeded {
		fmt.Fprintf(r.ErrOut, "Error: %s\n", state.ErrorMessage())
		if result.Outcome == service.OutcomeRejectedLocally {
			fmt.Fprintln(r.ErrOut, "Usage: notedesk note add \"Note content\"")
		}
		return 1
	}

	fmt.Fprintf(r.Out, "Added: %s\n", result.Note.Content)
	fmt.Fprintf(r.Out, "ID: %d\n", result.Note.ID)
	return 0
}

func (r Runner) runList(args []string) int {
	state := service.NewState()

	// Unlike the TUI, a failed load is reported: a script needs the exit code.
	if result := state.Load(context.Background(), r.Svc); result.Err != nil {
		fmt.Fprintf(r.ErrOut, "Error loading notes: %v\n", result.Err)
		return 1
	}

	list := state.Notes()
	if len(list) == 0 {
		fmt.Fprintln(r.Out, "No notes found.")
		return 0
	}

	for _, n := range list {
		r.printNote(n)
	}

	fmt.Fprintf(r.Out, "\n%d note(s)\n", len(list))
	return 0
}

func (r Runner) printNote(n notes.Note) {
	fmt.Fprintf(r.Out, "[%d] %s\n", n.ID, n.FormatCreatedAt(r.TimeFormat))
	for _, line := range strings.Split(n.Content, "\n") {
		fmt.Fprintf(r.Out, "        %s\n", line)
	}
}
