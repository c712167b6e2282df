package service

import (
	"context"
	"slices"

	"notedesk/internal/notes"
)

// State holds the view's note list, draft and last error. It is only mutated
// through the methods below, from a single goroutine.
type State struct {
	notes  []notes.Note
	draft  string
	errMsg string
}

// NewState creates an empty state.
func NewState() *State {
	return &State{}
}

// Notes returns the displayed list: the last fetched server list followed by
// locally created notes in creation order. The result is a copy.
func (s *State) Notes() []notes.Note {
	return slices.Clone(s.notes)
}

func (s *State) Draft() string {
	return s.draft
}

// SetDraft replaces the draft buffer. The list is never touched.
func (s *State) SetDraft(draft string) {
	s.draft = draft
}

// ErrorMessage returns the error of the most recent submission attempt, or "".
func (s *State) ErrorMessage() string {
	return s.errMsg
}

// ApplyLoad replaces the list on success. Failures leave the list and error untouched.
func (s *State) ApplyLoad(r LoadResult) {
	if r.Err != nil {
		return
	}
	s.notes = append([]notes.Note(nil), r.Notes...)
}

// BeginSubmit starts a submission attempt: it clears the error and returns the
// content to send.
func (s *State) BeginSubmit() string {
	s.errMsg = ""
	return s.draft
}

// ApplyCreate reconciles a finished submission attempt.
func (s *State) ApplyCreate(r CreateResult) {
	if r.Outcome == OutcomeSucceeded && r.Note != nil {
		s.notes = append(s.notes, *r.Note)
		s.draft = ""
		s.errMsg = ""
		return
	}
	s.errMsg = r.Message
}

// Load runs loadAll synchronously.
func (s *State) Load(ctx context.Context, svc SyncService) LoadResult {
	r := svc.LoadAll(ctx)
	s.ApplyLoad(r)
	return r
}

// Submit runs a full submission attempt for the current draft synchronously.
func (s *State) Submit(ctx context.Context, svc SyncService) CreateResult {
	content := s.BeginSubmit()
	r := svc.CreateNote(ctx, content)
	s.ApplyCreate(r)
	return r
}
