package service

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"

	"notedesk/internal/notes"
	"notedesk/internal/notes/remote"
)

// fakeClient is an in-memory remote.Client.
type fakeClient struct {
	list      []notes.Note
	listErr   error
	createErr error
	nextID    int
	creates   int
	lists     int
}

func (f *fakeClient) List(ctx context.Context) ([]notes.Note, error) {
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

func (f *fakeClient) Create(ctx context.Context, content string) (*notes.Note, error) {
	f.creates++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	return &notes.Note{ID: f.nextID, Content: content, CreatedAt: "2026-01-01T00:00:00Z"}, nil
}

func makeNotes(n int) []notes.Note {
	list := make([]notes.Note, n)
	for i := range list {
		list[i] = notes.Note{ID: 100 - i, Content: fmt.Sprintf("note %d", i)}
	}
	return list
}

func TestSubmit_Success(t *testing.T) {
	drafts := []string{"a", "hello world", "  ", "multi\nline", "ünïcödé"}

	for _, draft := range drafts {
		fake := &fakeClient{}
		svc := NewSyncService(fake)
		state := NewState()
		state.ApplyLoad(LoadResult{Notes: makeNotes(2)})
		state.SetDraft(draft)

		r := state.Submit(context.Background(), svc)

		if r.Outcome != OutcomeSucceeded {
			t.Errorf("draft %q: expected success, got %v", draft, r.Outcome)
		}
		if len(state.Notes()) != 3 {
			t.Errorf("draft %q: expected 3 notes, got %d", draft, len(state.Notes()))
		}
		if last := state.Notes()[2]; last.Content != draft {
			t.Errorf("draft %q: expected appended content, got %q", draft, last.Content)
		}
		if state.Draft() != "" {
			t.Errorf("draft %q: expected draft cleared, got %q", draft, state.Draft())
		}
		if state.ErrorMessage() != "" {
			t.Errorf("draft %q: expected no error, got %q", draft, state.ErrorMessage())
		}
	}
}

func TestSubmit_EmptyDraftNeverCallsServer(t *testing.T) {
	fake := &fakeClient{}
	state := NewState()
	state.ApplyLoad(LoadResult{Notes: makeNotes(1)})

	r := state.Submit(context.Background(), NewSyncService(fake))

	if fake.creates != 0 {
		t.Errorf("expected no create call, got %d", fake.creates)
	}
	if r.Outcome != OutcomeRejectedLocally {
		t.Errorf("expected local rejection, got %v", r.Outcome)
	}
	if len(state.Notes()) != 1 {
		t.Errorf("expected list unchanged, got %d notes", len(state.Notes()))
	}
	if state.ErrorMessage() != MsgContentRequired {
		t.Errorf("expected %q, got %q", MsgContentRequired, state.ErrorMessage())
	}
}

func TestSubmit_ServerRejection(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"with message", &remote.RejectedError{StatusCode: 400, Message: "X"}, "X"},
		{"without message", &remote.RejectedError{StatusCode: 500}, MsgAddFailed},
		{"wrapped", fmt.Errorf("create: %w", &remote.RejectedError{StatusCode: 422, Message: "too long"}), "too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeClient{createErr: tt.err}
			state := NewState()
			state.SetDraft("keep me")

			r := state.Submit(context.Background(), NewSyncService(fake))

			if r.Outcome != OutcomeRejectedByServer {
				t.Errorf("expected server rejection, got %v", r.Outcome)
			}
			if state.ErrorMessage() != tt.want {
				t.Errorf("expected error %q, got %q", tt.want, state.ErrorMessage())
			}
			if len(state.Notes()) != 0 {
				t.Errorf("expected list unchanged, got %d notes", len(state.Notes()))
			}
			if state.Draft() != "keep me" {
				t.Errorf("expected draft preserved, got %q", state.Draft())
			}
		})
	}
}

func TestSubmit_TransportFailure(t *testing.T) {
	fake := &fakeClient{createErr: &remote.TransportError{Op: "create note", Err: syscall.ECONNREFUSED}}
	state := NewState()
	state.ApplyLoad(LoadResult{Notes: makeNotes(2)})
	state.SetDraft("offline note")

	r := state.Submit(context.Background(), NewSyncService(fake))

	if r.Outcome != OutcomeTransportFailed {
		t.Errorf("expected transport failure, got %v", r.Outcome)
	}
	if !errors.Is(r.Err, syscall.ECONNREFUSED) {
		t.Errorf("expected cause preserved, got %v", r.Err)
	}
	if state.ErrorMessage() != MsgPostFailed {
		t.Errorf("expected %q, got %q", MsgPostFailed, state.ErrorMessage())
	}
	if len(state.Notes()) != 2 {
		t.Errorf("expected list unchanged, got %d notes", len(state.Notes()))
	}
	if state.Draft() != "offline note" {
		t.Errorf("expected draft preserved, got %q", state.Draft())
	}
}

func TestSubmit_RepeatedFailuresShowOnlyLatest(t *testing.T) {
	fake := &fakeClient{createErr: &remote.RejectedError{StatusCode: 400, Message: "X"}}
	svc := NewSyncService(fake)
	state := NewState()
	state.SetDraft("same")

	for i := 0; i < 3; i++ {
		state.Submit(context.Background(), svc)
	}
	if state.ErrorMessage() != "X" {
		t.Errorf("expected single latest error, got %q", state.ErrorMessage())
	}

	// A different failure kind replaces, not appends
	fake.createErr = errors.New("boom")
	state.Submit(context.Background(), svc)
	if state.ErrorMessage() != MsgPostFailed {
		t.Errorf("expected %q, got %q", MsgPostFailed, state.ErrorMessage())
	}

	// Success clears it
	fake.createErr = nil
	state.Submit(context.Background(), svc)
	if state.ErrorMessage() != "" {
		t.Errorf("expected error cleared, got %q", state.ErrorMessage())
	}
}

func TestBeginSubmit_ClearsErrorBeforeSend(t *testing.T) {
	state := NewState()
	state.ApplyCreate(CreateResult{Outcome: OutcomeTransportFailed, Message: MsgPostFailed})

	content := state.BeginSubmit()

	if state.ErrorMessage() != "" {
		t.Errorf("expected error cleared at start of attempt, got %q", state.ErrorMessage())
	}
	if content != "" {
		t.Errorf("expected empty draft returned, got %q", content)
	}
}

func TestLoad_Success(t *testing.T) {
	fake := &fakeClient{list: makeNotes(5)}
	state := NewState()

	state.Load(context.Background(), NewSyncService(fake))

	got := state.Notes()
	if len(got) != 5 {
		t.Fatalf("expected 5 notes, got %d", len(got))
	}
	for i, n := range got {
		if n.ID != fake.list[i].ID {
			t.Errorf("position %d: expected id %d, got %d", i, fake.list[i].ID, n.ID)
		}
	}
}

func TestLoad_FailureIsSilent(t *testing.T) {
	fake := &fakeClient{listErr: &remote.RejectedError{StatusCode: 503}}
	state := NewState()

	r := state.Load(context.Background(), NewSyncService(fake))

	if r.Err == nil {
		t.Error("expected load error in result")
	}
	if len(state.Notes()) != 0 {
		t.Errorf("expected empty list, got %d notes", len(state.Notes()))
	}
	if state.ErrorMessage() != "" {
		t.Errorf("expected no user-visible error, got %q", state.ErrorMessage())
	}
}

func TestLoad_FailureKeepsExistingList(t *testing.T) {
	fake := &fakeClient{list: makeNotes(2)}
	svc := NewSyncService(fake)
	state := NewState()
	state.Load(context.Background(), svc)
	state.ApplyCreate(CreateResult{Outcome: OutcomeRejectedByServer, Message: "X"})

	fake.listErr = errors.New("network down")
	state.Load(context.Background(), svc)

	if len(state.Notes()) != 2 {
		t.Errorf("expected list kept, got %d notes", len(state.Notes()))
	}
	if state.ErrorMessage() != "X" {
		t.Errorf("expected submission error untouched, got %q", state.ErrorMessage())
	}
}

func TestDraftAndListIndependent(t *testing.T) {
	state := NewState()
	state.ApplyLoad(LoadResult{Notes: makeNotes(3)})
	state.SetDraft("typing")

	state.ApplyLoad(LoadResult{Notes: makeNotes(1)})
	if state.Draft() != "typing" {
		t.Errorf("expected draft untouched by reload, got %q", state.Draft())
	}

	state.SetDraft("")
	if len(state.Notes()) != 1 {
		t.Errorf("expected list untouched by draft edit, got %d notes", len(state.Notes()))
	}
}

func TestNotes_ReturnsCopy(t *testing.T) {
	state := NewState()
	state.ApplyLoad(LoadResult{Notes: makeNotes(2)})

	list := state.Notes()
	list[0].Content = "edited outside"
	_ = append(list, notes.Note{ID: 999})

	got := state.Notes()
	if len(got) != 2 {
		t.Errorf("expected 2 notes, got %d", len(got))
	}
	if got[0].Content != "note 0" {
		t.Errorf("expected stored note untouched, got %q", got[0].Content)
	}
}

func TestCheckContent(t *testing.T) {
	if _, ok := CheckContent(""); ok {
		t.Error("expected empty content rejected")
	}
	if _, ok := CheckContent(" \t\n"); !ok {
		t.Error("expected whitespace-only content accepted")
	}
}
