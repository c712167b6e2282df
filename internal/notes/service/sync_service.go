package service

import (
	"context"
	"errors"

	"notedesk/internal/logs"
	"notedesk/internal/notes"
	"notedesk/internal/notes/remote"
)

// User-visible error messages.
const (
	MsgContentRequired = "Note content is required."
	MsgAddFailed       = "Failed to add note."
	MsgPostFailed      = "Error posting note."
)

// Outcome is the terminal state of a single submission attempt.
type Outcome int

const (
	OutcomeSucceeded Outcome = iota
	OutcomeRejectedLocally
	OutcomeRejectedByServer
	OutcomeTransportFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeRejectedLocally:
		return "rejected-locally"
	case OutcomeRejectedByServer:
		return "rejected-by-server"
	case OutcomeTransportFailed:
		return "transport-failed"
	}
	return "unknown"
}

// LoadResult is the result of loading the full collection. Err is set on any failure.
type LoadResult struct {
	Notes []notes.Note
	Err   error
}

// CreateResult is the result of a submission attempt. Message is the
// user-visible error text and is empty only on success.
type CreateResult struct {
	Outcome Outcome
	Note    *notes.Note
	Message string
	Err     error
}

// SyncService mediates between view state and the remote note collection.
type SyncService interface {
	LoadAll(ctx context.Context) LoadResult
	CreateNote(ctx context.Context, content string) CreateResult
}

type syncServiceImpl struct {
	client remote.Client
}

// NewSyncService creates a SyncService backed by client.
func NewSyncService(client remote.Client) SyncService {
	return &syncServiceImpl{client: client}
}

func (s *syncServiceImpl) LoadAll(ctx context.Context) LoadResult {
	list, err := s.client.List(ctx)
	if err != nil {
		logs.Logger.Warn().Err(err).Msg("failed to fetch notes")
		return LoadResult{Err: err}
	}
	return LoadResult{Notes: list}
}

func (s *syncServiceImpl) CreateNote(ctx context.Context, content string) CreateResult {
	if rejected, ok := CheckContent(content); !ok {
		return rejected
	}

	created, err := s.client.Create(ctx, content)
	if err == nil {
		return CreateResult{Outcome: OutcomeSucceeded, Note: created}
	}

	var rejected *remote.RejectedError
	if errors.As(err, &rejected) {
		msg := rejected.Message
		if msg == "" {
			msg = MsgAddFailed
		}
		logs.Logger.Info().Int("status", rejected.StatusCode).Str("message", rejected.Message).Msg("note rejected by server")
		return CreateResult{Outcome: OutcomeRejectedByServer, Message: msg, Err: err}
	}

	logs.Logger.Error().Err(err).Msg("error posting note")
	return CreateResult{Outcome: OutcomeTransportFailed, Message: MsgPostFailed, Err: err}
}

// CheckContent applies local validation. Only the empty string is rejected;
// whitespace-only content is sent as typed.
func CheckContent(content string) (CreateResult, bool) {
	if content == "" {
		return CreateResult{Outcome: OutcomeRejectedLocally, Message: MsgContentRequired}, false
	}
	return CreateResult{}, true
}
