package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"notedesk/internal/logs"
	"notedesk/internal/notes"
)

const (
	notesPath       = "/notes"
	requestIDHeader = "X-Request-ID"
	maxErrorBody    = 64 << 10
)

// Client is the remote note collection.
type Client interface {
	List(ctx context.Context) ([]notes.Note, error)
	Create(ctx context.Context, content string) (*notes.Note, error)
}

type httpClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient creates a Client for the note service at baseURL. A nil hc uses
// http.DefaultClient.
func NewHTTPClient(baseURL string, hc *http.Client) Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

type errorBody struct {
	Error json.RawMessage `json:"error"`
}

func (c *httpClient) List(ctx context.Context) ([]notes.Note, error) {
	resp, requestID, err := c.do(ctx, http.MethodGet, nil)
	if err != nil {
		return nil, &TransportError{Op: "list notes", Err: err}
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, rejection(resp)
	}

	var list []notes.Note
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, &TransportError{Op: "decode note list", Err: err}
	}

	logs.Logger.Debug().Str("request_id", requestID).Int("count", len(list)).Msg("listed notes")
	return list, nil
}

func (c *httpClient) Create(ctx context.Context, content string) (*notes.Note, error) {
	body, err := json.Marshal(notes.CreateRequest{Content: content})
	if err != nil {
		return nil, &TransportError{Op: "encode note", Err: err}
	}

	resp, requestID, err := c.do(ctx, http.MethodPost, body)
	if err != nil {
		return nil, &TransportError{Op: "create note", Err: err}
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, rejection(resp)
	}

	var created notes.Note
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, &TransportError{Op: "decode created note", Err: err}
	}

	logs.Logger.Debug().Str("request_id", requestID).Int("id", created.ID).Msg("created note")
	return &created, nil
}

func (c *httpClient) do(ctx context.Context, method string, body []byte) (*http.Response, string, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+notesPath, reader)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logs.Logger.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("url", req.URL.String()).
		Msg("sending request")

	resp, err := c.http.Do(req)
	if err != nil {
		logs.Logger.Debug().Str("request_id", requestID).Err(err).Msg("request failed")
		return nil, requestID, err
	}

	logs.Logger.Debug().Str("request_id", requestID).Int("status", resp.StatusCode).Msg("received response")
	return resp, requestID, nil
}

// rejection builds a RejectedError from a non-2xx response. A body that is not
// JSON or has no "error" field leaves Message empty.
func rejection(resp *http.Response) *RejectedError {
	rejected := &RejectedError{StatusCode: resp.StatusCode}

	var eb errorBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&eb); err == nil {
		rejected.Message = errorText(eb.Error)
	}
	return rejected
}

// errorText renders an "error" value of any JSON type. Strings are unquoted.
// null, false, 0 and "" count as no message; other values keep their JSON text.
func errorText(raw json.RawMessage) string {
	var v any
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return ""
	}
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if !v {
			return ""
		}
	case float64:
		if v == 0 {
			return ""
		}
	}
	return strings.TrimSpace(string(raw))
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
