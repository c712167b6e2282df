package notes

import (
	"fmt"
	"time"
)

// Note is a server-assigned note record. All three fields are immutable once
// the remote service has created it.
type Note struct {
	ID        int    `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"` // Raw server timestamp, only used for display
}

// CreateRequest is the body of a create call.
type CreateRequest struct {
	Content string `json:"content"`
}

// Layouts carrying an offset keep it. Zone-less layouts are wall-clock times
// in the viewer's zone and are never shifted.
var (
	zonedLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02 15:04:05Z07:00",
	}
	localLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}
)

// CreatedAtTime parses the server timestamp.
func (n Note) CreatedAtTime() (time.Time, error) {
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, n.CreatedAt); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, n.CreatedAt, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized createdAt %q", n.CreatedAt)
}

// FormatCreatedAt renders the timestamp in the viewer's local zone. Unparseable
// values are returned as-is.
func (n Note) FormatCreatedAt(layout string) string {
	t, err := n.CreatedAtTime()
	if err != nil {
		return n.CreatedAt
	}
	return t.In(time.Local).Format(layout)
}
