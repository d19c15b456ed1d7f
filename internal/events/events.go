package events

import (
	"encoding/json"
	"time"
)

// Event types published on the SSE stream.
const (
	TypePing             = "ping"
	TypeJobCreated       = "job_created"
	TypeJobUpdated       = "job_updated"
	TypeJobDeleted       = "job_deleted"
	TypeSkillsUpdated    = "skills_updated"
	TypeRejectionCreated = "rejection_created"
	TypeRejectionDeleted = "rejection_deleted"
	TypeConfigReloaded   = "config_reloaded"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	UserID    int64           `json:"user_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func MakeEvent(reqID, typ string, v int, data any) string {
	return MakeUserEvent(reqID, 0, typ, v, data)
}

// MakeUserEvent is MakeEvent for events that only concern one user.
func MakeUserEvent(reqID string, userID int64, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		UserID:    userID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
