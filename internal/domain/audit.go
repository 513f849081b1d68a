package domain

import (
	"encoding/json"
	"time"
)

// AuditEntry is one recorded admin action.
type AuditEntry struct {
	ID         int64
	EventID    string
	Action     string
	ActorID    string
	ActorEmail string
	ActorRole  Role
	SubjectID  string
	Detail     json.RawMessage
	OccurredAt time.Time
}
