package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLogin                EventType = "login"
	EventLogout               EventType = "logout"
	EventStaffCreated         EventType = "staff_created"
	EventStaffUpdated         EventType = "staff_updated"
	EventStaffDeleted         EventType = "staff_deleted"
	EventCategoryCreated      EventType = "category_created"
	EventUserCreated          EventType = "user_created"
	EventUserStatusChanged    EventType = "user_status_changed"
	EventBookingStatusChanged EventType = "booking_status_changed"
	EventSupplierCreated      EventType = "supplier_created"
	EventSupplierUpdated      EventType = "supplier_updated"
	EventSupplierDeleted      EventType = "supplier_deleted"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	ID    string      `json:"id,omitempty"`
	Email string      `json:"email,omitempty"`
	Role  domain.Role `json:"role,omitempty"`
}

// Event represents an admin action emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	SubjectID string    `json:"subject_id,omitempty"`
	Actor     Actor     `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

// New stamps an event performed by principal on the record subjectID.
func New(eventType EventType, principal domain.Principal, subjectID string, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Actor:     Actor{ID: principal.ID, Email: principal.Email, Role: principal.Role},
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// StatusChangedPayload payload.
type StatusChangedPayload struct {
	From string `json:"from,omitempty"`
	To   string `json:"to"`
}

// RecordPayload names the record a create/update/delete touched.
type RecordPayload struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
