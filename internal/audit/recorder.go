package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
	"github.com/eltonkaiton/mombasa-admin/internal/events"
	"github.com/eltonkaiton/mombasa-admin/internal/repository"
)

// Recorder turns admin events into audit entries and log lines.
type Recorder struct {
	repo   repository.AuditRepository
	logger *zap.Logger
}

// NewRecorder builds a recorder writing to repo.
func NewRecorder(repo repository.AuditRepository, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{repo: repo, logger: logger}
}

// Register subscribes the recorder to every admin event.
func (r *Recorder) Register(dispatcher events.Dispatcher) {
	if dispatcher == nil {
		return
	}
	dispatcher.SubscribeAll(r.Handle)
}

// Handle records one event.
func (r *Recorder) Handle(ctx context.Context, event events.Event) error {
	r.logger.Info("admin action",
		zap.String("event_id", event.ID),
		zap.String("action", string(event.Type)),
		zap.String("actor", event.Actor.Email),
		zap.String("subject_id", event.SubjectID),
		zap.Any("payload", event.Payload))

	if r.repo == nil {
		return nil
	}
	entry, err := entryFromEvent(event)
	if err != nil {
		return err
	}
	if err := r.repo.Create(ctx, &entry); err != nil {
		r.logger.Error("failed to store audit entry", zap.String("event_id", event.ID), zap.Error(err))
		return fmt.Errorf("store audit entry: %w", err)
	}
	return nil
}

// Recent returns the newest entries first.
func (r *Recorder) Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	if r.repo == nil {
		return []domain.AuditEntry{}, nil
	}
	return r.repo.ListRecent(ctx, limit)
}

func entryFromEvent(event events.Event) (domain.AuditEntry, error) {
	detail := json.RawMessage("{}")
	if event.Payload != nil {
		raw, err := json.Marshal(event.Payload)
		if err != nil {
			return domain.AuditEntry{}, fmt.Errorf("encode audit payload: %w", err)
		}
		detail = raw
	}
	return domain.AuditEntry{
		EventID:    event.ID,
		Action:     string(event.Type),
		ActorID:    event.Actor.ID,
		ActorEmail: event.Actor.Email,
		ActorRole:  event.Actor.Role,
		SubjectID:  event.SubjectID,
		Detail:     detail,
		OccurredAt: event.Timestamp,
	}, nil
}
