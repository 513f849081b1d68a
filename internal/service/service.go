package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
	"github.com/eltonkaiton/mombasa-admin/internal/events"
	apperrors "github.com/eltonkaiton/mombasa-admin/pkg/util/errorutil"
)

// Caller is the operator performing an operation and the backend token
// acting on their behalf.
type Caller struct {
	Token     string
	Principal domain.Principal
}

// StatusRecorder counts status transitions.
type StatusRecorder interface {
	RecordStatusChange(entity, status string, ok bool)
}

// Dependencies are shared by every service.
type Dependencies struct {
	Dispatcher events.Dispatcher
	Metrics    StatusRecorder
	Logger     *zap.Logger
}

type base struct {
	dispatcher events.Dispatcher
	metrics    StatusRecorder
	logger     *zap.Logger
}

func newBase(deps Dependencies) base {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return base{dispatcher: deps.Dispatcher, metrics: deps.Metrics, logger: logger}
}

// publish emits an admin-action event. Audit failures never undo the write
// that already happened on the backend.
func (b base) publish(ctx context.Context, caller Caller, eventType events.EventType, subjectID string, payload any) {
	if b.dispatcher == nil {
		return
	}
	event := events.New(eventType, caller.Principal, subjectID, payload)
	if err := b.dispatcher.Publish(ctx, event); err != nil {
		b.logger.Warn("event handlers failed", zap.String("event_type", string(eventType)), zap.Error(err))
	}
}

func (b base) recordStatus(entity, status string, ok bool) {
	if b.metrics != nil {
		b.metrics.RecordStatusChange(entity, status, ok)
	}
}

// pageError turns a failed page load into the string the page shows.
// Expired sessions pass through so the HTTP layer can log the operator out.
func (b base) pageError(op string, err error, rejected, network string) (string, error) {
	if apperrors.IsUnauthorized(err) {
		return "", err
	}
	b.logger.Warn("page load failed", zap.String("op", op), zap.Error(err))
	return apperrors.UserMessage(err, rejected, network), nil
}

// failure rewrites a failed write so its Message is what the page shows.
func (b base) failure(op string, err error, rejected, network string) error {
	if err == nil || apperrors.IsUnauthorized(err) {
		return err
	}
	b.logger.Warn("operation failed", zap.String("op", op), zap.Error(err))
	de := apperrors.ToDomainError(err)
	return &apperrors.DomainError{
		Code:       de.Code,
		Message:    apperrors.UserMessage(err, rejected, network),
		HTTPStatus: de.HTTPStatus,
		Details:    de.Details,
		Err:        err,
	}
}

// Message is the page text for an error returned by a service.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return apperrors.ToDomainError(err).Message
}

func blank(values ...string) bool {
	for _, v := range values {
		if v == "" {
			return true
		}
	}
	return false
}
