package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
)

const defaultActivityLimit = 100

// AuditReader reads back recorded admin actions.
type AuditReader interface {
	Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

// ActivityPage lists recent admin actions.
type ActivityPage struct {
	Entries []domain.AuditEntry
	Error   string
}

// ActivityService serves the audit trail page.
type ActivityService struct {
	base
	audit AuditReader
}

// NewActivityService constructs the service.
func NewActivityService(audit AuditReader, deps Dependencies) *ActivityService {
	return &ActivityService{base: newBase(deps), audit: audit}
}

// Recent loads the newest entries first.
func (s *ActivityService) Recent(ctx context.Context, limit int) *ActivityPage {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if s.audit == nil {
		return &ActivityPage{Entries: []domain.AuditEntry{}}
	}
	entries, err := s.audit.Recent(ctx, limit)
	if err != nil {
		s.logger.Warn("audit trail unavailable", zap.Error(err))
		return &ActivityPage{Entries: []domain.AuditEntry{}, Error: "Activity log is unavailable."}
	}
	return &ActivityPage{Entries: entries}
}
