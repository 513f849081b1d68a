package repository

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
)

// AuditRepository stores audit entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
	ListRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

type auditRepository struct {
	pool *pgxpool.Pool
}

// NewAuditRepository builds the Postgres repository.
func NewAuditRepository(pool *pgxpool.Pool) AuditRepository {
	return &auditRepository{pool: pool}
}

func (r *auditRepository) Create(ctx context.Context, entry *domain.AuditEntry) error {
	const query = `
        INSERT INTO admin_audit_log (event_id, action, actor_id, actor_email, actor_role, subject_id, detail, occurred_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        ON CONFLICT (event_id) DO NOTHING
        RETURNING id`
	detail := entry.Detail
	if len(detail) == 0 {
		detail = []byte("{}")
	}
	err := r.pool.QueryRow(ctx, query,
		entry.EventID,
		entry.Action,
		entry.ActorID,
		entry.ActorEmail,
		string(entry.ActorRole),
		entry.SubjectID,
		detail,
		entry.OccurredAt,
	).Scan(&entry.ID)
	if err == pgx.ErrNoRows {
		// already recorded
		return nil
	}
	return err
}

func (r *auditRepository) ListRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	const query = `
        SELECT id, event_id, action, actor_id, actor_email, actor_role, subject_id, detail, occurred_at
        FROM admin_audit_log ORDER BY occurred_at DESC, id DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.AuditEntry
	for rows.Next() {
		var entry domain.AuditEntry
		var role string
		if err := rows.Scan(
			&entry.ID,
			&entry.EventID,
			&entry.Action,
			&entry.ActorID,
			&entry.ActorEmail,
			&role,
			&entry.SubjectID,
			&entry.Detail,
			&entry.OccurredAt,
		); err != nil {
			return nil, err
		}
		entry.ActorRole = domain.Role(role)
		result = append(result, entry)
	}
	return result, rows.Err()
}

// memoryAuditRepository keeps the newest entries in process when no
// database is configured.
type memoryAuditRepository struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
	limit   int
	nextID  int64
}

// NewMemoryAuditRepository keeps at most limit entries.
func NewMemoryAuditRepository(limit int) AuditRepository {
	if limit <= 0 {
		limit = 500
	}
	return &memoryAuditRepository{limit: limit}
}

func (r *memoryAuditRepository) Create(_ context.Context, entry *domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	entry.ID = r.nextID
	r.entries = append(r.entries, *entry)
	if over := len(r.entries) - r.limit; over > 0 {
		r.entries = append([]domain.AuditEntry(nil), r.entries[over:]...)
	}
	return nil
}

func (r *memoryAuditRepository) ListRecent(_ context.Context, limit int) ([]domain.AuditEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit <= 0 || limit > len(r.entries) {
		limit = len(r.entries)
	}
	out := make([]domain.AuditEntry, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}
