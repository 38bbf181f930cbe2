package auditrepo

import (
	"context"

	"github.com/blackvant/backend/internal/domain"
	"github.com/blackvant/backend/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, entry *domain.AuditEntry) error {
	query := `
		INSERT INTO audit_log (actor_id, action, entity_type, entity_id, meta)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		entry.ActorID, entry.Action, entry.EntityType, entry.EntityID, entry.Meta,
	).Scan(&entry.ID)
	if err != nil {
		zap.L().Error("can't save audit entry", zap.Error(err))
		return err
	}
	return nil
}
