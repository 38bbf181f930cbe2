package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/blackvant/backend/internal/domain"
	"go.uber.org/zap"
)

// Audit actions for balance-affecting admin operations.
const (
	DepositApproved    = "DEPOSIT_APPROVED"
	DepositRejected    = "DEPOSIT_REJECTED"
	WithdrawalApproved = "WITHDRAWAL_APPROVED"
	WithdrawalRejected = "WITHDRAWAL_REJECTED"
)

const writeTimeout = time.Second * 5

type Repo interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
}

// Recorder appends audit entries best-effort through a bounded worker pool.
// Failures are logged, never propagated to the triggering operation.
type Recorder struct {
	repo       Repo
	workerPool WorkerPoolI
}

func New(repo Repo) *Recorder {
	return &Recorder{
		repo:       repo,
		workerPool: NewWorkerPool(4),
	}
}

func (r *Recorder) Record(actorID int, action, entityType string, entityID int, meta map[string]any) {
	payload, err := json.Marshal(meta)
	if err != nil {
		zap.L().Error("can't marshal audit meta", zap.Error(err))
		payload = []byte("{}")
	}
	entry := &domain.AuditEntry{
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Meta:       payload,
	}

	err = r.workerPool.AddTask(context.Background(), func() error {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		return r.repo.Create(ctx, entry)
	})
	if err != nil {
		zap.L().Error("can't enqueue audit entry", zap.Error(err), zap.String("action", action))
	}
}

func (r *Recorder) Close() {
	r.workerPool.Close()
}
