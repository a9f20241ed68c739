package repository

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/somonplay/payment-service/internal/model"
	"gorm.io/gorm"
)

var ErrProcessLogDuplicate = errors.New("PROCESS_LOG_DUPLICATE")
var ErrProcessLogNotFound = errors.New("PROCESS_LOG_NOT_FOUND")

type ProcessLogRepository interface {
	Create(ctx context.Context, entry *model.ProcessLog) error
	GetByKey(entityID, operation, dedupKey string) (*model.ProcessLog, error)
	HasCompleted(entityID, operation string) (bool, error)
	Finalize(ctx context.Context, id int64, status string, lastError *string) error
	LatestDedupKey(entityID, operation string) (string, error)
}

type ProcessLog struct {
	db *gorm.DB
}

func NewProcessLogRepository(db *gorm.DB) ProcessLogRepository {
	return &ProcessLog{db: db}
}

func (r *ProcessLog) Create(ctx context.Context, entry *model.ProcessLog) error {
	db := GetTx(ctx, r.db)
	err := db.Create(entry).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrProcessLogDuplicate
	}

	return err
}

func (r *ProcessLog) GetByKey(entityID, operation, dedupKey string) (*model.ProcessLog, error) {
	var entry model.ProcessLog

	err := r.db.Where("entity_id = ? AND operation = ? AND dedup_key = ?",
		entityID, operation, dedupKey).First(&entry).Error
	if err == nil {
		return &entry, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProcessLogNotFound
	}

	return nil, err
}

func (r *ProcessLog) HasCompleted(entityID, operation string) (bool, error) {
	var count int64

	err := r.db.Model(&model.ProcessLog{}).
		Where("entity_id = ? AND operation = ? AND status = ?",
			entityID, operation, model.ProcessLogStatusCompleted).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Finalize records the outcome of an attempt. A COMPLETED entry is terminal:
// duplicate callers sharing the row can finish after the winner, and their
// update must not demote its status.
func (r *ProcessLog) Finalize(ctx context.Context, id int64, status string, lastError *string) error {
	db := GetTx(ctx, r.db)
	completedAt := time.Now()

	return db.Model(&model.ProcessLog{}).
		Where("id = ? AND status <> ?", id, model.ProcessLogStatusCompleted).
		Updates(map[string]interface{}{
			"status":       status,
			"last_error":   lastError,
			"completed_at": &completedAt,
		}).Error
}

// LatestDedupKey returns the dedup key of the most recent attempt for an
// entity/operation pair. Reconciliation uses it to re-run the credit step with
// the original gateway transaction id.
func (r *ProcessLog) LatestDedupKey(entityID, operation string) (string, error) {
	var entry model.ProcessLog

	err := r.db.Where("entity_id = ? AND operation = ?", entityID, operation).
		Order("created_at DESC").
		First(&entry).Error
	if err == nil {
		return entry.DedupKey, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrProcessLogNotFound
	}

	return "", err
}
