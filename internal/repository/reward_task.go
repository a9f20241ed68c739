package repository

import (
	"context"
	"errors"
	"time"

	"github.com/somonplay/payment-service/internal/model"
	"gorm.io/gorm"
)

var ErrRewardTaskNotFound = errors.New("REWARD_TASK_NOT_FOUND")

type RewardTaskRepository interface {
	Create(ctx context.Context, task *model.RewardTask) error
	GetByID(id int64) (*model.RewardTask, error)
	FindUnpublished(limit int) ([]model.RewardTask, error)
	MarkQueued(ctx context.Context, taskID int64) error
	Finalize(ctx context.Context, taskID int64, state string, lastError *string) error
}

type RewardTask struct {
	db *gorm.DB
}

func NewRewardTaskRepository(db *gorm.DB) RewardTaskRepository {
	return &RewardTask{db: db}
}

func (r *RewardTask) Create(ctx context.Context, task *model.RewardTask) error {
	db := GetTx(ctx, r.db)
	return db.Create(task).Error
}

func (r *RewardTask) GetByID(id int64) (*model.RewardTask, error) {
	var task model.RewardTask

	err := r.db.Where("id = ?", id).First(&task).Error
	if err == nil {
		return &task, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRewardTaskNotFound
	}

	return nil, err
}

func (r *RewardTask) FindUnpublished(limit int) ([]model.RewardTask, error) {
	var tasks []model.RewardTask

	err := r.db.Where("state = ? AND published = ?", model.RewardTaskStateCreated, false).
		Order("created_at ASC").
		Limit(limit).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *RewardTask) MarkQueued(ctx context.Context, taskID int64) error {
	db := GetTx(ctx, r.db)
	publishedAt := time.Now()

	return db.Model(&model.RewardTask{}).
		Where("id = ?", taskID).
		Updates(map[string]interface{}{
			"state":        model.RewardTaskStatePending,
			"published":    true,
			"published_at": &publishedAt,
			"updated_at":   time.Now(),
		}).Error
}

func (r *RewardTask) Finalize(ctx context.Context, taskID int64, state string, lastError *string) error {
	db := GetTx(ctx, r.db)

	return db.Model(&model.RewardTask{}).
		Where("id = ?", taskID).
		Updates(map[string]interface{}{
			"state":      state,
			"last_error": lastError,
			"updated_at": time.Now(),
		}).Error
}
