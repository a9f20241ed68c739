package repository

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/somonplay/payment-service/internal/model"
	"gorm.io/gorm"
)

var ErrRewardGrantExists = errors.New("REWARD_GRANT_EXISTS")

type RewardGrantRepository interface {
	Create(ctx context.Context, grant *model.RewardGrant) error
}

type RewardGrant struct {
	db *gorm.DB
}

func NewRewardGrantRepository(db *gorm.DB) RewardGrantRepository {
	return &RewardGrant{db: db}
}

// Create inserts a grant row. The unique (user_id, recharge_amount) index is
// the serialization point for concurrent claims; the loser gets
// ErrRewardGrantExists.
func (r *RewardGrant) Create(ctx context.Context, grant *model.RewardGrant) error {
	db := GetTx(ctx, r.db)
	err := db.Create(grant).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrRewardGrantExists
	}

	return err
}
