package repository

import (
	"context"

	"github.com/somonplay/payment-service/internal/model"
	"gorm.io/gorm"
)

type WalletTransactionRepository interface {
	Create(ctx context.Context, tx *model.WalletTransaction) error
	ExistsForOrder(orderID string) (bool, error)
}

type WalletTransaction struct {
	db *gorm.DB
}

func NewWalletTransactionRepository(db *gorm.DB) WalletTransactionRepository {
	return &WalletTransaction{db: db}
}

func (r *WalletTransaction) Create(ctx context.Context, tx *model.WalletTransaction) error {
	db := GetTx(ctx, r.db)
	return db.Create(tx).Error
}

func (r *WalletTransaction) ExistsForOrder(orderID string) (bool, error) {
	var count int64

	err := r.db.Model(&model.WalletTransaction{}).
		Where("related_order_id = ?", orderID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
