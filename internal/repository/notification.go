package repository

import (
	"context"

	"github.com/somonplay/payment-service/internal/model"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
}

type Notification struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &Notification{db: db}
}

func (r *Notification) Create(ctx context.Context, notification *model.Notification) error {
	db := GetTx(ctx, r.db)
	return db.Create(notification).Error
}
