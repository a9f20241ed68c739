package repository

import (
	"context"
	"errors"
	"time"

	"github.com/somonplay/payment-service/internal/model"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("USER_NOT_FOUND")

type UserRepository interface {
	GetByID(id string) (*model.User, error)
	IncrementBalance(ctx context.Context, userID string, delta int64) error
	MarkFirstPurchase(ctx context.Context, userID string) error
}

type User struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &User{db: db}
}

func (r *User) GetByID(id string) (*model.User, error) {
	var user model.User

	err := r.db.Where("id = ?", id).First(&user).Error
	if err == nil {
		return &user, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	return nil, err
}

// IncrementBalance adds delta to the stored balance in a single statement.
// The balance is never read-modified-written at the application layer.
func (r *User) IncrementBalance(ctx context.Context, userID string, delta int64) error {
	db := GetTx(ctx, r.db)

	result := db.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *User) MarkFirstPurchase(ctx context.Context, userID string) error {
	db := GetTx(ctx, r.db)

	return db.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"has_first_purchase": true,
			"updated_at":         time.Now(),
		}).Error
}
