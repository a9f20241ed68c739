package model

import "time"

type User struct {
	ID               string    `gorm:"primaryKey;type:char(36);<-:create"`
	Username         string    `gorm:"type:varchar(255);not null"`
	TelegramID       string    `gorm:"type:varchar(64);uniqueIndex"`
	Balance          int64     `gorm:"not null;default:0"`
	HasFirstPurchase bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP"`
	UpdatedAt        time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP"`
}
