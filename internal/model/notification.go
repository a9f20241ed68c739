package model

import "time"

const NotificationStatusPending = "pending"

type Notification struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;<-:create"`
	UserID    string    `gorm:"type:char(36);not null;index;<-:create"`
	Type      string    `gorm:"type:varchar(32);not null"`
	Content   string    `gorm:"type:varchar(255);not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP"`
}
