package model

import "time"

const (
	ProcessLogStatusProcessing = "PROCESSING"
	ProcessLogStatusCompleted  = "COMPLETED"
	ProcessLogStatusFailed     = "FAILED"
)

const OperationPaymentConfirm = "payment_confirm"

// ProcessLog is the idempotency and audit record for one handler attempt.
// Rows are never deleted.
type ProcessLog struct {
	ID          int64      `gorm:"primaryKey;autoIncrement;<-:create"`
	EntityID    string     `gorm:"type:char(36);not null;index:idx_entity_op_dedup,unique;<-:create"`
	Operation   string     `gorm:"type:varchar(64);not null;index:idx_entity_op_dedup,unique;<-:create"`
	DedupKey    string     `gorm:"type:varchar(128);not null;index:idx_entity_op_dedup,unique;<-:create"`
	Status      string     `gorm:"type:enum('PROCESSING','COMPLETED','FAILED');not null"`
	LastError   *string    `gorm:"type:text;null"`
	CreatedAt   time.Time  `gorm:"type:timestamp;default:CURRENT_TIMESTAMP"`
	CompletedAt *time.Time `gorm:"type:timestamp;null"`
}
