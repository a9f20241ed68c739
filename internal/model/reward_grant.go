package model

import "time"

const RewardGrantStatusClaimed = "claimed"

// RewardGrant records a claimed first-recharge reward tier. The unique index
// on (user_id, recharge_amount) arbitrates concurrent claims.
type RewardGrant struct {
	ID             int64     `gorm:"primaryKey;autoIncrement;<-:create"`
	UserID         string    `gorm:"type:char(36);not null;index:idx_user_tier,unique;<-:create"`
	RechargeAmount int64     `gorm:"not null;index:idx_user_tier,unique;<-:create"`
	RewardAmount   int64     `gorm:"not null"`
	Status         string    `gorm:"type:varchar(20);not null"`
	ClaimedAt      time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP"`
}
