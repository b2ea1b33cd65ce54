package types

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a subscription edge between a user and a celebrity.
// idx_follow_pair = (user_id, celebrity_id) keeps the edge unique.
type Follow struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_follow_pair,unique,priority:1" json:"user_id"`
	User        *User      `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	CelebrityID uuid.UUID  `gorm:"type:uuid;not null;index:idx_follow_pair,unique,priority:2" json:"celebrity_id"`
	Celebrity   *Celebrity `gorm:"constraint:OnDelete:CASCADE;foreignKey:CelebrityID;references:ID" json:"celebrity,omitempty"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
}

func (Follow) TableName() string {
	return "follow"
}
