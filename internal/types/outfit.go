package types

import (
	"time"

	"github.com/google/uuid"
)

// Outfit.Rating is the cached mean of its outfit_rating rows, null until rated.
type Outfit struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CelebrityID uuid.UUID      `gorm:"type:uuid;not null;index" json:"celebrity_id"`
	Celebrity   *Celebrity     `gorm:"constraint:OnDelete:CASCADE;foreignKey:CelebrityID;references:ID" json:"celebrity,omitempty"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User        *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Image       string         `gorm:"not null;column:image" json:"image"`
	Description *string        `gorm:"column:description" json:"description,omitempty"`
	Source      *string        `gorm:"column:source" json:"source,omitempty"`
	Rating      *float64       `gorm:"column:rating" json:"rating"`
	CreatedAt   time.Time      `gorm:"not null;index" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
	Clothing    []*Clothing    `gorm:"foreignKey:OutfitID;references:ID" json:"clothing,omitempty"`
	Ratings     []*OutfitRating `gorm:"foreignKey:OutfitID;references:ID" json:"ratings,omitempty"`
}

func (Outfit) TableName() string {
	return "outfit"
}
