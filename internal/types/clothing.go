package types

import (
	"time"

	"github.com/google/uuid"
)

type Clothing struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OutfitID  uuid.UUID `gorm:"type:uuid;not null;index" json:"outfit_id"`
	Outfit    *Outfit   `gorm:"constraint:OnDelete:CASCADE;foreignKey:OutfitID;references:ID" json:"outfit,omitempty"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Type      string    `gorm:"not null;column:type" json:"type"`
	Brand     string    `gorm:"not null;column:brand" json:"brand"`
	Price     *float64  `gorm:"column:price" json:"price,omitempty"`
	Link      string    `gorm:"not null;column:link" json:"link"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Clothing) TableName() string {
	return "clothing"
}
