package types

import (
	"time"

	"github.com/google/uuid"
)

// OutfitRating rows are append-only: no exposed operation updates or
// deletes an individual rating. A user rating the same outfit again adds
// another row, and the cached means move accordingly.
type OutfitRating struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OutfitID  uuid.UUID `gorm:"type:uuid;not null;index" json:"outfit_id"`
	Outfit    *Outfit   `gorm:"constraint:OnDelete:CASCADE;foreignKey:OutfitID;references:ID" json:"outfit,omitempty"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Value     int       `gorm:"not null;column:value" json:"value"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (OutfitRating) TableName() string {
	return "outfit_rating"
}
