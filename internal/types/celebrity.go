package types

import (
	"time"

	"github.com/google/uuid"
)

// Celebrity rows exist only while at least one outfit references them:
// created on first submission naming them, removed when the last outfit
// is deleted. Rating is the cached mean over the non-null outfit ratings,
// null until a first rating lands.
type Celebrity struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null;column:name" json:"name"`
	Rating    *float64  `gorm:"column:rating" json:"rating"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
	Outfits   []*Outfit `gorm:"foreignKey:CelebrityID;references:ID" json:"outfits,omitempty"`
}

func (Celebrity) TableName() string {
	return "celebrity"
}
