package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tier gates access to premium-flagged recipes.
type Tier string

const (
	TierPublic  Tier = "public"
	TierPremium Tier = "premium"
)

func (t Tier) Valid() bool {
	return t == TierPublic || t == TierPremium
}

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Tier      Tier      `gorm:"size:20;not null;default:'public'" json:"tier"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) IsPremium() bool {
	return u != nil && u.Tier == TierPremium
}
