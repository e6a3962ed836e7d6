package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe belongs to one category and one primary author. IsPublic and
// IsPremium are independent editorial flags.
type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	PrepTime    int       `gorm:"not null" json:"prep_time"`
	Cost        *float64  `gorm:"type:numeric(10,2)" json:"cost"`
	IsPublic    bool      `gorm:"not null" json:"is_public"`
	IsPremium   bool      `gorm:"not null" json:"is_premium"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	CreatedAt   time.Time `json:"created_at"`
	ModifiedAt  time.Time `gorm:"autoUpdateTime" json:"modified_at"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT" json:"-"`
	Author   *User     `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT" json:"-"`

	// Collaborators is filled by the service layer, never persisted through
	// this struct.
	Collaborators []SecondaryAuthor `gorm:"-" json:"-"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Collaborator returns the secondary-author link for userID, if any.
func (r *Recipe) Collaborator(userID uuid.UUID) (SecondaryAuthor, bool) {
	for _, sa := range r.Collaborators {
		if sa.UserID == userID {
			return sa, true
		}
	}
	return SecondaryAuthor{}, false
}
