package models

import (
	"time"

	"github.com/google/uuid"
)

type CollaboratorRole string

const (
	RoleCollaborator CollaboratorRole = "collaborator"
	RoleGuest        CollaboratorRole = "guest"
)

func (r CollaboratorRole) Valid() bool {
	return r == RoleCollaborator || r == RoleGuest
}

// SecondaryAuthor links a user to a recipe they do not own. The pair
// (RecipeID, UserID) is the identity.
type SecondaryAuthor struct {
	RecipeID  uuid.UUID        `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	UserID    uuid.UUID        `gorm:"type:uuid;primaryKey;index" json:"user_id"`
	Role      CollaboratorRole `gorm:"size:20;not null" json:"role"`
	CanModify bool             `gorm:"not null" json:"can_modify"`
	InvitedAt time.Time        `gorm:"autoCreateTime" json:"invited_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
