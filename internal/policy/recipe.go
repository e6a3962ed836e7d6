// Package policy decides who may see and change a recipe. Every predicate is
// a pure function of already-loaded state: the recipe must carry its
// Collaborators, and a nil user stands for an anonymous caller.
package policy

import (
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/models"
)

// IsAuthor reports whether user is the recipe's primary author.
func IsAuthor(user *models.User, recipe *models.Recipe) bool {
	return user != nil && recipe != nil && recipe.AuthorID == user.ID
}

// IsSecondaryAuthor reports whether user is linked to the recipe as a
// collaborator or guest, regardless of write permission.
func IsSecondaryAuthor(user *models.User, recipe *models.Recipe) bool {
	if user == nil || recipe == nil {
		return false
	}
	_, ok := recipe.Collaborator(user.ID)
	return ok
}

// CanView: authors always see their recipes. Anyone else needs the recipe to
// be public, and premium recipes additionally need a premium tier.
func CanView(user *models.User, recipe *models.Recipe) bool {
	if recipe == nil {
		return false
	}
	if IsAuthor(user, recipe) || IsSecondaryAuthor(user, recipe) {
		return true
	}
	if !recipe.IsPublic {
		return false
	}
	return !recipe.IsPremium || user.IsPremium()
}

// CanModify allows the primary author and collaborators holding can_modify.
func CanModify(user *models.User, recipe *models.Recipe) bool {
	if IsAuthor(user, recipe) {
		return true
	}
	if user == nil || recipe == nil {
		return false
	}
	sa, ok := recipe.Collaborator(user.ID)
	return ok && sa.CanModify
}

// CanDelete is reserved to the primary author. Collaborator permissions never
// extend to deletion.
func CanDelete(user *models.User, recipe *models.Recipe) bool {
	return IsAuthor(user, recipe)
}

// CanManageCollaborators decides who may invite, change or remove secondary
// authors. Only the primary author.
func CanManageCollaborators(user *models.User, recipe *models.Recipe) bool {
	return IsAuthor(user, recipe)
}
