package policy_test

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/cookshare/internal/models"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/policy"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newUser(tier models.Tier) *models.User {
	return &models.User{ID: uuid.New(), Tier: tier}
}

func newRecipe(author *models.User, public, premium bool) *models.Recipe {
	return &models.Recipe{ID: uuid.New(), AuthorID: author.ID, IsPublic: public, IsPremium: premium}
}

func addCollaborator(r *models.Recipe, u *models.User, canModify bool) {
	r.Collaborators = append(r.Collaborators, models.SecondaryAuthor{
		RecipeID:  r.ID,
		UserID:    u.ID,
		Role:      models.RoleCollaborator,
		CanModify: canModify,
	})
}

var flagCombos = []struct {
	name            string
	public, premium bool
}{
	{"private", false, false},
	{"private premium", false, true},
	{"public", true, false},
	{"public premium", true, true},
}

func TestCanView_AuthorsAlwaysSee(t *testing.T) {
	for _, fc := range flagCombos {
		t.Run(fc.name, func(t *testing.T) {
			author := newUser(models.TierPublic)
			guest := newUser(models.TierPublic)
			editor := newUser(models.TierPublic)
			r := newRecipe(author, fc.public, fc.premium)
			addCollaborator(r, guest, false)
			addCollaborator(r, editor, true)

			assert.True(t, policy.CanView(author, r))
			assert.True(t, policy.CanView(guest, r))
			assert.True(t, policy.CanView(editor, r))
		})
	}
}

func TestCanView_Strangers(t *testing.T) {
	author := newUser(models.TierPublic)

	tests := []struct {
		name    string
		viewer  *models.User
		public  bool
		premium bool
		want    bool
	}{
		{"anonymous on public", nil, true, false, true},
		{"anonymous on premium", nil, true, true, false},
		{"anonymous on private", nil, false, false, false},
		{"public tier on public", newUser(models.TierPublic), true, false, true},
		{"public tier on premium", newUser(models.TierPublic), true, true, false},
		{"premium tier on premium", newUser(models.TierPremium), true, true, true},
		{"premium tier on private", newUser(models.TierPremium), false, false, false},
		{"premium tier on private premium", newUser(models.TierPremium), false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRecipe(author, tt.public, tt.premium)
			assert.Equal(t, tt.want, policy.CanView(tt.viewer, r))
		})
	}
}

func TestCanView_PrivateDominatesTier(t *testing.T) {
	a := newUser(models.TierPublic)
	b := newUser(models.TierPremium)
	r := newRecipe(a, false, true)

	assert.True(t, policy.CanView(a, r))
	assert.False(t, policy.CanView(b, r))
}

func TestCanModify(t *testing.T) {
	author := newUser(models.TierPublic)
	editor := newUser(models.TierPublic)
	guest := newUser(models.TierPremium)
	stranger := newUser(models.TierPremium)
	r := newRecipe(author, true, false)
	addCollaborator(r, editor, true)
	addCollaborator(r, guest, false)

	assert.True(t, policy.CanModify(author, r))
	assert.True(t, policy.CanModify(editor, r))
	assert.False(t, policy.CanModify(guest, r))
	assert.False(t, policy.CanModify(stranger, r))
	assert.False(t, policy.CanModify(nil, r))
}

func TestCanDelete_OnlyPrimaryAuthor(t *testing.T) {
	author := newUser(models.TierPublic)
	editor := newUser(models.TierPremium)
	r := newRecipe(author, true, true)
	addCollaborator(r, editor, true)

	assert.True(t, policy.CanDelete(author, r))
	assert.False(t, policy.CanDelete(editor, r))
	assert.False(t, policy.CanDelete(nil, r))
	assert.False(t, policy.CanManageCollaborators(editor, r))
	assert.True(t, policy.CanManageCollaborators(author, r))
}

func TestNilRecipe(t *testing.T) {
	u := newUser(models.TierPremium)

	assert.False(t, policy.CanView(u, nil))
	assert.False(t, policy.CanModify(u, nil))
	assert.False(t, policy.CanDelete(u, nil))
}
