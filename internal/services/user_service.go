package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/ahmetcoskunkizilkaya/cookshare/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 8

// publicUserColumns never includes the password hash.
var publicUserColumns = []string{"id", "name", "email", "tier", "created_at", "updated_at"}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) List(ctx context.Context) ([]dto.UserResponse, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Select(publicUserColumns).Order("created_at, id").Find(&users).Error; err != nil {
		return nil, classify("list users", err)
	}

	out := make([]dto.UserResponse, len(users))
	for i := range users {
		out[i] = dto.NewUserResponse(&users[i])
	}
	return out, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.Principal(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Principal loads a user for authorization decisions. The password column is
// not read.
func (s *UserService) Principal(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Select(publicUserColumns).First(&user, "id = ?", id).Error; err != nil {
		return nil, classify("get user", err)
	}
	return &user, nil
}

func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalid("name", "is required")
	}
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}
	tier := models.TierPublic
	if req.Tier != "" {
		tier = models.Tier(req.Tier)
		if !tier.Valid() {
			return nil, invalid("tier", "must be public or premium")
		}
	}

	if err := s.ensureEmailFree(ctx, email, uuid.Nil); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		Password: string(hash),
		Tier:     tier,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, classify("create user", err)
	}

	resp := dto.NewUserResponse(&user)
	return &resp, nil
}

// Update applies only the fields present in req. A supplied password is
// hashed before it is stored; an absent one leaves the hash untouched.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	updates := map[string]interface{}{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, invalid("name", "must not be empty")
		}
		updates["name"] = name
	}
	if req.Email != nil {
		email, err := normalizeEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		if err := s.ensureEmailFree(ctx, email, id); err != nil {
			return nil, err
		}
		updates["email"] = email
	}
	if req.Tier != nil {
		tier := models.Tier(*req.Tier)
		if !tier.Valid() {
			return nil, invalid("tier", "must be public or premium")
		}
		updates["tier"] = tier
	}
	if req.Password != nil {
		if err := validatePassword(*req.Password); err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updates["password"] = string(hash)
	}

	if len(updates) == 0 {
		return s.Get(ctx, id)
	}

	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if err := affected("update user", res); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes the user. Sessions, collaborator links, ratings and
// subscriptions cascade; authored recipes block the delete.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	var authored int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("author_id = ?", id).Count(&authored).Error; err != nil {
		return classify("count authored recipes", err)
	}
	if authored > 0 {
		return fmt.Errorf("%w: user is the primary author of %d recipes", ErrConflict, authored)
	}

	res := s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	return affected("delete user", res)
}

func (s *UserService) ensureEmailFree(ctx context.Context, email string, self uuid.UUID) error {
	var existing models.User
	err := s.db.WithContext(ctx).Select("id").Where("email = ?", email).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	case err != nil:
		return classify("check email", err)
	case existing.ID == self:
		return nil
	default:
		return fmt.Errorf("%w: email already registered", ErrConflict)
	}
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", invalid("email", "is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", invalid("email", "is not a valid address")
	}
	return email, nil
}

func validatePassword(password string) error {
	if password == "" {
		return invalid("password", "is required")
	}
	if len(password) < minPasswordLength {
		return invalid("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}
	return nil
}
