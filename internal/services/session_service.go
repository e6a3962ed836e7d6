package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ahmetcoskunkizilkaya/cookshare/internal/config"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SessionService implements the NoSession -> Active -> Closed lifecycle.
type SessionService struct {
	db  *gorm.DB
	cfg *config.Config
	now func() time.Time

	dummyOnce sync.Once
	dummyHash []byte
}

func NewSessionService(db *gorm.DB, cfg *config.Config) *SessionService {
	return &SessionService{
		db:  db,
		cfg: cfg,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Login verifies the credentials and opens a new Active session. Missing
// fields are a ValidationError. Unknown email and wrong password both return
// ErrInvalidCredentials, and both pay for one bcrypt comparison.
func (s *SessionService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.TrimSpace(req.Email) == "" {
		return nil, invalid("email", "is required")
	}
	if req.Password == "" {
		return nil, invalid("password", "is required")
	}

	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", normalizeLogin(req.Email)).First(&user).Error
	if err != nil {
		if cerr := classify("find user", err); !errors.Is(cerr, ErrNotFound) {
			return nil, cerr
		}
		_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(req.Password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	session := models.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		StartedAt: s.now(),
	}
	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, classify("create session", err)
	}

	token, err := s.accessToken(&user, &session)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		SessionID:   session.ID,
		UserID:      user.ID,
		AccessToken: token,
	}, nil
}

// Logout closes an Active session. A session that is already Closed, or
// that never existed, yields ErrNotFound and is left untouched.
func (s *SessionService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("id = ? AND ended_at IS NULL", sessionID).
		Update("ended_at", s.now())
	return affected("close session", res)
}

// Active returns the session only while it is open.
func (s *SessionService) Active(ctx context.Context, sessionID uuid.UUID) (*models.Session, error) {
	var session models.Session
	err := s.db.WithContext(ctx).
		Where("id = ? AND ended_at IS NULL", sessionID).
		First(&session).Error
	if err != nil {
		return nil, classify("get active session", err)
	}
	return &session, nil
}

func (s *SessionService) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Session, error) {
	sessions := []models.Session{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("started_at, id").
		Find(&sessions).Error
	if err != nil {
		return nil, classify("list sessions", err)
	}
	return sessions, nil
}

// GetForUser hides sessions owned by someone else behind ErrNotFound.
func (s *SessionService) GetForUser(ctx context.Context, userID, sessionID uuid.UUID) (*models.Session, error) {
	var session models.Session
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", sessionID, userID).
		First(&session).Error
	if err != nil {
		return nil, classify("get session", err)
	}
	return &session, nil
}

// CloseForUser ends one of the user's Active sessions the same way Logout
// does. The record stays; a Closed or foreign session yields ErrNotFound.
func (s *SessionService) CloseForUser(ctx context.Context, userID, sessionID uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("id = ? AND user_id = ? AND ended_at IS NULL", sessionID, userID).
		Update("ended_at", s.now())
	return affected("close session", res)
}

func (s *SessionService) accessToken(user *models.User, session *models.Session) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": user.ID.String(),
		"sid": session.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

func (s *SessionService) dummy() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	})
	return s.dummyHash
}

func normalizeLogin(email string) string {
	e, err := normalizeEmail(email)
	if err != nil {
		return email
	}
	return e
}
