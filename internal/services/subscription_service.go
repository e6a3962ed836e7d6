package services

import (
	"context"
	"time"

	"github.com/ahmetcoskunkizilkaya/cookshare/internal/dto"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionService keeps each user's paid periods. Every query is scoped
// to the owning user; other users' rows look like missing rows.
type SubscriptionService struct {
	db *gorm.DB
}

func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{db: db}
}

func (s *SubscriptionService) List(ctx context.Context, userID uuid.UUID) ([]models.Subscription, error) {
	subs := []models.Subscription{}
	if err := s.db.WithContext(ctx).Scopes(ownedBy(userID)).Order("created_at, id").Find(&subs).Error; err != nil {
		return nil, classify("list subscriptions", err)
	}
	return subs, nil
}

func (s *SubscriptionService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Subscription, error) {
	var sub models.Subscription
	if err := s.db.WithContext(ctx).Scopes(ownedBy(userID)).First(&sub, "id = ?", id).Error; err != nil {
		return nil, classify("get subscription", err)
	}
	return &sub, nil
}

func (s *SubscriptionService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateSubscriptionRequest) (*models.Subscription, error) {
	if req.StartsAt == nil {
		return nil, invalid("starts_at", "is required")
	}
	if req.EndsAt == nil {
		return nil, invalid("ends_at", "is required")
	}
	if req.Amount == nil {
		return nil, invalid("amount", "is required")
	}
	if err := validatePeriod(*req.StartsAt, *req.EndsAt, *req.Amount); err != nil {
		return nil, err
	}

	sub := models.Subscription{
		ID:       uuid.New(),
		UserID:   userID,
		StartsAt: req.StartsAt.UTC(),
		EndsAt:   req.EndsAt.UTC(),
		Amount:   *req.Amount,
	}
	if err := s.db.WithContext(ctx).Create(&sub).Error; err != nil {
		return nil, classify("create subscription", err)
	}
	return &sub, nil
}

// Update re-validates the merged period so a partial update cannot leave the
// end before the start.
func (s *SubscriptionService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateSubscriptionRequest) (*models.Subscription, error) {
	sub, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.StartsAt != nil {
		sub.StartsAt = req.StartsAt.UTC()
		updates["starts_at"] = sub.StartsAt
	}
	if req.EndsAt != nil {
		sub.EndsAt = req.EndsAt.UTC()
		updates["ends_at"] = sub.EndsAt
	}
	if req.Amount != nil {
		sub.Amount = *req.Amount
		updates["amount"] = sub.Amount
	}
	if len(updates) == 0 {
		return sub, nil
	}
	if err := validatePeriod(sub.StartsAt, sub.EndsAt, sub.Amount); err != nil {
		return nil, err
	}

	res := s.db.WithContext(ctx).Model(&models.Subscription{}).Scopes(ownedBy(userID)).Where("id = ?", id).Updates(updates)
	if err := affected("update subscription", res); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubscriptionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Scopes(ownedBy(userID)).Where("id = ?", id).Delete(&models.Subscription{})
	return affected("delete subscription", res)
}

func validatePeriod(start, end time.Time, amount float64) error {
	if !end.After(start) {
		return invalid("ends_at", "must be after starts_at")
	}
	if amount < 0 {
		return invalid("amount", "must not be negative")
	}
	return nil
}

// ownedBy returns a GORM scope that filters by user_id.
func ownedBy(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
