package dto

import "time"

type CreateSubscriptionRequest struct {
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
	Amount   *float64   `json:"amount"`
}

type UpdateSubscriptionRequest struct {
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
	Amount   *float64   `json:"amount"`
}
