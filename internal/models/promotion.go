package models

import (
	"errors"
	"time"
)

// ErrDuplicatePromotionCode is returned when another promotion already stores the code
var ErrDuplicatePromotionCode = errors.New("promotion code already exists")

// Promotion is a salesman's discount campaign draft stored locally
type Promotion struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DiscountPercent int       `json:"discountPercent"`
	StartsAt        time.Time `json:"startsAt"`
	EndsAt          time.Time `json:"endsAt"`
	IsActive        bool      `json:"isActive"`
	CreatedBy       string    `json:"createdBy"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// PromotionListItem is a promotion row in the salesman list
type PromotionListItem struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	DiscountPercent int       `json:"discountPercent"`
	StartsAt        time.Time `json:"startsAt"`
	EndsAt          time.Time `json:"endsAt"`
	IsActive        bool      `json:"isActive"`
}
