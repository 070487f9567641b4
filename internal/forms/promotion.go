package forms

import (
	"strings"
	"time"
)

// PromotionForm is the salesman promotion create and edit form
type PromotionForm struct {
	Code            string    `json:"code" validate:"required,promocode"`
	Name            string    `json:"name" validate:"required,max=255"`
	Description     string    `json:"description" validate:"max=1000"`
	DiscountPercent int       `json:"discountPercent" validate:"gte=1,lte=100"`
	StartsAt        time.Time `json:"startsAt" validate:"required"`
	EndsAt          time.Time `json:"endsAt" validate:"required,gtfield=StartsAt"`
	IsActive        bool      `json:"isActive"`
}

// Normalize upper-cases the code and trims text fields
func (f *PromotionForm) Normalize() {
	f.Code = strings.ToUpper(trim(f.Code))
	f.Name = trim(f.Name)
	f.Description = trim(f.Description)
}
