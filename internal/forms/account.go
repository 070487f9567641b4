package forms

import "github.com/edustore/dashboard/internal/models"

// LoginForm is the sign-in form
type LoginForm struct {
	LoginKey string `json:"loginKey" validate:"required"`
	Password string `json:"password" validate:"min=6"`
	DeviceID string `json:"deviceId"`
	Redirect string `json:"redirect"`
}

// Normalize trims the login key
func (f *LoginForm) Normalize() {
	f.LoginKey = trim(f.LoginKey)
}

// Request converts the form into the platform request body
func (f LoginForm) Request() models.LoginRequest {
	return models.LoginRequest{
		LoginKey: f.LoginKey,
		Password: f.Password,
		DeviceID: f.DeviceID,
	}
}
