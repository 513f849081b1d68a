package dto

import (
	"strings"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
)

// LoginForm is posted by both login pages. Missing fields are reported by
// the login flow itself so the terms check always comes first.
type LoginForm struct {
	Email      string `form:"email" validate:"omitempty,email,max=254"`
	Password   string `form:"password" validate:"max=128"`
	AgreeTerms bool   `form:"agree"`
	RememberMe bool   `form:"remember"`
}

// Validate checks field formats.
func (f *LoginForm) Validate() error {
	f.Email = strings.TrimSpace(f.Email)
	return validate.Struct(f)
}

// Credentials converts the form.
func (f LoginForm) Credentials() domain.Credentials {
	return domain.Credentials{
		Email:      f.Email,
		Password:   f.Password,
		AgreeTerms: f.AgreeTerms,
		RememberMe: f.RememberMe,
	}
}
