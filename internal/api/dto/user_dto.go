package dto

import (
	"strings"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
)

// UserForm is the add user form.
type UserForm struct {
	FullName string `form:"full_name" validate:"max=120"`
	Email    string `form:"email" validate:"omitempty,email,max=254"`
	Password string `form:"password" validate:"max=128"`
	Phone    string `form:"phone" validate:"max=32"`
}

// Validate checks field formats.
func (f *UserForm) Validate() error {
	f.Email = strings.TrimSpace(f.Email)
	return validate.Struct(f)
}

// Input converts the form.
func (f UserForm) Input() domain.NewUser {
	return domain.NewUser{FullName: f.FullName, Email: f.Email, Password: f.Password, Phone: f.Phone}
}

// UserStatusForm is posted by the action buttons of a users tab.
type UserStatusForm struct {
	Status string `form:"status" validate:"required,oneof=pending active suspended rejected"`
	Tab    string `form:"tab" validate:"omitempty,oneof=pending active suspended rejected"`
	Search string `form:"q"`
}

// Validate checks field formats.
func (f *UserStatusForm) Validate() error {
	return validate.Struct(f)
}
