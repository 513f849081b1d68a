package dto

import (
	"strings"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
)

// SupplierForm is the add/edit supplier form.
type SupplierForm struct {
	Name     string `form:"name" validate:"max=120"`
	Email    string `form:"email" validate:"omitempty,email,max=254"`
	Phone    string `form:"phone" validate:"max=32"`
	Address  string `form:"address" validate:"max=255"`
	Status   string `form:"status" validate:"omitempty,oneof=active suspended"`
	Password string `form:"password" validate:"max=128"`
}

// Validate checks field formats.
func (f *SupplierForm) Validate() error {
	f.Email = strings.TrimSpace(f.Email)
	return validate.Struct(f)
}

// Input converts the form.
func (f SupplierForm) Input() domain.SupplierInput {
	return domain.SupplierInput{
		Name:     f.Name,
		Email:    f.Email,
		Phone:    f.Phone,
		Address:  f.Address,
		Status:   domain.SupplierStatus(f.Status),
		Password: f.Password,
	}
}

// SupplierFormFrom pre-fills the edit form without the password.
func SupplierFormFrom(s domain.Supplier) SupplierForm {
	return SupplierForm{
		Name:    s.Name,
		Email:   s.Email,
		Phone:   s.Phone,
		Address: s.Address,
		Status:  string(s.Status),
	}
}
