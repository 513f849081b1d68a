package dto

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
)

// ErrInvalidSalary is returned for a salary that is not a finite,
// non-negative number.
var ErrInvalidSalary = errors.New("Salary must be a number.")

// StaffForm is the add/edit staff form.
type StaffForm struct {
	Name     string `form:"name" validate:"max=120"`
	Email    string `form:"email" validate:"omitempty,email,max=254"`
	Password string `form:"password" validate:"max=128"`
	Salary   string `form:"salary" validate:"max=32"`
	Address  string `form:"address" validate:"max=255"`
	Category string `form:"category" validate:"max=120"`
}

// Validate checks field formats.
func (f *StaffForm) Validate() error {
	f.Email = strings.TrimSpace(f.Email)
	return validate.Struct(f)
}

// Input converts the form. Salary accepts grouping commas.
func (f StaffForm) Input() (domain.StaffInput, error) {
	in := domain.StaffInput{
		Name:     f.Name,
		Email:    f.Email,
		Password: f.Password,
		Address:  f.Address,
		Category: f.Category,
	}
	raw := strings.ReplaceAll(strings.TrimSpace(f.Salary), ",", "")
	if raw == "" {
		return in, nil
	}
	salary, err := strconv.ParseFloat(raw, 64)
	if err != nil || salary < 0 || math.IsNaN(salary) || math.IsInf(salary, 0) {
		return in, ErrInvalidSalary
	}
	in.Salary = &salary
	return in, nil
}

// StaffFormFrom pre-fills the edit form. The password is never echoed back.
func StaffFormFrom(s domain.StaffMember) StaffForm {
	salary := ""
	if s.Salary != 0 {
		salary = strconv.FormatFloat(s.Salary.Float64(), 'f', -1, 64)
	}
	return StaffForm{
		Name:     s.Name,
		Email:    s.Email,
		Salary:   salary,
		Address:  s.Address,
		Category: s.Category,
	}
}

// CategoryForm is the add category form.
type CategoryForm struct {
	Category string `form:"category" validate:"max=120"`
}

// Validate checks field formats.
func (f *CategoryForm) Validate() error {
	return validate.Struct(f)
}
