package service

import (
	"context"
	"strings"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
	"github.com/eltonkaiton/mombasa-admin/internal/events"
	"github.com/eltonkaiton/mombasa-admin/internal/view"
	apperrors "github.com/eltonkaiton/mombasa-admin/pkg/util/errorutil"
)

// StaffBackend is the part of the backend behind the staff and category pages.
type StaffBackend interface {
	ListStaff(ctx context.Context, token string) ([]domain.StaffMember, error)
	GetStaff(ctx context.Context, token, id string) (domain.StaffMember, error)
	AddStaff(ctx context.Context, token string, in domain.StaffInput) error
	UpdateStaff(ctx context.Context, token, id string, in domain.StaffInput) error
	DeleteStaff(ctx context.Context, token, id string) error
	ListCategories(ctx context.Context, token string) ([]domain.Category, error)
	AddCategory(ctx context.Context, token, name string) error
}

// StaffSearchFields are the columns the staff search box matches.
func StaffSearchFields(s domain.StaffMember) []string {
	return []string{s.Name, s.Email, s.Address, s.Category}
}

func categorySearchFields(c domain.Category) []string {
	return []string{c.Label()}
}

// StaffService manages staff members and their categories.
type StaffService struct {
	base
	backend StaffBackend
}

// NewStaffService constructs the service.
func NewStaffService(backend StaffBackend, deps Dependencies) *StaffService {
	return &StaffService{base: newBase(deps), backend: backend}
}

// ListPage loads the staff table filtered by search.
func (s *StaffService) ListPage(ctx context.Context, caller Caller, search string) (*view.List[domain.StaffMember], error) {
	staff, err := s.backend.ListStaff(ctx, caller.Token)
	if err != nil {
		msg, err := s.pageError("list_staff", err, "No staff found.", "Error fetching staff. Please try again later.")
		page := view.Failed[domain.StaffMember](msg)
		page.Search = search
		return page, err
	}
	page := view.NewList(staff, StaffSearchFields)
	page.Search = search
	return page, nil
}

// All returns every staff member, for exports.
func (s *StaffService) All(ctx context.Context, caller Caller) ([]domain.StaffMember, error) {
	staff, err := s.backend.ListStaff(ctx, caller.Token)
	if err != nil {
		return nil, s.failure("list_staff", err, "No staff found.", "Error fetching staff. Please try again later.")
	}
	return staff, nil
}

// Get loads one staff member for the edit form.
func (s *StaffService) Get(ctx context.Context, caller Caller, id string) (domain.StaffMember, error) {
	staff, err := s.backend.GetStaff(ctx, caller.Token, id)
	if err != nil {
		return domain.StaffMember{}, s.failure("get_staff", err, "Staff not found.", "Error fetching staff data.")
	}
	return staff, nil
}

// Categories loads the category choices of the staff forms.
func (s *StaffService) Categories(ctx context.Context, caller Caller) ([]domain.Category, error) {
	categories, err := s.backend.ListCategories(ctx, caller.Token)
	if err != nil {
		return nil, s.failure("list_categories", err, "No categories found.", "Error fetching categories.")
	}
	return categories, nil
}

func normalizeStaff(in domain.StaffInput) domain.StaffInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Address = strings.TrimSpace(in.Address)
	in.Category = strings.TrimSpace(in.Category)
	return in
}

// Create adds a staff member. Every field is required.
func (s *StaffService) Create(ctx context.Context, caller Caller, in domain.StaffInput) error {
	in = normalizeStaff(in)
	if blank(in.Name, in.Email, in.Password, in.Address, in.Category) || in.Salary == nil {
		return apperrors.NewValidationError(msgFillAllFields, nil)
	}
	if err := s.backend.AddStaff(ctx, caller.Token, in); err != nil {
		return s.failure("add_staff", err, "Failed to add staff", "Server error. Could not add staff.")
	}
	s.publish(ctx, caller, events.EventStaffCreated, "", events.RecordPayload{Name: in.Name, Email: in.Email})
	return nil
}

// Update saves the edit form. The password is only sent when filled in.
func (s *StaffService) Update(ctx context.Context, caller Caller, id string, in domain.StaffInput) error {
	in = normalizeStaff(in)
	if blank(in.Name, in.Email, in.Address, in.Category) || in.Salary == nil {
		return apperrors.NewValidationError(msgFillAllFields, nil)
	}
	if err := s.backend.UpdateStaff(ctx, caller.Token, id, in); err != nil {
		return s.failure("update_staff", err, "Update failed.", "Error updating staff.")
	}
	s.publish(ctx, caller, events.EventStaffUpdated, id, events.RecordPayload{Name: in.Name, Email: in.Email})
	return nil
}

// Delete removes the row from page and the record from the backend. The row
// comes back and page carries the error when the backend refuses.
func (s *StaffService) Delete(ctx context.Context, caller Caller, page *view.List[domain.StaffMember], id string) error {
	removed, _ := page.Find(id)
	restore := page.Remove(id)
	if err := s.backend.DeleteStaff(ctx, caller.Token, id); err != nil {
		restore()
		err = s.failure("delete_staff", err, "Failed to delete staff.", "Error deleting staff. Please try again later.")
		if !apperrors.IsUnauthorized(err) {
			page.Error = Message(err)
		}
		return err
	}
	s.publish(ctx, caller, events.EventStaffDeleted, id, events.RecordPayload{Name: removed.Name, Email: removed.Email})
	return nil
}

// CategoryPage loads the category table.
func (s *StaffService) CategoryPage(ctx context.Context, caller Caller) (*view.List[domain.Category], error) {
	categories, err := s.backend.ListCategories(ctx, caller.Token)
	if err != nil {
		msg, err := s.pageError("list_categories", err, "No categories found.", "Error fetching categories.")
		return view.Failed[domain.Category](msg), err
	}
	return view.NewList(categories, categorySearchFields), nil
}

// CreateCategory adds a category.
func (s *StaffService) CreateCategory(ctx context.Context, caller Caller, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.NewValidationError("Category name is required.", nil)
	}
	if err := s.backend.AddCategory(ctx, caller.Token, name); err != nil {
		return s.failure("add_category", err, "Failed to add category.", "Error adding category.")
	}
	s.publish(ctx, caller, events.EventCategoryCreated, "", events.RecordPayload{Name: name})
	return nil
}
