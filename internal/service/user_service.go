package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
	"github.com/eltonkaiton/mombasa-admin/internal/events"
	"github.com/eltonkaiton/mombasa-admin/internal/view"
	apperrors "github.com/eltonkaiton/mombasa-admin/pkg/util/errorutil"
)

const msgUserStatusFailed = "Failed to update user status."

// UserBackend is the part of the backend behind the users tabs.
type UserBackend interface {
	ListUsers(ctx context.Context, token string, status domain.UserStatus) ([]domain.User, error)
	UpdateUserStatus(ctx context.Context, token, id string, status domain.UserStatus) error
	AddUser(ctx context.Context, token string, in domain.NewUser) error
}

// UserSearchFields are the columns the users search box matches.
func UserSearchFields(u domain.User) []string {
	return []string{u.FullName, u.Email}
}

// UsersPage is one users tab.
type UsersPage struct {
	Status domain.UserStatus
	List   *view.List[domain.User]
}

// Tabs lists the users tabs in display order.
func (p *UsersPage) Tabs() []domain.UserStatus {
	return domain.UserStatuses
}

// Actions are the transitions offered on every row of the tab.
func (p *UsersPage) Actions() []domain.UserAction {
	return p.Status.Actions()
}

// UserService manages customer accounts.
type UserService struct {
	base
	backend UserBackend
}

// NewUserService constructs the service.
func NewUserService(backend UserBackend, deps Dependencies) *UserService {
	return &UserService{base: newBase(deps), backend: backend}
}

// ListPage loads the users tab for status.
func (s *UserService) ListPage(ctx context.Context, caller Caller, status domain.UserStatus, search string) (*UsersPage, error) {
	page := &UsersPage{Status: status}
	users, err := s.backend.ListUsers(ctx, caller.Token, status)
	if err != nil {
		msg, err := s.pageError("list_users", err, "Failed to load users.", "Error fetching users. Please try again later.")
		page.List = view.Failed[domain.User](msg)
		page.List.Search = search
		return page, err
	}

	// Older backends ignore the status query.
	inTab := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.Status == status || u.Status == "" {
			inTab = append(inTab, u)
		}
	}
	page.List = view.NewList(inTab, UserSearchFields)
	page.List.Search = search
	return page, nil
}

// ChangeStatus moves a user out of the current tab. The row is removed
// before the backend call and put back when the call fails, leaving the
// error on the page.
func (s *UserService) ChangeStatus(ctx context.Context, caller Caller, page *UsersPage, id string, target domain.UserStatus) error {
	user, ok := page.List.Find(id)
	if !ok {
		err := apperrors.NewNotFound("user", map[string]any{"id": id})
		page.List.Error = "User not found."
		return err
	}
	from := user.Status
	if from == "" {
		from = page.Status
	}
	if !from.CanTransition(target) {
		err := apperrors.NewValidationError(fmt.Sprintf("A %s user cannot be moved to %s.", from, target), nil)
		page.List.Error = Message(err)
		return err
	}

	restore := page.List.Remove(id)
	err := s.backend.UpdateUserStatus(ctx, caller.Token, id, target)
	s.recordStatus("user", string(target), err == nil)
	if err != nil {
		restore()
		err = s.failure("update_user_status", err, msgUserStatusFailed, msgUserStatusFailed)
		if !apperrors.IsUnauthorized(err) {
			page.List.Error = msgUserStatusFailed
		}
		return err
	}

	s.publish(ctx, caller, events.EventUserStatusChanged, id, events.StatusChangedPayload{From: string(from), To: string(target)})
	return nil
}

// Create registers a customer account.
func (s *UserService) Create(ctx context.Context, caller Caller, in domain.NewUser) error {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	if blank(in.FullName, in.Email, in.Password) {
		return apperrors.NewValidationError("Please fill in all required fields.", nil)
	}
	if err := s.backend.AddUser(ctx, caller.Token, in); err != nil {
		return s.failure("add_user", err, "Failed to add user.", "Server error while adding user.")
	}
	s.publish(ctx, caller, events.EventUserCreated, "", events.RecordPayload{Name: in.FullName, Email: in.Email})
	return nil
}

// All returns the users in status, for exports.
func (s *UserService) All(ctx context.Context, caller Caller, status domain.UserStatus) ([]domain.User, error) {
	page, err := s.ListPage(ctx, caller, status, "")
	if err != nil {
		return nil, err
	}
	if page.List.Error != "" {
		return nil, apperrors.NewRejected(page.List.Error)
	}
	return page.List.Items, nil
}
