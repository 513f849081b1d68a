package domain

import "fmt"

// UserStatus represents lifecycle states for a ferry customer account.
type UserStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusRejected  UserStatus = "rejected"
)

// UserStatuses lists statuses in the order the users tabs are shown.
var UserStatuses = []UserStatus{UserStatusActive, UserStatusPending, UserStatusSuspended, UserStatusRejected}

// ParseUserStatus validates a raw status value.
func ParseUserStatus(raw string) (UserStatus, error) {
	for _, s := range UserStatuses {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown user status %q", raw)
}

// Title is the tab heading for the status.
func (s UserStatus) Title() string {
	switch s {
	case UserStatusActive:
		return "Active"
	case UserStatusPending:
		return "Pending"
	case UserStatusSuspended:
		return "Suspended"
	case UserStatusRejected:
		return "Rejected"
	}
	return string(s)
}

// UserAction is a status transition offered on a users tab.
type UserAction struct {
	Label  string
	Target UserStatus
	Style  string
}

// Actions returns the transitions available from s.
func (s UserStatus) Actions() []UserAction {
	switch s {
	case UserStatusActive:
		return []UserAction{{Label: "Suspend", Target: UserStatusSuspended, Style: "warning"}}
	case UserStatusPending:
		return []UserAction{
			{Label: "Approve", Target: UserStatusActive, Style: "success"},
			{Label: "Reject", Target: UserStatusRejected, Style: "danger"},
		}
	case UserStatusSuspended:
		return []UserAction{
			{Label: "Reactivate", Target: UserStatusActive, Style: "success"},
			{Label: "Reject Permanently", Target: UserStatusRejected, Style: "danger"},
		}
	case UserStatusRejected:
		return []UserAction{{Label: "Reactivate", Target: UserStatusActive, Style: "success"}}
	}
	return nil
}

// CanTransition reports whether the users tab for s offers target.
func (s UserStatus) CanTransition(target UserStatus) bool {
	for _, a := range s.Actions() {
		if a.Target == target {
			return true
		}
	}
	return false
}

// User is a registered ferry customer.
type User struct {
	ID        string     `json:"_id"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Status    UserStatus `json:"status"`
	CreatedAt Timestamp  `json:"created_at"`
}

func (u User) RecordID() string { return u.ID }

// NewUser is the payload for creating a customer account.
type NewUser struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}
