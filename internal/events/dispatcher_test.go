package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eltonkaiton/mombasa-admin/internal/domain"
)

func TestPublishRunsEveryHandler(t *testing.T) {
	t.Parallel()

	dispatcher := NewInMemoryDispatcher()
	var typed, all int
	dispatcher.Subscribe(EventStaffDeleted, func(context.Context, Event) error {
		typed++
		return errors.New("audit store down")
	})
	dispatcher.SubscribeAll(func(context.Context, Event) error {
		all++
		return nil
	})

	err := dispatcher.Publish(context.Background(), New(EventStaffDeleted, domain.Principal{ID: "a1"}, "s1", nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audit store down")
	assert.Equal(t, 1, typed)
	assert.Equal(t, 1, all)

	require.NoError(t, dispatcher.Publish(context.Background(), New(EventLogin, domain.Principal{}, "", nil)))
	assert.Equal(t, 1, typed)
	assert.Equal(t, 2, all)
}

func TestNewStampsEvent(t *testing.T) {
	t.Parallel()

	principal := domain.Principal{ID: "a1", Email: "admin@x.com", Role: domain.RoleAdmin}
	event := New(EventUserStatusChanged, principal, "u1", StatusChangedPayload{From: "pending", To: "active"})

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "u1", event.SubjectID)
	assert.Equal(t, Actor{ID: "a1", Email: "admin@x.com", Role: domain.RoleAdmin}, event.Actor)
	assert.False(t, event.Timestamp.IsZero())
}
