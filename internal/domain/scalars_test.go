package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountUnmarshal(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		raw      string
		expected float64
		wantErr  bool
	}{
		{raw: `50000`, expected: 50000},
		{raw: `"50000"`, expected: 50000},
		{raw: `"50,000.5"`, expected: 50000.5},
		{raw: `""`, expected: 0},
		{raw: `null`, expected: 0},
		{raw: `"fifty"`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			var a Amount
			err := json.Unmarshal([]byte(tc.raw), &a)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, a.Float64())
		})
	}
}

func TestTimestampUnmarshal(t *testing.T) {
	t.Parallel()

	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-01T08:30:00.000Z"`), &ts))
	assert.Equal(t, time.Date(2025, 3, 1, 8, 30, 0, 0, time.UTC), ts.Time)

	require.NoError(t, json.Unmarshal([]byte(`"2025-03-01"`), &ts))
	assert.Equal(t, 1, ts.Day())

	require.NoError(t, json.Unmarshal([]byte(`""`), &ts))
	assert.True(t, ts.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}

func TestRefUnmarshal(t *testing.T) {
	t.Parallel()

	var booking Booking
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"b1","user_id":"u1","booking_status":"pending"}`), &booking))
	assert.Equal(t, "u1", booking.User.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"_id":"b2","user_id":{"_id":"u2","full_name":"Amina Ali"}}`), &booking))
	assert.Equal(t, Ref{ID: "u2", Label: "Amina Ali"}, booking.User)
}

func TestStatusParsing(t *testing.T) {
	t.Parallel()

	s, err := ParseBookingStatus("approved")
	require.NoError(t, err)
	assert.Equal(t, BookingStatusApproved, s)
	_, err = ParseBookingStatus("APPROVED")
	assert.Error(t, err)

	_, err = ParseUserStatus("deleted")
	assert.Error(t, err)

	_, err = ParseSupplierStatus("suspended")
	assert.NoError(t, err)
}

func TestUserStatusTransitions(t *testing.T) {
	t.Parallel()

	assert.True(t, UserStatusPending.CanTransition(UserStatusActive))
	assert.True(t, UserStatusPending.CanTransition(UserStatusRejected))
	assert.False(t, UserStatusPending.CanTransition(UserStatusSuspended))
	assert.True(t, UserStatusActive.CanTransition(UserStatusSuspended))
	assert.True(t, UserStatusRejected.CanTransition(UserStatusActive))
	assert.False(t, UserStatusRejected.CanTransition(UserStatusSuspended))
}
