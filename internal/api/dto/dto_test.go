package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffFormInput(t *testing.T) {
	t.Parallel()

	form := StaffForm{Name: "Jane", Email: " jane@x.com ", Salary: "50,000", Address: "Mombasa", Category: "Deckhand"}
	require.NoError(t, form.Validate())
	in, err := form.Input()
	require.NoError(t, err)
	require.NotNil(t, in.Salary)
	assert.Equal(t, 50000.0, *in.Salary)
	assert.Equal(t, "jane@x.com", in.Email)

	form.Salary = "0"
	in, err = form.Input()
	require.NoError(t, err)
	require.NotNil(t, in.Salary)
	assert.Zero(t, *in.Salary)

	form.Salary = " "
	in, err = form.Input()
	require.NoError(t, err)
	assert.Nil(t, in.Salary)

	for _, raw := range []string{"lots", "-5", "NaN", "Inf", "-Inf", "1e400"} {
		form.Salary = raw
		_, err = form.Input()
		assert.ErrorIs(t, err, ErrInvalidSalary, raw)
	}
}

func TestValidationMessages(t *testing.T) {
	t.Parallel()

	login := LoginForm{Email: "not-an-email"}
	err := login.Validate()
	require.Error(t, err)
	assert.Equal(t, "Enter a valid email address.", Message(err))

	status := UserStatusForm{Status: "deleted"}
	err = status.Validate()
	require.Error(t, err)
	assert.Equal(t, "Status must be one of: pending active suspended rejected.", Message(err))

	supplier := SupplierForm{Name: "Bahari", Status: "suspended"}
	assert.NoError(t, supplier.Validate())
}
