package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type statusForm struct {
	Status string `validate:"omitempty,oneof=Lead Prospect Customer Inactive"`
	Price  *float64
}

func TestValidate_Passes(t *testing.T) {
	err := Validate(registerForm{Email: "alice@example.com", Password: "secret1"})
	assert.NoError(t, err)
}

func TestValidate_RequiredAndEmail(t *testing.T) {
	err := Validate(registerForm{Email: "not-an-email"})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)

	fields := valErr.Fields()
	assert.Equal(t, "must be a valid email address", fields["Email"])
	assert.Equal(t, "is required", fields["Password"])

	msg := valErr.Error()
	assert.Contains(t, msg, "field 'Email'")
	assert.Contains(t, msg, "field 'Password'")
}

func TestValidate_MinParam(t *testing.T) {
	err := Validate(registerForm{Email: "alice@example.com", Password: "abc"})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "must be at least 6 characters", valErr.Fields()["Password"])
}

func TestValidate_OneOf(t *testing.T) {
	assert.NoError(t, Validate(statusForm{Status: "Customer"}))
	assert.NoError(t, Validate(statusForm{}), "omitempty skips the empty value")

	err := Validate(statusForm{Status: "VIP"})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "must be one of: Lead Prospect Customer Inactive", valErr.Fields()["Status"])
}
