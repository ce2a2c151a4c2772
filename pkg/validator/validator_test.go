package validator_test

import (
	"testing"

	"stockroom/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uuidPayload struct {
	ID uuid.UUID `validate:"uuid_required"`
}

func TestUUIDRequired(t *testing.T) {
	errs := validator.ValidateStruct(&uuidPayload{})
	require.Len(t, errs, 1)
	assert.Equal(t, "uuid_required", errs[0].Tag)

	errs = validator.ValidateStruct(&uuidPayload{ID: uuid.New()})
	assert.Empty(t, errs)
}

type passwordPayload struct {
	Password string `validate:"strongpw"`
}

func TestStrongPassword(t *testing.T) {
	for _, weak := range []string{"alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
		errs := validator.ValidateStruct(&passwordPayload{Password: weak})
		assert.NotEmpty(t, errs, weak)
	}

	errs := validator.ValidateStruct(&passwordPayload{Password: "Password123"})
	assert.Empty(t, errs)
}

func TestErrorMessageNamesFieldAndTag(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
	}

	errs := validator.ValidateStruct(&payload{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message(), "Email")
	assert.Contains(t, errs[0].Message(), "required")
}
