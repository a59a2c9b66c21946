package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viggothorell/portfolio/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all rules pass", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.LengthBetween("name", "Anna", 2, 80),
			validator.Email("email", "anna@example.com"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure in rule order", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.LengthBetween("name", "A", 2, 80),
			validator.Email("email", "bad"),
			validator.LengthBetween("message", "hi", 5, 2000),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 3)
		assert.Equal(t, "name", errs[0].Field)
		assert.Equal(t, "email", errs[1].Field)
		assert.Equal(t, "message", errs[2].Field)
		assert.Equal(t, []string{
			"validation.length_between",
			"validation.email",
			"validation.length_between",
		}, errs.Keys())
	})

	t.Run("no rules", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply())
	})
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	err := validator.Apply(validator.Email("email", "nope"))

	assert.True(t, validator.IsValidationError(err))
	assert.True(t, errors.Is(err, validator.ErrValidationFailed))
	assert.Contains(t, err.Error(), "email: must be a valid email address")

	wrapped := fmt.Errorf("contact: %w", err)
	errs := validator.ExtractValidationErrors(wrapped)
	require.NotNil(t, errs)
	assert.True(t, errs.Has("email"))
	assert.False(t, errs.Has("name"))

	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("other")))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("other")))
}

func TestWhen(t *testing.T) {
	t.Parallel()

	failing := validator.Email("email", "bad")

	assert.NoError(t, validator.Apply(validator.When(false, failing)))
	assert.Error(t, validator.Apply(validator.When(true, failing)))
}
