package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deromanizer/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "numeral",
			Message: "is required",
		})
		assert.Equal(t, "validation failed: numeral: is required", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "numeral", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "numerals", Message: "too many items"})

		errorMsg := errs.Error()
		assert.Contains(t, errorMsg, "validation failed:")
		assert.Contains(t, errorMsg, "numeral: is required")
		assert.Contains(t, errorMsg, "numerals: too many items")
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	assert.True(t, errs.IsEmpty())

	errs.Add(validator.ValidationError{Field: "numeral", Message: "is required"})
	errs.Add(validator.ValidationError{Field: "numeral", Message: "is too long"})
	errs.Add(validator.ValidationError{Field: "lang", Message: "is unsupported"})

	assert.False(t, errs.IsEmpty())
	assert.True(t, errs.Has("numeral"))
	assert.False(t, errs.Has("missing"))
	assert.Equal(t, []string{"is required", "is too long"}, errs.Get("numeral"))
	assert.Nil(t, errs.Get("missing"))
	assert.Equal(t, []string{"numeral", "lang"}, errs.Fields())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("numeral", "XIV"),
			validator.MaxLenString("numeral", "XIV", 10),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("numeral", ""),
			validator.RequiredSlice("numerals", []string{}),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, []string{"numeral", "numerals"}, errs.Fields())
	})
}

func TestApplyFirst(t *testing.T) {
	calls := 0
	counting := func(ok bool) validator.Rule {
		return validator.Rule{
			Check: func() bool {
				calls++
				return ok
			},
			Error: validator.ValidationError{Field: fmt.Sprintf("rule%d", calls), Message: "failed"},
		}
	}

	t.Run("stops at first failure", func(t *testing.T) {
		calls = 0
		err := validator.ApplyFirst(counting(true), counting(false), counting(false))
		require.Error(t, err)
		assert.Equal(t, 2, calls)
		assert.Len(t, validator.ExtractValidationErrors(err), 1)
	})

	t.Run("returns nil when all pass", func(t *testing.T) {
		calls = 0
		assert.NoError(t, validator.ApplyFirst(counting(true), counting(true)))
		assert.Equal(t, 2, calls)
	})
}

func TestIsValidationError(t *testing.T) {
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("boom")))

	err := validator.Apply(validator.RequiredString("numeral", " "))
	assert.True(t, validator.IsValidationError(err))
	assert.True(t, validator.IsValidationError(fmt.Errorf("wrapped: %w", err)))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
}

func TestValidationErrors_IsValidationFailed(t *testing.T) {
	err := validator.ApplyFirst(validator.RomanNumeral("numeral", "IL"))
	require.Error(t, err)
	assert.ErrorIs(t, err, validator.ErrValidationFailed)
	assert.ErrorIs(t, fmt.Errorf("convert: %w", err), validator.ErrValidationFailed)

	assert.NotErrorIs(t, errors.New("validation failed"), validator.ErrValidationFailed)
	assert.NoError(t, validator.Apply(validator.RequiredString("numeral", "X")))
}
