package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrors(t *testing.T) {
	t.Run("validation-err", func(t *testing.T) {
		err := NewValidationErr("goal_text is required")
		assert.Equal(t, "goal_text is required", err.Error())

		var target *ValidationErr
		assert.True(t, errors.As(error(err), &target))
	})

	t.Run("external-service-err-carries-quota", func(t *testing.T) {
		err := NewExternalServiceErr("insufficient_quota", true)

		var target *ExternalServiceErr
		assert.True(t, errors.As(error(err), &target))
		assert.True(t, target.Quota)
	})

	t.Run("wrapped-errors-still-match", func(t *testing.T) {
		wrapped := fmt.Errorf("calling model: %w", NewMalformedResponseErr("not json"))

		var target *MalformedResponseErr
		assert.True(t, errors.As(wrapped, &target))
		assert.Equal(t, "not json", target.Error())
	})

	t.Run("not-configured-sentinel", func(t *testing.T) {
		wrapped := fmt.Errorf("embed: %w", ErrNotConfigured)
		assert.ErrorIs(t, wrapped, ErrNotConfigured)
	})
}
