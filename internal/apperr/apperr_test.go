package apperr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := Invalid("amount", "must be greater than %d", 0)

	assert.Equal(t, "amount: must be greater than 0", err.Error())
	assert.True(t, IsValidation(fmt.Errorf("create transaction: %w", err)))
	assert.False(t, IsValidation(ErrNotFound))
}

func TestValidationError_NoField(t *testing.T) {
	err := &ValidationError{Message: "body required"}
	assert.Equal(t, "body required", err.Error())
}
