package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"not found", NotFound("patient", nil), http.StatusNotFound},
		{"validation", Validation("birth date is required", nil), http.StatusBadRequest},
		{"foreign key", ForeignKey("doctor", nil), http.StatusUnprocessableEntity},
		{"conflict", Conflict("patient has appointments", nil), http.StatusConflict},
		{"internal", Internal(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("no rows")
	err := NotFound("appointment", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "appointment not found: no rows", err.Error())
}

func TestIsCodeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("failed to schedule appointment: %w", ForeignKey("patient", nil))

	assert.True(t, IsForeignKey(err))
	assert.False(t, IsNotFound(err))
	assert.False(t, IsCode(errors.New("plain"), ErrForeignKey))
}
