package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindConflict, KindOf(Conflict("duplicate")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("patient")))
	assert.Equal(t, KindUnauthorized, KindOf(Unauthorized("nope")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))

	wrapped := fmt.Errorf("context: %w", NotFound("patient"))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "patient not found", Message(NotFound("patient")))
	assert.Equal(t, "internal server error", Message(errors.New("plain")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("failed to create patient", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}
