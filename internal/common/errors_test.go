package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewUserError("could not save your session", cause)

	assert.Equal(t, "could not save your session: disk full", err.Error())
	assert.ErrorIs(t, err, cause)

	var userErr *UserError
	assert.ErrorAs(t, err, &userErr)
	assert.Equal(t, "could not save your session", userErr.UserMessage)
}

func TestUserError_NoCause(t *testing.T) {
	err := NewUserError("nothing to report", nil)
	assert.Equal(t, "nothing to report", err.Error())
}

func TestSentinelWrapping(t *testing.T) {
	wrapped := NewUserError("category missing", ErrUnknownCategory)
	assert.ErrorIs(t, wrapped, ErrUnknownCategory)
}
