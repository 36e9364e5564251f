package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputError(t *testing.T) {
	err := NewInputError("text is empty")

	assert.Equal(t, http.StatusUnprocessableEntity, err.Code)
	assert.True(t, IsInputError(err))
	assert.False(t, IsOracleError(err))
	assert.Equal(t, "Input text is not extractable: text is empty", err.Error())
}

func TestOracleError(t *testing.T) {
	err := NewOracleError("all models exhausted")

	assert.Equal(t, http.StatusBadGateway, err.Code)
	assert.True(t, IsOracleError(err))
	assert.False(t, IsInputError(err))
}

func TestErrorClassificationThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("parse failed: %w", NewInputError("too short"))

	assert.True(t, IsInputError(wrapped))
	assert.False(t, IsInputError(errors.New("plain error")))
	assert.False(t, IsInputError(nil))
}

func TestErrorMessageWithoutDetail(t *testing.T) {
	err := NewBadRequestError("missing field")
	assert.Equal(t, "missing field", err.Error())
}
