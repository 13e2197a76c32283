package api

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestValidatorRejectsBadInput(t *testing.T) {
	v := NewValidator()

	input := struct {
		Email  string `validate:"required,email"`
		Rating int    `validate:"min=1,max=5"`
	}{Email: "not-an-email", Rating: 9}

	err := v.Validate(&input)

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestValidatorAcceptsGoodInput(t *testing.T) {
	v := NewValidator()

	input := struct {
		Email  string `validate:"required,email"`
		Rating int    `validate:"min=1,max=5"`
	}{Email: "alice@example.com", Rating: 5}

	assert.NoError(t, v.Validate(&input))
}
