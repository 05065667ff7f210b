package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"trivia_backend/internal/apperr"
)

func TestError_HTTPStatusCode(t *testing.T) {
	tests := map[string]struct {
		code apperr.Code
		want int
	}{
		"invalid argument": {code: apperr.CodeInvalidArgument, want: http.StatusBadRequest},
		"not found":        {code: apperr.CodeNotFound, want: http.StatusNotFound},
		"already exists":   {code: apperr.CodeAlreadyExists, want: http.StatusConflict},
		"unauthenticated":  {code: apperr.CodeUnauthenticated, want: http.StatusUnauthorized},
		"internal":         {code: apperr.CodeInternal, want: http.StatusInternalServerError},
		"unknown code":     {code: apperr.Code(99), want: http.StatusInternalServerError},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperr.New(tt.code).HTTPStatusCode())
		})
	}
}

func TestConvert(t *testing.T) {
	sentinel := errors.New("boom")

	e := apperr.Convert(sentinel)
	assert.Equal(t, apperr.CodeInternal, e.Code)
	assert.ErrorIs(t, e, sentinel)

	nf := apperr.New(apperr.CodeNotFound, apperr.WithMessage("user not found"), apperr.WithCause(sentinel))
	wrapped := fmt.Errorf("handler: %w", nf)

	got := apperr.Convert(wrapped)
	assert.Same(t, nf, got)
	assert.Equal(t, "user not found", got.Message)
	assert.ErrorIs(t, wrapped, sentinel)
	assert.True(t, apperr.Is(wrapped, apperr.CodeNotFound))
	assert.False(t, apperr.Is(wrapped, apperr.CodeInternal))
}

func TestNew_DefaultMessage(t *testing.T) {
	e := apperr.New(apperr.CodeAlreadyExists)
	assert.Equal(t, "already exists", e.Message)

	e = apperr.New(apperr.CodeInvalidArgument, apperr.WithMessagef("%s is required", "username"))
	assert.Equal(t, "username is required", e.Message)
	assert.Contains(t, e.Error(), "username is required")
}
