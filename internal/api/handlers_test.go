package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dvdgp9/gema8-go/internal/service"
)

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation maps to 400", fmt.Errorf("%w: text is required", service.ErrValidation), http.StatusBadRequest},
		{"insufficient credits maps to 402", service.ErrInsufficientCredits, http.StatusPaymentRequired},
		{"upstream maps to 502", fmt.Errorf("%w: timeout", service.ErrUpstream), http.StatusBadGateway},
		{"not found maps to 404", service.ErrNotFound, http.StatusNotFound},
		{"persistence maps to 500", fmt.Errorf("%w: disk full", service.ErrPersistence), http.StatusInternalServerError},
		{"unknown maps to 500", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondServiceError(rec, tt.err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestValidationDetailIsSurfaced(t *testing.T) {
	rec := httptest.NewRecorder()
	respondServiceError(rec, fmt.Errorf("%w: invalid language", service.ErrValidation))
	assert.Contains(t, rec.Body.String(), "invalid language")
}

func TestUpstreamDetailIsHidden(t *testing.T) {
	rec := httptest.NewRecorder()
	respondServiceError(rec, fmt.Errorf("%w: key=secret leaked", service.ErrUpstream))
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, isValidEmail("user@example.com"))
	assert.True(t, isValidEmail("a.b+tag@sub.domain.io"))
	assert.False(t, isValidEmail("no-at-sign"))
	assert.False(t, isValidEmail("two@@example.com"))
	assert.False(t, isValidEmail("spaces in@example.com"))
	assert.False(t, isValidEmail("user@nodot"))
}

func TestPagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 20, 0},
		{"explicit", "limit=5&offset=10", 5, 10},
		{"capped at 100", "limit=500", 20, 0},
		{"negative ignored", "limit=-1&offset=-5", 20, 0},
		{"garbage ignored", "limit=abc&offset=xyz", 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			limit, offset := pagination(req, 20)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
