package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Abdurahmanit/GroupProject/marketplace-service/internal/domain/entity"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("conversation 9: %w", entity.ErrNotFound), http.StatusNotFound},
		{entity.ErrOfferNotPending, http.StatusConflict},
		{entity.ErrListingSold, http.StatusConflict},
		{entity.ErrEmptyMessageText, http.StatusBadRequest},
		{fmt.Errorf("%w: nope", entity.ErrForbidden), http.StatusForbidden},
		{errors.New("mongo is down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()

	writeError(rec, zap.NewNop(), "Op", errors.New("dial tcp 10.0.0.1:27017: refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.1")
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestIDParam(t *testing.T) {
	var got int64
	var gotErr error
	mux := chi.NewRouter()
	mux.Get("/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		got, gotErr = idParam(r, "id")
	})

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/things/42", nil))
	assert.NoError(t, gotErr)
	assert.Equal(t, int64(42), got)

	for _, bad := range []string{"0", "-3", "x"} {
		mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/things/"+bad, nil))
		assert.ErrorIs(t, gotErr, entity.ErrInvalidInput, bad)
	}
}

func TestDecodeJSON_Malformed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
	var dst sendTextRequest

	err := decodeJSON(req, &dst)

	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}
