package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hadiniaraki/checkout-form/internal/auth"
	"github.com/hadiniaraki/checkout-form/internal/storage"
	"github.com/hadiniaraki/checkout-form/internal/storage/postgres"
)

type stubOrderGetter struct {
	orders []postgres.Order
	err    error
}

func (s *stubOrderGetter) GetOrders(_ context.Context, _ string) ([]postgres.Order, error) {
	return s.orders, s.err
}

func TestGetOrders(t *testing.T) {
	token, err := auth.BuildJWTString("alice")
	require.NoError(t, err)

	getter := &stubOrderGetter{orders: []postgres.Order{
		{
			Number:     "7b1e6fc4-2d44-4d1c-8f0e-15e6f8b7a001",
			Amount:     42,
			Status:     "NEW",
			UserType:   "corporate",
			NationalID: "12345678906",
			UploadedAt: time.Now(),
		},
	}}

	r := httptest.NewRequest(http.MethodGet, "/api/user/orders", nil)
	r.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	GetOrdersHandle(getter)(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []postgres.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "12345678906", got[0].NationalID)
}

func TestGetOrders_Empty(t *testing.T) {
	token, err := auth.BuildJWTString("alice")
	require.NoError(t, err)

	getter := &stubOrderGetter{err: storage.ErrNoOrders}

	r := httptest.NewRequest(http.MethodGet, "/api/user/orders", nil)
	r.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	GetOrdersHandle(getter)(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
