package orders

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hadiniaraki/checkout-form/internal/auth"
	"github.com/hadiniaraki/checkout-form/internal/storage"
)

type stubOrderCreator struct {
	login  string
	number string
	amount float64
	err    error
}

func (s *stubOrderCreator) CreateOrder(_ context.Context, login, orderNumber string, amount float64) error {
	s.login = login
	s.number = orderNumber
	s.amount = amount
	return s.err
}

func createOrder(t *testing.T, creator *stubOrderCreator, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodPost, "/api/user/orders", strings.NewReader(body))
	if token != "" {
		r.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	CreateOrderHandle(creator)(w, r)
	return w
}

func TestCreateOrder(t *testing.T) {
	token, err := auth.BuildJWTString("alice")
	require.NoError(t, err)

	creator := &stubOrderCreator{}
	w := createOrder(t, creator, token, `{"amount": 99.5}`)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "alice", creator.login)
	assert.Equal(t, 99.5, creator.amount)

	// response body is the issued order number
	number, err := uuid.Parse(w.Body.String())
	require.NoError(t, err)
	assert.Equal(t, number.String(), creator.number)
}

func TestCreateOrder_NoBillingProfile(t *testing.T) {
	token, err := auth.BuildJWTString("alice")
	require.NoError(t, err)

	creator := &stubOrderCreator{err: storage.ErrNoBillingProfile}
	w := createOrder(t, creator, token, `{"amount": 10}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateOrder_BadRequest(t *testing.T) {
	token, err := auth.BuildJWTString("alice")
	require.NoError(t, err)

	w := createOrder(t, &stubOrderCreator{}, token, `{"amount": -1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = createOrder(t, &stubOrderCreator{}, token, `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrder_Unauthorized(t *testing.T) {
	w := createOrder(t, &stubOrderCreator{}, "", `{"amount": 10}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
