package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/hadiniaraki/checkout-form/internal/auth"
	"github.com/hadiniaraki/checkout-form/internal/storage"
)

type CreateOrderRequest struct {
	Amount float64 `json:"amount"`
}

type OrderCreator interface {
	CreateOrder(ctx context.Context, login, orderNumber string, amount float64) error
}

func CreateOrderHandle(orderCreator OrderCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "User not authorized", http.StatusUnauthorized)
			return
		}

		login := auth.GetUserID(authHeader)
		if login == "" {
			http.Error(w, "User not authorized", http.StatusUnauthorized)
			return
		}

		var req CreateOrderRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Info("invalid order request", "error", err)

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Amount < 0 {
			http.Error(w, "amount must not be negative", http.StatusBadRequest)
			return
		}

		orderNumber := uuid.NewString()

		err := orderCreator.CreateOrder(r.Context(), login, orderNumber, req.Amount)
		if err != nil {
			if errors.Is(err, storage.ErrNoBillingProfile) {
				http.Error(w, "Billing profile required before ordering", http.StatusForbidden)
				return
			}

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(orderNumber))
	}
}
