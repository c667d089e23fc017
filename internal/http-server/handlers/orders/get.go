package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hadiniaraki/checkout-form/internal/auth"
	"github.com/hadiniaraki/checkout-form/internal/storage"
	"github.com/hadiniaraki/checkout-form/internal/storage/postgres"
)

type OrderGetter interface {
	GetOrders(ctx context.Context, login string) ([]postgres.Order, error)
}

func GetOrdersHandle(orderGetter OrderGetter) http.HandlerFunc {
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

		orders, err := orderGetter.GetOrders(r.Context(), login)
		if err != nil {
			if errors.Is(err, storage.ErrNoOrders) {
				http.Error(w, "No orders found", http.StatusNoContent)
				return
			}

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		response, err := json.Marshal(orders)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(response)
	}
}
