package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hadiniaraki/checkout-form/internal/config"
	"github.com/hadiniaraki/checkout-form/internal/http-server/handlers"
	"github.com/hadiniaraki/checkout-form/internal/http-server/handlers/admin"
	"github.com/hadiniaraki/checkout-form/internal/http-server/handlers/billing"
	"github.com/hadiniaraki/checkout-form/internal/http-server/handlers/orders"
	"github.com/hadiniaraki/checkout-form/internal/middleware/logger"
	"github.com/hadiniaraki/checkout-form/internal/storage/postgres"
)

func Start() (http.Handler, error) {
	config.ParseFlags()

	if err := logger.Initialize(); err != nil {
		return nil, err
	}

	storage, err := postgres.New()
	if err != nil {
		logger.Log.Error("failed to init db", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(logger.RequestLogger)
	r.Route("/api/user/", func(r chi.Router) {
		r.Post("/register", handlers.RegistrationHandle(storage))
		r.Post("/login", handlers.LoginHandle(storage))
		r.Post("/billing", billing.SubmitProfileHandle(storage))
		r.Get("/billing", billing.GetProfileHandle(storage))
		r.Post("/billing/precheck", billing.PrecheckHandle())
		r.Post("/orders", orders.CreateOrderHandle(storage))
		r.Get("/orders", orders.GetOrdersHandle(storage))
	})
	r.Get("/api/admin/billing", admin.ListProfilesHandle(storage))

	return r, nil
}
