package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/hadiniaraki/checkout-form/internal/auth"
	"github.com/hadiniaraki/checkout-form/internal/storage"
)

type RegistrationData struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserSaver interface {
	SaveUser(ctx context.Context, login, password string) error
}

func RegistrationHandle(userSaver UserSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var data RegistrationData

		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			slog.Info("invalid register request", "error", err)

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := validator.New().Struct(data); err != nil {
			slog.Info("invalid validation for reg", "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err := userSaver.SaveUser(r.Context(), data.Login, data.Password)
		if errors.Is(err, storage.ErrLoginAlreadyExists) {
			slog.Info("user already exists", "login", data.Login)

			http.Error(w, "user already exists", http.StatusConflict)
			return
		}
		if err != nil {
			slog.Info("failed to save user while reg", "error", err)

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		tokenString, err := auth.BuildJWTString(data.Login)
		if err != nil {
			slog.Info("failed to create JWT token", "error", err)
			http.Error(w, "failed to create JWT token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Authorization", tokenString)
		http.SetCookie(w, &http.Cookie{
			Name:     "User",
			Value:    tokenString,
			Path:     "/",
			HttpOnly: true,
			Secure:   true,
		})

		w.Write([]byte(data.Login))
	}
}
