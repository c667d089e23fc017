package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hadiniaraki/checkout-form/internal/auth"
	"github.com/hadiniaraki/checkout-form/internal/config"
	"github.com/hadiniaraki/checkout-form/internal/storage"
	"github.com/hadiniaraki/checkout-form/internal/storage/postgres"
)

type ProfileLister interface {
	ListBillingProfiles(ctx context.Context) ([]postgres.BillingProfile, error)
}

// ListProfilesHandle returns every stored billing profile, newest first.
// Only the login configured via ADMIN_LOGIN may call it.
func ListProfilesHandle(profileLister ProfileLister) http.HandlerFunc {
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

		if config.AdminLogin == "" || login != config.AdminLogin {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		profiles, err := profileLister.ListBillingProfiles(r.Context())
		if err != nil {
			if errors.Is(err, storage.ErrNoProfiles) {
				http.Error(w, "No billing profiles found", http.StatusNoContent)
				return
			}

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		response, err := json.Marshal(profiles)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(response)
	}
}
