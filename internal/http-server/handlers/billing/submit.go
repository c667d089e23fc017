package billing

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/hadiniaraki/checkout-form/internal/auth"
	"github.com/hadiniaraki/checkout-form/internal/storage"
	"github.com/hadiniaraki/checkout-form/internal/storage/postgres"
	"github.com/hadiniaraki/checkout-form/internal/validation"
)

const (
	UserTypeIndividual = "individual"
	UserTypeCorporate  = "corporate"
)

type ProfileRequest struct {
	UserType    string `json:"user_type" validate:"required,oneof=individual corporate"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	CompanyName string `json:"company_name"`
	NationalID  string `json:"national_id"`
	Phone       string `json:"phone"`
}

type ProfileSaver interface {
	SaveBillingProfile(ctx context.Context, login string, profile postgres.BillingProfile) error
}

type ProfileGetter interface {
	GetBillingProfile(ctx context.Context, login string) (postgres.BillingProfile, error)
}

// SubmitProfileHandle is the authoritative check point: nothing reaches the
// billing_profiles table without passing the same identifier validation the
// precheck endpoint runs.
func SubmitProfileHandle(profileSaver ProfileSaver) http.HandlerFunc {
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

		var req ProfileRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Info("invalid profile request", "error", err)

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := validator.New().Struct(req); err != nil {
			slog.Info("invalid validation for profile", "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		switch req.UserType {
		case UserTypeCorporate:
			if req.CompanyName == "" {
				http.Error(w, "company name is required for corporate profiles", http.StatusBadRequest)
				return
			}
			if req.NationalID == "" {
				http.Error(w, "national ID is required for corporate profiles", http.StatusBadRequest)
				return
			}
			if !validation.ValidNationalID(req.NationalID) {
				slog.Info("invalid national ID submitted", "login", login)

				http.Error(w, "Invalid national ID", http.StatusUnprocessableEntity)
				return
			}
		case UserTypeIndividual:
			if req.FirstName == "" || req.LastName == "" {
				http.Error(w, "first and last name are required for individual profiles", http.StatusBadRequest)
				return
			}
			if req.NationalID != "" || req.CompanyName != "" {
				http.Error(w, "corporate fields are not allowed for individual profiles", http.StatusBadRequest)
				return
			}
		}

		err := profileSaver.SaveBillingProfile(r.Context(), login, postgres.BillingProfile{
			UserType:    req.UserType,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			CompanyName: req.CompanyName,
			NationalID:  req.NationalID,
			Phone:       req.Phone,
		})
		if err != nil {
			slog.Info("failed to save billing profile", "error", err)

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Billing profile saved"))
	}
}

func GetProfileHandle(profileGetter ProfileGetter) http.HandlerFunc {
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

		profile, err := profileGetter.GetBillingProfile(r.Context(), login)
		if err != nil {
			if errors.Is(err, storage.ErrNoBillingProfile) {
				http.Error(w, "No billing profile found", http.StatusNotFound)
				return
			}

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		response, err := json.Marshal(profile)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(response)
	}
}
