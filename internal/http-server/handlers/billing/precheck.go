package billing

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hadiniaraki/checkout-form/internal/validation"
)

type PrecheckRequest struct {
	NationalID string `json:"national_id"`
}

type PrecheckResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// PrecheckHandle gives interactive feedback on a national ID while the user
// is still filling the form. It runs the exact same validator as the
// submit-time check; only the reason text is derived separately, since the
// validator itself collapses malformed input and checksum mismatch into one
// false.
func PrecheckHandle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PrecheckRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Info("invalid precheck request", "error", err)

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp := PrecheckResponse{Valid: validation.ValidNationalID(req.NationalID)}
		if !resp.Valid {
			resp.Reason = precheckReason(req.NationalID)
		}

		response, err := json.Marshal(resp)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(response)
	}
}

func precheckReason(id string) string {
	if len(id) != 11 {
		return "must be exactly 11 digits"
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return "must contain only digits"
		}
	}
	return "check digit does not match"
}
