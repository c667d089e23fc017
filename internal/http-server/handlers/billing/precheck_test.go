package billing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func precheck(t *testing.T, id string) PrecheckResponse {
	t.Helper()

	body, err := json.Marshal(PrecheckRequest{NationalID: id})
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/api/user/billing/precheck", strings.NewReader(string(body)))
	w := httptest.NewRecorder()
	PrecheckHandle()(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp PrecheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestPrecheck(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		valid  bool
		reason string
	}{
		{"valid identifier", "12345678906", true, ""},
		{"wrong check digit", "12345678905", false, "check digit does not match"},
		{"too short", "1234567890", false, "must be exactly 11 digits"},
		{"non-digit", "1234567890a", false, "must contain only digits"},
		{"empty", "", false, "must be exactly 11 digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := precheck(t, tt.id)
			assert.Equal(t, tt.valid, resp.Valid)
			assert.Equal(t, tt.reason, resp.Reason)
		})
	}
}

// The precheck verdict must agree with the submit-time verdict for any
// identifier: both endpoints call the same validator.
func TestPrecheck_MatchesSubmitVerdict(t *testing.T) {
	token := authToken(t, "acme")

	for _, id := range []string{"12345678906", "12345678905", "00100000000", "00000000000"} {
		resp := precheck(t, id)

		saver := &stubProfileSaver{}
		w := postProfile(t, SubmitProfileHandle(saver), token, ProfileRequest{
			UserType:    UserTypeCorporate,
			CompanyName: "Acme LLC",
			NationalID:  id,
		})

		if resp.Valid {
			assert.Equal(t, http.StatusOK, w.Code, id)
		} else {
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code, id)
		}
	}
}

func TestPrecheck_BadBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/api/user/billing/precheck", strings.NewReader("{"))
	w := httptest.NewRecorder()
	PrecheckHandle()(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
