package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContact_ValidSubmission(t *testing.T) {
	env := setupTestEnv(t)

	w := env.postForm(t, "/contact", url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"subject": {"Hello"},
		"message": {"Just saying hi"},
	}, nil)

	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))

	flashes := readFlashes(t, env, w.Result().Cookies())
	require.Contains(t, flashes["success"], "Form posted.")
}

func TestContact_MissingFieldsRejected(t *testing.T) {
	env := setupTestEnv(t)

	w := env.postForm(t, "/contact", url.Values{
		"name":  {"Ada"},
		"email": {"ada@example.com"},
	}, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "VALIDATION_FAILED", resp.Code)
	require.Contains(t, resp.Details, "subject")
	require.Contains(t, resp.Details, "message")

	flashes := readFlashes(t, env, w.Result().Cookies())
	require.Contains(t, flashes["message"], "All fields are required.")
}
