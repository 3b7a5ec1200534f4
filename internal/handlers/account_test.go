package handlers

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func TestAccount_UpdateWithPicture(t *testing.T) {
	env := setupTestEnv(t)
	user := env.registerUser(t, "existing", "existing@example.com", "supersecret")
	cookies := env.loginAs(t, "existing@example.com", "supersecret")

	w := env.postMultipart(t, "/account", map[string]string{
		"username": "existing",
		"email":    "existing@example.com",
	}, "picture", "avatar.png", pngBytes(t, 300, 200), cookies)

	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/account", w.Header().Get("Location"))

	updated, err := env.userRepo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotEqual(t, "default.jpg", updated.ImageFile)
	require.True(t, strings.HasSuffix(updated.ImageFile, ".png"))

	// The stored filename must resolve to a file on disk.
	_, err = os.Stat(filepath.Join(env.pictureDir, updated.ImageFile))
	require.NoError(t, err)
}

func TestAccount_UpdateRejectsCorruptPicture(t *testing.T) {
	env := setupTestEnv(t)
	user := env.registerUser(t, "existing", "existing@example.com", "supersecret")
	cookies := env.loginAs(t, "existing@example.com", "supersecret")

	w := env.postMultipart(t, "/account", map[string]string{
		"username": "existing",
		"email":    "existing@example.com",
	}, "picture", "avatar.png", []byte("definitely not a png"), cookies)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "IMAGE_PROCESSING_FAILED", resp.Code)

	// Profile stays untouched and nothing is written.
	unchanged, err := env.userRepo.FindByID(user.ID)
	require.NoError(t, err)
	require.Equal(t, "default.jpg", unchanged.ImageFile)

	entries, err := os.ReadDir(env.pictureDir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestAccount_UpdateFailureRemovesStoredPicture(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "other", "other@example.com", "supersecret")
	user := env.registerUser(t, "existing", "existing@example.com", "supersecret")
	cookies := env.loginAs(t, "existing@example.com", "supersecret")

	w := env.postMultipart(t, "/account", map[string]string{
		"username": "existing",
		"email":    "other@example.com",
	}, "picture", "avatar.png", pngBytes(t, 50, 50), cookies)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp.Details, "email")

	// The rejected update must not leave the uploaded file behind.
	entries, err := os.ReadDir(env.pictureDir)
	require.NoError(t, err)
	require.Empty(t, entries)

	unchanged, err := env.userRepo.FindByID(user.ID)
	require.NoError(t, err)
	require.Equal(t, "default.jpg", unchanged.ImageFile)
}
