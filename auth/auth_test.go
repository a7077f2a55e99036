package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mibon4ik/toyota-sub000/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	users, err := store.NewUserStore(filepath.Join(t.TempDir(), "users.json"))
	require.NoError(t, err)

	r := gin.New()
	r.POST("/auth/register", RegisterHandler(users))
	r.POST("/auth/login", LoginHandler(users))
	return r
}

func registerBody(overrides map[string]any) []byte {
	body := map[string]any{
		"username":    "bob",
		"firstName":   "Боб",
		"lastName":    "Иванов",
		"email":       "bob@example.com",
		"phoneNumber": "+77011234567",
		"password":    "Abcdefg1",
		"carMake":     "Toyota",
		"carModel":    "Camry",
		"vinCode":     "1HGCM82633A004352",
	}
	for k, v := range overrides {
		body[k] = v
	}
	data, _ := json.Marshal(body)
	return data
}

func doPost(r *gin.Engine, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	r := newTestRouter(t)

	w := doPost(r, "/auth/register", registerBody(nil))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		User  map[string]any `json:"user"`
		Token string         `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, false, resp.User["isAdmin"])
	_, hasPassword := resp.User["password"]
	assert.False(t, hasPassword, "response must not contain a password field")
}

func TestRegisterDuplicateVIN(t *testing.T) {
	r := newTestRouter(t)

	w := doPost(r, "/auth/register", registerBody(nil))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doPost(r, "/auth/register", registerBody(map[string]any{
		"username": "alice",
		"email":    "alice@example.com",
	}))
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func TestRegisterInvalidVIN(t *testing.T) {
	r := newTestRouter(t)

	// Too short
	w := doPost(r, "/auth/register", registerBody(map[string]any{"vinCode": "ABC123"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Contains the excluded letter O
	w = doPost(r, "/auth/register", registerBody(map[string]any{"vinCode": "OHGCM82633A004352"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterWeakPassword(t *testing.T) {
	r := newTestRouter(t)

	for _, password := range []string{"short1", "abcdefgh", "12345678"} {
		w := doPost(r, "/auth/register", registerBody(map[string]any{"password": password}))
		assert.Equal(t, http.StatusBadRequest, w.Code, "password %q should be rejected", password)
	}
}

func TestLogin(t *testing.T) {
	r := newTestRouter(t)

	w := doPost(r, "/auth/register", registerBody(nil))
	require.Equal(t, http.StatusCreated, w.Code)

	login := func(email, password string) *httptest.ResponseRecorder {
		data, _ := json.Marshal(map[string]string{"email": email, "password": password})
		return doPost(r, "/auth/login", data)
	}

	w = login("bob@example.com", "Abcdefg1")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		User  map[string]any `json:"user"`
		Token string         `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	_, hasPassword := resp.User["password"]
	assert.False(t, hasPassword)

	// Wrong password and unknown email produce the same response
	wrong := login("bob@example.com", "Wrong1234")
	unknown := login("nobody@example.com", "Abcdefg1")
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())
}
