package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/AviralMathur02/echo-back/internal/models"
	"github.com/AviralMathur02/echo-back/internal/router"
	"github.com/AviralMathur02/echo-back/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter atomic.Int64

// setupTestDB creates an in-memory SQLite database for testing. Each
// call gets its own named shared-cache database so the connection pool
// sees a single store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "failed to connect to test database")
	return db
}

// setupTestServer builds an Echo instance with the full route table
// (including the real JWT middleware) backed by an in-memory store.
func setupTestServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	e := echo.New()
	e.Validator = validators.NewValidator()
	router.SetupRoutes(e, db, t.TempDir())
	return e, db
}

// doRequest performs a request against the test server. A non-empty
// token is sent as a bearer credential; a non-nil body is sent as JSON.
func doRequest(e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// registerUser registers a user through the API
func registerUser(t *testing.T, e *echo.Echo, username, email string) {
	t.Helper()
	rec := doRequest(e, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    email,
		"password": "password123",
		"name":     username + " Test",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

// loginUser logs a user in and returns the issued token
func loginUser(t *testing.T, e *echo.Echo, username string) string {
	t.Helper()
	rec := doRequest(e, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}

// signupUser registers and logs in a user, returning the token
func signupUser(t *testing.T, e *echo.Echo, username string) string {
	t.Helper()
	registerUser(t, e, username, username+"@example.com")
	return loginUser(t, e, username)
}

// userID looks up a user's ID by username
func userID(t *testing.T, db *gorm.DB, username string) uint {
	t.Helper()
	var user models.User
	require.NoError(t, db.Where("username = ?", username).First(&user).Error)
	return user.ID
}
