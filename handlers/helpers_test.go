package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/menuboard/menuboard-api/config"
	"github.com/menuboard/menuboard-api/middleware"
	"github.com/menuboard/menuboard-api/models"
	"github.com/menuboard/menuboard-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// setupServer builds a router against a fresh database and upload dir.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	config.App = config.Config{
		Port:      "0",
		DBPath:    filepath.Join(dir, "test.db"),
		JWTSecret: []byte("test-secret"),
		TokenTTL:  time.Hour,
		UploadDir: filepath.Join(dir, "uploads"),
	}
	require.NoError(t, os.MkdirAll(config.App.UploadDir, 0o755))
	config.InitDB()

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func createUser(t *testing.T, username, email string, role models.Role) (*models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username:       username,
		Email:          email,
		PasswordHash:   string(hash),
		RestaurantName: username + "'s place",
		Role:           role,
	}
	require.NoError(t, config.DB.Create(&user).Error)

	token, err := middleware.GenerateToken(&user)
	require.NoError(t, err)
	return &user, token
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doForm(r *gin.Engine, method, path, token string, fields url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(fields.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// doMultipart sends fields plus an optional image part. fileName == ""
// means no file.
func doMultipart(t *testing.T, r *gin.Engine, method, path, token string, fields map[string]string, fileName, contentType string, fileContent []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, fileName))
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func uploadDirEntries(t *testing.T) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(config.App.UploadDir)
	require.NoError(t, err)
	return entries
}
