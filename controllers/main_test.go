package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"creativedesk-backend/models"
	"creativedesk-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
}

// newTestRouter builds the full router against an in-memory sqlite database.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	// The in-memory database is per connection; keep the pool at one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.PersonalDetail{},
		&models.Booking{},
	))

	t.Setenv("UPLOAD_DIR", t.TempDir())

	return routes.SetupRouter(db), db
}

func doJSON(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func doForm(r *gin.Engine, method, path string, fields map[string]string, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		writer.WriteField(key, value)
	}
	writer.Close()

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), "body: %s", rr.Body.String())
	return body
}

// registerUser registers an account through the API and returns its token.
func registerUser(t *testing.T, r *gin.Engine, name, email, password, role string) string {
	t.Helper()
	rr := doJSON(r, http.MethodPost, "/api/auth/register", gin.H{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     role,
	}, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	body := decode(t, rr)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// createService creates a catalog listing through the admin API and returns its id.
func createService(t *testing.T, r *gin.Engine, adminToken string, fields map[string]string) string {
	t.Helper()
	defaults := map[string]string{
		"title":        "Thumbnail Design",
		"description":  "Custom video thumbnails",
		"category":     "design",
		"price":        "500",
		"sellingPrice": "299",
		"features":     `["2 revisions","source file"]`,
	}
	for key, value := range fields {
		defaults[key] = value
	}
	rr := doForm(r, http.MethodPost, "/api/services", defaults, adminToken)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	service := decode(t, rr)["service"].(map[string]interface{})
	return service["id"].(string)
}

// createPersonalDetail saves a delivery profile and returns its id.
func createPersonalDetail(t *testing.T, r *gin.Engine, token string) string {
	t.Helper()
	rr := doJSON(r, http.MethodPost, "/api/personal-details", gin.H{
		"name":        "Asha",
		"email":       "asha@example.com",
		"phone":       "+919876543210",
		"city":        "Pune",
		"state":       "MH",
		"pin":         "411001",
		"profession":  "creator",
		"addressType": "home",
	}, token)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	detail := decode(t, rr)["detail"].(map[string]interface{})
	return detail["id"].(string)
}

// createBooking places a booking and returns its id.
func createBooking(t *testing.T, r *gin.Engine, token, serviceID, detailID string) string {
	t.Helper()
	rr := doForm(r, http.MethodPost, "/api/bookings", map[string]string{
		"serviceId":        serviceID,
		"personalDetailId": detailID,
		"transactionId":    "TXN-1001",
	}, token)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	booking := decode(t, rr)["booking"].(map[string]interface{})
	return booking["id"].(string)
}
