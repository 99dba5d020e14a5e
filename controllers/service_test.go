package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicServices_ActiveOnly(t *testing.T) {
	r, _ := newTestRouter(t)

	adminToken := registerUser(t, r, "Admin", "admin@example.com", "adminpass", "admin")

	activeID := createService(t, r, adminToken, map[string]string{"title": "Active One"})
	inactiveID := createService(t, r, adminToken, map[string]string{
		"title":  "Hidden One",
		"status": "inactive",
	})

	rr := doJSON(r, http.MethodGet, "/api/services/public", nil, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	services := decode(t, rr)["services"].([]interface{})
	require.Len(t, services, 1)
	assert.Equal(t, "Active One", services[0].(map[string]interface{})["title"])

	// The single public read behaves the same way.
	rr = doJSON(r, http.MethodGet, "/api/services/public/"+activeID, nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(r, http.MethodGet, "/api/services/public/"+inactiveID, nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Service not found", decode(t, rr)["message"])

	// The admin listing sees both.
	rr = doJSON(r, http.MethodGet, "/api/services", nil, adminToken)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode(t, rr)["services"].([]interface{}), 2)
}

func TestCreateService_ParsesFieldsAndFeatures(t *testing.T) {
	r, _ := newTestRouter(t)

	adminToken := registerUser(t, r, "Admin", "admin@example.com", "adminpass", "admin")

	rr := doForm(r, http.MethodPost, "/api/services", map[string]string{
		"title":        "Video Editing",
		"description":  "Long-form edits",
		"category":     "editing",
		"price":        "1500",
		"sellingPrice": "999",
		"features":     `["color grading","captions"]`,
	}, adminToken)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	service := decode(t, rr)["service"].(map[string]interface{})
	assert.Equal(t, 1500.0, service["price"])
	assert.Equal(t, 999.0, service["sellingPrice"])
	assert.Equal(t, "active", service["status"])
	features := service["features"].([]interface{})
	assert.Equal(t, []interface{}{"color grading", "captions"}, features)
}

func TestCreateService_RejectsBadNumbersAndFeatures(t *testing.T) {
	r, _ := newTestRouter(t)

	adminToken := registerUser(t, r, "Admin", "admin@example.com", "adminpass", "admin")

	rr := doForm(r, http.MethodPost, "/api/services", map[string]string{
		"title":        "Broken",
		"description":  "x",
		"category":     "x",
		"price":        "not-a-number",
		"sellingPrice": "10",
	}, adminToken)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doForm(r, http.MethodPost, "/api/services", map[string]string{
		"title":        "Broken",
		"description":  "x",
		"category":     "x",
		"price":        "20",
		"sellingPrice": "10",
		"features":     "not-json",
	}, adminToken)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateService_PartialAndRemoveImage(t *testing.T) {
	r, db := newTestRouter(t)

	adminToken := registerUser(t, r, "Admin", "admin@example.com", "adminpass", "admin")
	serviceID := createService(t, r, adminToken, nil)

	// Seed an image path directly; uploads go through multipart files normally.
	require.NoError(t, db.Exec(
		"UPDATE services SET image = ? WHERE id = ?", "uploads/old.png", serviceID).Error)

	rr := doForm(r, http.MethodPut, "/api/services/"+serviceID, map[string]string{
		"title":       "Retitled",
		"removeImage": "true",
	}, adminToken)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	service := decode(t, rr)["service"].(map[string]interface{})
	assert.Equal(t, "Retitled", service["title"])
	assert.Equal(t, "", service["image"])
	// Untouched fields survive.
	assert.Equal(t, "design", service["category"])
	assert.Equal(t, 299.0, service["sellingPrice"])
}

func TestDeleteService_LeavesBookingsIntact(t *testing.T) {
	r, _ := newTestRouter(t)

	adminToken := registerUser(t, r, "Admin", "admin@example.com", "adminpass", "admin")
	userToken := registerUser(t, r, "Asha", "a@x.com", "pw123456", "")

	serviceID := createService(t, r, adminToken, nil)
	detailID := createPersonalDetail(t, r, userToken)
	bookingID := createBooking(t, r, userToken, serviceID, detailID)

	rr := doJSON(r, http.MethodDelete, "/api/services/"+serviceID, nil, adminToken)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = doJSON(r, http.MethodDelete, "/api/services/"+serviceID, nil, adminToken)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// The booking and its snapshotted price survive the delete.
	rr = doJSON(r, http.MethodGet, "/api/bookings/my/"+bookingID, nil, userToken)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	booking := decode(t, rr)["booking"].(map[string]interface{})
	assert.Equal(t, 299.0, booking["sellingPrice"])
}

func TestServiceAdminRoutes_RejectUserRole(t *testing.T) {
	r, _ := newTestRouter(t)

	userToken := registerUser(t, r, "Asha", "a@x.com", "pw123456", "")

	rr := doForm(r, http.MethodPost, "/api/services", map[string]string{
		"title": "Nope", "description": "x", "category": "x",
		"price": "1", "sellingPrice": "1",
	}, userToken)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = doJSON(r, http.MethodGet, "/api/services", nil, userToken)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}
