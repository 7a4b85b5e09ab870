package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	bookingRepo "playzone/database/repository/booking"
	"playzone/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingRouter() (*gin.Engine, *bookingRepo.MemoryBookingRepo) {
	gin.SetMode(gin.TestMode)

	repo := bookingRepo.NewMemoryBookingRepo()
	h := NewBookingHandler(&booking.DefaultBookingService{Repo: repo}, zap.NewNop())

	r := gin.New()
	api := r.Group("/api/bookings")
	api.POST("", h.AddBooking)
	api.GET("", h.GetAllBookings)
	api.GET("/export", h.ExportBookings)
	api.GET("/email/:email", h.GetBookingsByEmail)
	api.GET("/:id", h.GetBookingByID)
	api.PUT("/admin/:id", h.AdminUpdateBooking)
	api.PUT("/:id", h.UpdateBooking)
	api.DELETE("/:id", h.DeleteBooking)
	return r, repo
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

const validBookingJSON = `{
	"username": "Ann",
	"email": "ann@example.com",
	"packageType": "Birthday Bash",
	"date": "2025-06-01",
	"timeSlot": "10:00-12:00",
	"specialRequests": "balloons"
}`

func TestAddBooking(t *testing.T) {
	r, _ := newBookingRouter()

	w := doJSON(t, r, http.MethodPost, "/api/bookings", validBookingJSON)
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Booking added successfully", body["message"])

	created, ok := body["booking"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Pending", created["message"])
	assert.NotEmpty(t, created["_id"])
	assert.Equal(t, float64(1), created["version"])
}

func TestAddBookingMissingFields(t *testing.T) {
	r, _ := newBookingRouter()

	w := doJSON(t, r, http.MethodPost, "/api/bookings", `{"username": "Ann", "timeSlot": "10:00-12:00"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Missing required fields", body["message"])

	missing, ok := body["missingFields"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, missing["email"])
	assert.Equal(t, true, missing["packageType"])
	assert.Equal(t, true, missing["date"])
	assert.NotContains(t, missing, "username")
	assert.NotContains(t, missing, "timeSlot")
}

func TestAddBookingBadDate(t *testing.T) {
	r, _ := newBookingRouter()

	payload := strings.Replace(validBookingJSON, "2025-06-01", "June first", 1)
	w := doJSON(t, r, http.MethodPost, "/api/bookings", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Invalid date", body["message"])
}

func TestGetAllBookingsEmpty(t *testing.T) {
	r, _ := newBookingRouter()

	w := doJSON(t, r, http.MethodGet, "/api/bookings", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "No bookings found", body["message"])
}

func TestGetAllBookings(t *testing.T) {
	r, _ := newBookingRouter()
	doJSON(t, r, http.MethodPost, "/api/bookings", validBookingJSON)

	w := doJSON(t, r, http.MethodGet, "/api/bookings", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["count"])

	bookings, ok := body["bookings"].([]any)
	require.True(t, ok)
	require.Len(t, bookings, 1)
}

func TestGetBookingsByEmailEmpty(t *testing.T) {
	r, _ := newBookingRouter()

	w := doJSON(t, r, http.MethodGet, "/api/bookings/email/nobody@example.com", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(0), body["count"])
	assert.Equal(t, "No bookings found for this email", body["message"])

	bookings, ok := body["bookings"].([]any)
	require.True(t, ok)
	assert.Empty(t, bookings)
}

func TestGetBookingByID(t *testing.T) {
	r, _ := newBookingRouter()
	created := createBooking(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/"+created, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	b, ok := body["booking"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, created, b["_id"])
}

func TestGetBookingByIDNotFound(t *testing.T) {
	r, _ := newBookingRouter()

	w := doJSON(t, r, http.MethodGet, "/api/bookings/missing", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Booking not found", decodeBody(t, w)["message"])
}

func TestUpdateBookingMissingFields(t *testing.T) {
	r, _ := newBookingRouter()
	created := createBooking(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/"+created, `{"packageType": "Laser Tag"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Package type, date, and time slot are required", body["error"])
}

func TestUpdateBookingResetsStatus(t *testing.T) {
	r, _ := newBookingRouter()
	created := createBooking(t, r)
	confirmBooking(t, r, created)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/"+created,
		`{"packageType": "Laser Tag", "date": "2025-07-01", "timeSlot": "14:00-16:00"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Pending", data["message"])
	assert.Equal(t, "Laser Tag", data["packageType"])
}

func TestUpdateBookingStaleVersion(t *testing.T) {
	r, _ := newBookingRouter()
	created := createBooking(t, r)
	confirmBooking(t, r, created) // bumps version to 2

	w := doJSON(t, r, http.MethodPut, "/api/bookings/"+created,
		`{"packageType": "Laser Tag", "date": "2025-07-01", "timeSlot": "14:00-16:00", "version": 1}`)
	require.Equal(t, http.StatusConflict, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["conflict"])
}

func TestAdminUpdateBooking(t *testing.T) {
	r, _ := newBookingRouter()
	created := createBooking(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/admin/"+created, `{"message": "Confirmed"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Booking updated successfully", body["message"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Confirmed", data["message"])
	assert.Equal(t, "Ann", data["username"])
}

func TestAdminUpdateBookingMissingStatus(t *testing.T) {
	r, _ := newBookingRouter()
	created := createBooking(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/admin/"+created, `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Status is required", decodeBody(t, w)["error"])
}

func TestAdminUpdateBookingInvalidTransition(t *testing.T) {
	r, _ := newBookingRouter()
	created := createBooking(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/admin/"+created, `{"message": "Cancelled"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// Cancelled bookings cannot be reopened.
	w = doJSON(t, r, http.MethodPut, "/api/bookings/admin/"+created, `{"message": "Confirmed"}`)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Invalid status transition", decodeBody(t, w)["message"])
}

func TestDeleteBooking(t *testing.T) {
	r, _ := newBookingRouter()
	created := createBooking(t, r)

	w := doJSON(t, r, http.MethodDelete, "/api/bookings/"+created, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Booking deleted", body["message"])
	deleted, ok := body["deletedBooking"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, created, deleted["_id"])

	w = doJSON(t, r, http.MethodGet, "/api/bookings/"+created, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBookingNotFound(t *testing.T) {
	r, _ := newBookingRouter()

	w := doJSON(t, r, http.MethodDelete, "/api/bookings/missing", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Booking not found", decodeBody(t, w)["message"])
}

func TestExportBookings(t *testing.T) {
	r, _ := newBookingRouter()
	createBooking(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "bookings.xlsx")
	assert.NotEmpty(t, w.Body.Bytes())
}

func createBooking(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/bookings", validBookingJSON)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)["booking"].(map[string]any)
	id, ok := created["_id"].(string)
	require.True(t, ok)
	return id
}

func confirmBooking(t *testing.T, r *gin.Engine, id string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/bookings/admin/%s", id), `{"message": "Confirmed"}`)
	require.Equal(t, http.StatusOK, w.Code)
}
