package handlers

import (
	"errors"
	"net/http"

	"playzone/database/repository"
	"playzone/models"
	"playzone/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking service over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// AddBooking handles POST /api/bookings.
func (h *BookingHandler) AddBooking(c *gin.Context) {
	var in booking.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body", "error": err.Error()})
		return
	}

	created, err := h.Service.CreateBooking(in)
	if err != nil {
		h.writeBookingError(c, err, "Failed to add booking")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking added successfully",
		"booking": created,
	})
}

// GetAllBookings handles GET /api/bookings. An empty store yields 404,
// matching the behavior the admin dashboard was built against.
func (h *BookingHandler) GetAllBookings(c *gin.Context) {
	bookings, err := h.Service.ListAll()
	if err != nil {
		h.Logger.Error("Error fetching bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error while fetching bookings",
			"error":   err.Error(),
		})
		return
	}
	if len(bookings) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No bookings found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"count":    len(bookings),
		"message":  "Bookings fetched successfully",
		"bookings": bookings,
	})
}

// GetBookingsByEmail handles GET /api/bookings/email/:email. An empty
// result is success here, unlike the list-all endpoint.
func (h *BookingHandler) GetBookingsByEmail(c *gin.Context) {
	email := c.Param("email")
	bookings, err := h.Service.ListByEmail(email)
	if err != nil {
		h.Logger.Error("Error fetching bookings by email", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error while fetching bookings",
			"error":   err.Error(),
		})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	message := "Bookings found"
	if len(bookings) == 0 {
		message = "No bookings found for this email"
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"count":    len(bookings),
		"message":  message,
		"bookings": bookings,
	})
}

// GetBookingByID handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	id := c.Param("id")
	b, err := h.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
			return
		}
		h.Logger.Error("Error fetching booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking found", "booking": b})
}

// UpdateBooking handles PUT /api/bookings/:id, the customer edit
// request. A valid payload always resets the status to Pending.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	id := c.Param("id")

	var in booking.CustomerUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	var missing *booking.MissingFieldsError
	updated, err := h.Service.CustomerUpdate(id, in)
	switch {
	case err == nil:
	case errors.As(err, &missing):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Package type, date, and time slot are required",
		})
		return
	default:
		h.writeBookingError(c, err, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
		"message": "Booking updated successfully",
	})
}

// AdminUpdateBooking handles PUT /api/bookings/admin/:id. Only the
// status field is written; Confirmed and Cancelled are reachable
// through this path alone.
func (h *BookingHandler) AdminUpdateBooking(c *gin.Context) {
	id := c.Param("id")

	var in booking.AdminUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	var missing *booking.MissingFieldsError
	updated, err := h.Service.AdminUpdateStatus(id, in)
	switch {
	case err == nil:
	case errors.As(err, &missing):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Status is required"})
		return
	default:
		h.writeBookingError(c, err, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    updated,
		"message": "Booking updated successfully",
	})
}

// DeleteBooking handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.Service.DeleteBooking(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
			return
		}
		h.Logger.Error("Error deleting booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete booking", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted", "deletedBooking": deleted})
}

// ExportBookings handles GET /api/bookings/export with an xlsx attachment.
func (h *BookingHandler) ExportBookings(c *gin.Context) {
	data, err := h.Service.ExportAll()
	if err != nil {
		h.Logger.Error("Error exporting bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to export bookings", "error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="bookings.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// writeBookingError maps service and store error kinds onto HTTP
// responses so every handler reports failures the same way.
func (h *BookingHandler) writeBookingError(c *gin.Context, err error, fallback string) {
	var (
		missing    *booking.MissingFieldsError
		badDate    *booking.InvalidDateError
		transition *booking.InvalidTransitionError
	)
	switch {
	case errors.As(err, &missing):
		c.JSON(http.StatusBadRequest, gin.H{
			"success":       false,
			"message":       "Missing required fields",
			"missingFields": missing.Fields,
		})
	case errors.As(err, &badDate):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid date", "error": badDate.Error()})
	case errors.As(err, &transition):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Invalid status transition", "error": transition.Error()})
	case errors.Is(err, repository.ErrVersionConflict):
		c.JSON(http.StatusConflict, gin.H{
			"success":  false,
			"conflict": true,
			"message":  "Booking was modified by someone else, reload and retry",
		})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Booking not found"})
	default:
		if ve, ok := repository.AsValidation(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Validation error",
				"errors":  ve.Messages(),
			})
			return
		}
		h.Logger.Error("Booking operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": fallback, "error": err.Error()})
	}
}
