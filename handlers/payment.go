package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"playzone/database/repository"
	paymentRepo "playzone/database/repository/payment"
	"playzone/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxSlipBytes caps the uploaded bank slip size.
const maxSlipBytes = 10 << 20

// PaymentHandler exposes payment record operations over HTTP.
type PaymentHandler struct {
	Repo   paymentRepo.PaymentRepository
	Logger *zap.Logger
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(repo paymentRepo.PaymentRepository, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Repo: repo, Logger: logger}
}

// GetAllPayments handles GET /api/Payments.
func (h *PaymentHandler) GetAllPayments(c *gin.Context) {
	payments, err := h.Repo.GetAll()
	if err != nil {
		h.Logger.Error("Error fetching payments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if len(payments) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Payments not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payments display successful", "Payments": payments})
}

// bindPayment reads a payment from either a multipart form (the slip
// upload path) or a JSON body.
func (h *PaymentHandler) bindPayment(c *gin.Context) (*models.Payment, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		var p models.Payment
		if err := c.ShouldBindJSON(&p); err != nil {
			return nil, err
		}
		return &p, nil
	}

	accountNo, _ := strconv.ParseInt(c.PostForm("accountNo"), 10, 64)
	amount, _ := strconv.ParseFloat(c.PostForm("amount"), 64)
	p := &models.Payment{
		UserName:  c.PostForm("userName"),
		AccountNo: accountNo,
		Bank:      c.PostForm("bank"),
		Branch:    c.PostForm("branch"),
		Package:   c.PostForm("package"),
		Amount:    amount,
		CnfStatus: c.PostForm("cnfStatus"),
	}

	file, err := c.FormFile("slip")
	if err != nil {
		// Slip is optional.
		return p, nil
	}
	if file.Size > maxSlipBytes {
		return nil, errors.New("slip file too large")
	}
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	p.Slip = models.PaymentSlip{
		Data:        data,
		ContentType: file.Header.Get("Content-Type"),
	}
	return p, nil
}

// AddPayment handles POST /api/Payments.
func (h *PaymentHandler) AddPayment(c *gin.Context) {
	p, err := h.bindPayment(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payment payload", "error": err.Error()})
		return
	}
	if err := h.Repo.Create(p); err != nil {
		h.Logger.Error("Error adding payment", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"message": "Failed to add payment"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Payment added successfully", "Payments": p})
}

// GetPaymentByID handles GET /api/Payments/:id.
func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
	id := c.Param("id")
	p, err := h.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Payment not found"})
			return
		}
		h.Logger.Error("Error fetching payment", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"Payments": p})
}

// UpdatePayment handles PUT /api/Payments/:id.
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	p, err := h.bindPayment(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payment payload", "error": err.Error()})
		return
	}
	p.ID = c.Param("id")

	updated, err := h.Repo.Update(p)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Unable to update payment"})
			return
		}
		h.Logger.Error("Error updating payment", zap.String("id", p.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment updated successfully", "Payments": updated})
}

// DeletePayment handles DELETE /api/Payments/:id.
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.Repo.Delete(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Unable to delete payment"})
			return
		}
		h.Logger.Error("Error deleting payment", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted successfully", "Payments": deleted})
}
