package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"playzone/database/repository"
	complaintRepo "playzone/database/repository/complaint"
	"playzone/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// complaintRequest mirrors the complaint/feedback form payload.
type complaintRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Complain string   `json:"complain"`
	Feedback string   `json:"feedback"`
	Ratings  *float64 `json:"ratings"`
	Status   string   `json:"status"`
	Priority string   `json:"priority"`
}

// ComplaintHandler exposes complaint/feedback operations over HTTP.
type ComplaintHandler struct {
	Repo   complaintRepo.ComplaintRepository
	Logger *zap.Logger
}

// NewComplaintHandler creates a new ComplaintHandler.
func NewComplaintHandler(repo complaintRepo.ComplaintRepository, logger *zap.Logger) *ComplaintHandler {
	return &ComplaintHandler{Repo: repo, Logger: logger}
}

// CreateComplaint handles POST /Complaints/complaints/create.
func (h *ComplaintHandler) CreateComplaint(c *gin.Context) {
	var req complaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Name == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required"})
		return
	}

	complaint := &models.Complaint{
		Name:     req.Name,
		Email:    req.Email,
		Complain: req.Complain,
		Feedback: req.Feedback,
	}
	if req.Ratings != nil {
		complaint.Ratings = *req.Ratings
	}

	if err := h.Repo.Create(complaint); err != nil {
		h.Logger.Error("Error creating complaint", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Complaint/Feedback submitted successfully", "complaint": complaint})
}

// GetAllComplaints handles GET /Complaints/complaints with optional
// status, priority and search query filters.
func (h *ComplaintHandler) GetAllComplaints(c *gin.Context) {
	filter := complaintRepo.ComplaintFilter{
		Status:   models.ComplaintStatus(c.Query("status")),
		Priority: models.ComplaintPriority(c.Query("priority")),
		Search:   c.Query("search"),
	}
	complaints, err := h.Repo.GetAll(filter)
	if err != nil {
		h.Logger.Error("Error fetching complaints", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if complaints == nil {
		complaints = []models.Complaint{}
	}
	c.JSON(http.StatusOK, complaints)
}

// DownloadComplaints handles GET /Complaints/complaints/download,
// serving the full list as an Excel attachment.
func (h *ComplaintHandler) DownloadComplaints(c *gin.Context) {
	complaints, err := h.Repo.GetAll(complaintRepo.ComplaintFilter{})
	if err != nil {
		h.Logger.Error("Error exporting complaints", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	data, err := buildComplaintWorkbook(complaints)
	if err != nil {
		h.Logger.Error("Error building complaint workbook", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="complaints.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func buildComplaintWorkbook(complaints []models.Complaint) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Complaints"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"Name", "Email", "Complain", "Feedback", "Ratings", "Status", "Priority", "Created"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, header)
	}
	for row, cm := range complaints {
		values := []any{
			cm.Name, cm.Email, cm.Complain, cm.Feedback, cm.Ratings,
			string(cm.Status), string(cm.Priority),
			cm.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	_ = f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// GetComplaintByID handles GET /Complaints/complaints/:id.
func (h *ComplaintHandler) GetComplaintByID(c *gin.Context) {
	id := c.Param("id")
	complaint, err := h.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Complaint/Feedback not found"})
			return
		}
		h.Logger.Error("Error fetching complaint", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, complaint)
}

// UpdateComplaint handles PUT /Complaints/complaints/:id. Only
// provided fields change; status and priority are validated against
// their enums.
func (h *ComplaintHandler) UpdateComplaint(c *gin.Context) {
	id := c.Param("id")

	var req complaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	upd := complaintRepo.ComplaintUpdate{}
	if req.Name != "" {
		upd.Name = &req.Name
	}
	if req.Email != "" {
		upd.Email = &req.Email
	}
	if req.Complain != "" {
		upd.Complain = &req.Complain
	}
	if req.Feedback != "" {
		upd.Feedback = &req.Feedback
	}
	if req.Ratings != nil {
		upd.Ratings = req.Ratings
	}
	if req.Status != "" {
		status := models.ComplaintStatus(req.Status)
		upd.Status = &status
	}
	if req.Priority != "" {
		priority := models.ComplaintPriority(req.Priority)
		upd.Priority = &priority
	}

	updated, err := h.Repo.Update(id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Complaint/Feedback not found"})
			return
		}
		if ve, ok := repository.AsValidation(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "errors": ve.Messages()})
			return
		}
		h.Logger.Error("Error updating complaint", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Complaint/Feedback updated", "complaint": updated})
}

// DeleteComplaint handles DELETE /Complaints/complaints/:id.
func (h *ComplaintHandler) DeleteComplaint(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
			return
		}
		h.Logger.Error("Error deleting complaint", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Complaint deleted successfully"})
}

// GetFeedbacks handles GET /Complaints/testimonials, returning rated
// feedback entries, highest rating first.
func (h *ComplaintHandler) GetFeedbacks(c *gin.Context) {
	feedbacks, err := h.Repo.GetTopFeedbacks(10)
	if err != nil {
		h.Logger.Error("Error fetching feedbacks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if feedbacks == nil {
		feedbacks = []models.Complaint{}
	}
	c.JSON(http.StatusOK, feedbacks)
}
