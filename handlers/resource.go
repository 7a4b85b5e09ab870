package handlers

import (
	"errors"
	"net/http"

	"playzone/database/repository"
	resourceRepo "playzone/database/repository/resource"
	"playzone/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// resourceRequest mirrors the inventory form payload.
type resourceRequest struct {
	Resource       string `json:"resource"`
	ResType        string `json:"resType"`
	Purpose        string `json:"Purpose"`
	PurchaseDate   string `json:"PurchaseDate"`
	DistributeDate string `json:"DistributeDate"`
}

func (r resourceRequest) toResource() (*models.Resource, bool) {
	if r.Resource == "" || r.ResType == "" || r.Purpose == "" || r.PurchaseDate == "" || r.DistributeDate == "" {
		return nil, false
	}
	purchase, ok := parseEventDate(r.PurchaseDate)
	if !ok {
		return nil, false
	}
	distribute, ok := parseEventDate(r.DistributeDate)
	if !ok {
		return nil, false
	}
	return &models.Resource{
		Resource:       r.Resource,
		ResType:        r.ResType,
		Purpose:        r.Purpose,
		PurchaseDate:   purchase,
		DistributeDate: distribute,
	}, true
}

// ResourceHandler exposes resource inventory operations over HTTP.
type ResourceHandler struct {
	Repo   resourceRepo.ResourceRepository
	Logger *zap.Logger
}

// NewResourceHandler creates a new ResourceHandler.
func NewResourceHandler(repo resourceRepo.ResourceRepository, logger *zap.Logger) *ResourceHandler {
	return &ResourceHandler{Repo: repo, Logger: logger}
}

// GetAllResources handles GET /Resources.
func (h *ResourceHandler) GetAllResources(c *gin.Context) {
	resources, err := h.Repo.GetAll()
	if err != nil {
		h.Logger.Error("Error fetching resources", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if len(resources) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Resources not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Resources display successful", "Resources": resources})
}

// AddResource handles POST /Resources.
func (h *ResourceHandler) AddResource(c *gin.Context) {
	var req resourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	resource, ok := req.toResource()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All resource fields are required"})
		return
	}

	if err := h.Repo.Create(resource); err != nil {
		h.Logger.Error("Error adding resource", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"message": "Failed to add resource"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Resource added successfully", "Resources": resource})
}

// GetResourceByID handles GET /Resources/:id.
func (h *ResourceHandler) GetResourceByID(c *gin.Context) {
	id := c.Param("id")
	resource, err := h.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Resource not found"})
			return
		}
		h.Logger.Error("Error fetching resource", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"Resources": resource})
}

// UpdateResource handles PUT /Resources/:id.
func (h *ResourceHandler) UpdateResource(c *gin.Context) {
	id := c.Param("id")

	var req resourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	resource, ok := req.toResource()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All resource fields are required"})
		return
	}
	resource.ID = id

	updated, err := h.Repo.Update(resource)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Unable to update resource"})
			return
		}
		h.Logger.Error("Error updating resource", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Resource updated successfully", "Resources": updated})
}

// DeleteResource handles DELETE /Resources/:id.
func (h *ResourceHandler) DeleteResource(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.Repo.Delete(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Unable to delete resource"})
			return
		}
		h.Logger.Error("Error deleting resource", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Resource deleted successfully", "Resources": deleted})
}
