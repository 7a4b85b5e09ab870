package handlers

import (
	"errors"
	"net/http"

	"playzone/database/repository"
	"playzone/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes user account operations over HTTP.
type UserHandler struct {
	Service user.UserService
	Logger  *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Service: svc, Logger: logger}
}

// GetAllUsers handles GET /Users.
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.Service.GetAll()
	if err != nil {
		h.Logger.Error("Error fetching users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if len(users) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Users not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"Users": users})
}

// AddUser handles POST /Users.
func (h *UserHandler) AddUser(c *gin.Context) {
	var in user.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	created, err := h.Service.Register(in)
	if err != nil {
		h.Logger.Error("Error adding user", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"message": "Failed to add user"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User added successfully", "Users": created})
}

// GetUserByID handles GET /Users/:id.
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id := c.Param("id")
	usr, err := h.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		h.Logger.Error("Error fetching user", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User found", "Users": usr})
}

// GetUserByEmail handles GET /Users/email/:email.
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	email := c.Param("email")
	usr, err := h.Service.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		h.Logger.Error("Error fetching user by email", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User found", "Users": usr})
}

// UpdateUser handles PUT /Users/:id. Only provided fields change.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var in user.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	updated, err := h.Service.Update(id, in)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		h.Logger.Error("Error updating user", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating user", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "user": updated})
}

// DeleteUser handles DELETE /Users/:id.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		h.Logger.Error("Error deleting user", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Unable to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
