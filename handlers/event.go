package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"playzone/database/repository"
	eventRepo "playzone/database/repository/event"
	"playzone/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// eventRequest mirrors the frontend's event form payload. Participants
// arrives as either a number or a numeric string.
type eventRequest struct {
	Date         string `json:"Date"`
	Venue        string `json:"Venue"`
	Time         string `json:"Time"`
	Participants any    `json:"Participants"`
	Description  string `json:"description"`
}

// EventHandler exposes event scheduling operations over HTTP.
type EventHandler struct {
	Repo   eventRepo.EventRepository
	Logger *zap.Logger
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(repo eventRepo.EventRepository, logger *zap.Logger) *EventHandler {
	return &EventHandler{Repo: repo, Logger: logger}
}

func parseEventDate(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func coerceParticipants(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(n)
		return i, err == nil
	}
	return 0, false
}

// toEvent validates the request and builds the model, returning the
// missing field names on a shape failure.
func (r eventRequest) toEvent() (*models.Event, []string, string) {
	var missing []string
	if r.Date == "" {
		missing = append(missing, "Date")
	}
	if r.Venue == "" {
		missing = append(missing, "Venue")
	}
	if r.Time == "" {
		missing = append(missing, "Time")
	}
	if r.Participants == nil {
		missing = append(missing, "Participants")
	}
	if r.Description == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return nil, missing, ""
	}

	date, ok := parseEventDate(r.Date)
	if !ok {
		return nil, nil, "Invalid date format"
	}
	participants, ok := coerceParticipants(r.Participants)
	if !ok || participants <= 0 {
		return nil, nil, "Participants must be a positive number"
	}

	return &models.Event{
		Date:         date,
		Venue:        r.Venue,
		Time:         r.Time,
		Participants: participants,
		Description:  r.Description,
	}, nil, ""
}

// GetAllEvents handles GET /Events.
func (h *EventHandler) GetAllEvents(c *gin.Context) {
	events, err := h.Repo.GetAll()
	if err != nil {
		h.Logger.Error("Error fetching events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if len(events) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No events found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Events fetched", "events": events})
}

// AddEvent handles POST /Events.
func (h *EventHandler) AddEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	event, missing, problem := req.toEvent()
	if missing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields", "missingFields": missing})
		return
	}
	if problem != "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": problem})
		return
	}

	if err := h.Repo.Create(event); err != nil {
		h.Logger.Error("Error adding event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add event", "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Event added", "newEvent": event})
}

// GetEventByID handles GET /Events/:id.
func (h *EventHandler) GetEventByID(c *gin.Context) {
	id := c.Param("id")
	event, err := h.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
			return
		}
		h.Logger.Error("Error fetching event", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event found", "event": event})
}

// UpdateEvent handles PUT /Events/:id.
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id := c.Param("id")

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	event, missing, problem := req.toEvent()
	if missing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields", "missingFields": missing})
		return
	}
	if problem != "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": problem})
		return
	}
	event.ID = id

	updated, err := h.Repo.Update(event)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
			return
		}
		h.Logger.Error("Error updating event", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update event", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event updated", "updatedEvent": updated})
}

// DeleteEvent handles DELETE /Events/:id.
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.Repo.Delete(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
			return
		}
		h.Logger.Error("Error deleting event", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete event", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted", "deletedEvent": deleted})
}
