package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mesconnect/backend/internal/app/models"
	"github.com/mesconnect/backend/internal/app/models/dto"
	"github.com/mesconnect/backend/internal/app/services"
	"github.com/mesconnect/backend/internal/middleware"
	"github.com/mesconnect/backend/internal/pkg/helpers"
)

// EventController handles event endpoints
type EventController struct {
	eventService *services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService *services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// Create godoc
// @Summary Create an event
// @Description The organizer is automatically registered as a participant
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.APIResponse{data=dto.EventResponse}
// @Router /events [post]
func (c *EventController) Create(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	event, err := c.eventService.Create(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.EventFromModel(event)))
}

// List godoc
// @Summary List events
// @Description scope=upcoming (default), past, or mine
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param scope query string false "Listing scope" Enums(upcoming, past, mine) default(upcoming)
// @Param limit query int false "Maximum events" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.EventListResponse}
// @Router /events [get]
func (c *EventController) List(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	limit := helpers.ParseLimit(ctx, helpers.DefaultPageSize)

	var events []*models.Event
	var err error
	switch ctx.DefaultQuery("scope", "upcoming") {
	case "past":
		events, err = c.eventService.ListPast(ctx, userID, limit)
	case "mine":
		events, err = c.eventService.ListRegistered(ctx, userID)
	default:
		events, err = c.eventService.ListUpcoming(ctx, userID, limit)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.EventListResponse{Events: make([]*dto.EventResponse, 0, len(events))}
	for _, event := range events {
		resp.Events = append(resp.Events, dto.EventFromModel(event))
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetByID godoc
// @Summary Get an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /events/{id} [get]
func (c *EventController) GetByID(ctx *gin.Context) {
	eventID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	event, err := c.eventService.GetByID(ctx, eventID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.EventFromModel(event)))
}

// Register godoc
// @Summary Register for an event
// @Description Fails when the event is at capacity
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Full or already registered"
// @Router /events/{id}/register [post]
func (c *EventController) Register(ctx *gin.Context) {
	eventID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	if err := c.eventService.Register(ctx, eventID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "Registered for event"}))
}

// CancelRegistration godoc
// @Summary Cancel event registration
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Not registered"
// @Router /events/{id}/register [delete]
func (c *EventController) CancelRegistration(ctx *gin.Context) {
	eventID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	if err := c.eventService.CancelRegistration(ctx, eventID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "Registration cancelled"}))
}
