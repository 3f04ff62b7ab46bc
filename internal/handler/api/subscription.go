package api

import (
	"errors"
	"net/http"

	reqdto "petagenda/internal/handler/dto/request"
	resdto "petagenda/internal/handler/dto/response"
	"petagenda/internal/usecase/commands"
	"petagenda/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SubscriptionHandler struct {
	subscriptionCommands commands.SubscriptionCommands
	generator            commands.AppointmentGenerator
	subscriptionQueries  queries.SubscriptionQueries
	appointmentQueries   queries.AppointmentQueries
}

func NewSubscriptionHandler(
	subscriptionCommands commands.SubscriptionCommands,
	generator commands.AppointmentGenerator,
	subscriptionQueries queries.SubscriptionQueries,
	appointmentQueries queries.AppointmentQueries,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionCommands: subscriptionCommands,
		generator:            generator,
		subscriptionQueries:  subscriptionQueries,
		appointmentQueries:   appointmentQueries,
	}
}

// @Summary Create subscription
// @Description Register a recurring grooming client
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSubscriptionRequest true "Subscription request"
// @Success 201 {object} resdto.SubscriptionResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /subscriptions [post]
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req reqdto.CreateSubscriptionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.subscriptionCommands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	view, err := h.subscriptionQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusCreated, gin.H{"id": id})
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSubscriptionView(view))
}

// @Summary Get subscription
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} resdto.SubscriptionResponse
// @Failure 404 {object} map[string]string
// @Router /subscriptions/{id} [get]
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid subscription ID format",
		})
		return
	}

	view, err := h.subscriptionQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrSubscriptionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Subscription not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubscriptionView(view))
}

// @Summary List subscriptions
// @Tags subscriptions
// @Produce json
// @Param active query bool false "Only active subscriptions"
// @Success 200 {array} resdto.SubscriptionListResponse
// @Router /subscriptions [get]
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	items, err := h.subscriptionQueries.List(c.Request.Context(), activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.SubscriptionListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromSubscriptionListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Update subscription
// @Description Edit price, recurrence or contact details
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param id path string true "Subscription ID"
// @Param request body reqdto.UpdateSubscriptionRequest true "Fields to update"
// @Success 200 {object} resdto.SubscriptionResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /subscriptions/{id} [patch]
func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid subscription ID format",
		})
		return
	}

	var req reqdto.UpdateSubscriptionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.subscriptionCommands.Update(c.Request.Context(), id, req.ToParams()); err != nil {
		h.respondCommandError(c, err)
		return
	}

	view, err := h.subscriptionQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubscriptionView(view))
}

// @Summary Deactivate subscription
// @Description Stop future generation while keeping history
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /subscriptions/{id}/deactivate [post]
func (h *SubscriptionHandler) DeactivateSubscription(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid subscription ID format",
		})
		return
	}

	if err := h.subscriptionCommands.Deactivate(c.Request.Context(), id); err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Generate appointments
// @Description Unroll the recurrence rule into concrete appointments
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} resdto.GenerateResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /subscriptions/{id}/appointments/generate [post]
func (h *SubscriptionHandler) GenerateAppointments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid subscription ID format",
		})
		return
	}

	result, err := h.generator.GenerateAppointments(c.Request.Context(), id)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGenerateResult(result))
}

// @Summary List subscription appointments
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {array} resdto.AppointmentResponse
// @Router /subscriptions/{id}/appointments [get]
func (h *SubscriptionHandler) ListAppointments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid subscription ID format",
		})
		return
	}

	views, err := h.appointmentQueries.ListBySubscription(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentViews(views))
}

func (h *SubscriptionHandler) ToggleExtra(c *gin.Context) {
	handleExtras(c, commands.ExtrasOpToggle, h.subscriptionCommands.ApplyExtras, commands.ErrSubscriptionNotFound)
}

func (h *SubscriptionHandler) SetExtraValue(c *gin.Context) {
	handleExtras(c, commands.ExtrasOpSetValue, h.subscriptionCommands.ApplyExtras, commands.ErrSubscriptionNotFound)
}

func (h *SubscriptionHandler) SetExtraQuantity(c *gin.Context) {
	handleExtras(c, commands.ExtrasOpSetQuantity, h.subscriptionCommands.ApplyExtras, commands.ErrSubscriptionNotFound)
}

func (h *SubscriptionHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrSubscriptionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Subscription not found",
		})
	case errors.Is(err, commands.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
