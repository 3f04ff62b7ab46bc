package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "petagenda/internal/handler/dto/request"
	resdto "petagenda/internal/handler/dto/response"
	"petagenda/internal/pkg/clock"
	"petagenda/internal/usecase/commands"
	"petagenda/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	appointmentCommands commands.AppointmentCommands
	appointmentQueries  queries.AppointmentQueries
	clock               clock.Clock
}

func NewAppointmentHandler(
	appointmentCommands commands.AppointmentCommands,
	appointmentQueries queries.AppointmentQueries,
	clk clock.Clock,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentCommands: appointmentCommands,
		appointmentQueries:  appointmentQueries,
		clock:               clk,
	}
}

// @Summary Create one-off appointment
// @Description Book a single visit, optionally tied to a subscription
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAppointmentRequest true "Appointment request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req reqdto.CreateAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.appointmentCommands.CreateOneOff(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateAppointment):
			c.JSON(http.StatusConflict, gin.H{
				"error": "An appointment already exists at this time",
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
		return
	}

	view, err := h.appointmentQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusCreated, gin.H{"id": id})
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAppointmentView(view))
}

// @Summary Get appointment
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 404 {object} map[string]string
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	view, err := h.appointmentQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary List upcoming appointments
// @Description Scheduled appointments from now onward, soonest first
// @Tags appointments
// @Produce json
// @Param limit query int false "Maximum results"
// @Success 200 {array} resdto.AppointmentResponse
// @Router /appointments [get]
func (h *AppointmentHandler) ListUpcoming(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	views, err := h.appointmentQueries.ListUpcoming(c.Request.Context(), h.clock.Now(), int32(limit))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentViews(views))
}

// @Summary Complete appointment
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments/{id}/complete [post]
func (h *AppointmentHandler) CompleteAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	if err := h.appointmentCommands.Complete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		case errors.Is(err, commands.ErrValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Appointment cannot be completed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) ToggleExtra(c *gin.Context) {
	handleExtras(c, commands.ExtrasOpToggle, h.appointmentCommands.ApplyExtras, commands.ErrAppointmentNotFound)
}

func (h *AppointmentHandler) SetExtraValue(c *gin.Context) {
	handleExtras(c, commands.ExtrasOpSetValue, h.appointmentCommands.ApplyExtras, commands.ErrAppointmentNotFound)
}

func (h *AppointmentHandler) SetExtraQuantity(c *gin.Context) {
	handleExtras(c, commands.ExtrasOpSetQuantity, h.appointmentCommands.ApplyExtras, commands.ErrAppointmentNotFound)
}
