package api

import (
	"errors"
	"net/http"

	"petagenda/internal/domain/boarding"
	reqdto "petagenda/internal/handler/dto/request"
	resdto "petagenda/internal/handler/dto/response"
	"petagenda/internal/usecase/commands"
	"petagenda/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BoardingHandler serves one boarding category; the router mounts one
// instance under /daycare and another under /hotel.
type BoardingHandler struct {
	category         boarding.Category
	boardingCommands commands.BoardingCommands
	boardingQueries  queries.BoardingQueries
}

func NewBoardingHandler(
	category boarding.Category,
	boardingCommands commands.BoardingCommands,
	boardingQueries queries.BoardingQueries,
) *BoardingHandler {
	return &BoardingHandler{
		category:         category,
		boardingCommands: boardingCommands,
		boardingQueries:  boardingQueries,
	}
}

// DaycareHandler and HotelHandler are thin distinct types so dependency
// injection can tell the two category-bound handlers apart.
type DaycareHandler struct {
	h *BoardingHandler
}

func NewDaycareHandler(boardingCommands commands.BoardingCommands, boardingQueries queries.BoardingQueries) *DaycareHandler {
	return &DaycareHandler{h: NewBoardingHandler(boarding.CategoryDaycare, boardingCommands, boardingQueries)}
}

func (d *DaycareHandler) Handler() *BoardingHandler { return d.h }

type HotelHandler struct {
	h *BoardingHandler
}

func NewHotelHandler(boardingCommands commands.BoardingCommands, boardingQueries queries.BoardingQueries) *HotelHandler {
	return &HotelHandler{h: NewBoardingHandler(boarding.CategoryHotel, boardingCommands, boardingQueries)}
}

func (h *HotelHandler) Handler() *BoardingHandler { return h.h }

// @Summary Create boarding record
// @Description Enroll a pet for daycare or hotel boarding
// @Tags boarding
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBoardingRequest true "Boarding request"
// @Success 201 {object} resdto.BoardingResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /daycare [post]
func (h *BoardingHandler) CreateRecord(c *gin.Context) {
	var req reqdto.CreateBoardingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.boardingCommands.Create(c.Request.Context(), req.ToParams(h.category))
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

	view, err := h.boardingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusCreated, gin.H{"id": id})
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBoardingView(view))
}

// @Summary Get boarding record
// @Tags boarding
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} resdto.BoardingResponse
// @Failure 404 {object} map[string]string
// @Router /daycare/{id} [get]
func (h *BoardingHandler) GetRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid record ID format",
		})
		return
	}

	view, err := h.boardingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBoardingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Record not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromBoardingView(view))
}

// @Summary List boarding records
// @Tags boarding
// @Produce json
// @Param active query bool false "Only active records"
// @Success 200 {array} resdto.BoardingResponse
// @Router /daycare [get]
func (h *BoardingHandler) ListRecords(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	views, err := h.boardingQueries.List(c.Request.Context(), h.category, activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBoardingViews(views))
}

// @Summary Deactivate boarding record
// @Tags boarding
// @Produce json
// @Param id path string true "Record ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /daycare/{id}/deactivate [post]
func (h *BoardingHandler) DeactivateRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid record ID format",
		})
		return
	}

	if err := h.boardingCommands.Deactivate(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrBoardingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Record not found",
			})
		case errors.Is(err, commands.ErrValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Record is already inactive",
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

func (h *BoardingHandler) ToggleExtra(c *gin.Context) {
	handleExtras(c, commands.ExtrasOpToggle, h.boardingCommands.ApplyExtras, commands.ErrBoardingNotFound)
}

func (h *BoardingHandler) SetExtraValue(c *gin.Context) {
	handleExtras(c, commands.ExtrasOpSetValue, h.boardingCommands.ApplyExtras, commands.ErrBoardingNotFound)
}

func (h *BoardingHandler) SetExtraQuantity(c *gin.Context) {
	handleExtras(c, commands.ExtrasOpSetQuantity, h.boardingCommands.ApplyExtras, commands.ErrBoardingNotFound)
}
