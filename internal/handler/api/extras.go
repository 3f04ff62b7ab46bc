package api

import (
	"context"
	"errors"
	"net/http"

	"petagenda/internal/domain/billing"
	reqdto "petagenda/internal/handler/dto/request"
	"petagenda/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type extrasApplier func(ctx context.Context, id uuid.UUID, action commands.ExtrasAction) (billing.Snapshot, error)

// handleExtras binds one ledger mutation and applies it through the given
// command, mapping the shared error taxonomy. notFound is the entity's own
// not-found sentinel.
func handleExtras(c *gin.Context, op commands.ExtrasOp, apply extrasApplier, notFound error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return
	}

	var req reqdto.ExtrasActionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	snapshot, err := apply(c.Request.Context(), id, req.ToAction(op))
	if err != nil {
		switch {
		case errors.Is(err, notFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Record not found",
			})
		case errors.Is(err, commands.ErrValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Extra value is not a number",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"extras": snapshot})
}
