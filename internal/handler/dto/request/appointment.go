package request

import (
	"time"

	"petagenda/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateAppointmentRequest struct {
	SubscriptionID *uuid.UUID      `json:"subscription_id"`
	PetName        string          `json:"pet_name" binding:"required"`
	OwnerName      string          `json:"owner_name"`
	ScheduledAt    time.Time       `json:"scheduled_at" binding:"required"`
	UnitPrice      decimal.Decimal `json:"unit_price" binding:"required"`
}

func (r CreateAppointmentRequest) ToParams() commands.CreateAppointmentParams {
	return commands.CreateAppointmentParams{
		SubscriptionID: r.SubscriptionID,
		PetName:        r.PetName,
		OwnerName:      r.OwnerName,
		ScheduledAt:    r.ScheduledAt,
		UnitPrice:      r.UnitPrice,
	}
}
