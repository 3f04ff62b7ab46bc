package response

import (
	"time"

	"petagenda/internal/domain/billing"
	"petagenda/internal/usecase/commands"
	"petagenda/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type AppointmentResponse struct {
	ID             uuid.UUID        `json:"id"`
	SubscriptionID *uuid.UUID       `json:"subscriptionId,omitempty"`
	PetName        string           `json:"petName"`
	OwnerName      string           `json:"ownerName,omitempty"`
	ScheduledAt    time.Time        `json:"scheduledAt"`
	UnitPrice      decimal.Decimal  `json:"unitPrice"`
	Extras         billing.Snapshot `json:"extras"`
	Status         string           `json:"status"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

type GenerateResponse struct {
	Created int  `json:"created"`
	CapHit  bool `json:"capHit"`
}

func FromAppointmentView(rm *queries.AppointmentView) *AppointmentResponse {
	var resp AppointmentResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromAppointmentViews(rms []*queries.AppointmentView) []*AppointmentResponse {
	out := make([]*AppointmentResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromAppointmentView(rm)
	}
	return out
}

func FromGenerateResult(result *commands.GenerateResult) *GenerateResponse {
	return &GenerateResponse{
		Created: result.Created,
		CapHit:  result.CapHit,
	}
}
