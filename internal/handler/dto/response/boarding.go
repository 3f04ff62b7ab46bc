package response

import (
	"time"

	"petagenda/internal/domain/billing"
	"petagenda/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type BoardingResponse struct {
	ID        uuid.UUID        `json:"id"`
	Category  string           `json:"category"`
	PetName   string           `json:"petName"`
	OwnerName string           `json:"ownerName"`
	Phone     string           `json:"phone,omitempty"`
	BasePrice decimal.Decimal  `json:"basePrice"`
	Extras    billing.Snapshot `json:"extras"`
	Total     decimal.Decimal  `json:"total"`
	Active    bool             `json:"active"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

func FromBoardingView(rm *queries.BoardingView) *BoardingResponse {
	var resp BoardingResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromBoardingViews(rms []*queries.BoardingView) []*BoardingResponse {
	out := make([]*BoardingResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromBoardingView(rm)
	}
	return out
}
