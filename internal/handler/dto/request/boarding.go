package request

import (
	"petagenda/internal/domain/boarding"
	"petagenda/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreateBoardingRequest struct {
	PetName   string          `json:"pet_name" binding:"required"`
	OwnerName string          `json:"owner_name" binding:"required"`
	Phone     string          `json:"phone"`
	BasePrice decimal.Decimal `json:"base_price" binding:"required"`
}

func (r CreateBoardingRequest) ToParams(category boarding.Category) commands.CreateBoardingParams {
	return commands.CreateBoardingParams{
		Category:  category,
		PetName:   r.PetName,
		OwnerName: r.OwnerName,
		Phone:     r.Phone,
		BasePrice: r.BasePrice,
	}
}
