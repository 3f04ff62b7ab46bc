package request

import (
	"petagenda/internal/domain/billing"
	"petagenda/internal/domain/recurrence"
	"petagenda/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type RecurrenceRuleRequest struct {
	Kind          string `json:"kind" binding:"required,recurrence_kind"`
	AnchorWeekday int    `json:"anchor_weekday" binding:"omitempty,min=1,max=7"`
	AnchorDay     int    `json:"anchor_day" binding:"omitempty,min=1,max=31"`
	HourOfDay     int    `json:"hour_of_day" binding:"min=0,max=23"`
}

func (r RecurrenceRuleRequest) ToDomain() recurrence.Rule {
	return recurrence.Rule{
		Kind:          recurrence.Kind(r.Kind),
		AnchorWeekday: r.AnchorWeekday,
		AnchorDay:     r.AnchorDay,
		HourOfDay:     r.HourOfDay,
	}
}

type CreateSubscriptionRequest struct {
	PetName     string                `json:"pet_name" binding:"required"`
	OwnerName   string                `json:"owner_name" binding:"required"`
	Address     string                `json:"address"`
	Phone       string                `json:"phone"`
	Rule        RecurrenceRuleRequest `json:"rule" binding:"required"`
	PeriodPrice decimal.Decimal       `json:"period_price" binding:"required"`
	Extras      billing.Snapshot      `json:"extras"`
}

func (r CreateSubscriptionRequest) ToParams() commands.CreateSubscriptionParams {
	return commands.CreateSubscriptionParams{
		PetName:     r.PetName,
		OwnerName:   r.OwnerName,
		Address:     r.Address,
		Phone:       r.Phone,
		Rule:        r.Rule.ToDomain(),
		PeriodPrice: r.PeriodPrice,
		Extras:      r.Extras,
	}
}

// UpdateSubscriptionRequest carries partial edits; nil means unchanged.
type UpdateSubscriptionRequest struct {
	PeriodPrice *decimal.Decimal       `json:"period_price"`
	Rule        *RecurrenceRuleRequest `json:"rule"`
	Address     *string                `json:"address"`
	Phone       *string                `json:"phone"`
}

func (r UpdateSubscriptionRequest) ToParams() commands.UpdateSubscriptionParams {
	params := commands.UpdateSubscriptionParams{
		PeriodPrice: r.PeriodPrice,
		Address:     r.Address,
		Phone:       r.Phone,
	}
	if r.Rule != nil {
		rule := r.Rule.ToDomain()
		params.Rule = &rule
	}
	return params
}
