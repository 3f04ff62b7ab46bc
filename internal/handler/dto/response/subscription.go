package response

import (
	"time"

	"petagenda/internal/domain/billing"
	"petagenda/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type SubscriptionResponse struct {
	ID            uuid.UUID        `json:"id"`
	PetName       string           `json:"petName"`
	OwnerName     string           `json:"ownerName"`
	Address       string           `json:"address,omitempty"`
	Phone         string           `json:"phone,omitempty"`
	RuleKind      string           `json:"ruleKind"`
	AnchorWeekday int              `json:"anchorWeekday,omitempty"`
	AnchorDay     int              `json:"anchorDay,omitempty"`
	HourOfDay     int              `json:"hourOfDay"`
	PeriodPrice   decimal.Decimal  `json:"periodPrice"`
	Extras        billing.Snapshot `json:"extras"`
	Total         decimal.Decimal  `json:"total"`
	Active        bool             `json:"active"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

type SubscriptionListResponse struct {
	ID          uuid.UUID       `json:"id"`
	PetName     string          `json:"petName"`
	OwnerName   string          `json:"ownerName"`
	RuleKind    string          `json:"ruleKind"`
	PeriodPrice decimal.Decimal `json:"periodPrice"`
	Total       decimal.Decimal `json:"total"`
	Active      bool            `json:"active"`
}

func FromSubscriptionView(rm *queries.SubscriptionView) *SubscriptionResponse {
	var resp SubscriptionResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromSubscriptionListItem(rm *queries.SubscriptionListItem) *SubscriptionListResponse {
	var resp SubscriptionListResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
