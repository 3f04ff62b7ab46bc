package queries

import (
	"time"

	"petagenda/internal/domain/billing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type SubscriptionView struct {
	ID            uuid.UUID        `json:"id"`
	PetName       string           `json:"pet_name"`
	OwnerName     string           `json:"owner_name"`
	Address       string           `json:"address,omitempty"`
	Phone         string           `json:"phone,omitempty"`
	RuleKind      string           `json:"rule_kind"`
	AnchorWeekday int              `json:"anchor_weekday,omitempty"`
	AnchorDay     int              `json:"anchor_day,omitempty"`
	HourOfDay     int              `json:"hour_of_day"`
	PeriodPrice   decimal.Decimal  `json:"period_price"`
	Extras        billing.Snapshot `json:"extras"`
	Total         decimal.Decimal  `json:"total"`
	Active        bool             `json:"active"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type SubscriptionListItem struct {
	ID          uuid.UUID       `json:"id"`
	PetName     string          `json:"pet_name"`
	OwnerName   string          `json:"owner_name"`
	RuleKind    string          `json:"rule_kind"`
	PeriodPrice decimal.Decimal `json:"period_price"`
	Total       decimal.Decimal `json:"total"`
	Active      bool            `json:"active"`
}

type AppointmentView struct {
	ID             uuid.UUID        `json:"id"`
	SubscriptionID *uuid.UUID       `json:"subscription_id,omitempty"`
	PetName        string           `json:"pet_name"`
	OwnerName      string           `json:"owner_name,omitempty"`
	ScheduledAt    time.Time        `json:"scheduled_at"`
	UnitPrice      decimal.Decimal  `json:"unit_price"`
	Extras         billing.Snapshot `json:"extras"`
	Status         string           `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type BoardingView struct {
	ID        uuid.UUID        `json:"id"`
	Category  string           `json:"category"`
	PetName   string           `json:"pet_name"`
	OwnerName string           `json:"owner_name"`
	Phone     string           `json:"phone,omitempty"`
	BasePrice decimal.Decimal  `json:"base_price"`
	Extras    billing.Snapshot `json:"extras"`
	Total     decimal.Decimal  `json:"total"`
	Active    bool             `json:"active"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type ResetMarkerView struct {
	PeriodKey          string     `json:"period_key"`
	Status             string     `json:"status"`
	ClaimedAt          time.Time  `json:"claimed_at"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	SubscriptionsSwept int        `json:"subscriptions_swept"`
	DaycareSwept       int        `json:"daycare_swept"`
	HotelSwept         int        `json:"hotel_swept"`
	Errors             []string   `json:"errors,omitempty"`
}
