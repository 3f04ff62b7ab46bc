package subscription

import (
	"errors"
	"time"

	"petagenda/internal/domain/billing"
	"petagenda/internal/domain/recurrence"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyPetName    = errors.New("pet name is required")
	ErrEmptyOwnerName  = errors.New("owner name is required")
	ErrNegativePrice   = errors.New("period price cannot be negative")
	ErrAlreadyInactive = errors.New("subscription is already inactive")
)

// BaseVariantKeys are the keys that historically doubled as the base-service
// variant of a monthly plan. They are excluded from the extras surcharge when
// totaling a subscription so the base service is not charged twice.
var BaseVariantKeys = map[string]struct{}{
	billing.KeyBanhoTosa: {},
	billing.KeySoBanho:   {},
}

// Subscription is a monthly-client agreement: a recurrence rule, a
// monthly-equivalent period price, and the extras snapshot copied onto each
// generated appointment. Churned clients are deactivated, never deleted, so
// history survives.
type Subscription struct {
	id          uuid.UUID
	petName     string
	ownerName   string
	address     string
	phone       string
	rule        recurrence.Rule
	periodPrice decimal.Decimal
	extras      billing.Snapshot
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewSubscription(
	petName, ownerName, address, phone string,
	rule recurrence.Rule,
	periodPrice decimal.Decimal,
	extras billing.Snapshot,
) (*Subscription, error) {
	if petName == "" {
		return nil, ErrEmptyPetName
	}
	if ownerName == "" {
		return nil, ErrEmptyOwnerName
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	if periodPrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	return &Subscription{
		id:          uuid.New(),
		petName:     petName,
		ownerName:   ownerName,
		address:     address,
		phone:       phone,
		rule:        rule,
		periodPrice: periodPrice,
		extras:      extras.Clone(),
		active:      true,
	}, nil
}

func ReconstructSubscription(
	id uuid.UUID,
	petName, ownerName, address, phone string,
	rule recurrence.Rule,
	periodPrice decimal.Decimal,
	extras billing.Snapshot,
	active bool,
	createdAt, updatedAt time.Time,
) *Subscription {
	return &Subscription{
		id:          id,
		petName:     petName,
		ownerName:   ownerName,
		address:     address,
		phone:       phone,
		rule:        rule,
		periodPrice: periodPrice,
		extras:      extras,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Subscription) Deactivate() error {
	if !s.active {
		return ErrAlreadyInactive
	}
	s.active = false
	return nil
}

func (s *Subscription) ChangePeriodPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	s.periodPrice = price
	return nil
}

func (s *Subscription) ChangeRule(rule recurrence.Rule) error {
	if err := rule.Validate(); err != nil {
		return err
	}
	s.rule = rule
	return nil
}

func (s *Subscription) ChangeAddress(address string) {
	s.address = address
}

func (s *Subscription) ChangePhone(phone string) {
	s.phone = phone
}

func (s *Subscription) ReplaceExtras(extras billing.Snapshot) {
	s.extras = extras.Clone()
}

// UnitPrice is the per-occurrence price derived from the monthly-equivalent
// period price: a quarter of it for weekly rules, half for bi-weekly, the
// full figure for monthly. Rounded to two decimal places, half-up.
func (s *Subscription) UnitPrice() decimal.Decimal {
	switch s.rule.Kind {
	case recurrence.KindWeekly:
		return s.periodPrice.DivRound(decimal.NewFromInt(4), 2)
	case recurrence.KindBiWeekly:
		return s.periodPrice.DivRound(decimal.NewFromInt(2), 2)
	default:
		return billing.Round2(s.periodPrice)
	}
}

// Total is the subscription's monthly charge: period price plus the extras
// surcharge, with base-variant keys excluded.
func (s *Subscription) Total() decimal.Decimal {
	return billing.ComposeTotal(s.periodPrice, s.extras, BaseVariantKeys)
}

func (s *Subscription) ID() uuid.UUID                { return s.id }
func (s *Subscription) PetName() string              { return s.petName }
func (s *Subscription) OwnerName() string            { return s.ownerName }
func (s *Subscription) Address() string              { return s.address }
func (s *Subscription) Phone() string                { return s.phone }
func (s *Subscription) Rule() recurrence.Rule        { return s.rule }
func (s *Subscription) PeriodPrice() decimal.Decimal { return s.periodPrice }
func (s *Subscription) Extras() billing.Snapshot     { return s.extras }
func (s *Subscription) IsActive() bool               { return s.active }
func (s *Subscription) CreatedAt() time.Time         { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time         { return s.updatedAt }
