package boarding

import (
	"errors"
	"time"

	"petagenda/internal/domain/billing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyPetName      = errors.New("pet name is required")
	ErrNegativePrice     = errors.New("base price cannot be negative")
	ErrInvalidCategory   = errors.New("invalid boarding category")
	ErrAlreadyCheckedOut = errors.New("record is already inactive")
)

// Category distinguishes the two boarding products that carry extras.
type Category string

const (
	CategoryDaycare Category = "daycare"
	CategoryHotel   Category = "hotel"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryDaycare, CategoryHotel:
		return true
	default:
		return false
	}
}

// Record is a daycare enrollment or hotel registration: a base price, an
// extras snapshot and a running total. The monthly reset sweeps active
// records, deducting the catalog value of their extras from the total.
type Record struct {
	id        uuid.UUID
	category  Category
	petName   string
	ownerName string
	phone     string
	basePrice decimal.Decimal
	extras    billing.Snapshot
	total     decimal.Decimal
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewRecord(
	category Category,
	petName, ownerName, phone string,
	basePrice decimal.Decimal,
) (*Record, error) {
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if petName == "" {
		return nil, ErrEmptyPetName
	}
	if basePrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	return &Record{
		id:        uuid.New(),
		category:  category,
		petName:   petName,
		ownerName: ownerName,
		phone:     phone,
		basePrice: basePrice,
		extras:    billing.Snapshot{},
		total:     basePrice,
		active:    true,
	}, nil
}

func ReconstructRecord(
	id uuid.UUID,
	category Category,
	petName, ownerName, phone string,
	basePrice decimal.Decimal,
	extras billing.Snapshot,
	total decimal.Decimal,
	active bool,
	createdAt, updatedAt time.Time,
) *Record {
	return &Record{
		id:        id,
		category:  category,
		petName:   petName,
		ownerName: ownerName,
		phone:     phone,
		basePrice: basePrice,
		extras:    extras,
		total:     total,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ReplaceExtras swaps the snapshot and recomputes the running total from the
// base price and the entries' own stored values.
func (r *Record) ReplaceExtras(extras billing.Snapshot) {
	r.extras = extras.Clone()
	r.total = billing.ComposeTotal(r.basePrice, r.extras, nil)
}

func (r *Record) Deactivate() error {
	if !r.active {
		return ErrAlreadyCheckedOut
	}
	r.active = false
	return nil
}

func (r *Record) ID() uuid.UUID              { return r.id }
func (r *Record) Category() Category         { return r.category }
func (r *Record) PetName() string            { return r.petName }
func (r *Record) OwnerName() string          { return r.ownerName }
func (r *Record) Phone() string              { return r.phone }
func (r *Record) BasePrice() decimal.Decimal { return r.basePrice }
func (r *Record) Extras() billing.Snapshot   { return r.extras }
func (r *Record) Total() decimal.Decimal     { return r.total }
func (r *Record) IsActive() bool             { return r.active }
func (r *Record) CreatedAt() time.Time       { return r.createdAt }
func (r *Record) UpdatedAt() time.Time       { return r.updatedAt }
