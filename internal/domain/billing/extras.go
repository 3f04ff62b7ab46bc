package billing

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrMalformedAmount = errors.New("extra value is not a number")

// Well-known extra-service keys. The snapshot is open-ended: ad-hoc add-on
// keys are accepted alongside these.
const (
	KeyPernoite      = "pernoite"
	KeyBanhoTosa     = "banho_tosa"
	KeySoBanho       = "so_banho"
	KeyAdestrador    = "adestrador"
	KeyHidratacao    = "hidratacao"
	KeyDespesaMedica = "despesa_medica"
	KeyDiasExtras    = "dias_extras"
)

// Entry is the toggle/value/quantity state of one extra service.
//
// Value holds the raw amount text as typed while a record is being edited;
// the empty string means "unset", which is distinct from zero so display
// logic can tell "disabled" apart from "enabled at R$0,00". Quantity is
// meaningful only for dias_extras, whose contribution is quantity × value
// rather than a flat value.
type Entry struct {
	Enabled  bool   `json:"enabled"`
	Value    string `json:"value,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
}

// Snapshot maps extra-service keys to their entries. It is the billing unit
// for optional-service surcharges on appointments, subscriptions, daycare
// enrollments and hotel registrations alike.
type Snapshot map[string]Entry

func (s Snapshot) IsEmpty() bool {
	return len(s) == 0
}

func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Toggle flips the enabled flag of key, returning a fresh snapshot. For
// dias_extras the quantity is cleared in both directions: it must be
// explicitly re-entered each time the feature is re-enabled.
func Toggle(s Snapshot, key string) Snapshot {
	out := s.Clone()
	if out == nil {
		out = Snapshot{}
	}
	e := out[key]
	e.Enabled = !e.Enabled
	if key == KeyDiasExtras {
		e.Quantity = 0
	}
	out[key] = e
	return out
}

// SetValue stores the raw amount text unconverted; conversion happens at
// persistence time via Sanitize.
func SetValue(s Snapshot, key string, raw string) Snapshot {
	out := s.Clone()
	if out == nil {
		out = Snapshot{}
	}
	e := out[key]
	e.Value = strings.TrimSpace(raw)
	out[key] = e
	return out
}

// SetQuantity parses raw as an integer, defaulting to 1 when unparsable and
// never dropping below 1. Only dias_extras carries a meaningful quantity.
func SetQuantity(s Snapshot, key string, raw string) Snapshot {
	out := s.Clone()
	if out == nil {
		out = Snapshot{}
	}
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || qty < 1 {
		qty = 1
	}
	e := out[key]
	e.Quantity = qty
	out[key] = e
	return out
}

// Total is the surcharge of the snapshot alone, with no base price and no
// ignored keys.
func Total(s Snapshot) decimal.Decimal {
	return ComposeTotal(decimal.Zero, s, nil)
}

// Sanitize converts raw entry text into canonical numeric form for
// persistence. Unset values stay unset (never coerced to zero); a non-empty
// value that does not parse as a number is a validation error. Entries that
// are neither enabled nor quantity-positive are dropped so dead edits never
// reach the store.
func Sanitize(s Snapshot) (Snapshot, error) {
	if len(s) == 0 {
		return Snapshot{}, nil
	}
	out := make(Snapshot, len(s))
	for key, e := range s {
		if !e.Enabled && e.Quantity <= 0 {
			continue
		}
		value := strings.TrimSpace(e.Value)
		if value != "" {
			d, err := decimal.NewFromString(value)
			if err != nil {
				return nil, ErrMalformedAmount
			}
			value = d.String()
		}
		if key != KeyDiasExtras {
			e.Quantity = 0
		}
		e.Value = value
		out[key] = e
	}
	return out, nil
}

// amount mirrors the permissive coercion used on the edit path: unset or
// malformed text counts as zero.
func amount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}
