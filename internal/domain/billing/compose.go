package billing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Two distinct valuations answer "how much are the enabled extras worth":
//
//   - ComposeTotal prices ad-hoc extras from each entry's own stored value.
//   - TariffValue prices standardized-catalog extras from a fixed external
//     price table, ignoring the stored values entirely.
//
// The monthly reset uses TariffValue; display and appointment pricing use
// ComposeTotal. Keep them separate: unifying them changes what clients are
// charged.

// ComposeTotal starts from base and adds the surcharge of every entry not in
// ignored. Disabled or absent entries are worth zero. dias_extras is the one
// quantity-driven key: it contributes quantity × value whenever quantity is
// positive, regardless of its own enabled flag. The result is never
// negative; no rounding is imposed here.
func ComposeTotal(base decimal.Decimal, s Snapshot, ignored map[string]struct{}) decimal.Decimal {
	total := base
	for key, e := range s {
		if _, skip := ignored[key]; skip {
			continue
		}
		if key == KeyDiasExtras {
			if e.Quantity > 0 {
				total = total.Add(amount(e.Value).Mul(decimal.NewFromInt(int64(e.Quantity))))
			}
			continue
		}
		if e.Enabled {
			total = total.Add(amount(e.Value))
		}
	}
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// Tariff is a flat per-key price table for one entity category.
type Tariff map[string]decimal.Decimal

// ParseTariff builds a tariff from the raw key:amount map carried in
// configuration.
func ParseTariff(raw map[string]string) (Tariff, error) {
	t := make(Tariff, len(raw))
	for key, v := range raw {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("tariff entry %q: %w", key, err)
		}
		t[key] = d
	}
	return t, nil
}

// TariffValue sums the flat tariff price of every switched-on entry. The
// entry's own stored value and quantity do not participate; keys missing
// from the tariff are worth zero.
func TariffValue(s Snapshot, tariff Tariff) decimal.Decimal {
	total := decimal.Zero
	for key, e := range s {
		if !e.Enabled && !(key == KeyDiasExtras && e.Quantity > 0) {
			continue
		}
		if price, ok := tariff[key]; ok {
			total = total.Add(price)
		}
	}
	return total
}

// ApplyReset deducts the cleared extras' catalog value from a running
// total, flooring at zero.
func ApplyReset(total, extrasValue decimal.Decimal) decimal.Decimal {
	result := total.Sub(extrasValue)
	if result.IsNegative() {
		return decimal.Zero
	}
	return result
}

// Round2 rounds to two decimal places, half away from zero, for display and
// persisted unit prices.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
