//go:build unit

package billing_test

import (
	"testing"

	"petagenda/internal/domain/billing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComposeTotal(t *testing.T) {
	t.Run("sums base plus enabled entries plus quantity contribution", func(t *testing.T) {
		snap := billing.Snapshot{
			billing.KeyPernoite:   {Enabled: true, Value: "50"},
			billing.KeyDiasExtras: {Quantity: 2, Value: "20"},
		}
		total := billing.ComposeTotal(dec("100"), snap, nil)
		assert.True(t, dec("190").Equal(total), "got %s", total)
	})

	t.Run("disabled entries are worth zero", func(t *testing.T) {
		snap := billing.Snapshot{
			billing.KeyPernoite: {Enabled: false, Value: "50"},
		}
		total := billing.ComposeTotal(dec("100"), snap, nil)
		assert.True(t, dec("100").Equal(total))
	})

	t.Run("unset value counts as zero even when enabled", func(t *testing.T) {
		snap := billing.Snapshot{
			billing.KeyAdestrador: {Enabled: true},
		}
		total := billing.ComposeTotal(dec("100"), snap, nil)
		assert.True(t, dec("100").Equal(total))
	})

	t.Run("dias_extras needs a positive quantity", func(t *testing.T) {
		snap := billing.Snapshot{
			billing.KeyDiasExtras: {Enabled: true, Value: "35", Quantity: 0},
		}
		total := billing.ComposeTotal(dec("100"), snap, nil)
		assert.True(t, dec("100").Equal(total))
	})

	t.Run("ignored keys never contribute", func(t *testing.T) {
		snap := billing.Snapshot{
			billing.KeyBanhoTosa: {Enabled: true, Value: "80"},
			billing.KeyPernoite:  {Enabled: true, Value: "50"},
		}
		ignored := map[string]struct{}{billing.KeyBanhoTosa: {}}
		total := billing.ComposeTotal(dec("100"), snap, ignored)
		assert.True(t, dec("150").Equal(total))
	})

	t.Run("never goes negative", func(t *testing.T) {
		snap := billing.Snapshot{
			billing.KeyDespesaMedica: {Enabled: true, Value: "-500"},
		}
		total := billing.ComposeTotal(dec("100"), snap, nil)
		assert.True(t, total.IsZero())
	})
}

func TestTariffValue(t *testing.T) {
	tariff, err := billing.ParseTariff(map[string]string{
		billing.KeyPernoite:   "50",
		billing.KeyDiasExtras: "35",
	})
	require.NoError(t, err)

	t.Run("prices from the catalog, not the stored value", func(t *testing.T) {
		snap := billing.Snapshot{
			billing.KeyPernoite: {Enabled: true, Value: "999"},
		}
		assert.True(t, dec("50").Equal(billing.TariffValue(snap, tariff)))
	})

	t.Run("keys missing from the tariff are worth zero", func(t *testing.T) {
		snap := billing.Snapshot{
			billing.KeyAdestrador: {Enabled: true, Value: "100"},
		}
		assert.True(t, billing.TariffValue(snap, tariff).IsZero())
	})

	t.Run("dias_extras counts once through quantity, not multiplied", func(t *testing.T) {
		snap := billing.Snapshot{
			billing.KeyDiasExtras: {Quantity: 3, Value: "20"},
		}
		assert.True(t, dec("35").Equal(billing.TariffValue(snap, tariff)))
	})

	t.Run("diverges from the per-entry valuation", func(t *testing.T) {
		snap := billing.Snapshot{
			billing.KeyPernoite: {Enabled: true, Value: "70"},
		}
		composed := billing.ComposeTotal(decimal.Zero, snap, nil)
		catalog := billing.TariffValue(snap, tariff)
		assert.True(t, dec("70").Equal(composed))
		assert.True(t, dec("50").Equal(catalog))
	})
}

func TestParseTariff(t *testing.T) {
	_, err := billing.ParseTariff(map[string]string{"pernoite": "abc"})
	assert.Error(t, err)
}

func TestApplyReset(t *testing.T) {
	assert.True(t, dec("450").Equal(billing.ApplyReset(dec("500"), dec("50"))))
	assert.True(t, billing.ApplyReset(dec("30"), dec("50")).IsZero())
}

func TestRound2(t *testing.T) {
	assert.Equal(t, "83.33", billing.Round2(dec("83.3325")).StringFixed(2))
	assert.Equal(t, "83.34", billing.Round2(dec("83.335")).StringFixed(2))
}
