//go:build unit

package billing_test

import (
	"testing"

	"petagenda/internal/domain/billing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle(t *testing.T) {
	t.Run("enables an absent key", func(t *testing.T) {
		snap := billing.Toggle(nil, billing.KeyPernoite)
		assert.True(t, snap[billing.KeyPernoite].Enabled)
	})

	t.Run("double toggle returns to disabled", func(t *testing.T) {
		snap := billing.Toggle(nil, billing.KeyPernoite)
		snap = billing.Toggle(snap, billing.KeyPernoite)
		assert.False(t, snap[billing.KeyPernoite].Enabled)
	})

	t.Run("keeps the stored value across toggles", func(t *testing.T) {
		snap := billing.SetValue(nil, billing.KeyHidratacao, "40")
		snap = billing.Toggle(snap, billing.KeyHidratacao)
		assert.Equal(t, "40", snap[billing.KeyHidratacao].Value)
	})

	t.Run("clears dias_extras quantity in both directions", func(t *testing.T) {
		snap := billing.SetQuantity(nil, billing.KeyDiasExtras, "3")
		snap = billing.Toggle(snap, billing.KeyDiasExtras)
		assert.Zero(t, snap[billing.KeyDiasExtras].Quantity)

		snap = billing.SetQuantity(snap, billing.KeyDiasExtras, "2")
		snap = billing.Toggle(snap, billing.KeyDiasExtras)
		assert.Zero(t, snap[billing.KeyDiasExtras].Quantity)
	})

	t.Run("does not mutate the input snapshot", func(t *testing.T) {
		orig := billing.Snapshot{billing.KeyPernoite: {Enabled: true}}
		_ = billing.Toggle(orig, billing.KeyPernoite)
		assert.True(t, orig[billing.KeyPernoite].Enabled)
	})
}

func TestSetValue(t *testing.T) {
	t.Run("stores raw text trimmed", func(t *testing.T) {
		snap := billing.SetValue(nil, billing.KeyPernoite, "  50,00  ")
		assert.Equal(t, "50,00", snap[billing.KeyPernoite].Value)
	})

	t.Run("empty text means unset, not zero", func(t *testing.T) {
		snap := billing.SetValue(nil, billing.KeyPernoite, "")
		assert.Empty(t, snap[billing.KeyPernoite].Value)
	})
}

func TestSetQuantity(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{name: "parses a plain integer", raw: "3", want: 3},
		{name: "unparsable defaults to one", raw: "abc", want: 1},
		{name: "zero floors to one", raw: "0", want: 1},
		{name: "negative floors to one", raw: "-2", want: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := billing.SetQuantity(nil, billing.KeyDiasExtras, tc.raw)
			assert.Equal(t, tc.want, snap[billing.KeyDiasExtras].Quantity)
		})
	}
}

func TestSanitize(t *testing.T) {
	t.Run("normalizes numeric text", func(t *testing.T) {
		snap := billing.Snapshot{
			billing.KeyPernoite: {Enabled: true, Value: "50.00"},
		}
		out, err := billing.Sanitize(snap)
		require.NoError(t, err)
		assert.Equal(t, "50", out[billing.KeyPernoite].Value)
	})

	t.Run("unset value survives untouched", func(t *testing.T) {
		snap := billing.Snapshot{
			billing.KeyAdestrador: {Enabled: true},
		}
		out, err := billing.Sanitize(snap)
		require.NoError(t, err)
		entry, ok := out[billing.KeyAdestrador]
		require.True(t, ok)
		assert.Empty(t, entry.Value)
	})

	t.Run("rejects non-numeric text", func(t *testing.T) {
		snap := billing.Snapshot{
			billing.KeyPernoite: {Enabled: true, Value: "cinquenta"},
		}
		_, err := billing.Sanitize(snap)
		assert.ErrorIs(t, err, billing.ErrMalformedAmount)
	})

	t.Run("drops dead entries", func(t *testing.T) {
		snap := billing.Snapshot{
			billing.KeyPernoite:   {Enabled: false, Value: "50"},
			billing.KeyDiasExtras: {Enabled: false, Quantity: 0},
			billing.KeySoBanho:    {Enabled: true, Value: "45"},
		}
		out, err := billing.Sanitize(snap)
		require.NoError(t, err)

		want := billing.Snapshot{
			billing.KeySoBanho: {Enabled: true, Value: "45"},
		}
		if diff := cmp.Diff(want, out, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Snapshot mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("keeps dias_extras alive through quantity alone", func(t *testing.T) {
		snap := billing.Snapshot{
			billing.KeyDiasExtras: {Enabled: false, Quantity: 2, Value: "35"},
		}
		out, err := billing.Sanitize(snap)
		require.NoError(t, err)
		assert.Equal(t, 2, out[billing.KeyDiasExtras].Quantity)
	})

	t.Run("zeroes quantity on non-quantity keys", func(t *testing.T) {
		snap := billing.Snapshot{
			billing.KeyPernoite: {Enabled: true, Value: "50", Quantity: 4},
		}
		out, err := billing.Sanitize(snap)
		require.NoError(t, err)
		assert.Zero(t, out[billing.KeyPernoite].Quantity)
	})

	t.Run("empty snapshot sanitizes to empty", func(t *testing.T) {
		out, err := billing.Sanitize(nil)
		require.NoError(t, err)
		assert.True(t, out.IsEmpty())
	})
}
