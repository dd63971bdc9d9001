package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/ordertaking/domain/shared"
)

func TestNewUnitQuantity(t *testing.T) {
	t.Run("accepts 1 through 1000", func(t *testing.T) {
		for _, raw := range []int{1, 500, 1000} {
			q, err := NewUnitQuantity("Quantity", raw)
			require.NoError(t, err)
			assert.Equal(t, raw, q.Units())
		}
	})

	t.Run("rejects 0", func(t *testing.T) {
		_, err := NewUnitQuantity("Quantity", 0)
		assert.Equal(t, shared.CodeBelowMin, domainCode(t, err))
	})

	t.Run("rejects 1001", func(t *testing.T) {
		_, err := NewUnitQuantity("Quantity", 1001)
		assert.Equal(t, shared.CodeAboveMax, domainCode(t, err))
	})
}

func TestNewKilogramQuantity(t *testing.T) {
	t.Run("bounds are inclusive", func(t *testing.T) {
		for _, raw := range []float64{0.05, 2.5, 100.00} {
			q, err := NewKilogramQuantityFromFloat("Quantity", raw)
			require.NoError(t, err)
			assert.True(t, q.Amount().Equal(decimal.NewFromFloat(raw)))
		}
	})

	t.Run("rejects 0.04", func(t *testing.T) {
		_, err := NewKilogramQuantityFromFloat("Quantity", 0.04)
		assert.Equal(t, shared.CodeBelowMin, domainCode(t, err))
	})

	t.Run("rejects 100.01", func(t *testing.T) {
		_, err := NewKilogramQuantityFromFloat("Quantity", 100.01)
		assert.Equal(t, shared.CodeAboveMax, domainCode(t, err))
	})
}

func TestNewOrderQuantity(t *testing.T) {
	widget, err := NewWidgetCode("ProductCode", "W1234")
	require.NoError(t, err)
	gizmo, err := NewGizmoCode("ProductCode", "G123")
	require.NoError(t, err)

	t.Run("widget quantity truncates fractions toward the unit count", func(t *testing.T) {
		q, err := NewOrderQuantity("Quantity", widget, decimal.NewFromFloat(2.9))
		require.NoError(t, err)
		units, ok := q.(UnitQuantity)
		require.True(t, ok)
		assert.Equal(t, 2, units.Units())
		assert.True(t, q.Amount().Equal(decimal.NewFromInt(2)))
	})

	t.Run("widget quantity enforces unit bounds after truncation", func(t *testing.T) {
		_, err := NewOrderQuantity("Quantity", widget, decimal.NewFromFloat(0.9))
		assert.Equal(t, shared.CodeBelowMin, domainCode(t, err))

		_, err = NewOrderQuantity("Quantity", widget, decimal.NewFromFloat(1000.9))
		assert.NoError(t, err)

		_, err = NewOrderQuantity("Quantity", widget, decimal.NewFromInt(1001))
		assert.Equal(t, shared.CodeAboveMax, domainCode(t, err))
	})

	t.Run("gizmo quantity validates the raw decimal as kilograms", func(t *testing.T) {
		q, err := NewOrderQuantity("Quantity", gizmo, decimal.NewFromFloat(0.05))
		require.NoError(t, err)
		kg, ok := q.(KilogramQuantity)
		require.True(t, ok)
		assert.True(t, kg.Amount().Equal(decimal.NewFromFloat(0.05)))
	})

	t.Run("gizmo quantity below 0.05 fails", func(t *testing.T) {
		_, err := NewOrderQuantity("Quantity", gizmo, decimal.NewFromFloat(0.04))
		assert.Equal(t, shared.CodeBelowMin, domainCode(t, err))
	})

	t.Run("extreme widget quantities report the truthful bound", func(t *testing.T) {
		// Far beyond the int64 range IntPart would wrap into.
		huge := decimal.New(1, 30)
		_, err := NewOrderQuantity("Quantity", widget, huge)
		assert.Equal(t, shared.CodeAboveMax, domainCode(t, err))

		_, err = NewOrderQuantity("Quantity", widget, huge.Neg())
		assert.Equal(t, shared.CodeBelowMin, domainCode(t, err))
	})

	t.Run("nil product code is rejected", func(t *testing.T) {
		_, err := NewOrderQuantity("Quantity", nil, decimal.NewFromInt(1))
		assert.Equal(t, shared.CodeEmptyInput, domainCode(t, err))
	})

	t.Run("variant follows the product code not the number's shape", func(t *testing.T) {
		qty := decimal.NewFromInt(5)

		asWidget, err := NewOrderQuantity("Quantity", widget, qty)
		require.NoError(t, err)
		_, isUnits := asWidget.(UnitQuantity)
		assert.True(t, isUnits)

		asGizmo, err := NewOrderQuantity("Quantity", gizmo, qty)
		require.NoError(t, err)
		_, isKg := asGizmo.(KilogramQuantity)
		assert.True(t, isKg)
	})
}
