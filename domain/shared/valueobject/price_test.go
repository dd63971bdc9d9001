package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/ordertaking/domain/shared"
)

func TestNewPrice(t *testing.T) {
	t.Run("bounds are inclusive", func(t *testing.T) {
		for _, raw := range []float64{0.0, 12.34, 1000.00} {
			p, err := NewPriceFromFloat("Price", raw)
			require.NoError(t, err)
			assert.True(t, p.Amount().Equal(decimal.NewFromFloat(raw)))
		}
	})

	t.Run("rejects negative prices", func(t *testing.T) {
		_, err := NewPriceFromFloat("Price", -0.01)
		assert.Equal(t, shared.CodeBelowMin, domainCode(t, err))
	})

	t.Run("rejects prices above 1000", func(t *testing.T) {
		_, err := NewPriceFromFloat("Price", 1000.01)
		assert.Equal(t, shared.CodeAboveMax, domainCode(t, err))
	})
}

func TestMustNewPrice(t *testing.T) {
	t.Run("returns the price for valid input", func(t *testing.T) {
		p := MustNewPrice(decimal.NewFromFloat(9.99))
		assert.True(t, p.Amount().Equal(decimal.NewFromFloat(9.99)))
	})

	t.Run("panics for invalid input", func(t *testing.T) {
		assert.Panics(t, func() {
			MustNewPrice(decimal.NewFromInt(-1))
		})
	})
}

func TestPriceMultiply(t *testing.T) {
	price800 := MustNewPrice(decimal.NewFromInt(800))

	t.Run("re-validates the product against the price bounds", func(t *testing.T) {
		_, err := price800.Multiply(decimal.NewFromFloat(1.5))
		assert.Equal(t, shared.CodeAboveMax, domainCode(t, err))
	})

	t.Run("succeeds when the product stays in range", func(t *testing.T) {
		p, err := price800.Multiply(decimal.NewFromFloat(0.5))
		require.NoError(t, err)
		assert.True(t, p.Amount().Equal(decimal.NewFromInt(400)))
	})
}

func TestPriceJSON(t *testing.T) {
	t.Run("round-trips through the validating factory", func(t *testing.T) {
		p := MustNewPrice(decimal.NewFromFloat(12.34))
		data, err := json.Marshal(p)
		require.NoError(t, err)

		var decoded Price
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, p.Equals(decoded))
	})

	t.Run("rejects out-of-range JSON values", func(t *testing.T) {
		var decoded Price
		err := json.Unmarshal([]byte(`"2000"`), &decoded)
		assert.Error(t, err)
	})
}

func TestPriceScan(t *testing.T) {
	t.Run("scans a stored string back into a valid price", func(t *testing.T) {
		var p Price
		require.NoError(t, p.Scan("12.34"))
		assert.True(t, p.Amount().Equal(decimal.NewFromFloat(12.34)))
	})

	t.Run("rejects stored values violating the invariant", func(t *testing.T) {
		var p Price
		assert.Error(t, p.Scan("1200.00"))
	})
}
