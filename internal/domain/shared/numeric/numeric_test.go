package numeric

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSafeParse(t *testing.T) {
	fallback := decimal.NewFromInt(7)

	cases := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, "7"},
		{"float", 199.99, "199.99"},
		{"nan", math.NaN(), "7"},
		{"positive infinity", math.Inf(1), "7"},
		{"int", 42, "42"},
		{"numeric string", " 120.50 ", "120.5"},
		{"empty string", "", "7"},
		{"garbage string", "12abc", "7"},
		{"decimal passthrough", decimal.NewFromInt(3), "3"},
		{"nil pointer", (*decimal.Decimal)(nil), "7"},
		{"unsupported type", struct{}{}, "7"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SafeParse(tc.input, fallback)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestNormalizePercent(t *testing.T) {
	assert.True(t, NormalizePercent(decimal.NewFromInt(10)).Equal(decimal.NewFromFloat(0.1)))
	assert.True(t, NormalizePercent(decimal.NewFromFloat(0.25)).Equal(decimal.NewFromFloat(0.25)))
	assert.True(t, NormalizePercent(decimal.NewFromInt(1)).Equal(decimal.NewFromInt(1)))
	assert.True(t, NormalizePercent(decimal.NewFromFloat(100)).Equal(decimal.NewFromInt(1)))
}

func TestClamp01(t *testing.T) {
	assert.True(t, Clamp01(decimal.NewFromFloat(-0.2)).IsZero())
	assert.True(t, Clamp01(decimal.NewFromFloat(0.6)).Equal(decimal.NewFromFloat(0.6)))
	assert.True(t, Clamp01(decimal.NewFromFloat(1.4)).Equal(decimal.NewFromInt(1)))
}
