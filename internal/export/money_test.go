package export

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestRoundMoney_HalfToEven(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2.345", "2.34"},
		{"2.355", "2.36"},
		{"2.5051", "2.51"},
		{"100", "100"},
		{"-2.345", "-2.34"},
	}

	for _, tt := range tests {
		got := RoundMoney(decimal.RequireFromString(tt.in))
		require.True(t, got.Equal(decimal.RequireFromString(tt.want)),
			"RoundMoney(%s) = %s, want %s", tt.in, got, tt.want)
	}
}

func TestMoneyFormatter_English(t *testing.T) {
	f := NewMoneyFormatter("en")

	require.Equal(t, "1,234.50", f.Format(decimal.RequireFromString("1234.5")))
	require.Equal(t, "0.00", f.Format(decimal.Zero))
	require.Equal(t, "18,000.00", f.Format(decimal.NewFromInt(18000)))
}

func TestMoneyFormatter_SpanishGrouping(t *testing.T) {
	f := NewMoneyFormatter("es")
	got := f.Format(decimal.RequireFromString("1234.5"))

	// Spanish locales swap the separators relative to English.
	require.Contains(t, got, "234")
	require.NotEqual(t, "1,234.50", got)
}

func TestMoneyFormatter_BadLocaleFallsBack(t *testing.T) {
	f := NewMoneyFormatter("???")
	require.NotEmpty(t, f.Format(decimal.NewFromInt(10)))
}
