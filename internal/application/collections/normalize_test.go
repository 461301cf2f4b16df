package collections_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cobranzas-pro/internal/application/collections"
)

func TestNormalizeCurrency(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"TL", "TRY", true},
		{"tl", "TRY", true},
		{" try ", "TRY", true},
		{"USD", "USD", true},
		{"eur", "EUR", true},
		{"GBP", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := collections.NormalizeCurrency(c.in)
		assert.Equal(t, c.ok, ok, "input %q", c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
	}
}

func TestNormalizeDate_Formatos(t *testing.T) {
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	for _, in := range []any{"2026-03-15", "15/03/2026", "15.03.2026", "2026/03/15", "2026.03.15"} {
		got, ok := collections.NormalizeDate(in)
		require.True(t, ok, "input %v", in)
		assert.Equal(t, want, got, "input %v", in)
	}
}

func TestNormalizeDate_SerialExcel(t *testing.T) {
	// 25569 = 1970-01-01 en el calendario serial de Excel
	got, ok := collections.NormalizeDate(float64(25569))
	require.True(t, ok)
	assert.Equal(t, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), got)

	// serial como texto (celdas formateadas como string)
	got, ok = collections.NormalizeDate("25570")
	require.True(t, ok)
	assert.Equal(t, time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC), got)
}

func TestNormalizeDate_Invalidas(t *testing.T) {
	for _, in := range []any{nil, "", "no-es-fecha", "99/99/2026"} {
		_, ok := collections.NormalizeDate(in)
		assert.False(t, ok, "input %v", in)
	}
}

func TestParseAmount(t *testing.T) {
	d, ok := collections.ParseAmount("1250.50")
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.RequireFromString("1250.50")))

	d, ok = collections.ParseAmount(float64(300))
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.NewFromInt(300)))

	for _, in := range []any{"-5", "0", "abc", nil} {
		_, ok := collections.ParseAmount(in)
		assert.False(t, ok, "input %v", in)
	}
}
