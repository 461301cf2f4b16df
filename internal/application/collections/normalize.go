package collections

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Normalización de datos crudos del import masivo: las hojas de cálculo llegan
// con monedas en cualquier caja ("tl", "TRY"), fechas en media docena de
// formatos y montos como texto o número.

var (
	reISO    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reDMY    = regexp.MustCompile(`^\d{1,2}[/.]\d{1,2}[/.]\d{4}$`)
	reYMD    = regexp.MustCompile(`^\d{4}[/.]\d{1,2}[/.]\d{1,2}$`)
	reDigits = regexp.MustCompile(`^\d+$`)
)

// NormalizeCurrency pliega la moneda cruda al código persistido.
// "TL" y "TRY" son la misma moneda; el valor guardado es siempre "TRY".
// ok=false para monedas no soportadas.
func NormalizeCurrency(raw string) (string, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "TL", "TRY":
		return "TRY", true
	case "USD":
		return "USD", true
	case "EUR":
		return "EUR", true
	}
	return "", false
}

// NormalizeDate interpreta el valor crudo de una celda de fecha:
// número (serial de Excel), "2006-01-02", "15/03/2026", "15.03.2026",
// "2026/03/15", "2026.03.15" o un string de solo dígitos (serial como texto).
func NormalizeDate(v any) (time.Time, bool) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, false
	case float64:
		return excelSerialToDate(t), true
	case int:
		return excelSerialToDate(float64(t)), true
	case int64:
		return excelSerialToDate(float64(t)), true
	case time.Time:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}

	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	if s == "" {
		return time.Time{}, false
	}

	switch {
	case reISO.MatchString(s):
		d, err := time.Parse("2006-01-02", s)
		return d, err == nil
	case reDMY.MatchString(s):
		parts := splitDate(s)
		return buildDate(parts[2], parts[1], parts[0])
	case reYMD.MatchString(s):
		parts := splitDate(s)
		return buildDate(parts[0], parts[1], parts[2])
	case reDigits.MatchString(s):
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return time.Time{}, false
		}
		return excelSerialToDate(n), true
	}
	return time.Time{}, false
}

// ParseAmount interpreta el monto crudo (número o texto) como decimal positivo.
func ParseAmount(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case float64:
		d := decimal.NewFromFloat(t)
		return d, d.IsPositive()
	case int:
		d := decimal.NewFromInt(int64(t))
		return d, d.IsPositive()
	case int64:
		d := decimal.NewFromInt(t)
		return d, d.IsPositive()
	case decimal.Decimal:
		return t, t.IsPositive()
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		return d, err == nil && d.IsPositive()
	}
	return decimal.Decimal{}, false
}

// excelSerialToDate convierte un serial de Excel (días desde 1900-01-00,
// epoch Unix en el serial 25569) a medianoche UTC.
func excelSerialToDate(n float64) time.Time {
	secs := int64((n - 25569) * 86400)
	d := time.Unix(secs, 0).UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func splitDate(s string) []string {
	sep := "/"
	if strings.Contains(s, ".") {
		sep = "."
	}
	return strings.Split(s, sep)
}

func buildDate(y, m, d string) (time.Time, bool) {
	year, _ := strconv.Atoi(y)
	month, _ := strconv.Atoi(m)
	day, _ := strconv.Atoi(d)
	if year < 1900 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}
