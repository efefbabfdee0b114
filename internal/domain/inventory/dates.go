package inventory

import (
	"strings"
	"time"
)

// DateLayout formato de fechas sin hora usado en la API y en columnas DATE.
const DateLayout = "2006-01-02"

// Clock fuente de la hora actual; se inyecta para poder fijar "hoy" en tests.
type Clock func() time.Time

// SystemClock usa time.Now.
func SystemClock() time.Time { return time.Now() }

// DateOnly normaliza t a medianoche UTC conservando su fecha de calendario local.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate acepta YYYY-MM-DD o un timestamp RFC3339 (se toma la fecha).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}

// FormatDate formatea una fecha como YYYY-MM-DD.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// DaysUntil días de calendario entre today y expiry (negativo si ya pasó).
func DaysUntil(expiry, today time.Time) int {
	return int(DateOnly(expiry).Sub(DateOnly(today)).Hours() / 24)
}
