package domain

import (
	"fmt"
	"time"
)

var spanishWeekdays = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatDisplayDate renders an instant the way the legacy ledger did for the
// es-CO locale: "lunes, 5 de enero de 2026". The rendering is computed once
// at day close and frozen into the DayRecord.
func FormatDisplayDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d",
		spanishWeekdays[t.Weekday()],
		t.Day(),
		spanishMonths[t.Month()-1],
		t.Year(),
	)
}

// DayKeyOf returns the UTC calendar-day key (YYYY-MM-DD) of an instant.
func DayKeyOf(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
