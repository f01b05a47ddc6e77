package gestation

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// Midnight normaliza una fecha a medianoche UTC, descartando hora y zona.
// Todo el cálculo gestacional trabaja sobre fechas puras; si se mezclan
// horas la resta truncada produce corrimientos de un día.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween devuelve floor(b - a) en días completos, sobre fechas puras.
// Nunca redondea hacia arriba. Si b es anterior a a, devuelve el valor
// negativo tal cual; el caller decide qué hacer con una medición futura.
func DaysBetween(a, b time.Time) int {
	return int(Midnight(b).Sub(Midnight(a)) / day)
}

// CeilDaysBetween devuelve ceil(b - a) en días, sin normalizar a medianoche.
// Se usa solo para cuenta regresiva de parto: "faltan 3.4 días" debe
// mostrarse como 4, no como 3.
func CeilDaysBetween(a, b time.Time) int {
	d := b.Sub(a)
	days := int(d / day)
	if d%day > 0 {
		days++
	}
	return days
}

// Decompose separa un total de días en semanas + días (floor / mod 7).
// El contrato exige totalDays >= 0; con negativos el resultado no tiene
// sentido clínico y el caller debe filtrar antes.
func Decompose(totalDays int) (weeks, days int) {
	return totalDays / 7, totalDays % 7
}

// FormatGA presenta una edad gestacional como "36s 2d".
func FormatGA(totalDays int) string {
	w, d := Decompose(totalDays)
	return fmt.Sprintf("%ds %dd", w, d)
}
