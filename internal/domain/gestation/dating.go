package gestation

import "time"

// TermDays es la duración de referencia del embarazo: 40 semanas.
const TermDays = 280

// Source indica de dónde sale una fecha (datación o fecha de parto).
// @Enum ultrasound, lmp, programmed
type Source string

const (
	SourceUltrasound Source = "ultrasound"
	SourceLMP        Source = "lmp"
	SourceProgrammed Source = "programmed"
)

// Dating agrupa los datos de datación de un embarazo tal como se cargan
// en el intake. Todos los campos son opcionales; la regla de precedencia
// vive en Estimate.
//
// Invariante: si UltrasoundGAWeeks está seteado, UltrasoundDate también
// (la IG medida "en" el ultrasonido no significa nada sin su fecha).
type Dating struct {
	LMPDate           *time.Time // DUM: fecha de última menstruación
	UltrasoundDate    *time.Time
	UltrasoundGAWeeks *int // IG medida en el ultrasonido
	UltrasoundGADays  *int

	ProgrammedDeliveryDate *time.Time // cesárea programada, etc.
}

// Estimate es la datación canónica: IG actual en días, fecha probable de
// parto y la fuente que ganó la precedencia.
type Estimate struct {
	GADays int
	EDD    time.Time
	Source Source
}

// EstimateDating aplica la regla de precedencia fija: el ultrasonido
// siempre gana sobre la DUM cuando ambos existen, sin promediar ni
// reconciliar aunque discrepen. Devuelve ok=false cuando el embarazo no
// tiene datación posible (ni DUM ni ultrasonido).
//
// La IG sube exactamente 1 día por día calendario y vale 280 el día de
// la FPP. No se aplica ninguna corrección de "conteo inclusivo" acá:
// esa corrección ya está contemplada en DaysBetween al trabajar con
// fechas puras, y aplicarla dos veces reintroduce el off-by-one que
// este módulo existe para evitar.
func EstimateDating(d Dating, referenceDate time.Time) (Estimate, bool) {
	if edd := EDDFromUltrasound(d); edd != nil {
		gaAtUS := usGADays(d)
		return Estimate{
			GADays: gaAtUS + DaysBetween(*d.UltrasoundDate, referenceDate),
			EDD:    *edd,
			Source: SourceUltrasound,
		}, true
	}

	if edd := EDDFromLMP(d); edd != nil {
		return Estimate{
			GADays: DaysBetween(*d.LMPDate, referenceDate),
			EDD:    *edd,
			Source: SourceLMP,
		}, true
	}

	// Sin DUM ni ultrasonido: embarazo sin datación.
	return Estimate{}, false
}

// EDDFromUltrasound calcula la FPP por ultrasonido, o nil si faltan datos.
func EDDFromUltrasound(d Dating) *time.Time {
	if d.UltrasoundDate == nil || d.UltrasoundGAWeeks == nil {
		return nil
	}
	edd := Midnight(*d.UltrasoundDate).AddDate(0, 0, TermDays-usGADays(d))
	return &edd
}

// EDDFromLMP calcula la FPP por DUM (+280 días), o nil si no hay DUM.
func EDDFromLMP(d Dating) *time.Time {
	if d.LMPDate == nil {
		return nil
	}
	edd := Midnight(*d.LMPDate).AddDate(0, 0, TermDays)
	return &edd
}

func usGADays(d Dating) int {
	days := 0
	if d.UltrasoundGADays != nil {
		days = *d.UltrasoundGADays
	}
	return *d.UltrasoundGAWeeks*7 + days
}
