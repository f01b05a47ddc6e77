package alerts

import (
	"time"

	"prenatal-clinical-history/internal/domain/gestation"
)

// Ventana de exhibición de la cuenta regresiva de parto: se muestran
// partos hasta 21 días hacia adelante, y hasta 30 días pasados de la
// fecha para empujar la carga del desenlace del parto.
const (
	deliveryWindowPastDays   = -30
	deliveryWindowFutureDays = 21
)

// DeliverySeverity es banding puramente de presentación sobre los días
// restantes (no aplica a pos-término, que siempre encabeza la lista).
// @Enum critical, high, elevated, moderate, watch, distant
type DeliverySeverity string

const (
	SeverityCritical DeliverySeverity = "critical" // <= 0 días
	SeverityHigh     DeliverySeverity = "high"     // 1-5
	SeverityElevated DeliverySeverity = "elevated" // 6-8
	SeverityModerate DeliverySeverity = "moderate" // 9-10
	SeverityWatch    DeliverySeverity = "watch"    // 11-17
	SeverityDistant  DeliverySeverity = "distant"  // > 17
)

func severityFor(daysRemaining int) DeliverySeverity {
	switch {
	case daysRemaining <= 0:
		return SeverityCritical
	case daysRemaining <= 5:
		return SeverityHigh
	case daysRemaining <= 8:
		return SeverityElevated
	case daysRemaining <= 10:
		return SeverityModerate
	case daysRemaining <= 17:
		return SeverityWatch
	default:
		return SeverityDistant
	}
}

type DeliveryInput struct {
	ProgrammedDate *time.Time
	UltrasoundEDD  *time.Time
	LMPEDD         *time.Time

	PostTerm      bool
	ReferenceDate time.Time
}

type DeliveryAlert struct {
	DeliveryDate  time.Time
	DaysRemaining int
	Source        gestation.Source
	PostTerm      bool
	Severity      DeliverySeverity
}

// EvaluateUpcomingDelivery elige la fecha de parto por precedencia fija
// (programada > FPP por US > FPP por DUM) y calcula los días restantes
// con techo: "faltan 3.4 días" se muestra como 4 para que un parto del
// mismo día nunca se anticipe como "0 días" el día anterior. Devuelve
// ok=false si no hay fecha o si cae fuera de la ventana de exhibición.
func EvaluateUpcomingDelivery(in DeliveryInput) (DeliveryAlert, bool) {
	var (
		date   time.Time
		source gestation.Source
	)
	switch {
	case in.ProgrammedDate != nil:
		date, source = *in.ProgrammedDate, gestation.SourceProgrammed
	case in.UltrasoundEDD != nil:
		date, source = *in.UltrasoundEDD, gestation.SourceUltrasound
	case in.LMPEDD != nil:
		date, source = *in.LMPEDD, gestation.SourceLMP
	default:
		return DeliveryAlert{}, false
	}

	days := gestation.CeilDaysBetween(in.ReferenceDate, date)
	if days < deliveryWindowPastDays || days > deliveryWindowFutureDays {
		return DeliveryAlert{}, false
	}

	return DeliveryAlert{
		DeliveryDate:  date,
		DaysRemaining: days,
		Source:        source,
		PostTerm:      in.PostTerm,
		Severity:      severityFor(days),
	}, true
}
