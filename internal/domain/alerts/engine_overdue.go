package alerts

import (
	"time"

	"prenatal-clinical-history/internal/domain/gestation"
)

// VisitBand agrupa el alerta de consulta atrasada por banda de IG actual.
// El umbral de días sin consulta se achica a medida que avanza el
// embarazo: al final del tercer trimestre las consultas son semanales.
// @Enum up_to_34w, 34_to_36w, after_36w
type VisitBand string

const (
	VisitBandUpTo34  VisitBand = "up_to_34w"  // hasta 34 semanas cumplidas
	VisitBand34To36  VisitBand = "34_to_36w"  // 34+1 a 36 semanas
	VisitBandAfter36 VisitBand = "after_36w"  // más de 36 semanas
)

// Umbrales de días sin consulta por banda.
const (
	thresholdUpTo34  = 32
	threshold34To36  = 15
	thresholdAfter36 = 8
)

// BandForGA ubica una IG (en días) en su banda y devuelve el umbral.
func BandForGA(gaDays int) (VisitBand, int) {
	switch {
	case gaDays <= 34*7:
		return VisitBandUpTo34, thresholdUpTo34
	case gaDays <= 36*7:
		return VisitBand34To36, threshold34To36
	default:
		return VisitBandAfter36, thresholdAfter36
	}
}

// bandRank ordena las bandas de más urgente (IG más avanzada) a menos.
func bandRank(b VisitBand) int {
	switch b {
	case VisitBandAfter36:
		return 0
	case VisitBand34To36:
		return 1
	default:
		return 2
	}
}

type OverdueInput struct {
	LastVisitDate *time.Time // nil = nunca consultó
	GADays        int
	ReferenceDate time.Time
}

// OverdueResult es el veredicto del motor para un embarazo. Cuando
// NeverVisited es true, DaysSinceVisit no aplica (la paciente está
// siempre atrasada, con "infinitos" días sin consulta).
type OverdueResult struct {
	Overdue        bool
	NeverVisited   bool
	DaysSinceVisit int
	Band           VisitBand
	ThresholdDays  int
}

// EvaluateOverdueVisit aplica el umbral de la banda en la que cae la IG
// *actual*: una paciente está atrasada si pasaron estrictamente más días
// que el umbral desde su última consulta (exactamente el umbral todavía
// no es atraso).
func EvaluateOverdueVisit(in OverdueInput) OverdueResult {
	band, threshold := BandForGA(in.GADays)

	if in.LastVisitDate == nil {
		return OverdueResult{
			Overdue:       true,
			NeverVisited:  true,
			Band:          band,
			ThresholdDays: threshold,
		}
	}

	days := gestation.DaysBetween(*in.LastVisitDate, in.ReferenceDate)
	return OverdueResult{
		Overdue:        days > threshold,
		DaysSinceVisit: days,
		Band:           band,
		ThresholdDays:  threshold,
	}
}
