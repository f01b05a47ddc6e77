package alerts

import (
	"context"
	"sort"
	"time"

	"prenatal-clinical-history/internal/domain/gestation"
	"prenatal-clinical-history/internal/domain/justifications"
	"prenatal-clinical-history/internal/domain/pregnancies"
	"prenatal-clinical-history/internal/domain/visits"
)

// Service recalcula las listas de alertas en cada lectura. Nada se
// persiste: no hay estado derivado que invalidar, solo costo de
// recomputación (O(1) por embarazo).
type Service struct {
	pregnancies *pregnancies.Service
	visits      *visits.Service
	justs       *justifications.Service
}

func NewService(pregSvc *pregnancies.Service, visitSvc *visits.Service, justSvc *justifications.Service) *Service {
	return &Service{
		pregnancies: pregSvc,
		visits:      visitSvc,
		justs:       justSvc,
	}
}

// OverdueVisitAlert es una fila del alerta de consultas atrasadas.
type OverdueVisitAlert struct {
	PregnancyID string
	PatientName string
	Phone       string

	GADays        int
	Band          VisitBand
	ThresholdDays int

	NeverVisited   bool
	LastVisitDate  *time.Time
	DaysSinceVisit int
}

// OverdueVisits arma la lista de pacientes atrasadas a la fecha de
// referencia. Excluye embarazos sin datación, con IG negativa (medición
// futura) y los suprimidos por una justificación vigente. Ordena la
// banda más urgente primero (IG más avanzada) y, dentro de la banda,
// nunca-consultó primero y luego más días sin consulta.
func (s *Service) OverdueVisits(ctx context.Context, referenceDate time.Time) ([]OverdueVisitAlert, error) {
	items, err := s.pregnancies.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]OverdueVisitAlert, 0)
	for _, p := range items {
		est, ok := gestation.EstimateDating(p.Dating(), referenceDate)
		if !ok || est.GADays < 0 {
			continue
		}

		last, err := s.visits.LatestDate(ctx, p.ID)
		if err != nil {
			return nil, err
		}

		res := EvaluateOverdueVisit(OverdueInput{
			LastVisitDate: last,
			GADays:        est.GADays,
			ReferenceDate: referenceDate,
		})
		if !res.Overdue {
			continue
		}

		// Una justificación vigente saca a la paciente de la lista hasta
		// que venza su fecha prevista de consulta.
		if j, err := s.justs.GetActive(ctx, p.ID); err == nil && j.SuppressesAt(referenceDate) {
			continue
		}

		out = append(out, OverdueVisitAlert{
			PregnancyID:    p.ID,
			PatientName:    p.PatientName,
			Phone:          p.Phone,
			GADays:         est.GADays,
			Band:           res.Band,
			ThresholdDays:  res.ThresholdDays,
			NeverVisited:   res.NeverVisited,
			LastVisitDate:  last,
			DaysSinceVisit: res.DaysSinceVisit,
		})
	}

	sort.SliceStable(out, func(i, k int) bool {
		a, b := out[i], out[k]
		if ra, rb := bandRank(a.Band), bandRank(b.Band); ra != rb {
			return ra < rb
		}
		if a.NeverVisited != b.NeverVisited {
			return a.NeverVisited
		}
		return a.DaysSinceVisit > b.DaysSinceVisit
	})

	return out, nil
}

// UpcomingDeliveryAlert es una fila de la cuenta regresiva de partos.
type UpcomingDeliveryAlert struct {
	PregnancyID string
	PatientName string

	DeliveryDate  time.Time
	DaysRemaining int
	Source        gestation.Source
	PostTerm      bool
	DaysPostTerm  int
	Severity      DeliverySeverity
}

// UpcomingDeliveries arma la cuenta regresiva de partos dentro de la
// ventana de exhibición. Pos-término encabeza la lista; el resto sube
// por días restantes ascendentes.
func (s *Service) UpcomingDeliveries(ctx context.Context, referenceDate time.Time) ([]UpcomingDeliveryAlert, error) {
	items, err := s.pregnancies.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]UpcomingDeliveryAlert, 0)
	for _, p := range items {
		d := p.Dating()
		est, ok := gestation.EstimateDating(d, referenceDate)
		if !ok {
			// Sin datación no hay alerta, aunque exista fecha programada.
			continue
		}
		pt := gestation.DetectPostTerm(est.GADays)

		alert, ok := EvaluateUpcomingDelivery(DeliveryInput{
			ProgrammedDate: p.ProgrammedDeliveryDate,
			UltrasoundEDD:  gestation.EDDFromUltrasound(d),
			LMPEDD:         gestation.EDDFromLMP(d),
			PostTerm:       pt.IsPostTerm,
			ReferenceDate:  referenceDate,
		})
		if !ok {
			continue
		}

		out = append(out, UpcomingDeliveryAlert{
			PregnancyID:   p.ID,
			PatientName:   p.PatientName,
			DeliveryDate:  alert.DeliveryDate,
			DaysRemaining: alert.DaysRemaining,
			Source:        alert.Source,
			PostTerm:      alert.PostTerm,
			DaysPostTerm:  pt.DaysPostTerm,
			Severity:      alert.Severity,
		})
	}

	sort.SliceStable(out, func(i, k int) bool {
		a, b := out[i], out[k]
		if a.PostTerm != b.PostTerm {
			return a.PostTerm
		}
		return a.DaysRemaining < b.DaysRemaining
	})

	return out, nil
}
