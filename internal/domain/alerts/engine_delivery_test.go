package alerts

import (
	"testing"
	"time"

	"prenatal-clinical-history/internal/domain/gestation"
)

func TestEvaluateUpcomingDelivery_Precedence(t *testing.T) {
	ref := date(2025, 10, 1)
	programmed := date(2025, 10, 10)
	usEDD := date(2025, 10, 15)
	lmpEDD := date(2025, 10, 18)

	// Programada gana sobre todo.
	a, ok := EvaluateUpcomingDelivery(DeliveryInput{
		ProgrammedDate: &programmed,
		UltrasoundEDD:  &usEDD,
		LMPEDD:         &lmpEDD,
		ReferenceDate:  ref,
	})
	if !ok || a.Source != gestation.SourceProgrammed || !a.DeliveryDate.Equal(programmed) {
		t.Fatalf("want programmed, got %+v", a)
	}

	// Sin programada, FPP por US.
	a, ok = EvaluateUpcomingDelivery(DeliveryInput{
		UltrasoundEDD: &usEDD,
		LMPEDD:        &lmpEDD,
		ReferenceDate: ref,
	})
	if !ok || a.Source != gestation.SourceUltrasound {
		t.Fatalf("want ultrasound, got %+v", a)
	}

	// Solo DUM.
	a, ok = EvaluateUpcomingDelivery(DeliveryInput{
		LMPEDD:        &lmpEDD,
		ReferenceDate: ref,
	})
	if !ok || a.Source != gestation.SourceLMP {
		t.Fatalf("want lmp, got %+v", a)
	}

	// Sin nada: no hay alerta.
	if _, ok := EvaluateUpcomingDelivery(DeliveryInput{ReferenceDate: ref}); ok {
		t.Fatal("sin fechas no debe haber alerta")
	}
}

func TestEvaluateUpcomingDelivery_CeilingDays(t *testing.T) {
	// FPP a las 14:00, faltando menos de 2 días completos: debe reportar
	// el entero superior, nunca anticipar "0 días" antes de tiempo.
	ref := time.Date(2025, 10, 1, 20, 0, 0, 0, time.UTC)
	edd := time.Date(2025, 10, 3, 14, 0, 0, 0, time.UTC)

	a, ok := EvaluateUpcomingDelivery(DeliveryInput{
		UltrasoundEDD: &edd,
		ReferenceDate: ref,
	})
	if !ok {
		t.Fatal("expected alert inside window")
	}
	if a.DaysRemaining != 2 {
		t.Fatalf("DaysRemaining = %d, want 2 (ceil de 1.75)", a.DaysRemaining)
	}
}

func TestEvaluateUpcomingDelivery_Window(t *testing.T) {
	ref := date(2025, 10, 1)

	mk := func(daysFromRef int) (DeliveryAlert, bool) {
		d := ref.AddDate(0, 0, daysFromRef)
		return EvaluateUpcomingDelivery(DeliveryInput{
			ProgrammedDate: &d,
			ReferenceDate:  ref,
		})
	}

	if _, ok := mk(-31); ok {
		t.Error("-31 días debe quedar fuera de la ventana")
	}
	if _, ok := mk(-30); !ok {
		t.Error("-30 días debe estar dentro de la ventana")
	}
	if _, ok := mk(21); !ok {
		t.Error("+21 días debe estar dentro de la ventana")
	}
	if _, ok := mk(22); ok {
		t.Error("+22 días debe quedar fuera de la ventana")
	}
}

func TestSeverityBands(t *testing.T) {
	cases := []struct {
		days int
		want DeliverySeverity
	}{
		{-10, SeverityCritical},
		{0, SeverityCritical},
		{1, SeverityHigh},
		{5, SeverityHigh},
		{6, SeverityElevated},
		{8, SeverityElevated},
		{9, SeverityModerate},
		{10, SeverityModerate},
		{11, SeverityWatch},
		{17, SeverityWatch},
		{18, SeverityDistant},
		{21, SeverityDistant},
	}
	for _, tc := range cases {
		if got := severityFor(tc.days); got != tc.want {
			t.Errorf("severityFor(%d) = %s, want %s", tc.days, got, tc.want)
		}
	}
}
