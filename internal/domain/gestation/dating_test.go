package gestation

import (
	"testing"
	"time"
)

func dptr(t time.Time) *time.Time { return &t }
func iptr(n int) *int             { return &n }

func TestEstimateDating_LMPOnly(t *testing.T) {
	// Escenario de referencia: DUM 14/05/2025, sin ultrasonido.
	// El 21/01/2026 pasaron 252 días => 36s 0d, FPP 18/02/2026.
	d := Dating{LMPDate: dptr(date(2025, 5, 14))}

	est, ok := EstimateDating(d, date(2026, 1, 21))
	if !ok {
		t.Fatal("expected dated result")
	}
	if est.Source != SourceLMP {
		t.Fatalf("source = %s, want lmp", est.Source)
	}
	if est.GADays != 252 {
		t.Fatalf("GADays = %d, want 252", est.GADays)
	}
	if w, dd := Decompose(est.GADays); w != 36 || dd != 0 {
		t.Fatalf("IG = %ds %dd, want 36s 0d", w, dd)
	}
	if !est.EDD.Equal(date(2026, 2, 18)) {
		t.Fatalf("EDD = %s, want 2026-02-18", est.EDD.Format("2006-01-02"))
	}
}

func TestEstimateDating_UltrasoundOnly(t *testing.T) {
	// US el 01/10/2025 con IG 29s 1d (204 días). FPP = US + (280-204) días.
	d := Dating{
		UltrasoundDate:    dptr(date(2025, 10, 1)),
		UltrasoundGAWeeks: iptr(29),
		UltrasoundGADays:  iptr(1),
	}

	est, ok := EstimateDating(d, date(2025, 10, 1))
	if !ok {
		t.Fatal("expected dated result")
	}
	if est.Source != SourceUltrasound {
		t.Fatalf("source = %s, want ultrasound", est.Source)
	}
	// El mismo día del US la IG es exactamente la medida en el US.
	if est.GADays != 204 {
		t.Fatalf("GADays el día del US = %d, want 204", est.GADays)
	}
	if !est.EDD.Equal(date(2025, 12, 16)) {
		t.Fatalf("EDD = %s, want 2025-12-16", est.EDD.Format("2006-01-02"))
	}

	// El día de la FPP la IG canónica debe ser exactamente 280.
	est2, _ := EstimateDating(d, est.EDD)
	if est2.GADays != TermDays {
		t.Fatalf("GADays el día de la FPP = %d, want 280", est2.GADays)
	}
}

func TestEstimateDating_UltrasoundOverridesLMP(t *testing.T) {
	// DUM y US presentes y en desacuerdo: el US gana siempre, sin promediar,
	// sin importar cuál implica fecha más temprana.
	lmp := date(2025, 5, 1) // FPP por DUM: 05/02/2026
	d := Dating{
		LMPDate:           dptr(lmp),
		UltrasoundDate:    dptr(date(2025, 8, 1)),
		UltrasoundGAWeeks: iptr(10), // implica FPP mucho más tardía
		UltrasoundGADays:  iptr(0),
	}

	est, ok := EstimateDating(d, date(2025, 9, 1))
	if !ok {
		t.Fatal("expected dated result")
	}
	if est.Source != SourceUltrasound {
		t.Fatalf("source = %s, want ultrasound", est.Source)
	}
	wantEDD := date(2025, 8, 1).AddDate(0, 0, 280-70)
	if !est.EDD.Equal(wantEDD) {
		t.Fatalf("EDD = %s, want %s (US)", est.EDD.Format("2006-01-02"), wantEDD.Format("2006-01-02"))
	}

	// Y al revés: US que implica FPP más temprana también gana.
	d.UltrasoundGAWeeks = iptr(30)
	est, _ = EstimateDating(d, date(2025, 9, 1))
	if est.Source != SourceUltrasound {
		t.Fatalf("source = %s, want ultrasound", est.Source)
	}
}

func TestEstimateDating_Undated(t *testing.T) {
	if _, ok := EstimateDating(Dating{}, date(2025, 9, 1)); ok {
		t.Fatal("expected undated result")
	}

	// IG de ultrasonido sin semanas no alcanza para datar por US;
	// con DUM presente cae a DUM.
	d := Dating{
		LMPDate:        dptr(date(2025, 5, 14)),
		UltrasoundDate: dptr(date(2025, 8, 1)),
	}
	est, ok := EstimateDating(d, date(2025, 9, 1))
	if !ok || est.Source != SourceLMP {
		t.Fatalf("expected lmp fallback, got ok=%v source=%s", ok, est.Source)
	}
}

func TestEstimateDating_GARisesOneDayPerDay(t *testing.T) {
	d := Dating{
		UltrasoundDate:    dptr(date(2025, 10, 1)),
		UltrasoundGAWeeks: iptr(30),
		UltrasoundGADays:  iptr(0),
	}

	prev, _ := EstimateDating(d, date(2025, 10, 2))
	for i := 1; i <= 60; i++ {
		cur, _ := EstimateDating(d, date(2025, 10, 2).AddDate(0, 0, i))
		if cur.GADays-prev.GADays != 1 {
			t.Fatalf("día %d: IG saltó de %d a %d, want +1", i, prev.GADays, cur.GADays)
		}
		prev = cur
	}
}
