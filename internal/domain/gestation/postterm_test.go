package gestation

import (
	"testing"
	"time"
)

// Regresión del cálculo de pos-datismo: para una datación fija, evaluar en
// días consecutivos debe producir DaysPostTerm que difieren exactamente en 1,
// con cero el día en que la IG llega a 280. Este test existe porque la
// corrección de "conteo inclusivo" se aplicó dos veces en una revisión
// anterior y el contador saltaba días.
func TestPostTerm_IncrementsExactlyOnePerDay(t *testing.T) {
	// US 01/10/2025 con 29s 1d => FPP 16/12/2025.
	d := Dating{
		UltrasoundDate:    dptr(date(2025, 10, 1)),
		UltrasoundGAWeeks: iptr(29),
		UltrasoundGADays:  iptr(1),
	}

	eddDay := date(2025, 12, 16)

	at := func(ref time.Time) PostTerm {
		est, ok := EstimateDating(d, ref)
		if !ok {
			t.Fatalf("unexpected undated at %s", ref.Format("2006-01-02"))
		}
		return DetectPostTerm(est.GADays)
	}

	// Día de la FPP: IG 280, aún no es pos-término, 0 días.
	day0 := at(eddDay)
	if day0.IsPostTerm {
		t.Fatal("IsPostTerm el día de la FPP debe ser false")
	}
	if day0.DaysPostTerm != 0 {
		t.Fatalf("DaysPostTerm el día de la FPP = %d, want 0", day0.DaysPostTerm)
	}

	// Día siguiente: pos-término con exactamente 1 día.
	day1 := at(eddDay.AddDate(0, 0, 1))
	if !day1.IsPostTerm || day1.DaysPostTerm != 1 {
		t.Fatalf("día FPP+1: post=%v days=%d, want true/1", day1.IsPostTerm, day1.DaysPostTerm)
	}

	// Serie: +1 exacto por cada día calendario.
	prev := day1
	for i := 2; i <= 14; i++ {
		cur := at(eddDay.AddDate(0, 0, i))
		if cur.DaysPostTerm-prev.DaysPostTerm != 1 {
			t.Fatalf("día FPP+%d: pos-datismo saltó de %d a %d", i, prev.DaysPostTerm, cur.DaysPostTerm)
		}
		prev = cur
	}
}

func TestDetectPostTerm_Bounds(t *testing.T) {
	cases := []struct {
		ga   int
		post bool
		days int
	}{
		{-5, false, 0}, // IG negativa: nunca pos-datismo negativo
		{0, false, 0},
		{279, false, 0},
		{280, false, 0},
		{281, true, 1},
		{294, true, 14},
	}
	for _, tc := range cases {
		got := DetectPostTerm(tc.ga)
		if got.IsPostTerm != tc.post || got.DaysPostTerm != tc.days {
			t.Errorf("DetectPostTerm(%d) = {%v %d}, want {%v %d}",
				tc.ga, got.IsPostTerm, got.DaysPostTerm, tc.post, tc.days)
		}
	}
}
