package labreports

import (
	"strings"
	"testing"
)

func TestReconcile_SuccessRateAgainstDocument(t *testing.T) {
	expected := ExpectedPanel(TrimesterFirst)
	if len(expected) < 10 {
		t.Fatalf("panel del 1er trimestre sospechosamente corto: %d", len(expected))
	}

	// 5 exámenes extraídos, todos con valor: 100%, no 5/len(panel).
	extracted := []ExtractedExam{
		{Name: "Hemoglobina", Value: "12.5"},
		{Name: "Plaquetas", Value: "250000"},
		{Name: "TSH", Value: "1.8"},
		{Name: "VDRL", Value: "Não reagente"},
		{Name: "Ferritina", Value: "45"},
	}

	rep := Reconcile(extracted, expected)
	if rep.Stats.SuccessRate != 100 {
		t.Fatalf("taxaSucesso = %d, want 100", rep.Stats.SuccessRate)
	}
	if rep.Stats.TotalFoundInDocument != 5 || rep.Stats.TotalRegistered != 5 {
		t.Fatalf("stats = %+v", rep.Stats)
	}
	if len(rep.Missing) != len(expected)-5 {
		t.Fatalf("examesNaoPresentes = %d, want %d", len(rep.Missing), len(expected)-5)
	}
	if len(rep.Warnings) != 0 {
		t.Fatalf("sin valores vacíos no debe haber avisos: %v", rep.Warnings)
	}
}

func TestReconcile_EmptyValueLowersRateAndWarns(t *testing.T) {
	extracted := []ExtractedExam{
		{Name: "Hemoglobina", Value: "12.5"},
		{Name: "Plaquetas", Value: "250000"},
		{Name: "TSH", Value: "  "}, // vacío a efectos de registro
		{Name: "VDRL", Value: "Não reagente"},
		{Name: "Ferritina", Value: "45"},
	}

	rep := Reconcile(extracted, ExpectedPanel(TrimesterFirst))
	if rep.Stats.SuccessRate != 80 {
		t.Fatalf("taxaSucesso = %d, want 80 (4/5)", rep.Stats.SuccessRate)
	}
	if rep.Stats.TotalRegistered != 4 {
		t.Fatalf("totalCadastrados = %d, want 4", rep.Stats.TotalRegistered)
	}
	if len(rep.Warnings) != 1 || !strings.Contains(rep.Warnings[0], "TSH") {
		t.Fatalf("aviso esperado para TSH, got %v", rep.Warnings)
	}
	// El exame con valor vacío igual cuenta como "presente" para faltantes.
	for _, m := range rep.Missing {
		if strings.Contains(m, "TSH") {
			t.Fatalf("TSH no debería figurar como faltante: %v", rep.Missing)
		}
	}
}

func TestReconcile_AccentAndCaseInsensitiveMatching(t *testing.T) {
	expected := []string{"Hemoglobina/Hematócrito", "Rubéola IgG", "TSH"}
	extracted := []ExtractedExam{
		{Name: "hemoglobina", Value: "11.9"},   // substring del esperado
		{Name: "RUBEOLA IGG", Value: "reagente"}, // sin acento, mayúsculas
		{Name: "TSH — 3ª coleta", Value: "2.1"},  // superstring con calificador
	}

	rep := Reconcile(extracted, expected)
	if len(rep.Missing) != 0 {
		t.Fatalf("todo el panel debería estar cubierto, faltan: %v", rep.Missing)
	}
}

func TestReconcile_SubfieldRendering(t *testing.T) {
	extracted := []ExtractedExam{
		{Name: "TTGO 75g (Curva Glicêmica)", Value: "92", Subfield: "Jejum"},
	}
	rep := Reconcile(extracted, nil)
	if rep.Found[0].Name != "TTGO 75g (Curva Glicêmica) - Jejum" {
		t.Fatalf("nombre con subcampo = %q", rep.Found[0].Name)
	}
}

func TestReconcile_EmptyExtraction(t *testing.T) {
	rep := Reconcile(nil, ExpectedPanel(TrimesterSecond))
	if rep.Stats.SuccessRate != 0 || rep.Stats.TotalFoundInDocument != 0 {
		t.Fatalf("stats = %+v", rep.Stats)
	}
	if len(rep.Warnings) != 1 || !strings.Contains(rep.Warnings[0], "Nenhum exame") {
		t.Fatalf("aviso genérico esperado, got %v", rep.Warnings)
	}
	if len(rep.Missing) != len(ExpectedPanel(TrimesterSecond)) {
		t.Fatal("con extracción vacía falta el panel completo")
	}
}

func TestNormalizeName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Hemoglobina/Hematócrito", "hemoglobinahematocrito"},
		{"Rubéola IgG", "rubeolaigg"},
		{"TTGO 75g (Curva Glicêmica)", "ttgo75gcurvaglicemica"},
		{"TSH — 3ª coleta", "tsh3coleta"},
	}
	for _, tc := range cases {
		if got := normalizeName(tc.in); got != tc.want {
			t.Errorf("normalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExpectedPanel_PerTrimester(t *testing.T) {
	first := ExpectedPanel(TrimesterFirst)
	second := ExpectedPanel(TrimesterSecond)
	third := ExpectedPanel(TrimesterThird)

	contains := func(panel []string, name string) bool {
		for _, p := range panel {
			if p == name {
				return true
			}
		}
		return false
	}

	// La curva glucémica solo en el 2do trimestre, expandida por subcampo.
	for _, sf := range []string{"Jejum", "1 hora", "2 horas"} {
		want := "TTGO 75g (Curva Glicêmica) - " + sf
		if !contains(second, want) {
			t.Errorf("falta %q en el 2do trimestre", want)
		}
		if contains(first, want) || contains(third, want) {
			t.Errorf("%q no corresponde fuera del 2do trimestre", want)
		}
	}

	if !contains(first, "Tipagem sanguínea ABO/Rh") || contains(third, "Tipagem sanguínea ABO/Rh") {
		t.Error("tipagem solo corresponde al 1er trimestre")
	}
	if !contains(third, "Swab vaginal/retal EGB") {
		t.Error("swab EGB corresponde al 3er trimestre")
	}
	if ExpectedPanel(Trimester(0)) != nil || ExpectedPanel(Trimester(4)) != nil {
		t.Error("trimestre inválido debe devolver nil")
	}
}
