package labreports

// Trimester identifica el trimestre clínico del panel esperado.
type Trimester int

const (
	TrimesterFirst  Trimester = 1
	TrimesterSecond Trimester = 2
	TrimesterThird  Trimester = 3
)

func (t Trimester) Valid() bool {
	return t >= TrimesterFirst && t <= TrimesterThird
}

// panelExam es una entrada del panel de exámenes de rutina prenatal.
// Los nombres son los canónicos que usan los laboratorios brasileños;
// la conciliación los compara contra lo extraído del laudo.
type panelExam struct {
	name       string
	trimesters [3]bool  // primeiro, segundo, terceiro
	subfields  []string // paneles multivalor (curva glucémica)
}

var expectedExams = []panelExam{
	// Sangre
	{name: "Tipagem sanguínea ABO/Rh", trimesters: [3]bool{true, false, false}},
	{name: "Coombs indireto", trimesters: [3]bool{true, true, true}},
	{name: "Hemoglobina/Hematócrito", trimesters: [3]bool{true, true, true}},
	{name: "Plaquetas", trimesters: [3]bool{true, true, true}},
	{name: "Glicemia de jejum", trimesters: [3]bool{true, false, false}},
	{name: "VDRL", trimesters: [3]bool{true, true, true}},
	{name: "FTA-ABS IgG", trimesters: [3]bool{true, true, true}},
	{name: "FTA-ABS IgM", trimesters: [3]bool{true, true, true}},
	{name: "HIV", trimesters: [3]bool{true, false, true}},
	{name: "Hepatite B (HBsAg)", trimesters: [3]bool{true, false, true}},
	{name: "Anti-HBs", trimesters: [3]bool{true, true, true}},
	{name: "Hepatite C (Anti-HCV)", trimesters: [3]bool{true, false, false}},
	{name: "Toxoplasmose IgG", trimesters: [3]bool{true, true, true}},
	{name: "Toxoplasmose IgM", trimesters: [3]bool{true, true, true}},
	{name: "Rubéola IgG", trimesters: [3]bool{true, true, true}},
	{name: "Rubéola IgM", trimesters: [3]bool{true, true, true}},
	{name: "Citomegalovírus IgG", trimesters: [3]bool{true, true, true}},
	{name: "Citomegalovírus IgM", trimesters: [3]bool{true, true, true}},
	{name: "TSH", trimesters: [3]bool{true, true, true}},
	{name: "T4 Livre", trimesters: [3]bool{true, false, false}},
	{name: "Eletroforese de Hemoglobina", trimesters: [3]bool{true, false, false}},
	{name: "Ferritina", trimesters: [3]bool{true, true, true}},
	{name: "Vitamina D (25-OH)", trimesters: [3]bool{true, true, true}},
	{name: "Vitamina B12", trimesters: [3]bool{true, true, true}},
	{name: "TTGO 75g (Curva Glicêmica)", trimesters: [3]bool{false, true, false}, subfields: []string{"Jejum", "1 hora", "2 horas"}},
	// Orina
	{name: "EAS (Urina tipo 1)", trimesters: [3]bool{true, true, true}},
	{name: "Urocultura", trimesters: [3]bool{true, true, true}},
	{name: "Proteinúria de 24 horas", trimesters: [3]bool{false, false, true}},
	// Heces
	{name: "EPF (Parasitológico de Fezes)", trimesters: [3]bool{true, false, false}},
	// Otros
	{name: "Swab vaginal/retal EGB", trimesters: [3]bool{false, false, true}},
}

// ExpectedPanel devuelve los nombres esperados para un trimestre, en el
// orden del panel. Exámenes con subcampos se expanden a un nombre por
// subcampo ("TTGO 75g (Curva Glicêmica) - Jejum").
func ExpectedPanel(t Trimester) []string {
	if !t.Valid() {
		return nil
	}

	out := make([]string, 0, len(expectedExams))
	for _, e := range expectedExams {
		if !e.trimesters[t-1] {
			continue
		}
		if len(e.subfields) > 0 {
			for _, sf := range e.subfields {
				out = append(out, e.name+" - "+sf)
			}
			continue
		}
		out = append(out, e.name)
	}
	return out
}
