package labreports

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// ExtractedExam es la salida del paso externo de extracción (OCR/LLM)
// sobre un laudo de laboratorio. Este módulo no extrae nada: solo
// concilia lo extraído contra el panel esperado.
type ExtractedExam struct {
	Name           string
	Value          string
	Subfield       string
	CollectionDate *time.Time
	Trimester      int
}

type FoundExam struct {
	Name           string     `json:"nome"`
	Value          string     `json:"valor"`
	CollectionDate *time.Time `json:"dataColeta,omitempty"`
	Trimester      int        `json:"trimestre,omitempty"`
}

type ReportStats struct {
	TotalFoundInDocument int `json:"totalEncontradosNoPDF"`
	TotalRegistered      int `json:"totalCadastrados"`
	TotalExpected        int `json:"totalEsperado"`
	SuccessRate          int `json:"taxaSucesso"`
}

// Report es el informe de conciliación que consume la UI; por eso las
// claves JSON conservan los nombres en portugués del contrato original.
type Report struct {
	Found    []FoundExam `json:"examesEncontrados"`
	Missing  []string    `json:"examesNaoPresentes"`
	Stats    ReportStats `json:"estatisticas"`
	Warnings []string    `json:"avisos"`
}

// Reconcile cruza las entradas extraídas contra el panel esperado.
//
// La tasa de éxito se mide contra lo que el documento contenía, no
// contra el panel completo: un laudo con 5 de 30 exámenes posibles,
// los 5 bien parseados, reporta 100%, no 17%. El panel completo solo
// alimenta la lista de faltantes.
func Reconcile(extracted []ExtractedExam, expectedPanel []string) Report {
	warnings := make([]string, 0)
	found := make([]FoundExam, 0, len(extracted))
	foundNames := make(map[string]struct{}, len(extracted))
	emptyValues := 0

	for _, e := range extracted {
		name := e.Name
		if e.Subfield != "" {
			name = e.Name + " - " + e.Subfield
		}
		found = append(found, FoundExam{
			Name:           name,
			Value:          e.Value,
			CollectionDate: e.CollectionDate,
			Trimester:      e.Trimester,
		})

		foundNames[normalizeName(e.Name)] = struct{}{}

		if strings.TrimSpace(e.Value) == "" {
			emptyValues++
			warnings = append(warnings, fmt.Sprintf("O exame %q foi encontrado mas não possui valor.", e.Name))
		}
	}

	missing := make([]string, 0)
	for _, expected := range expectedPanel {
		if !matchesAny(normalizeName(expected), foundNames) {
			missing = append(missing, expected)
		}
	}

	totalFound := len(found)
	totalRegistered := totalFound - emptyValues

	successRate := 0
	if totalFound > 0 {
		successRate = int(math.Round(float64(totalRegistered) / float64(totalFound) * 100))
	}

	if totalFound == 0 {
		warnings = append(warnings, "Nenhum exame foi encontrado no documento. Verifique se o arquivo está legível e contém resultados de exames laboratoriais.")
	}

	return Report{
		Found:   found,
		Missing: missing,
		Stats: ReportStats{
			TotalFoundInDocument: totalFound,
			TotalRegistered:      totalRegistered,
			TotalExpected:        len(expectedPanel),
			SuccessRate:          successRate,
		},
		Warnings: warnings,
	}
}

// matchesAny aplica contención bidireccional: el nombre esperado está
// presente si su forma normalizada contiene, o está contenida en, algún
// nombre extraído. Así "TSH — 3ª coleta" satisface el esperado "TSH" y
// "Hemoglobina" satisface "Hemoglobina/Hematócrito".
func matchesAny(normalizedExpected string, foundNames map[string]struct{}) bool {
	for name := range foundNames {
		if name == "" {
			continue
		}
		if strings.Contains(normalizedExpected, name) || strings.Contains(name, normalizedExpected) {
			return true
		}
	}
	return false
}

// normalizeName baja a minúsculas, descompone Unicode (NFD) y se queda
// solo con [a-z0-9]: los acentos quedan como marcas combinantes sueltas
// y se descartan junto con el resto de la puntuación.
func normalizeName(name string) string {
	decomposed := norm.NFD.String(strings.ToLower(name))
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
