package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"prenatal-clinical-history/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	h, _ := router.NewRouter(router.Options{AuthVerifier: nil})
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_PrenatalFlow(t *testing.T) {
	ts := newTestServer(t)
	staffID := "dra-garcia"

	// 1) Sin identidad no se entra
	{
		st, _ := doReq(t, ts.URL, "GET", "/pregnancies", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without identity, got %d", st)
		}
	}

	// 2) Alta de embarazo datado por DUM
	pregID := createPregnancy(t, ts.URL, staffID, map[string]any{
		"patient_name": "María Pereira",
		"phone":        "+55 11 99999-0000",
		"lmp_date":     "2025-05-14",
	})

	// 3) Datación a fecha fija: 252 días = 36s 0d, FPP por DUM
	{
		st, body := doReq(t, ts.URL, "GET", "/pregnancies/"+pregID+"/dating?date=2026-01-21", staffID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dating, got %d body=%s", st, string(body))
		}
		var resp struct {
			Dated       bool   `json:"dated"`
			GADays      int    `json:"ga_days"`
			GAFormatted string `json:"ga_formatted"`
			EDD         string `json:"edd"`
			Source      string `json:"source"`
		}
		_ = json.Unmarshal(body, &resp)
		if !resp.Dated || resp.GADays != 252 || resp.GAFormatted != "36s 0d" {
			t.Fatalf("dating inesperada: %+v", resp)
		}
		if resp.EDD != "2026-02-18" || resp.Source != "lmp" {
			t.Fatalf("edd/source inesperados: %+v", resp)
		}
	}

	// 4) Sin consultas registradas: siempre atrasada
	{
		row := findOverdueRow(t, ts.URL, staffID, "2026-01-21", pregID)
		if row == nil {
			t.Fatal("paciente sin consultas debería estar en el alerta")
		}
		if row["never_visited"] != true {
			t.Fatalf("expected never_visited, got %v", row)
		}
		if row["severity_band"] != "34_to_36w" {
			t.Fatalf("expected band 34_to_36w at 252 días, got %v", row["severity_band"])
		}
	}

	// 5) Registrar consulta: 11 días <= umbral 15, sale de la lista
	{
		st, body := doReq(t, ts.URL, "POST", "/pregnancies/"+pregID+"/visits", staffID, map[string]any{
			"visit_date": "2026-01-10",
			"weight_kg":  71.3,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create visit, got %d body=%s", st, string(body))
		}

		if row := findOverdueRow(t, ts.URL, staffID, "2026-01-21", pregID); row != nil {
			t.Fatalf("11 días sin consulta no es atraso en banda de 15: %v", row)
		}
	}

	// 6) Un mes después (IG > 36s, umbral 8): 31 días => atrasada
	{
		row := findOverdueRow(t, ts.URL, staffID, "2026-02-10", pregID)
		if row == nil {
			t.Fatal("31 días sin consulta pasada la semana 36 debería alertar")
		}
		if row["severity_band"] != "after_36w" {
			t.Fatalf("expected band after_36w, got %v", row["severity_band"])
		}
		if days, _ := row["days_since_visit"].(float64); int(days) != 31 {
			t.Fatalf("days_since_visit = %v, want 31", row["days_since_visit"])
		}
	}

	// 7) Justificación con vencimiento suprime el alerta hasta esa fecha
	{
		st, body := doReq(t, ts.URL, "POST", "/pregnancies/"+pregID+"/justification", staffID, map[string]any{
			"reason":            "ja_agendada",
			"expected_visit_by": "2026-02-15",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create justification, got %d body=%s", st, string(body))
		}

		if row := findOverdueRow(t, ts.URL, staffID, "2026-02-10", pregID); row != nil {
			t.Fatalf("justificación vigente debería suprimir el alerta: %v", row)
		}

		// Vencida la fecha prevista sin nueva consulta, vuelve a la lista.
		if row := findOverdueRow(t, ts.URL, staffID, "2026-02-20", pregID); row == nil {
			t.Fatal("vencida la justificación, la paciente debe volver al alerta")
		}
	}

	// 8) Quitar la justificación a mano también funciona
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/pregnancies/"+pregID+"/justification", staffID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 remove justification, got %d", st)
		}
	}

	// 9) Cuenta regresiva de parto: faltan 8 días => elevated
	{
		row := findDeliveryRow(t, ts.URL, staffID, "2026-02-10", pregID)
		if row == nil {
			t.Fatal("a 8 días de la FPP debería estar en la cuenta regresiva")
		}
		if days, _ := row["days_remaining"].(float64); int(days) != 8 {
			t.Fatalf("days_remaining = %v, want 8", row["days_remaining"])
		}
		if row["severity_band"] != "elevated" || row["source_type"] != "lmp" {
			t.Fatalf("fila inesperada: %v", row)
		}
		if row["post_term"] != false {
			t.Fatalf("no debería ser pos-término: %v", row)
		}
	}

	// 10) Pasada la FPP: pos-término, días negativos, severidad crítica
	{
		row := findDeliveryRow(t, ts.URL, staffID, "2026-02-25", pregID)
		if row == nil {
			t.Fatal("una semana pasada la FPP sigue dentro de la ventana")
		}
		if row["post_term"] != true || row["severity_band"] != "critical" {
			t.Fatalf("fila inesperada pos-FPP: %v", row)
		}
		if days, _ := row["days_post_term"].(float64); int(days) != 7 {
			t.Fatalf("days_post_term = %v, want 7", row["days_post_term"])
		}
	}

	// 11) Muy lejos de la fecha (48 días): fuera de la ventana
	{
		if row := findDeliveryRow(t, ts.URL, staffID, "2026-01-01", pregID); row != nil {
			t.Fatalf("a 48 días no corresponde mostrar la cuenta regresiva: %v", row)
		}
	}
}

func TestHTTP_ProgrammedDateTakesPrecedence(t *testing.T) {
	ts := newTestServer(t)
	staffID := "dra-garcia"

	pregID := createPregnancy(t, ts.URL, staffID, map[string]any{
		"patient_name":             "Ana Souza",
		"lmp_date":                 "2025-05-14",
		"programmed_delivery_date": "2026-02-10",
		"desired_delivery_type":    "cesarean",
	})

	row := findDeliveryRow(t, ts.URL, staffID, "2026-02-01", pregID)
	if row == nil {
		t.Fatal("cesárea programada a 9 días debería listarse")
	}
	if row["source_type"] != "programmed" || row["delivery_date"] != "2026-02-10" {
		t.Fatalf("la fecha programada debe ganarle a la FPP por DUM: %v", row)
	}
	if days, _ := row["days_remaining"].(float64); int(days) != 9 {
		t.Fatalf("days_remaining = %v, want 9", row["days_remaining"])
	}
}

func TestHTTP_UndatedPregnancyExcludedFromAlerts(t *testing.T) {
	ts := newTestServer(t)
	staffID := "dra-garcia"

	// Sin DUM ni ultrasonido: ni atraso de consultas ni cuenta regresiva,
	// aunque exista fecha programada.
	pregID := createPregnancy(t, ts.URL, staffID, map[string]any{
		"patient_name":             "Paciente Sin Datación",
		"programmed_delivery_date": "2026-02-10",
	})

	if row := findOverdueRow(t, ts.URL, staffID, "2026-02-01", pregID); row != nil {
		t.Fatalf("embarazo sin datación no participa del alerta de consultas: %v", row)
	}
	if row := findDeliveryRow(t, ts.URL, staffID, "2026-02-01", pregID); row != nil {
		t.Fatalf("embarazo sin datación no participa de la cuenta regresiva: %v", row)
	}

	// La datación lo dice explícitamente en vez de fallar.
	st, body := doReq(t, ts.URL, "GET", "/pregnancies/"+pregID+"/dating?date=2026-02-01", staffID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 dating, got %d", st)
	}
	var resp struct {
		Dated bool `json:"dated"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Dated {
		t.Fatal("sin DUM ni US no hay datación")
	}
}

func TestHTTP_LabReportReconcile(t *testing.T) {
	ts := newTestServer(t)
	staffID := "dra-garcia"

	st, body := doReq(t, ts.URL, "POST", "/lab-reports/reconcile", staffID, map[string]any{
		"trimester": 1,
		"exams": []map[string]any{
			{"name": "Hemoglobina", "value": "12.5"},
			{"name": "TSH", "value": "  "},
		},
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 reconcile, got %d body=%s", st, string(body))
	}

	var rep struct {
		Stats struct {
			TotalFound      int `json:"totalEncontradosNoPDF"`
			TotalRegistered int `json:"totalCadastrados"`
			SuccessRate     int `json:"taxaSucesso"`
		} `json:"estatisticas"`
		Warnings []string `json:"avisos"`
	}
	_ = json.Unmarshal(body, &rep)
	if rep.Stats.TotalFound != 2 || rep.Stats.TotalRegistered != 1 || rep.Stats.SuccessRate != 50 {
		t.Fatalf("estatísticas inesperadas: %+v", rep.Stats)
	}
	if len(rep.Warnings) != 1 {
		t.Fatalf("un valor vacío => un aviso, got %v", rep.Warnings)
	}

	// Trimestre inválido en el panel esperado
	st, _ = doReq(t, ts.URL, "GET", "/lab-reports/expected-panel?trimester=4", staffID, nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid trimester, got %d", st)
	}
}

func createPregnancy(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pregnancies", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pregnancy, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create pregnancy: missing id body=%s", string(body))
	}
	return resp.ID
}

// findOverdueRow devuelve la fila del embarazo en el alerta de consultas
// atrasadas a la fecha dada, o nil si no figura.
func findOverdueRow(t *testing.T, baseURL, userID, date, pregnancyID string) map[string]any {
	t.Helper()
	return findAlertRow(t, baseURL, userID, "/alerts/overdue-visits?date="+date, pregnancyID)
}

func findDeliveryRow(t *testing.T, baseURL, userID, date, pregnancyID string) map[string]any {
	t.Helper()
	return findAlertRow(t, baseURL, userID, "/alerts/upcoming-deliveries?date="+date, pregnancyID)
}

func findAlertRow(t *testing.T, baseURL, userID, path, pregnancyID string) map[string]any {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", path, userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 %s, got %d body=%s", path, st, string(body))
	}

	var rows []map[string]any
	if err := json.Unmarshal(body, &rows); err != nil {
		t.Fatalf("unmarshal %s: %v body=%s", path, err, string(body))
	}
	for _, row := range rows {
		if row["pregnancy_id"] == pregnancyID {
			return row
		}
	}
	return nil
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
