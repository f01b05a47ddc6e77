package labreports

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"prenatal-clinical-history/internal/middleware"
)

var validate = validator.New()

func RegisterRoutes(r chi.Router) {
	r.Route("/lab-reports", func(lr chi.Router) {
		lr.Post("/reconcile", reconcileHandler())
		lr.Get("/expected-panel", expectedPanelHandler())
	})
}

type extractedExamRequest struct {
	Name           string `json:"name" validate:"required"`
	Value          string `json:"value"`
	Subfield       string `json:"subfield"`
	CollectionDate string `json:"collection_date"` // YYYY-MM-DD opcional
}

type reconcileRequest struct {
	Trimester int                    `json:"trimester" validate:"required,min=1,max=3"`
	Exams     []extractedExamRequest `json:"exams"`
}

func reconcileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireStaff(w, r) {
			return
		}

		var req reconcileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		trimester := Trimester(req.Trimester)
		extracted := make([]ExtractedExam, 0, len(req.Exams))
		for _, e := range req.Exams {
			var collected *time.Time
			if strings.TrimSpace(e.CollectionDate) != "" {
				t, err := time.Parse("2006-01-02", e.CollectionDate)
				if err != nil {
					http.Error(w, "collection_date must be YYYY-MM-DD", http.StatusBadRequest)
					return
				}
				collected = &t
			}
			extracted = append(extracted, ExtractedExam{
				Name:           e.Name,
				Value:          e.Value,
				Subfield:       e.Subfield,
				CollectionDate: collected,
				Trimester:      req.Trimester,
			})
		}

		report := Reconcile(extracted, ExpectedPanel(trimester))
		writeJSON(w, http.StatusOK, report)
	}
}

func expectedPanelHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireStaff(w, r) {
			return
		}

		q := strings.TrimSpace(r.URL.Query().Get("trimester"))
		trimester := Trimester(0)
		switch q {
		case "1":
			trimester = TrimesterFirst
		case "2":
			trimester = TrimesterSecond
		case "3":
			trimester = TrimesterThird
		default:
			http.Error(w, "trimester must be 1, 2 or 3", http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"trimester": int(trimester),
			"exams":     ExpectedPanel(trimester),
		})
	}
}

func requireStaff(w http.ResponseWriter, r *http.Request) bool {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
