package justifications

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"prenatal-clinical-history/internal/domain/pregnancies"
	"prenatal-clinical-history/internal/middleware"
)

var validate = validator.New()

func RegisterRoutes(r chi.Router, svc *Service, pregSvc *pregnancies.Service) {
	r.Route("/pregnancies/{pregnancyID}/justification", func(jr chi.Router) {
		jr.Post("/", createJustificationHandler(svc, pregSvc))
		jr.Get("/", getJustificationHandler(svc, pregSvc))
		jr.Delete("/", removeJustificationHandler(svc, pregSvc))
	})
}

type createJustificationRequest struct {
	Reason          string `json:"reason" validate:"required"`
	ExpectedVisitBy string `json:"expected_visit_by"` // YYYY-MM-DD opcional
	Notes           string `json:"notes"`
}

type justificationResponse struct {
	ID              string    `json:"id"`
	PregnancyID     string    `json:"pregnancy_id"`
	Reason          string    `json:"reason"`
	ExpectedVisitBy *string   `json:"expected_visit_by,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func createJustificationHandler(svc *Service, pregSvc *pregnancies.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireStaff(w, r) {
			return
		}

		pregnancyID := chi.URLParam(r, "pregnancyID")
		if _, err := pregSvc.GetByID(r.Context(), pregnancyID); err != nil {
			http.Error(w, "pregnancy not found", http.StatusNotFound)
			return
		}

		var req createJustificationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var expectedBy *time.Time
		if strings.TrimSpace(req.ExpectedVisitBy) != "" {
			t, err := time.Parse("2006-01-02", req.ExpectedVisitBy)
			if err != nil {
				http.Error(w, "expected_visit_by must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			expectedBy = &t
		}

		j, err := svc.Create(r.Context(), pregnancyID, CreateInput{
			Reason:          Reason(req.Reason),
			ExpectedVisitBy: expectedBy,
			Notes:           req.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toJustificationResponse(j))
	}
}

func getJustificationHandler(svc *Service, pregSvc *pregnancies.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireStaff(w, r) {
			return
		}

		pregnancyID := chi.URLParam(r, "pregnancyID")
		if _, err := pregSvc.GetByID(r.Context(), pregnancyID); err != nil {
			http.Error(w, "pregnancy not found", http.StatusNotFound)
			return
		}

		j, err := svc.GetActive(r.Context(), pregnancyID)
		if err != nil {
			http.Error(w, "justification not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toJustificationResponse(j))
	}
}

func removeJustificationHandler(svc *Service, pregSvc *pregnancies.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireStaff(w, r) {
			return
		}

		pregnancyID := chi.URLParam(r, "pregnancyID")
		if _, err := pregSvc.GetByID(r.Context(), pregnancyID); err != nil {
			http.Error(w, "pregnancy not found", http.StatusNotFound)
			return
		}

		if err := svc.Remove(r.Context(), pregnancyID); err != nil {
			http.Error(w, "justification not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toJustificationResponse(j Justification) justificationResponse {
	var expected *string
	if j.ExpectedVisitBy != nil {
		s := j.ExpectedVisitBy.Format("2006-01-02")
		expected = &s
	}
	return justificationResponse{
		ID:              j.ID,
		PregnancyID:     j.PregnancyID,
		Reason:          string(j.Reason),
		ExpectedVisitBy: expected,
		Notes:           j.Notes,
		Status:          string(j.Status),
		CreatedAt:       j.CreatedAt,
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
