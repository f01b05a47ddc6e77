package visits

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
	r.Route("/pregnancies/{pregnancyID}/visits", func(vr chi.Router) {
		vr.Post("/", createVisitHandler(svc, pregSvc))
		vr.Get("/", listVisitsHandler(svc, pregSvc))
	})
}

type createVisitRequest struct {
	VisitDate string `json:"visit_date" validate:"required"`

	WeightKg       *float64 `json:"weight_kg" validate:"omitempty,gt=0"`
	SystolicBP     *int     `json:"systolic_bp" validate:"omitempty,min=40,max=300"`
	DiastolicBP    *int     `json:"diastolic_bp" validate:"omitempty,min=20,max=200"`
	FundalHeightCm *float64 `json:"fundal_height_cm" validate:"omitempty,gt=0"`
	FetalHeartRate *int     `json:"fetal_heart_rate" validate:"omitempty,min=0,max=300"`

	Urgent bool   `json:"urgent"`
	Notes  string `json:"notes"`
}

type visitResponse struct {
	ID          string `json:"id"`
	PregnancyID string `json:"pregnancy_id"`
	VisitDate   string `json:"visit_date"`

	WeightKg       *float64 `json:"weight_kg,omitempty"`
	SystolicBP     *int     `json:"systolic_bp,omitempty"`
	DiastolicBP    *int     `json:"diastolic_bp,omitempty"`
	FundalHeightCm *float64 `json:"fundal_height_cm,omitempty"`
	FetalHeartRate *int     `json:"fetal_heart_rate,omitempty"`

	Urgent bool   `json:"urgent"`
	Notes  string `json:"notes,omitempty"`

	RecordedAt time.Time `json:"recorded_at"`
}

func createVisitHandler(svc *Service, pregSvc *pregnancies.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireStaff(w, r) {
			return
		}

		pregnancyID := chi.URLParam(r, "pregnancyID")
		if _, err := pregSvc.GetByID(r.Context(), pregnancyID); err != nil {
			http.Error(w, "pregnancy not found", http.StatusNotFound)
			return
		}

		var req createVisitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		visitDate, err := time.Parse("2006-01-02", req.VisitDate)
		if err != nil {
			http.Error(w, "visit_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		v, err := svc.Create(r.Context(), pregnancyID, CreateInput{
			VisitDate:      visitDate,
			WeightKg:       req.WeightKg,
			SystolicBP:     req.SystolicBP,
			DiastolicBP:    req.DiastolicBP,
			FundalHeightCm: req.FundalHeightCm,
			FetalHeartRate: req.FetalHeartRate,
			Urgent:         req.Urgent,
			Notes:          req.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toVisitResponse(v))
	}
}

func listVisitsHandler(svc *Service, pregSvc *pregnancies.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireStaff(w, r) {
			return
		}

		pregnancyID := chi.URLParam(r, "pregnancyID")
		if _, err := pregSvc.GetByID(r.Context(), pregnancyID); err != nil {
			http.Error(w, "pregnancy not found", http.StatusNotFound)
			return
		}

		items, err := svc.ListByPregnancy(r.Context(), pregnancyID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]visitResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVisitResponse(v))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toVisitResponse(v Visit) visitResponse {
	return visitResponse{
		ID:             v.ID,
		PregnancyID:    v.PregnancyID,
		VisitDate:      v.VisitDate.Format("2006-01-02"),
		WeightKg:       v.WeightKg,
		SystolicBP:     v.SystolicBP,
		DiastolicBP:    v.DiastolicBP,
		FundalHeightCm: v.FundalHeightCm,
		FetalHeartRate: v.FetalHeartRate,
		Urgent:         v.Urgent,
		Notes:          v.Notes,
		RecordedAt:     v.RecordedAt,
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
