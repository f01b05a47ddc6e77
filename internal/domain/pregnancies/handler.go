package pregnancies

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"prenatal-clinical-history/internal/domain/gestation"
	"prenatal-clinical-history/internal/middleware"
)

var validate = validator.New()

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pregnancies", func(pr chi.Router) {
		pr.Post("/", createPregnancyHandler(svc))
		pr.Get("/", listPregnanciesHandler(svc))
		pr.Get("/{pregnancyID}", getPregnancyHandler(svc))
		pr.Patch("/{pregnancyID}", updatePregnancyHandler(svc))

		// Datación canónica recalculada en cada lectura; acepta ?date=YYYY-MM-DD
		// para evaluar en una fecha distinta de hoy.
		pr.Get("/{pregnancyID}/dating", datingHandler(svc))
	})
}

// createPregnancyRequest godoc: fechas en formato YYYY-MM-DD.
type createPregnancyRequest struct {
	PatientName string `json:"patient_name" validate:"required,min=1"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`

	LMPDate           string `json:"lmp_date"`
	UltrasoundDate    string `json:"ultrasound_date"`
	UltrasoundGAWeeks *int   `json:"ultrasound_ga_weeks" validate:"omitempty,min=0,max=45"`
	UltrasoundGADays  *int   `json:"ultrasound_ga_days" validate:"omitempty,min=0,max=6"`

	ProgrammedDeliveryDate string `json:"programmed_delivery_date"`
	DesiredDeliveryType    string `json:"desired_delivery_type" validate:"omitempty,oneof=vaginal cesarean undecided"`

	HighRisk bool   `json:"high_risk"`
	Notes    string `json:"notes"`
}

type pregnancyResponse struct {
	ID          string `json:"id"`
	PatientName string `json:"patient_name"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`

	LMPDate           *string `json:"lmp_date,omitempty"`
	UltrasoundDate    *string `json:"ultrasound_date,omitempty"`
	UltrasoundGAWeeks *int    `json:"ultrasound_ga_weeks,omitempty"`
	UltrasoundGADays  *int    `json:"ultrasound_ga_days,omitempty"`

	ProgrammedDeliveryDate *string `json:"programmed_delivery_date,omitempty"`
	DesiredDeliveryType    string  `json:"desired_delivery_type"`

	HighRisk bool   `json:"high_risk"`
	Notes    string `json:"notes,omitempty"`
	Status   string `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type datingResponse struct {
	Dated        bool   `json:"dated"`
	GADays       int    `json:"ga_days,omitempty"`
	GAFormatted  string `json:"ga_formatted,omitempty"`
	EDD          string `json:"edd,omitempty"`
	Source       string `json:"source,omitempty"`
	IsPostTerm   bool   `json:"is_post_term"`
	DaysPostTerm int    `json:"days_post_term"`
}

func createPregnancyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireStaff(w, r) {
			return
		}

		var req createPregnancyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		lmp, err := parseDate(req.LMPDate)
		if err != nil {
			http.Error(w, "lmp_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		us, err := parseDate(req.UltrasoundDate)
		if err != nil {
			http.Error(w, "ultrasound_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		programmed, err := parseDate(req.ProgrammedDeliveryDate)
		if err != nil {
			http.Error(w, "programmed_delivery_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			PatientName:            req.PatientName,
			Phone:                  req.Phone,
			Email:                  req.Email,
			LMPDate:                lmp,
			UltrasoundDate:         us,
			UltrasoundGAWeeks:      req.UltrasoundGAWeeks,
			UltrasoundGADays:       req.UltrasoundGADays,
			ProgrammedDeliveryDate: programmed,
			DesiredDeliveryType:    DeliveryType(req.DesiredDeliveryType),
			HighRisk:               req.HighRisk,
			Notes:                  req.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toPregnancyResponse(p))
	}
}

func listPregnanciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireStaff(w, r) {
			return
		}

		items, err := svc.ListActive(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]pregnancyResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPregnancyResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getPregnancyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireStaff(w, r) {
			return
		}

		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "pregnancyID"))
		if err != nil {
			http.Error(w, "pregnancy not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toPregnancyResponse(p))
	}
}

type updatePregnancyRequest struct {
	LMPDate           *string `json:"lmp_date"`
	UltrasoundDate    *string `json:"ultrasound_date"`
	UltrasoundGAWeeks *int    `json:"ultrasound_ga_weeks" validate:"omitempty,min=0,max=45"`
	UltrasoundGADays  *int    `json:"ultrasound_ga_days" validate:"omitempty,min=0,max=6"`

	ProgrammedDeliveryDate *string `json:"programmed_delivery_date"`
	DesiredDeliveryType    *string `json:"desired_delivery_type" validate:"omitempty,oneof=vaginal cesarean undecided"`
	Status                 *string `json:"status" validate:"omitempty,oneof=active delivered closed"`
	Notes                  *string `json:"notes"`
}

func updatePregnancyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireStaff(w, r) {
			return
		}

		var req updatePregnancyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		in := UpdateDatingInput{
			UltrasoundGAWeeks: req.UltrasoundGAWeeks,
			UltrasoundGADays:  req.UltrasoundGADays,
			Notes:             req.Notes,
		}

		var err error
		if in.LMPDate, err = parseDatePtr(req.LMPDate); err != nil {
			http.Error(w, "lmp_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if in.UltrasoundDate, err = parseDatePtr(req.UltrasoundDate); err != nil {
			http.Error(w, "ultrasound_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if in.ProgrammedDeliveryDate, err = parseDatePtr(req.ProgrammedDeliveryDate); err != nil {
			http.Error(w, "programmed_delivery_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if req.DesiredDeliveryType != nil {
			dt := DeliveryType(*req.DesiredDeliveryType)
			in.DesiredDeliveryType = &dt
		}
		if req.Status != nil {
			st := Status(*req.Status)
			in.Status = &st
		}

		p, err := svc.UpdateDating(r.Context(), chi.URLParam(r, "pregnancyID"), in)
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotFound:
				http.Error(w, "pregnancy not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, toPregnancyResponse(p))
	}
}

func datingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireStaff(w, r) {
			return
		}

		ref := time.Now()
		if q := strings.TrimSpace(r.URL.Query().Get("date")); q != "" {
			t, err := time.Parse("2006-01-02", q)
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			ref = t
		}

		_, est, ok, err := svc.EstimateAt(r.Context(), chi.URLParam(r, "pregnancyID"), ref)
		if err != nil {
			http.Error(w, "pregnancy not found", http.StatusNotFound)
			return
		}
		if !ok {
			// Sin DUM ni ultrasonido: no es un error, es un embarazo sin datación.
			writeJSON(w, http.StatusOK, datingResponse{Dated: false})
			return
		}

		pt := gestation.DetectPostTerm(est.GADays)
		writeJSON(w, http.StatusOK, datingResponse{
			Dated:        true,
			GADays:       est.GADays,
			GAFormatted:  gestation.FormatGA(est.GADays),
			EDD:          est.EDD.Format("2006-01-02"),
			Source:       string(est.Source),
			IsPostTerm:   pt.IsPostTerm,
			DaysPostTerm: pt.DaysPostTerm,
		})
	}
}

func toPregnancyResponse(p Pregnancy) pregnancyResponse {
	return pregnancyResponse{
		ID:                     p.ID,
		PatientName:            p.PatientName,
		Phone:                  p.Phone,
		Email:                  p.Email,
		LMPDate:                formatDatePtr(p.LMPDate),
		UltrasoundDate:         formatDatePtr(p.UltrasoundDate),
		UltrasoundGAWeeks:      p.UltrasoundGAWeeks,
		UltrasoundGADays:       p.UltrasoundGADays,
		ProgrammedDeliveryDate: formatDatePtr(p.ProgrammedDeliveryDate),
		DesiredDeliveryType:    string(p.DesiredDeliveryType),
		HighRisk:               p.HighRisk,
		Notes:                  p.Notes,
		Status:                 string(p.Status),
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
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

func parseDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	return parseDate(*s)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

// writeJSON está duplicado a propósito en los handlers de cada módulo,
// igual que en el resto del código: todavía no amerita un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
