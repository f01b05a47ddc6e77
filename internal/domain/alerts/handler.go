package alerts

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"prenatal-clinical-history/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/alerts", func(ar chi.Router) {
		ar.Get("/overdue-visits", overdueVisitsHandler(svc))
		ar.Get("/upcoming-deliveries", upcomingDeliveriesHandler(svc))
	})
}

type overdueVisitRow struct {
	Kind        string `json:"kind"` // siempre "overdue_visit"
	PregnancyID string `json:"pregnancy_id"`
	PatientName string `json:"patient_name"`
	Phone       string `json:"phone,omitempty"`

	GADays        int    `json:"ga_days"`
	Band          string `json:"severity_band"`
	ThresholdDays int    `json:"threshold_days"`

	NeverVisited   bool    `json:"never_visited"`
	LastVisitDate  *string `json:"last_visit_date,omitempty"`
	DaysSinceVisit *int    `json:"days_since_visit,omitempty"` // null = nunca consultó
}

type upcomingDeliveryRow struct {
	Kind        string `json:"kind"` // siempre "upcoming_delivery"
	PregnancyID string `json:"pregnancy_id"`
	PatientName string `json:"patient_name"`

	DeliveryDate  string `json:"delivery_date"`
	DaysRemaining int    `json:"days_remaining"`
	SourceType    string `json:"source_type"` // programmed | ultrasound | lmp
	PostTerm      bool   `json:"post_term"`
	DaysPostTerm  int    `json:"days_post_term"`
	Severity      string `json:"severity_band"`
}

func overdueVisitsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireStaff(w, r) {
			return
		}

		ref, ok := referenceDate(w, r)
		if !ok {
			return
		}

		items, err := svc.OverdueVisits(r.Context(), ref)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]overdueVisitRow, 0, len(items))
		for _, a := range items {
			row := overdueVisitRow{
				Kind:          "overdue_visit",
				PregnancyID:   a.PregnancyID,
				PatientName:   a.PatientName,
				Phone:         a.Phone,
				GADays:        a.GADays,
				Band:          string(a.Band),
				ThresholdDays: a.ThresholdDays,
				NeverVisited:  a.NeverVisited,
			}
			if !a.NeverVisited {
				days := a.DaysSinceVisit
				row.DaysSinceVisit = &days
			}
			if a.LastVisitDate != nil {
				s := a.LastVisitDate.Format("2006-01-02")
				row.LastVisitDate = &s
			}
			out = append(out, row)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func upcomingDeliveriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireStaff(w, r) {
			return
		}

		ref, ok := referenceDate(w, r)
		if !ok {
			return
		}

		items, err := svc.UpcomingDeliveries(r.Context(), ref)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]upcomingDeliveryRow, 0, len(items))
		for _, a := range items {
			out = append(out, upcomingDeliveryRow{
				Kind:          "upcoming_delivery",
				PregnancyID:   a.PregnancyID,
				PatientName:   a.PatientName,
				DeliveryDate:  a.DeliveryDate.Format("2006-01-02"),
				DaysRemaining: a.DaysRemaining,
				SourceType:    string(a.Source),
				PostTerm:      a.PostTerm,
				DaysPostTerm:  a.DaysPostTerm,
				Severity:      string(a.Severity),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// referenceDate lee ?date=YYYY-MM-DD; sin query usa hoy. El "hoy" ambiente
// solo entra acá, nunca dentro de los motores de cálculo.
func referenceDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	q := strings.TrimSpace(r.URL.Query().Get("date"))
	if q == "" {
		return time.Now(), true
	}
	t, err := time.Parse("2006-01-02", q)
	if err != nil {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return time.Time{}, false
	}
	return t, true
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
