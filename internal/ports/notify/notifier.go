package notify

import "context"

// AlertSummary es el resumen que sale del barrido diario.
type AlertSummary struct {
	ReferenceDate      string `json:"reference_date"`
	OverdueVisits      int    `json:"overdue_visits"`
	UpcomingDeliveries int    `json:"upcoming_deliveries"`
	PostTerm           int    `json:"post_term"`
}

// Notifier publica el resumen de alertas hacia afuera (webhook, etc).
type Notifier interface {
	NotifyAlertSummary(ctx context.Context, s AlertSummary) error
}
