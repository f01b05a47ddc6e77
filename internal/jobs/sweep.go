package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"prenatal-clinical-history/internal/domain/alerts"
	"prenatal-clinical-history/internal/ports/notify"
)

// Sweep corre el barrido diario de alertas: recalcula ambas listas y
// publica un resumen. No persiste nada; las listas siguen siendo
// derivadas y cualquier GET las recalcula igual.
type Sweep struct {
	alerts   *alerts.Service
	notifier notify.Notifier
	log      *zap.Logger
	cron     *cron.Cron
}

func NewSweep(alertSvc *alerts.Service, notifier notify.Notifier, log *zap.Logger) *Sweep {
	return &Sweep{
		alerts:   alertSvc,
		notifier: notifier,
		log:      log,
	}
}

// Start programa el barrido con una spec cron de 5 campos ("0 7 * * *").
func (s *Sweep) Start(schedule string) error {
	if s.cron != nil {
		return errors.New("sweep already started")
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, s.Run); err != nil {
		return err
	}
	c.Start()
	s.cron = c

	s.log.Info("alert sweep scheduled", zap.String("schedule", schedule))
	return nil
}

func (s *Sweep) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Run ejecuta un barrido ahora. Lo llama el cron, pero también sirve
// para dispararlo a mano.
func (s *Sweep) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ref := time.Now()

	overdue, err := s.alerts.OverdueVisits(ctx, ref)
	if err != nil {
		s.log.Error("sweep: overdue visits failed", zap.Error(err))
		return
	}

	deliveries, err := s.alerts.UpcomingDeliveries(ctx, ref)
	if err != nil {
		s.log.Error("sweep: upcoming deliveries failed", zap.Error(err))
		return
	}

	postTerm := 0
	for _, d := range deliveries {
		if d.PostTerm {
			postTerm++
		}
	}

	s.log.Info("alert sweep done",
		zap.Int("overdue_visits", len(overdue)),
		zap.Int("upcoming_deliveries", len(deliveries)),
		zap.Int("post_term", postTerm),
	)

	if s.notifier == nil {
		return
	}
	summary := notify.AlertSummary{
		ReferenceDate:      ref.Format("2006-01-02"),
		OverdueVisits:      len(overdue),
		UpcomingDeliveries: len(deliveries),
		PostTerm:           postTerm,
	}
	if err := s.notifier.NotifyAlertSummary(ctx, summary); err != nil {
		s.log.Warn("sweep: notify failed", zap.Error(err))
	}
}
