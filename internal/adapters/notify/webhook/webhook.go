package webhook

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"prenatal-clinical-history/internal/ports/notify"
)

// Notifier manda el resumen de alertas como POST JSON a un webhook
// (Slack relay, n8n, lo que la clínica tenga). Sin URL configurada es un
// no-op: el barrido igual corre y loguea.
type Notifier struct {
	rest *resty.Client
	url  string
}

func New(url string, timeout time.Duration) *Notifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Notifier{
		rest: resty.New().SetTimeout(timeout),
		url:  strings.TrimSpace(url),
	}
}

func (n *Notifier) IsConfigured() bool {
	return n != nil && n.url != ""
}

func (n *Notifier) NotifyAlertSummary(ctx context.Context, s notify.AlertSummary) error {
	if !n.IsConfigured() {
		return nil
	}

	resp, err := n.rest.R().
		SetContext(ctx).
		SetBody(s).
		Post(n.url)
	if err != nil {
		return fmt.Errorf("webhook post: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook post: status=%d", resp.StatusCode())
	}
	return nil
}
