package clinicauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"prenatal-clinical-history/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("clinicauth client not configured")
	ErrUnauthorized  = errors.New("clinicauth unauthorized")
	ErrUpstream      = errors.New("clinicauth upstream error")
)

// Config del cliente contra el servicio de identidad de la clínica.
// BaseURL y APIKey normalmente vienen de env vars.
type Config struct {
	BaseURL string
	APIKey  string

	// Opcional: nombre del header donde se manda la API key.
	// Si está vacío, se usa "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
}

type Client struct {
	apiKey       string
	apiKeyHeader string
	rest         *resty.Client
}

func NewClient(cfg Config) *Client {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	rest := resty.New().
		SetBaseURL(strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")).
		SetTimeout(timeout)

	return &Client{
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
		rest:         rest,
	}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.rest != nil && c.rest.BaseURL != "" && c.apiKey != ""
}

// VerifyToken valida el token de staff y trae claims.
func (c *Client) VerifyToken(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	var out struct {
		UserID   string `json:"user_id"`
		Email    string `json:"email"`
		ClinicID string `json:"clinic_id"`
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader(c.apiKeyHeader, c.apiKey).
		SetAuthToken(token).
		SetBody(map[string]string{"token": token}).
		SetResult(&out).
		Post("/v1/tokens/verify")
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		// ok
	case http.StatusUnauthorized, http.StatusForbidden:
		return auth.Claims{}, ErrUnauthorized
	default:
		return auth.Claims{}, fmt.Errorf("%w: status=%d", ErrUpstream, resp.StatusCode())
	}

	out.UserID = strings.TrimSpace(out.UserID)
	if out.UserID == "" {
		return auth.Claims{}, errors.New("clinicauth response missing user_id")
	}

	return auth.Claims{
		UserID:   out.UserID,
		Email:    strings.TrimSpace(out.Email),
		ClinicID: strings.TrimSpace(out.ClinicID),
	}, nil
}
