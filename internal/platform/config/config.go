package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config concentra toda la configuración del servicio. Todo viene de env
// vars; .env solo se carga si existe (dev).
type Config struct {
	Port      string `envconfig:"PORT" default:"8080"`
	DBDSN     string `envconfig:"DB_DSN"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	AppName   string `envconfig:"APP_NAME" default:"prenatal-clinical-history"`

	// Verificación de tokens contra el servicio de identidad de la clínica.
	// Sin BaseURL, la API corre en modo dev (X-Debug-User-ID).
	AuthBaseURL string `envconfig:"AUTH_BASE_URL"`
	AuthAPIKey  string `envconfig:"AUTH_API_KEY"`

	// Barrido diario de alertas. Sin webhook igual corre y loguea.
	AlertWebhookURL    string `envconfig:"ALERT_WEBHOOK_URL"`
	AlertSweepSchedule string `envconfig:"ALERT_SWEEP_SCHEDULE" default:"0 7 * * *"`
}

func Load() (Config, error) {
	// Ignoramos el error: en prod no hay .env y está bien.
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}
	c.Port = strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
	return c, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}
