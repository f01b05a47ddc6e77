package router

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "prenatal-clinical-history/docs"
	mem "prenatal-clinical-history/internal/adapters/storage/memory"
	pg "prenatal-clinical-history/internal/adapters/storage/postgres"
	"prenatal-clinical-history/internal/domain/alerts"
	"prenatal-clinical-history/internal/domain/justifications"
	"prenatal-clinical-history/internal/domain/labreports"
	"prenatal-clinical-history/internal/domain/pregnancies"
	"prenatal-clinical-history/internal/domain/visits"
	"prenatal-clinical-history/internal/middleware"
	"prenatal-clinical-history/internal/ports/auth"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB
}

// NewRouter arma la API completa. Devuelve también el servicio de
// alertas para que main lo comparta con el barrido programado.
func NewRouter(opts Options) (http.Handler, *alerts.Service) {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Debug-User-ID"},
	}))
	r.Use(httprate.LimitByIP(100, time.Minute))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		pregRepo  pregnancies.Repository
		visitRepo visits.Repository
		justRepo  justifications.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		pregRepo = pg.NewPregnanciesRepo(db)
		visitRepo = pg.NewVisitsRepo(db)
		justRepo = pg.NewJustificationsRepo(db)
	} else {
		pregRepo = mem.NewPregnanciesRepo()
		visitRepo = mem.NewVisitsRepo()
		justRepo = mem.NewJustificationsRepo()
	}

	// Services por módulo
	pregSvc := pregnancies.NewService(pregRepo)
	visitSvc := visits.NewService(visitRepo)
	justSvc := justifications.NewService(justRepo)
	alertSvc := alerts.NewService(pregSvc, visitSvc, justSvc)

	// Rutas por módulo
	pregnancies.RegisterRoutes(r, pregSvc)
	visits.RegisterRoutes(r, visitSvc, pregSvc)
	justifications.RegisterRoutes(r, justSvc, pregSvc)
	alerts.RegisterRoutes(r, alertSvc)
	labreports.RegisterRoutes(r)

	return r, alertSvc
}
