package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"campus-cloud/internal/audit"
	"campus-cloud/internal/auth"
	expenserepo "campus-cloud/internal/expenses/infrastructure/postgres"
	feerepo "campus-cloud/internal/fees/infrastructure/postgres"
	insightapp "campus-cloud/internal/insights/application"
	"campus-cloud/internal/observability/metrics"
	paymentrepo "campus-cloud/internal/payments/infrastructure/postgres"
	reportapp "campus-cloud/internal/reporting/application"
	"campus-cloud/internal/reporting/infrastructure/snapshotrpc"
	reportinterfaces "campus-cloud/internal/reporting/interfaces"
	rosterrepo "campus-cloud/internal/roster/infrastructure/postgres"
	uniformrepo "campus-cloud/internal/uniforms/infrastructure/postgres"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := loadConfig()
	logger := log.New(os.Stdout, "", log.LstdFlags)

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("db open error: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatalf("db ping error: %v", err)
	}

	metrics.Init(db, logger)
	schoolChecker := auth.NewSchoolChecker(db)
	auditRepo := audit.NewRepository(db)

	studentRepo := rosterrepo.NewStudentRepository(db)
	feeRepo := feerepo.NewFeeRepository(db)
	registrationRepo := feerepo.NewRegistrationRepository(db)
	paymentRepo := paymentrepo.NewPaymentRepository(db)
	popRepo := paymentrepo.NewPOPRepository(db)
	expenseRepo := expenserepo.NewExpenseRepository(db)
	uniformOrderRepo := uniformrepo.NewOrderRepository(db)

	var snapshots reportapp.SnapshotProvider
	if cfg.SnapshotRPCURL != "" {
		client, err := snapshotrpc.NewClient(cfg.SnapshotRPCURL, cfg.SnapshotRPCToken)
		if err != nil {
			logger.Fatalf("snapshot client error: %v", err)
		}
		snapshots = client
	}

	reportService, err := reportapp.NewService(
		studentRepo,
		feeRepo,
		registrationRepo,
		paymentRepo,
		popRepo,
		expenseRepo,
		uniformOrderRepo,
		snapshots,
		reportapp.SystemClock{},
		logger,
	)
	if err != nil {
		logger.Fatalf("report service error: %v", err)
	}

	insightCfg, err := insightapp.LoadConfig(cfg.InsightsConfigPath)
	if err != nil {
		logger.Fatalf("insights config error: %v", err)
	}
	insightEngine := insightapp.NewEngine(insightCfg)

	reportHandler, err := reportinterfaces.NewReportHandler(reportService, insightEngine, schoolChecker, auditRepo)
	if err != nil {
		logger.Fatalf("report handler error: %v", err)
	}

	policy := auth.NewDefaultPolicy([]string{"/healthz", "/metrics"}, nil)
	authMiddleware := auth.NewMiddleware([]byte(cfg.JWTSecret), policy)

	mux := http.NewServeMux()
	mux.Handle("/api/v1/reports/financial", reportHandler)
	mux.Handle("/api/v1/reports/financial/", reportHandler)
	mux.Handle("/api/v1/reports/insights", reportHandler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: loggingMiddleware(authMiddleware.Wrap(mux), logger)}
	logger.Printf("http listening on %s", cfg.HTTPAddr)
	logger.Fatal(server.ListenAndServe())
}

type config struct {
	DatabaseURL        string
	HTTPAddr           string
	SnapshotRPCURL     string
	SnapshotRPCToken   string
	InsightsConfigPath string
	JWTSecret          string
}

func loadConfig() config {
	cfg := config{
		DatabaseURL:        getenvDefault("DATABASE_URL", getenvDefault("PG_DSN", "")),
		HTTPAddr:           getenvDefault("HTTP_ADDR", ":8080"),
		SnapshotRPCURL:     getenvDefault("SNAPSHOT_RPC_URL", ""),
		SnapshotRPCToken:   getenvDefault("SNAPSHOT_RPC_TOKEN", ""),
		InsightsConfigPath: getenvDefault("INSIGHTS_CONFIG", ""),
		JWTSecret:          getenvDefault("AUTH_JWT_SECRET", getenvDefault("JWT_SECRET", "")),
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL or PG_DSN is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("AUTH_JWT_SECRET is required")
	}
	return cfg
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func loggingMiddleware(next http.Handler, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		resp := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(resp, r)
		logger.Printf("http %s %s %d %s", r.Method, r.URL.Path, resp.status, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
