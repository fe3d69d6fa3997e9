package metrics

import (
	"database/sql"
	"log"

	"github.com/prometheus/client_golang/prometheus"
)

func registerDBMetrics(db *sql.DB, logger *log.Logger) {
	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: metricPrefix + "fees_unverified_pops",
			Help: "Proof-of-payment uploads still awaiting review",
		},
		func() float64 {
			return queryCount(db, logger, "SELECT COUNT(*) FROM proof_of_payments WHERE status NOT IN ('approved', 'rejected')")
		},
	))

	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: metricPrefix + "fees_overdue_count",
			Help: "Fee records currently past due",
		},
		func() float64 {
			return queryCount(db, logger, "SELECT COUNT(*) FROM student_fees WHERE status = 'overdue'")
		},
	))
}

func queryCount(db *sql.DB, logger *log.Logger, query string) float64 {
	if db == nil {
		return 0
	}
	var count int64
	if err := db.QueryRow(query).Scan(&count); err != nil {
		if logger != nil {
			logger.Printf("metrics query failed: %v", err)
		}
		return 0
	}
	if count < 0 {
		return 0
	}
	return float64(count)
}
