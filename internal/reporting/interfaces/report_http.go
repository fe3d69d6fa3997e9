package interfaces

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"campus-cloud/internal/audit"
	"campus-cloud/internal/auth"
	insightapp "campus-cloud/internal/insights/application"
	"campus-cloud/internal/observability/metrics"
	"campus-cloud/internal/period"
	reportapp "campus-cloud/internal/reporting/application"
)

// ReportHandler handles financial report APIs.
type ReportHandler struct {
	service       *reportapp.Service
	engine        *insightapp.Engine
	schoolChecker auth.SchoolAccessChecker
	auditLogger   audit.Logger
}

// NewReportHandler constructs a handler.
func NewReportHandler(service *reportapp.Service, engine *insightapp.Engine, schoolChecker auth.SchoolAccessChecker, auditLogger audit.Logger) (*ReportHandler, error) {
	if service == nil {
		return nil, errors.New("report handler: nil service")
	}
	if engine == nil {
		return nil, errors.New("report handler: nil insight engine")
	}
	return &ReportHandler{service: service, engine: engine, schoolChecker: schoolChecker, auditLogger: auditLogger}, nil
}

// ServeHTTP handles report routes under /api/v1/reports.
func (h *ReportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/v1/reports/financial":
		h.handleFinancial(w, r)
	case "/api/v1/reports/insights":
		h.handleInsights(w, r)
	case "/api/v1/reports/financial/export.xlsx":
		h.handleExportXLSX(w, r)
	case "/api/v1/reports/financial/export.pdf":
		h.handleExportPDF(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *ReportHandler) handleFinancial(w http.ResponseWriter, r *http.Request) {
	report, ok := h.generateReport(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(report)
	h.logAudit(r, report.SchoolID, "report.generate", map[string]any{
		"window": string(report.Window),
	})
}

func (h *ReportHandler) handleInsights(w http.ResponseWriter, r *http.Request) {
	result := metrics.ResultSuccess
	defer func() {
		metrics.IncInsightGenerate(result)
	}()

	report, ok := h.generateReport(w, r)
	if !ok {
		result = metrics.ResultError
		return
	}
	insights := h.engine.Generate(report.Accounting, report.Payments, report.Expenses)
	resp := map[string]any{
		"school_id":    report.SchoolID,
		"window":       report.Window,
		"generated_at": report.GeneratedAt,
		"do":           insights.Do,
		"avoid":        insights.Avoid,
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
	h.logAudit(r, report.SchoolID, "report.insights", map[string]any{
		"window": string(report.Window),
	})
}

func (h *ReportHandler) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	result := metrics.ResultSuccess
	defer func() {
		metrics.ObserveReportExport("xlsx", result, time.Since(start))
	}()

	report, ok := h.generateReport(w, r)
	if !ok {
		result = metrics.ResultError
		return
	}
	data, err := BuildReportXLSX(report)
	if err != nil {
		result = metrics.ResultError
		http.Error(w, "export xlsx error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
	h.logAudit(r, report.SchoolID, "report.export", map[string]any{"format": "xlsx", "window": string(report.Window)})
}

func (h *ReportHandler) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	result := metrics.ResultSuccess
	defer func() {
		metrics.ObserveReportExport("pdf", result, time.Since(start))
	}()

	report, ok := h.generateReport(w, r)
	if !ok {
		result = metrics.ResultError
		return
	}
	data, err := BuildReportPDF(report)
	if err != nil {
		result = metrics.ResultError
		http.Error(w, "export pdf error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
	h.logAudit(r, report.SchoolID, "report.export", map[string]any{"format": "pdf", "window": string(report.Window)})
}

// generateReport resolves the school and window from the request and
// runs the report. A false return means the response is already written.
func (h *ReportHandler) generateReport(w http.ResponseWriter, r *http.Request) (*reportapp.Report, bool) {
	window, ok := period.ParseWindow(r.URL.Query().Get("window"))
	if !ok {
		http.Error(w, "invalid window", http.StatusBadRequest)
		return nil, false
	}

	claimSchoolID := auth.SchoolIDFromContext(r.Context())
	schoolID := r.URL.Query().Get("school_id")
	if schoolID == "" {
		schoolID = claimSchoolID
	}
	if schoolID == "" {
		http.Error(w, "missing school_id", http.StatusBadRequest)
		return nil, false
	}
	if claimSchoolID != "" && h.schoolChecker != nil {
		if err := h.schoolChecker.EnsureSchoolAccess(r.Context(), claimSchoolID, schoolID); err != nil {
			respondSchoolError(w, err)
			return nil, false
		}
	}

	report, err := h.service.Generate(r.Context(), schoolID, window)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return report, true
}

func (h *ReportHandler) logAudit(r *http.Request, schoolID, action string, meta map[string]any) {
	if h.auditLogger == nil {
		return
	}
	if auth.SchoolIDFromContext(r.Context()) == "" {
		return
	}
	payload, _ := json.Marshal(meta)
	_ = h.auditLogger.Log(r.Context(), audit.Entry{
		SchoolID:     schoolID,
		Actor:        auth.SubjectFromContext(r.Context()),
		Role:         string(auth.RoleFromContext(r.Context())),
		Action:       action,
		ResourceType: "report",
		ResourceID:   schoolID,
		Metadata:     payload,
		IP:           audit.ClientIP(r),
		UserAgent:    r.UserAgent(),
	})
}

func respondSchoolError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, auth.ErrSchoolMismatch) || errors.Is(err, auth.ErrSchoolInactive) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}
	if errors.Is(err, auth.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	http.Error(w, "school check failed", http.StatusInternalServerError)
}
