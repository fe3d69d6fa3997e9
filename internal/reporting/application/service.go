package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	expapp "campus-cloud/internal/expenses/application"
	expenses "campus-cloud/internal/expenses/domain"
	feeapp "campus-cloud/internal/fees/application"
	fees "campus-cloud/internal/fees/domain"
	"campus-cloud/internal/observability/metrics"
	payapp "campus-cloud/internal/payments/application"
	payments "campus-cloud/internal/payments/domain"
	"campus-cloud/internal/period"
	roster "campus-cloud/internal/roster/domain"
	uniformapp "campus-cloud/internal/uniforms/application"
	uniforms "campus-cloud/internal/uniforms/domain"
)

// ErrSnapshotUnavailable marks the snapshot RPC as unusable for this
// request. It selects the local-aggregation path, never a failure.
var ErrSnapshotUnavailable = errors.New("reporting: snapshot unavailable")

// SnapshotProvider computes the pre-aggregated monthly snapshot.
type SnapshotProvider interface {
	ComputeMonthlySnapshot(ctx context.Context, schoolID string, monthStart time.Time) (*fees.MonthlySnapshot, error)
}

// DisabledSnapshotProvider always reports the snapshot as unavailable.
// It stands in when no RPC endpoint is configured.
type DisabledSnapshotProvider struct{}

// ComputeMonthlySnapshot implements SnapshotProvider.
func (DisabledSnapshotProvider) ComputeMonthlySnapshot(context.Context, string, time.Time) (*fees.MonthlySnapshot, error) {
	return nil, ErrSnapshotUnavailable
}

// FeeSource loads fee ledger entries.
type FeeSource interface {
	ListBySchool(ctx context.Context, schoolID string) ([]fees.Fee, error)
}

// RegistrationSource loads registration money from both of its tables.
type RegistrationSource interface {
	ListRegistrations(ctx context.Context, schoolID string, window *period.Range) ([]fees.Registration, error)
	ListApplications(ctx context.Context, schoolID string, window *period.Range) ([]fees.Registration, error)
}

// PaymentSource loads payment records.
type PaymentSource interface {
	ListBySchool(ctx context.Context, schoolID string, window *period.Range) ([]payments.Payment, error)
}

// POPSource loads proof-of-payment uploads.
type POPSource interface {
	ListBySchool(ctx context.Context, schoolID string, window *period.Range) ([]payments.ProofOfPayment, error)
}

// ExpenseSource loads outgoing money from both ledgers.
type ExpenseSource interface {
	ListPettyCash(ctx context.Context, schoolID string, window *period.Range) ([]expenses.Expense, error)
	ListTransactions(ctx context.Context, schoolID string, window *period.Range) ([]expenses.Expense, error)
}

// UniformOrderSource loads uniform order submissions.
type UniformOrderSource interface {
	ListBySchool(ctx context.Context, schoolID string, window *period.Range) ([]uniforms.Order, error)
}

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock uses time.Now.
type SystemClock struct{}

// Now returns current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Service assembles financial reports. It owns fan-out, fallback
// selection, and assembly; every number comes from the pure aggregators.
type Service struct {
	students      roster.StudentRepository
	fees          FeeSource
	registrations RegistrationSource
	payments      PaymentSource
	pops          POPSource
	expenses      ExpenseSource
	uniformOrders UniformOrderSource
	snapshots     SnapshotProvider
	clock         Clock
	logger        *log.Logger
}

// NewService constructs the report service.
func NewService(
	students roster.StudentRepository,
	feeSource FeeSource,
	registrations RegistrationSource,
	paymentSource PaymentSource,
	popSource POPSource,
	expenseSource ExpenseSource,
	uniformOrders UniformOrderSource,
	snapshots SnapshotProvider,
	clock Clock,
	logger *log.Logger,
) (*Service, error) {
	if students == nil {
		return nil, errors.New("report service: nil student repository")
	}
	if feeSource == nil {
		return nil, errors.New("report service: nil fee source")
	}
	if registrations == nil {
		return nil, errors.New("report service: nil registration source")
	}
	if paymentSource == nil {
		return nil, errors.New("report service: nil payment source")
	}
	if popSource == nil {
		return nil, errors.New("report service: nil pop source")
	}
	if expenseSource == nil {
		return nil, errors.New("report service: nil expense source")
	}
	if snapshots == nil {
		snapshots = DisabledSnapshotProvider{}
	}
	if clock == nil {
		clock = SystemClock{}
	}

	return &Service{
		students:      students,
		fees:          feeSource,
		registrations: registrations,
		payments:      paymentSource,
		pops:          popSource,
		expenses:      expenseSource,
		uniformOrders: uniformOrders,
		snapshots:     snapshots,
		clock:         clock,
		logger:        logger,
	}, nil
}

// Generate builds the full report for a school and window. Roster or fee
// fetch failures abort the report; the snapshot RPC and the uniform
// sub-computation degrade instead of failing.
func (s *Service) Generate(ctx context.Context, schoolID string, window period.Window) (*Report, error) {
	start := time.Now()
	result := metrics.ResultSuccess
	defer func() {
		metrics.ObserveReportGenerate(result, time.Since(start))
	}()

	if schoolID == "" {
		result = metrics.ResultError
		return nil, fees.ErrEmptySchoolID
	}
	normalized, ok := period.ParseWindow(string(window))
	if !ok {
		result = metrics.ResultError
		return nil, fmt.Errorf("report service: invalid window %q", window)
	}
	window = normalized

	now := s.clock.Now().UTC()
	windowRange := period.RangeFor(window, now)

	// Batch one: roster and the snapshot RPC. The snapshot is attempted
	// only for the month window and its failure is absorbed here.
	var students []roster.Student
	var snapshot *fees.MonthlySnapshot
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		students, err = s.students.ListBySchool(groupCtx, schoolID)
		if err != nil {
			return fmt.Errorf("report service: list students: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		if window != period.WindowMonth {
			return nil
		}
		snap, err := s.snapshots.ComputeMonthlySnapshot(groupCtx, schoolID, period.MonthOf(now))
		if err != nil {
			if !errors.Is(err, ErrSnapshotUnavailable) {
				s.logf("snapshot rpc failed for school %s, using local aggregation: %v", schoolID, err)
				metrics.IncSnapshotFallback()
			}
			return nil
		}
		snapshot = snap
		return nil
	})
	if err := group.Wait(); err != nil {
		result = metrics.ResultError
		return nil, err
	}

	// Batch two: fee and registration rows for the roster.
	var allFees []fees.Fee
	var registrations, applications []fees.Registration
	group, groupCtx = errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		allFees, err = s.fees.ListBySchool(groupCtx, schoolID)
		if err != nil {
			return fmt.Errorf("report service: list fees: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		registrations, err = s.registrations.ListRegistrations(groupCtx, schoolID, windowRange)
		if err != nil {
			return fmt.Errorf("report service: list registrations: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		applications, err = s.registrations.ListApplications(groupCtx, schoolID, windowRange)
		if err != nil {
			return fmt.Errorf("report service: list applications: %w", err)
		}
		return nil
	})
	if err := group.Wait(); err != nil {
		result = metrics.ResultError
		return nil, err
	}

	// Batch three: payment evidence and spend, each windowed by its own
	// date column. A uniform-order failure degrades to a nil summary.
	var pays []payments.Payment
	var uploads []payments.ProofOfPayment
	var pettyCash, transactions []expenses.Expense
	var orders []uniforms.Order
	uniformsOK := s.uniformOrders != nil
	group, groupCtx = errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		pays, err = s.payments.ListBySchool(groupCtx, schoolID, windowRange)
		if err != nil {
			return fmt.Errorf("report service: list payments: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		uploads, err = s.pops.ListBySchool(groupCtx, schoolID, windowRange)
		if err != nil {
			return fmt.Errorf("report service: list pops: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		pettyCash, err = s.expenses.ListPettyCash(groupCtx, schoolID, windowRange)
		if err != nil {
			return fmt.Errorf("report service: list petty cash: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		transactions, err = s.expenses.ListTransactions(groupCtx, schoolID, windowRange)
		if err != nil {
			return fmt.Errorf("report service: list transactions: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		if !uniformsOK {
			return nil
		}
		var err error
		orders, err = s.uniformOrders.ListBySchool(groupCtx, schoolID, windowRange)
		if err != nil {
			s.logf("uniform summary unavailable for school %s: %v", schoolID, err)
			uniformsOK = false
		}
		return nil
	})
	if err := group.Wait(); err != nil {
		result = metrics.ResultError
		return nil, err
	}

	summaries := feeapp.BuildStudentSummaries(students, allFees, window, now)
	breakdown, advance := feeapp.BuildBreakdown(students, allFees, window, now)
	financial := feeapp.BuildFinancialSummary(summaries, append(registrations, applications...), snapshot, window, now)
	paymentSummary := payapp.BuildSummary(pays)
	popSummary := payapp.BuildPOPSummary(uploads)
	expenseSummary := expapp.BuildSummary(append(pettyCash, transactions...))
	accounting := BuildAccounting(snapshot, window, paymentSummary, expenseSummary)

	report := &Report{
		SchoolID:    schoolID,
		Window:      window,
		GeneratedAt: now,
		Students:    summaries,
		Financial:   financial,
		Payments:    paymentSummary,
		POPs:        popSummary,
		Expenses:    expenseSummary,
		Breakdown:   breakdown,
		Advance:     advance,
		Accounting:  accounting,
	}
	if uniformsOK {
		uniformSummary := uniformapp.BuildSummary(orders, uploads, pays, len(summaries))
		report.Uniforms = &uniformSummary
	}
	return report, nil
}

func (s *Service) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
