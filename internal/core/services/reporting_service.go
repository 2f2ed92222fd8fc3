package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/bizdocs_dashboard/internal/apperrors"
	"github.com/SscSPs/bizdocs_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdocs_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizdocs_dashboard/internal/core/ports/services"
	"github.com/SscSPs/bizdocs_dashboard/internal/utils/period"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	// MaxWindowMonths bounds the revenue series length.
	MaxWindowMonths     = 24
	defaultQueryTimeout = 10 * time.Second
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	documentRepo  portsrepo.DocumentReader
	currency      portssvc.CurrencySvcFacade
	now           func() time.Time
	location      *time.Location
	queryTimeout  time.Duration
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithClock overrides the time source used to find the current month.
func WithClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// WithReportLocation sets the time zone calendar months are computed in.
func WithReportLocation(loc *time.Location) ReportingServiceOption {
	return func(s *reportingService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithQueryTimeout bounds the total time spent in the document store per call.
func WithQueryTimeout(d time.Duration) ReportingServiceOption {
	return func(s *reportingService) {
		if d > 0 {
			s.queryTimeout = d
		}
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(
	reportingRepo portsrepo.ReportingRepository,
	documentRepo portsrepo.DocumentReader,
	currency portssvc.CurrencySvcFacade,
	options ...ReportingServiceOption,
) portssvc.ReportingService {
	svc := &reportingService{
		reportingRepo: reportingRepo,
		documentRepo:  documentRepo,
		currency:      currency,
		now:           time.Now,
		location:      time.UTC,
		queryTimeout:  defaultQueryTimeout,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// FetchRevenueSeries buckets the user's revenue documents by calendar month of creation.
func (s *reportingService) FetchRevenueSeries(ctx context.Context, userID string, windowMonths int, displayCurrency string, useNativeCurrency bool) ([]domain.RevenueSeries, error) {
	if err := s.validateRequest(windowMonths, displayCurrency); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	months := period.TrailingMonths(s.now(), windowMonths, s.location)
	from, to := period.Bounds(months)

	amounts, err := s.reportingRepo.ListRevenueAmounts(ctx, userID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve revenue amounts",
			slog.String("user_id", userID),
			slog.String("from", from.Format(time.RFC3339)),
			slog.String("to", to.Format(time.RFC3339)))
		return nil, apperrors.DataAccess("list revenue amounts", err)
	}

	index := make(map[string]int, len(months))
	for i, m := range months {
		index[period.Label(m)] = i
	}

	var series []domain.RevenueSeries
	if useNativeCurrency {
		series, err = s.nativeSeries(ctx, amounts, months, index, displayCurrency)
	} else {
		series, err = s.convertedSeries(ctx, amounts, months, index, displayCurrency)
	}
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Revenue series generated successfully",
		slog.String("user_id", userID),
		slog.Int("window_months", windowMonths),
		slog.String("currency", displayCurrency),
		slog.Bool("native_currency", useNativeCurrency),
		slog.Int("document_count", len(amounts)),
		slog.Int("series_count", len(series)))
	return series, nil
}

// convertedSeries normalises every amount to displayCurrency before summing.
func (s *reportingService) convertedSeries(ctx context.Context, amounts []domain.DocumentAmount, months []time.Time, index map[string]int, displayCurrency string) ([]domain.RevenueSeries, error) {
	series := newSeries(displayCurrency, months)
	for _, a := range amounts {
		i, ok := s.bucketIndex(ctx, index, a)
		if !ok {
			continue
		}
		converted, err := s.currency.Convert(a.Amount, a.CurrencyCode, displayCurrency)
		if err != nil {
			s.LogError(ctx, err, "Stored document has an unsupported currency",
				slog.String("currency", a.CurrencyCode))
			return nil, fmt.Errorf("failed to convert revenue amount: %w", err)
		}
		addToBucket(&series.Buckets[i], converted)
	}
	return []domain.RevenueSeries{series}, nil
}

// nativeSeries keeps each document in its own currency: one series per currency,
// ordered by currency code. Without documents a single zero series in
// displayCurrency is returned so callers always get windowMonths buckets.
func (s *reportingService) nativeSeries(ctx context.Context, amounts []domain.DocumentAmount, months []time.Time, index map[string]int, displayCurrency string) ([]domain.RevenueSeries, error) {
	byCurrency := make(map[string]*domain.RevenueSeries)
	for _, a := range amounts {
		i, ok := s.bucketIndex(ctx, index, a)
		if !ok {
			continue
		}
		if !s.currency.IsSupported(a.CurrencyCode) {
			err := apperrors.UnsupportedCurrency(a.CurrencyCode)
			s.LogError(ctx, err, "Stored document has an unsupported currency")
			return nil, err
		}
		cs, exists := byCurrency[a.CurrencyCode]
		if !exists {
			fresh := newSeries(a.CurrencyCode, months)
			cs = &fresh
			byCurrency[a.CurrencyCode] = cs
		}
		addToBucket(&cs.Buckets[i], a.Amount)
	}

	if len(byCurrency) == 0 {
		return []domain.RevenueSeries{newSeries(displayCurrency, months)}, nil
	}

	codes := make([]string, 0, len(byCurrency))
	for code := range byCurrency {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	out := make([]domain.RevenueSeries, 0, len(codes))
	for _, code := range codes {
		out = append(out, *byCurrency[code])
	}
	return out, nil
}

func (s *reportingService) bucketIndex(ctx context.Context, index map[string]int, a domain.DocumentAmount) (int, bool) {
	label := period.Label(period.MonthStart(a.CreatedAt, s.location))
	i, ok := index[label]
	if !ok {
		s.LogDebug(ctx, "Skipping document outside revenue window", slog.String("month", label))
	}
	return i, ok
}

// FetchFinancialMetrics computes the current month's revenue and the user's document counts.
// The sub-queries are independent and run concurrently; a read skew between them is tolerated.
func (s *reportingService) FetchFinancialMetrics(ctx context.Context, userID string, displayCurrency string) (*domain.FinancialMetricsSnapshot, error) {
	if !s.currency.IsSupported(displayCurrency) {
		return nil, apperrors.UnsupportedCurrency(displayCurrency)
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	monthStart := period.MonthStart(s.now(), s.location)
	monthEnd := monthStart.AddDate(0, 1, 0)

	var (
		sums    []domain.MonetaryAmount
		total   int
		paid    int
		draft   int
		overdue int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sums, err = s.reportingRepo.SumRevenueByCurrency(gctx, userID, monthStart, monthEnd)
		return apperrors.DataAccess("sum revenue by currency", err)
	})
	g.Go(s.countInto(gctx, userID, nil, &total))
	g.Go(s.countInto(gctx, userID, statusPtr(domain.StatusPaid), &paid))
	g.Go(s.countInto(gctx, userID, statusPtr(domain.StatusDraft), &draft))
	g.Go(s.countInto(gctx, userID, statusPtr(domain.StatusOverdue), &overdue))

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to retrieve financial metrics",
			slog.String("user_id", userID),
			slog.String("month", period.Label(monthStart)))
		return nil, apperrors.DataAccess("financial metrics", err)
	}

	revenue := decimal.Zero
	for _, sum := range sums {
		converted, err := s.currency.Convert(sum.Amount, sum.CurrencyCode, displayCurrency)
		if err != nil {
			s.LogError(ctx, err, "Stored document has an unsupported currency",
				slog.String("currency", sum.CurrencyCode))
			return nil, fmt.Errorf("failed to convert monthly revenue: %w", err)
		}
		revenue = revenue.Add(converted)
	}

	formatted, err := s.currency.Format(revenue, displayCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to format monthly revenue: %w", err)
	}

	snapshot := &domain.FinancialMetricsSnapshot{
		Currency:         displayCurrency,
		PeriodStart:      monthStart,
		TotalRevenue:     revenue,
		FormattedRevenue: formatted,
		TotalDocuments:   total,
		PaidDocuments:    paid,
		DraftDocuments:   draft,
		OverdueDocuments: overdue,
	}

	s.LogInfo(ctx, "Financial metrics generated successfully",
		slog.String("user_id", userID),
		slog.String("currency", displayCurrency),
		slog.Int("total_documents", total))
	return snapshot, nil
}

func (s *reportingService) countInto(ctx context.Context, userID string, status *domain.DocumentStatus, dst *int) func() error {
	return func() error {
		n, err := s.documentRepo.CountDocuments(ctx, userID, domain.DocumentFilter{Status: status})
		if err != nil {
			return apperrors.DataAccess("count documents", err)
		}
		*dst = n
		return nil
	}
}

// FetchDashboard loads the revenue series and the metrics snapshot one after the other.
func (s *reportingService) FetchDashboard(ctx context.Context, userID string, windowMonths int, displayCurrency string, useNativeCurrency bool) (*domain.Dashboard, error) {
	series, err := s.FetchRevenueSeries(ctx, userID, windowMonths, displayCurrency, useNativeCurrency)
	if err != nil {
		return nil, err
	}
	metrics, err := s.FetchFinancialMetrics(ctx, userID, displayCurrency)
	if err != nil {
		return nil, err
	}
	return &domain.Dashboard{Revenue: series, Metrics: *metrics}, nil
}

func (s *reportingService) validateRequest(windowMonths int, displayCurrency string) error {
	if windowMonths < 1 || windowMonths > MaxWindowMonths {
		return fmt.Errorf("%w: months must be between 1 and %d", apperrors.ErrValidation, MaxWindowMonths)
	}
	if !s.currency.IsSupported(displayCurrency) {
		return apperrors.UnsupportedCurrency(displayCurrency)
	}
	return nil
}

func newSeries(currency string, months []time.Time) domain.RevenueSeries {
	buckets := make([]domain.RevenueBucket, len(months))
	for i, m := range months {
		buckets[i] = domain.RevenueBucket{
			PeriodStart: m,
			Label:       period.Label(m),
			Currency:    currency,
			Total:       decimal.Zero,
		}
	}
	return domain.RevenueSeries{Currency: currency, Buckets: buckets}
}

func addToBucket(b *domain.RevenueBucket, amount decimal.Decimal) {
	b.Total = b.Total.Add(amount)
	b.Count++
}

func statusPtr(s domain.DocumentStatus) *domain.DocumentStatus {
	return &s
}
