package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"srportal/internal/core/domain"
	"srportal/internal/core/port"
)

// AssignmentRecorder observes the outcome of each price assignment run.
type AssignmentRecorder interface {
	RecordAssignment(result string)
}

// Assignment outcomes passed to AssignmentRecorder.
const (
	AssignmentApplied   = "applied"
	AssignmentUnmatched = "unmatched"
	AssignmentFailed    = "failed"
)

type nopRecorder struct{}

func (nopRecorder) RecordAssignment(string) {}

// PricingUseCase implements port.PricingUseCase.
type PricingUseCase struct {
	repo     port.PricingRepository
	logger   *slog.Logger
	recorder AssignmentRecorder
}

var _ port.PricingUseCase = (*PricingUseCase)(nil)

// NewPricingUseCase wires the repository. A nil recorder discards outcomes.
func NewPricingUseCase(repo port.PricingRepository, logger *slog.Logger, recorder AssignmentRecorder) *PricingUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &PricingUseCase{repo: repo, logger: logger, recorder: recorder}
}

func (u *PricingUseCase) ListPricingSheets(ctx context.Context, f port.PricingSheetFilter) ([]domain.PricingSheet, error) {
	return u.repo.ListPricingSheets(ctx, f)
}

func (u *PricingUseCase) GetPricingSheet(ctx context.Context, date time.Time) (*domain.PricingSheet, error) {
	s, err := u.repo.GetPricingSheet(ctx, date)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("pricing sheet %s: %w", date.Format(domain.DateLayout), port.ErrNotFound)
	}
	return s, nil
}

func (u *PricingUseCase) CreatePricingSheet(ctx context.Context, s *domain.PricingSheet) error {
	if s.Date.IsZero() {
		return fmt.Errorf("%w: price date is required", port.ErrInvalidInput)
	}
	err := u.repo.CreatePricingSheet(ctx, s)
	if errors.Is(err, port.ErrAlreadyExists) {
		return fmt.Errorf("pricing sheet %s: %w", s.Date.Format(domain.DateLayout), err)
	}
	return err
}

func (u *PricingUseCase) ListStations(ctx context.Context) ([]domain.Station, error) {
	return u.repo.ListStations(ctx)
}

func (u *PricingUseCase) ListSalesHouses(ctx context.Context) ([]domain.SalesHouse, error) {
	return u.repo.ListSalesHouses(ctx)
}

func (u *PricingUseCase) ListHours(ctx context.Context) ([]int, error) {
	return u.repo.ListHours(ctx)
}

func (u *PricingUseCase) ListDurations(ctx context.Context) ([]int, error) {
	return u.repo.ListDurations(ctx)
}

func (u *PricingUseCase) ListStationPrices(ctx context.Context, f port.StationPriceFilter) ([]domain.StationPrice, error) {
	return u.repo.ListStationPrices(ctx, f)
}

// ExportStationPrices returns every row of one sheet in id order.
func (u *PricingUseCase) ExportStationPrices(ctx context.Context, date time.Time) ([]domain.StationPrice, error) {
	if _, err := u.GetPricingSheet(ctx, date); err != nil {
		return nil, err
	}
	var all []domain.StationPrice
	page := port.Page{Limit: port.MaxPageSize}
	for {
		rows, err := u.repo.ListStationPrices(ctx, port.StationPriceFilter{PriceDate: &date, Page: page})
		if err != nil {
			return nil, err
		}
		all = append(all, rows...)
		if len(rows) < page.Limit {
			return all, nil
		}
		page.Offset += page.Limit
	}
}

func (u *PricingUseCase) ListBreaks(ctx context.Context, f port.BreakFilter) ([]domain.Break, error) {
	return u.repo.ListBreaks(ctx, f)
}

// AssignPricesToBreaks prices every break airing between the sheet date and
// the day before the next sheet. Nothing is written unless every break in
// the window resolves to a price.
func (u *PricingUseCase) AssignPricesToBreaks(ctx context.Context, date time.Time) (*port.AssignResult, error) {
	outcome := AssignmentFailed
	defer func() { u.recorder.RecordAssignment(outcome) }()

	sheet, err := u.GetPricingSheet(ctx, date)
	if err != nil {
		return nil, err
	}
	next, err := u.repo.NextPricingDate(ctx, sheet.Date)
	if err != nil {
		return nil, fmt.Errorf("find next pricing sheet: %w", err)
	}
	window := domain.NewPricingWindow(sheet.Date, next)

	loaded, err := u.repo.BreaksInWindow(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("load breaks: %w", err)
	}
	breaks := inWindow(loaded, window)
	if dropped := len(loaded) - len(breaks); dropped > 0 {
		u.logger.Warn("ignoring breaks outside the pricing window",
			slog.String("price_date", sheet.Date.Format(domain.DateLayout)),
			slog.Int("dropped", dropped),
		)
	}
	prices, err := u.repo.PricesForDate(ctx, sheet.Date)
	if err != nil {
		return nil, fmt.Errorf("load station prices: %w", err)
	}

	matched, unmatched := domain.ResolvePrices(breaks, prices)
	if len(unmatched) > 0 {
		outcome = AssignmentUnmatched
		u.logger.Warn("price assignment rejected",
			slog.String("price_date", sheet.Date.Format(domain.DateLayout)),
			slog.Int("breaks", len(breaks)),
			slog.Int("unmatched", len(unmatched)),
		)
		return nil, &domain.PriceAssignmentError{PriceDate: sheet.Date, Unmatched: unmatched}
	}

	if err = u.repo.AssignBreakPrices(ctx, matched); err != nil {
		return nil, fmt.Errorf("assign break prices: %w", err)
	}
	outcome = AssignmentApplied
	u.logger.Info("prices assigned to breaks",
		slog.String("price_date", sheet.Date.Format(domain.DateLayout)),
		slog.Int("breaks", len(matched)),
	)
	return &port.AssignResult{
		PriceDate:   sheet.Date,
		WindowStart: window.Start,
		WindowEnd:   window.LastDay(),
		Breaks:      len(matched),
		Prices:      len(prices),
	}, nil
}

// inWindow keeps the breaks airing inside w.
func inWindow(breaks []domain.Break, w domain.PricingWindow) []domain.Break {
	out := make([]domain.Break, 0, len(breaks))
	for _, b := range breaks {
		if w.Contains(b.Time) {
			out = append(out, b)
		}
	}
	return out
}
