package service

import (
	"context"
	"fmt"
	"time"

	apperrors "bioskop/internal/errors"
	"bioskop/internal/models"
	"bioskop/internal/repository"
)

// ReportingService aggregates sales figures for the back office. All ranges
// are inclusive and keyed on the order transaction date.
type ReportingService struct {
	reports *repository.ReportRepository
}

func NewReportingService(reports *repository.ReportRepository) *ReportingService {
	return &ReportingService{reports: reports}
}

// Daily returns tickets sold per movie on one calendar day.
func (s *ReportingService) Daily(ctx context.Context, date string) (*models.DailyMoviesReport, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("%w: date %q must be YYYY-MM-DD", apperrors.ErrInvalidInput, date)
	}

	from := day
	to := day.Add(24*time.Hour - time.Nanosecond)

	rows, err := s.reports.TicketsPerMovie(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to build daily report: %w", err)
	}

	return &models.DailyMoviesReport{Date: date, Data: rows}, nil
}

// Weekly splits a month into fixed buckets (1-7, 8-14, 15-21, 22-28, 29-end)
// and reports tickets sold per movie in each bucket.
func (s *ReportingService) Weekly(ctx context.Context, year, month int) (*models.WeeklyMoviesReport, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %d out of range", apperrors.ErrInvalidInput, month)
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	report := &models.WeeklyMoviesReport{Year: year, Month: month}

	for week := 1; ; week++ {
		startDay := (week-1)*7 + 1
		if startDay > monthEnd.Day() {
			break
		}
		endDay := startDay + 6
		if week == 5 || endDay > monthEnd.Day() {
			endDay = monthEnd.Day()
		}

		from := time.Date(year, time.Month(month), startDay, 0, 0, 0, 0, time.UTC)
		to := time.Date(year, time.Month(month), endDay, 23, 59, 59, 999999999, time.UTC)

		rows, err := s.reports.TicketsPerMovie(ctx, from, to)
		if err != nil {
			return nil, fmt.Errorf("failed to build weekly report: %w", err)
		}

		bucket := models.WeeklyBucket{
			Week:      week,
			DateRange: fmt.Sprintf("%s - %s", from.Format("2006-01-02"), to.Format("2006-01-02")),
			Data:      rows,
		}
		if len(rows) > 0 {
			bucket.Top = &rows[0]
		}
		report.Weeks = append(report.Weeks, bucket)

		if week == 5 {
			break
		}
	}

	return report, nil
}

// Monthly reports tickets sold per movie over a whole month.
func (s *ReportingService) Monthly(ctx context.Context, year, month int) (*models.MonthlyMoviesReport, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %d out of range", apperrors.ErrInvalidInput, month)
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)

	rows, err := s.reports.TicketsPerMovie(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to build monthly report: %w", err)
	}

	return &models.MonthlyMoviesReport{Year: year, Month: month, Data: rows}, nil
}

// GenreShares returns each genre's share of tickets sold in the range.
func (s *ReportingService) GenreShares(ctx context.Context, from, to string) ([]models.GenreShareRow, error) {
	start, end, err := parseRange(from, to)
	if err != nil {
		return nil, err
	}

	rows, err := s.reports.GenreShares(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to build genre report: %w", err)
	}
	return rows, nil
}

// PaymentMethodShares returns each payment method's share of orders in the
// range.
func (s *ReportingService) PaymentMethodShares(ctx context.Context, from, to string) ([]models.PaymentMethodRow, error) {
	start, end, err := parseRange(from, to)
	if err != nil {
		return nil, err
	}

	rows, err := s.reports.PaymentMethodShares(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to build payment method report: %w", err)
	}
	return rows, nil
}

func parseRange(from, to string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from %q must be YYYY-MM-DD", apperrors.ErrInvalidInput, from)
	}
	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to %q must be YYYY-MM-DD", apperrors.ErrInvalidInput, to)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: range end before start", apperrors.ErrInvalidInput)
	}

	end = end.Add(24*time.Hour - time.Nanosecond)
	return start, end, nil
}
