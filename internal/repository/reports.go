package repository

import (
	"context"
	"time"

	"bioskop/internal/database"
	"bioskop/internal/models"
)

// ReportRepository runs the read-only reporting aggregates over committed
// orders. Nothing here mutates state.
type ReportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// TicketsPerMovie sums seats sold per movie over a transaction-date range
// (inclusive), best sellers first.
func (r *ReportRepository) TicketsPerMovie(ctx context.Context, from, to time.Time) ([]models.MovieTicketsRow, error) {
	query := `
		SELECT m.id, m.title, SUM(o.seat_count)
		FROM orders o
		JOIN schedules s ON s.id = o.schedule_id
		JOIN movies m ON m.id = s.movie_id
		WHERE o.transaction_date BETWEEN $1 AND $2
		GROUP BY m.id, m.title
		ORDER BY SUM(o.seat_count) DESC`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.MovieTicketsRow
	for rows.Next() {
		var row models.MovieTicketsRow
		if err := rows.Scan(&row.MovieID, &row.Title, &row.Tickets); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// GenreShares returns tickets sold per genre with each genre's percentage
// of the total over the date range.
func (r *ReportRepository) GenreShares(ctx context.Context, from, to time.Time) ([]models.GenreShareRow, error) {
	query := `
		SELECT m.genre, SUM(o.seat_count),
		       ROUND(100.0 * SUM(o.seat_count) / SUM(SUM(o.seat_count)) OVER (), 2)
		FROM orders o
		JOIN schedules s ON s.id = o.schedule_id
		JOIN movies m ON m.id = s.movie_id
		WHERE o.transaction_date BETWEEN $1 AND $2
		GROUP BY m.genre
		ORDER BY SUM(o.seat_count) DESC`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.GenreShareRow
	for rows.Next() {
		var row models.GenreShareRow
		if err := rows.Scan(&row.Genre, &row.Tickets, &row.Share); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// PaymentMethodShares returns the order count and percentage per payment
// method over the date range.
func (r *ReportRepository) PaymentMethodShares(ctx context.Context, from, to time.Time) ([]models.PaymentMethodRow, error) {
	query := `
		SELECT o.payment_method, COUNT(*),
		       ROUND(100.0 * COUNT(*) / SUM(COUNT(*)) OVER (), 2)
		FROM orders o
		WHERE o.transaction_date BETWEEN $1 AND $2
		GROUP BY o.payment_method
		ORDER BY COUNT(*) DESC`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.PaymentMethodRow
	for rows.Next() {
		var row models.PaymentMethodRow
		if err := rows.Scan(&row.Method, &row.Orders, &row.Share); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
