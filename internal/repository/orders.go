package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"bioskop/internal/database"
	apperrors "bioskop/internal/errors"
	"bioskop/internal/models"
	"bioskop/internal/seatmap"
)

// OrderRepository is the seat ledger. The unique constraint on
// (schedule_id, row_letter, col_number) in order_seats is the authoritative
// arbiter of seat ownership; IsSeatSold is only an advisory pre-check.
type OrderRepository struct {
	db *database.DB
}

func NewOrderRepository(db *database.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// IsSeatSold reports whether the seat already has a ledger entry. The answer
// can go stale before the caller acts on it; only CommitSale decides.
func (r *OrderRepository) IsSeatSold(ctx context.Context, scheduleID int64, row string, col int) (bool, error) {
	var sold bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM order_seats
			WHERE schedule_id = $1 AND row_letter = $2 AND col_number = $3
		)`

	err := r.db.QueryRowContext(ctx, query, scheduleID, row, col).Scan(&sold)
	return sold, err
}

// SoldSeats returns every sold seat of a schedule, for the seat-map display.
func (r *OrderRepository) SoldSeats(ctx context.Context, scheduleID int64) (map[seatmap.Seat]struct{}, error) {
	query := `SELECT row_letter, col_number FROM order_seats WHERE schedule_id = $1`

	rows, err := r.db.QueryContext(ctx, query, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sold := make(map[seatmap.Seat]struct{})
	for rows.Next() {
		var seat seatmap.Seat
		if err := rows.Scan(&seat.Row, &seat.Col); err != nil {
			return nil, err
		}
		sold[seat] = struct{}{}
	}

	return sold, rows.Err()
}

// CommitSale atomically writes the order, its seat-ledger entries, and the
// cart cleanup for the member. Either everything commits or nothing does.
// When another order already claimed one of the seats, the unique-constraint
// violation is translated into a SeatConflictError naming that seat and the
// whole transaction rolls back, leaving the member's cart untouched.
func (r *OrderRepository) CommitSale(ctx context.Context, order *models.Order, seats []models.OrderSeat) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	orderQuery := `
		INSERT INTO orders (code, membership_id, membership_code, schedule_id, payment_method,
		                    seat_count, promo_name, discount, total_price, final_price,
		                    cash, change, transaction_date, day_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`

	err = tx.QueryRowContext(ctx, orderQuery,
		order.Code,
		order.MembershipID,
		order.MembershipCode,
		order.ScheduleID,
		order.PaymentMethod,
		order.SeatCount,
		order.PromoName,
		order.Discount,
		order.TotalPrice,
		order.FinalPrice,
		order.Cash,
		order.Change,
		order.TransactionDate,
		order.DayName,
	).Scan(&order.ID)
	if err != nil {
		return err
	}

	seatQuery := `
		INSERT INTO order_seats (order_id, schedule_id, studio_id, row_letter, col_number)
		VALUES ($1, $2, $3, $4, $5)`

	// Seats go in one at a time so a constraint violation points at the
	// exact seat that lost the race.
	for _, seat := range seats {
		_, err := tx.ExecContext(ctx, seatQuery, order.ID, seat.ScheduleID, seat.StudioID, seat.Row, seat.Col)
		if err != nil {
			if isUniqueViolation(err) {
				return &apperrors.SeatConflictError{
					ScheduleID: seat.ScheduleID,
					Row:        seat.Row,
					Col:        seat.Col,
				}
			}
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM carts WHERE membership_id = $1`, order.MembershipID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *OrderRepository) GetByCode(ctx context.Context, code string) (*models.Order, error) {
	order := &models.Order{}
	query := `
		SELECT id, code, membership_id, membership_code, schedule_id, payment_method,
		       seat_count, promo_name, discount, total_price, final_price,
		       cash, change, transaction_date, day_name
		FROM orders
		WHERE code = $1`

	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&order.ID,
		&order.Code,
		&order.MembershipID,
		&order.MembershipCode,
		&order.ScheduleID,
		&order.PaymentMethod,
		&order.SeatCount,
		&order.PromoName,
		&order.Discount,
		&order.TotalPrice,
		&order.FinalPrice,
		&order.Cash,
		&order.Change,
		&order.TransactionDate,
		&order.DayName,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return order, err
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
