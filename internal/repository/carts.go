package repository

import (
	"context"

	"bioskop/internal/database"
	apperrors "bioskop/internal/errors"
	"bioskop/internal/models"
	"bioskop/internal/seatmap"
)

type CartRepository struct {
	db *database.DB
}

func NewCartRepository(db *database.DB) *CartRepository {
	return &CartRepository{db: db}
}

// Add inserts a cart item. Two concurrent adds of the same seat by the same
// member collapse into ErrAlreadyInCart via the carts unique constraint.
func (r *CartRepository) Add(ctx context.Context, item *models.CartItem) error {
	query := `
		INSERT INTO carts (membership_id, membership_code, schedule_id, studio_id, row_letter, col_number, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		item.MembershipID,
		item.MembershipCode,
		item.ScheduleID,
		item.StudioID,
		item.Row,
		item.Col,
		item.Price,
	).Scan(&item.ID, &item.CreatedAt)

	if err != nil && isUniqueViolation(err) {
		return apperrors.ErrAlreadyInCart
	}
	return err
}

// Exists reports whether the member already holds this exact seat of this
// schedule in their cart.
func (r *CartRepository) Exists(ctx context.Context, membershipID, scheduleID int64, row string, col int) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM carts
			WHERE membership_id = $1 AND schedule_id = $2 AND row_letter = $3 AND col_number = $4
		)`

	err := r.db.QueryRowContext(ctx, query, membershipID, scheduleID, row, col).Scan(&exists)
	return exists, err
}

// ListByMember returns the member's raw cart items, oldest first. The first
// item's schedule anchors the checkout.
func (r *CartRepository) ListByMember(ctx context.Context, membershipID int64) ([]models.CartItem, error) {
	query := `
		SELECT id, membership_id, membership_code, schedule_id, studio_id, row_letter, col_number, price, created_at
		FROM carts
		WHERE membership_id = $1
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, membershipID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.CartItem
	for rows.Next() {
		var item models.CartItem
		err := rows.Scan(
			&item.ID,
			&item.MembershipID,
			&item.MembershipCode,
			&item.ScheduleID,
			&item.StudioID,
			&item.Row,
			&item.Col,
			&item.Price,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// ListDisplayByMember returns the member's cart joined with movie and studio
// display data.
func (r *CartRepository) ListDisplayByMember(ctx context.Context, membershipID int64) ([]models.CartItemResponse, error) {
	query := `
		SELECT c.id, m.title, st.name,
		       to_char(s.show_date, 'YYYY-MM-DD') || ' ' || to_char(s.show_time, 'HH24:MI'),
		       c.row_letter || c.col_number::text,
		       c.price
		FROM carts c
		JOIN schedules s ON s.id = c.schedule_id
		JOIN movies m ON m.id = s.movie_id
		JOIN studios st ON st.id = s.studio_id
		WHERE c.membership_id = $1
		ORDER BY c.id`

	rows, err := r.db.QueryContext(ctx, query, membershipID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.CartItemResponse
	for rows.Next() {
		var item models.CartItemResponse
		err := rows.Scan(
			&item.CartID,
			&item.MovieTitle,
			&item.StudioName,
			&item.DateTime,
			&item.Seat,
			&item.Price,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// HeldSeats returns every seat of a schedule currently sitting in any cart.
// Holds are advisory; they only affect the seat-map display.
func (r *CartRepository) HeldSeats(ctx context.Context, scheduleID int64) (map[seatmap.Seat]struct{}, error) {
	query := `SELECT row_letter, col_number FROM carts WHERE schedule_id = $1`

	rows, err := r.db.QueryContext(ctx, query, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	held := make(map[seatmap.Seat]struct{})
	for rows.Next() {
		var seat seatmap.Seat
		if err := rows.Scan(&seat.Row, &seat.Col); err != nil {
			return nil, err
		}
		held[seat] = struct{}{}
	}

	return held, rows.Err()
}

// Delete removes one cart item. Removing an id that does not exist returns
// false so the caller can surface NotFound; removal is not idempotent.
func (r *CartRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}
