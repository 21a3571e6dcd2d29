package service

import (
	"context"

	"bioskop/internal/models"
	"bioskop/internal/seatmap"
)

// Store interfaces consumed by the cart and checkout services. The
// repository types satisfy them; tests substitute in-memory fakes.

type ScheduleStore interface {
	GetByID(ctx context.Context, id int64) (*models.ScheduleDetail, error)
	GetByCode(ctx context.Context, code string) (*models.ScheduleDetail, error)
}

type MemberStore interface {
	GetByCode(ctx context.Context, code string) (*models.Membership, error)
}

type CartStore interface {
	Add(ctx context.Context, item *models.CartItem) error
	Exists(ctx context.Context, membershipID, scheduleID int64, row string, col int) (bool, error)
	ListByMember(ctx context.Context, membershipID int64) ([]models.CartItem, error)
	ListDisplayByMember(ctx context.Context, membershipID int64) ([]models.CartItemResponse, error)
	HeldSeats(ctx context.Context, scheduleID int64) (map[seatmap.Seat]struct{}, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// SeatLedger is the authoritative record of sold seats. CommitSale is the
// only mutation and must be all-or-nothing.
type SeatLedger interface {
	IsSeatSold(ctx context.Context, scheduleID int64, row string, col int) (bool, error)
	SoldSeats(ctx context.Context, scheduleID int64) (map[seatmap.Seat]struct{}, error)
	CommitSale(ctx context.Context, order *models.Order, seats []models.OrderSeat) error
	GetByCode(ctx context.Context, code string) (*models.Order, error)
}
