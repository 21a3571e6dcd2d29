package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "bioskop/internal/errors"
	"bioskop/internal/models"
	"bioskop/internal/seatmap"
)

// CartService manages provisional seat selections. A cart entry never locks
// the seat: other members may cart and even buy it, and the checkout commit
// settles who wins.
type CartService struct {
	schedules ScheduleStore
	members   MemberStore
	carts     CartStore
	ledger    SeatLedger
}

func NewCartService(schedules ScheduleStore, members MemberStore, carts CartStore, ledger SeatLedger) *CartService {
	return &CartService{
		schedules: schedules,
		members:   members,
		carts:     carts,
		ledger:    ledger,
	}
}

// Add validates the references and seat coordinates, runs the advisory
// sold-seat check, and creates a cart entry with the current price
// snapshot. Re-adding a seat the member already carted reports
// already_in_cart instead of failing.
func (s *CartService) Add(ctx context.Context, req *models.AddToCartRequest) (*models.AddToCartResponse, error) {
	schedule, err := s.schedules.GetByID(ctx, req.ScheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	if schedule == nil {
		return nil, apperrors.ErrScheduleNotFound
	}

	member, err := s.members.GetByCode(ctx, req.MembershipCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return nil, apperrors.ErrMemberNotFound
	}

	row := strings.ToUpper(strings.TrimSpace(req.Row))
	if err := validateSeat(row, req.Col, schedule.StudioRows, schedule.StudioCols); err != nil {
		return nil, err
	}

	sold, err := s.ledger.IsSeatSold(ctx, schedule.ID, row, req.Col)
	if err != nil {
		return nil, fmt.Errorf("failed to check seat ledger: %w", err)
	}
	if sold {
		return nil, &apperrors.SeatConflictError{ScheduleID: schedule.ID, Row: row, Col: req.Col}
	}

	exists, err := s.carts.Exists(ctx, member.ID, schedule.ID, row, req.Col)
	if err != nil {
		return nil, fmt.Errorf("failed to check cart: %w", err)
	}
	seat := fmt.Sprintf("%s%d", row, req.Col)
	if exists {
		return &models.AddToCartResponse{Status: models.CartStatusAlreadyInCart, Seat: seat}, nil
	}

	item := &models.CartItem{
		MembershipID:   member.ID,
		MembershipCode: member.Code,
		ScheduleID:     schedule.ID,
		StudioID:       schedule.StudioID,
		Row:            row,
		Col:            req.Col,
		Price:          schedule.MoviePrice,
	}

	if err := s.carts.Add(ctx, item); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyInCart) {
			return &models.AddToCartResponse{Status: models.CartStatusAlreadyInCart, Seat: seat}, nil
		}
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	return &models.AddToCartResponse{Status: models.CartStatusAdded, Seat: seat}, nil
}

// Get returns the member's cart with display data and the price total. An
// empty cart is a valid result, not an error.
func (s *CartService) Get(ctx context.Context, membershipCode string) (*models.CartResponse, error) {
	member, err := s.members.GetByCode(ctx, membershipCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return nil, apperrors.ErrMemberNotFound
	}

	items, err := s.carts.ListDisplayByMember(ctx, member.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart: %w", err)
	}
	if items == nil {
		items = []models.CartItemResponse{}
	}

	var total int64
	for _, item := range items {
		total += item.Price
	}

	return &models.CartResponse{Items: items, TotalPrice: total}, nil
}

// Remove deletes one cart entry. Removing an unknown id is an error.
func (s *CartService) Remove(ctx context.Context, cartID int64) error {
	deleted, err := s.carts.Delete(ctx, cartID)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	if !deleted {
		return apperrors.ErrCartItemNotFound
	}
	return nil
}

// validateSeat checks the coordinates against the studio grid bounds.
func validateSeat(row string, col, studioRows, studioCols int) error {
	if len(row) != 1 || row[0] < 'A' || row[0] > 'Z' {
		return fmt.Errorf("%w: row %q is not a letter", apperrors.ErrInvalidInput, row)
	}

	letters := seatmap.RowLetters(studioRows)
	if int(row[0]-'A') >= len(letters) {
		return fmt.Errorf("%w: row %s outside studio grid", apperrors.ErrInvalidInput, row)
	}
	if col < 1 || col > studioCols {
		return fmt.Errorf("%w: column %d outside studio grid", apperrors.ErrInvalidInput, col)
	}
	return nil
}
