package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	apperrors "bioskop/internal/errors"
	"bioskop/internal/models"
	"bioskop/internal/seatmap"
)

// In-memory store fakes backing the cart and checkout tests. The ledger
// fake serializes commits with a mutex so the concurrency tests exercise
// the same one-winner guarantee the database constraint gives.

type fakeScheduleStore struct {
	byID   map[int64]*models.ScheduleDetail
	byCode map[string]*models.ScheduleDetail
}

func newFakeScheduleStore(schedules ...*models.ScheduleDetail) *fakeScheduleStore {
	s := &fakeScheduleStore{
		byID:   make(map[int64]*models.ScheduleDetail),
		byCode: make(map[string]*models.ScheduleDetail),
	}
	for _, sched := range schedules {
		s.byID[sched.ID] = sched
		s.byCode[sched.Code] = sched
	}
	return s
}

func (s *fakeScheduleStore) GetByID(_ context.Context, id int64) (*models.ScheduleDetail, error) {
	return s.byID[id], nil
}

func (s *fakeScheduleStore) GetByCode(_ context.Context, code string) (*models.ScheduleDetail, error) {
	return s.byCode[code], nil
}

type fakeMemberStore struct {
	byCode map[string]*models.Membership
}

func newFakeMemberStore(members ...*models.Membership) *fakeMemberStore {
	s := &fakeMemberStore{byCode: make(map[string]*models.Membership)}
	for _, m := range members {
		s.byCode[m.Code] = m
	}
	return s
}

func (s *fakeMemberStore) GetByCode(_ context.Context, code string) (*models.Membership, error) {
	return s.byCode[code], nil
}

type fakeCartStore struct {
	mu     sync.Mutex
	nextID int64
	items  []models.CartItem
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{nextID: 1}
}

func (s *fakeCartStore) Add(_ context.Context, item *models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if existing.MembershipID == item.MembershipID &&
			existing.ScheduleID == item.ScheduleID &&
			existing.Row == item.Row && existing.Col == item.Col {
			return apperrors.ErrAlreadyInCart
		}
	}

	item.ID = s.nextID
	s.nextID++
	item.CreatedAt = time.Now()
	s.items = append(s.items, *item)
	return nil
}

func (s *fakeCartStore) Exists(_ context.Context, membershipID, scheduleID int64, row string, col int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.MembershipID == membershipID && item.ScheduleID == scheduleID &&
			item.Row == row && item.Col == col {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeCartStore) ListByMember(_ context.Context, membershipID int64) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.CartItem
	for _, item := range s.items {
		if item.MembershipID == membershipID {
			result = append(result, item)
		}
	}
	return result, nil
}

func (s *fakeCartStore) ListDisplayByMember(ctx context.Context, membershipID int64) ([]models.CartItemResponse, error) {
	items, _ := s.ListByMember(ctx, membershipID)

	var result []models.CartItemResponse
	for _, item := range items {
		result = append(result, models.CartItemResponse{
			CartID: item.ID,
			Seat:   seatLabel(item.Row, item.Col),
			Price:  item.Price,
		})
	}
	return result, nil
}

func (s *fakeCartStore) HeldSeats(_ context.Context, scheduleID int64) (map[seatmap.Seat]struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	held := make(map[seatmap.Seat]struct{})
	for _, item := range s.items {
		if item.ScheduleID == scheduleID {
			held[seatmap.Seat{Row: item.Row, Col: item.Col}] = struct{}{}
		}
	}
	return held, nil
}

func (s *fakeCartStore) Delete(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeCartStore) clearMember(membershipID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.MembershipID != membershipID {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

func (s *fakeCartStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

type soldSeat struct {
	scheduleID int64
	row        string
	col        int
}

type fakeLedger struct {
	mu     sync.Mutex
	sold   map[soldSeat]struct{}
	orders map[string]*models.Order
	carts  *fakeCartStore

	// commitErr, when set, fails the next CommitSale without writing.
	commitErr error
}

func newFakeLedger(carts *fakeCartStore) *fakeLedger {
	return &fakeLedger{
		sold:   make(map[soldSeat]struct{}),
		orders: make(map[string]*models.Order),
		carts:  carts,
	}
}

func (l *fakeLedger) markSold(scheduleID int64, row string, col int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sold[soldSeat{scheduleID, row, col}] = struct{}{}
}

func (l *fakeLedger) IsSeatSold(_ context.Context, scheduleID int64, row string, col int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, sold := l.sold[soldSeat{scheduleID, row, col}]
	return sold, nil
}

func (l *fakeLedger) SoldSeats(_ context.Context, scheduleID int64) (map[seatmap.Seat]struct{}, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	result := make(map[seatmap.Seat]struct{})
	for seat := range l.sold {
		if seat.scheduleID == scheduleID {
			result[seatmap.Seat{Row: seat.row, Col: seat.col}] = struct{}{}
		}
	}
	return result, nil
}

// CommitSale mirrors the transactional ledger: either every seat is
// recorded and the cart cleared, or nothing changes at all.
func (l *fakeLedger) CommitSale(_ context.Context, order *models.Order, seats []models.OrderSeat) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.commitErr != nil {
		err := l.commitErr
		l.commitErr = nil
		return err
	}

	for _, seat := range seats {
		key := soldSeat{seat.ScheduleID, seat.Row, seat.Col}
		if _, taken := l.sold[key]; taken {
			return &apperrors.SeatConflictError{ScheduleID: seat.ScheduleID, Row: seat.Row, Col: seat.Col}
		}
	}
	for _, seat := range seats {
		l.sold[soldSeat{seat.ScheduleID, seat.Row, seat.Col}] = struct{}{}
	}
	l.orders[order.Code] = order
	if l.carts != nil {
		l.carts.clearMember(order.MembershipID)
	}
	return nil
}

func (l *fakeLedger) GetByCode(_ context.Context, code string) (*models.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.orders[code], nil
}

func (l *fakeLedger) orderCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.orders)
}

func seatLabel(row string, col int) string {
	return fmt.Sprintf("%s%d", row, col)
}
