package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "bioskop/internal/errors"
	"bioskop/internal/models"
)

type checkoutFixture struct {
	svc    *CheckoutService
	carts  *fakeCartStore
	ledger *fakeLedger
}

func newCheckoutFixture(schedules ...*models.ScheduleDetail) *checkoutFixture {
	if len(schedules) == 0 {
		schedules = []*models.ScheduleDetail{testSchedule()}
	}
	carts := newFakeCartStore()
	ledger := newFakeLedger(carts)
	members := newFakeMemberStore(
		&models.Membership{ID: 1, Code: "MEM001", Name: "Budi"},
		&models.Membership{ID: 2, Code: "MEM002", Name: "Sari"},
	)

	svc := NewCheckoutService(newFakeScheduleStore(schedules...), members, carts, ledger, nil)
	svc.now = func() time.Time {
		return time.Date(2024, 12, 9, 14, 0, 0, 0, time.UTC) // a Monday
	}

	return &checkoutFixture{svc: svc, carts: carts, ledger: ledger}
}

func (f *checkoutFixture) cartSeats(t *testing.T, memberID int64, memberCode string, scheduleID int64, price int64, cols ...int) {
	t.Helper()
	for _, col := range cols {
		err := f.carts.Add(context.Background(), &models.CartItem{
			MembershipID:   memberID,
			MembershipCode: memberCode,
			ScheduleID:     scheduleID,
			StudioID:       1,
			Row:            "A",
			Col:            col,
			Price:          price,
		})
		require.NoError(t, err)
	}
}

func cashOf(amount int64) *int64 { return &amount }

func TestCheckoutCashWithChange(t *testing.T) {
	f := newCheckoutFixture()
	f.cartSeats(t, 1, "MEM001", 1, 40000, 1, 2)

	resp, err := f.svc.Checkout(context.Background(), &models.CheckoutRequest{
		MembershipCode: "MEM001",
		PaymentMethod:  "CASH",
		CashAmount:     cashOf(100000),
	})
	require.NoError(t, err)

	assert.Equal(t, "SUCCESS", resp.Status)
	assert.Equal(t, 2, resp.SeatCount)
	assert.Equal(t, int64(80000), resp.FinalPrice)
	assert.Equal(t, int64(20000), resp.Change)

	// Cart cleared, seats on the ledger.
	assert.Equal(t, 0, f.carts.count())
	sold, err := f.ledger.IsSeatSold(context.Background(), 1, "A", 1)
	require.NoError(t, err)
	assert.True(t, sold)

	order, err := f.ledger.GetByCode(context.Background(), resp.OrderCode)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "NO PROMO", order.PromoName)
	assert.Equal(t, "Senin", order.DayName)
	assert.Equal(t, int64(100000), *order.Cash)
	assert.Equal(t, int64(20000), *order.Change)
}

func TestCheckoutInsufficientCash(t *testing.T) {
	f := newCheckoutFixture()
	f.cartSeats(t, 1, "MEM001", 1, 40000, 1, 2)

	_, err := f.svc.Checkout(context.Background(), &models.CheckoutRequest{
		MembershipCode: "MEM001",
		PaymentMethod:  "CASH",
		CashAmount:     cashOf(50000),
	})

	short, ok := apperrors.AsInsufficientCash(err)
	require.True(t, ok)
	assert.Equal(t, int64(80000), short.Required)
	assert.Equal(t, int64(50000), short.Given)
	assert.Equal(t, int64(30000), short.Shortfall())

	// Nothing changed: cart intact, no seat sold, no order.
	assert.Equal(t, 2, f.carts.count())
	sold, _ := f.ledger.IsSeatSold(context.Background(), 1, "A", 1)
	assert.False(t, sold)
	assert.Equal(t, 0, f.ledger.orderCount())
}

func TestCheckoutCashExact(t *testing.T) {
	f := newCheckoutFixture()
	f.cartSeats(t, 1, "MEM001", 1, 40000, 1)

	resp, err := f.svc.Checkout(context.Background(), &models.CheckoutRequest{
		MembershipCode: "MEM001",
		PaymentMethod:  "cash",
		CashAmount:     cashOf(40000),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Change)
}

func TestCheckoutNonCash(t *testing.T) {
	f := newCheckoutFixture()
	f.cartSeats(t, 1, "MEM001", 1, 40000, 1, 2)

	resp, err := f.svc.Checkout(context.Background(), &models.CheckoutRequest{
		MembershipCode: "MEM001",
		PaymentMethod:  "qris",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Change)

	order, err := f.ledger.GetByCode(context.Background(), resp.OrderCode)
	require.NoError(t, err)
	assert.Equal(t, "QRIS", order.PaymentMethod)
	assert.Equal(t, int64(80000), *order.Cash)
}

func TestCheckoutUnsupportedMethod(t *testing.T) {
	f := newCheckoutFixture()
	f.cartSeats(t, 1, "MEM001", 1, 40000, 1)

	_, err := f.svc.Checkout(context.Background(), &models.CheckoutRequest{
		MembershipCode: "MEM001",
		PaymentMethod:  "Bitcoin",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newCheckoutFixture()

	_, err := f.svc.Checkout(context.Background(), &models.CheckoutRequest{
		MembershipCode: "MEM001",
		PaymentMethod:  "QRIS",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmptyCart)
}

func TestCheckoutUnknownMember(t *testing.T) {
	f := newCheckoutFixture()

	_, err := f.svc.Checkout(context.Background(), &models.CheckoutRequest{
		MembershipCode: "MEM999",
		PaymentMethod:  "QRIS",
	})
	assert.ErrorIs(t, err, apperrors.ErrMemberNotFound)
}

func TestCheckoutCalendarPromo(t *testing.T) {
	schedule := testSchedule()
	schedule.ShowDate = time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC)

	f := newCheckoutFixture(schedule)
	f.cartSeats(t, 1, "MEM001", 1, 45000, 1, 2)

	resp, err := f.svc.Checkout(context.Background(), &models.CheckoutRequest{
		MembershipCode: "MEM001",
		PaymentMethod:  "Gopay",
	})
	require.NoError(t, err)

	// 2 x 45000 with the 30% day-12 promo.
	assert.Equal(t, int64(63000), resp.FinalPrice)

	order, _ := f.ledger.GetByCode(context.Background(), resp.OrderCode)
	assert.Equal(t, "SUPER 12.12", order.PromoName)
	assert.Equal(t, 30, order.Discount)
	assert.Equal(t, int64(90000), order.TotalPrice)
}

func TestCheckoutBulkPromo(t *testing.T) {
	f := newCheckoutFixture()
	f.cartSeats(t, 1, "MEM001", 1, 45000, 1, 2, 3, 4, 5)

	resp, err := f.svc.Checkout(context.Background(), &models.CheckoutRequest{
		MembershipCode: "MEM001",
		PaymentMethod:  "Debit",
	})
	require.NoError(t, err)

	// 5 x 45000 = 225000, 20% off for 5+ seats.
	assert.Equal(t, int64(180000), resp.FinalPrice)

	order, _ := f.ledger.GetByCode(context.Background(), resp.OrderCode)
	assert.Equal(t, "BULK 5+", order.PromoName)
}

func TestCheckoutAdvisoryConflict(t *testing.T) {
	f := newCheckoutFixture()
	f.cartSeats(t, 1, "MEM001", 1, 40000, 1, 2)
	f.ledger.markSold(1, "A", 2)

	_, err := f.svc.Checkout(context.Background(), &models.CheckoutRequest{
		MembershipCode: "MEM001",
		PaymentMethod:  "QRIS",
	})

	conflict, ok := apperrors.AsSeatConflict(err)
	require.True(t, ok)
	assert.Equal(t, "A2", conflict.Seat())

	// The cart survives so the member can drop the lost seat and retry.
	assert.Equal(t, 2, f.carts.count())
	assert.Equal(t, 0, f.ledger.orderCount())
}

func TestCheckoutCommitConflict(t *testing.T) {
	f := newCheckoutFixture()
	f.cartSeats(t, 1, "MEM001", 1, 40000, 1)
	f.ledger.commitErr = &apperrors.SeatConflictError{ScheduleID: 1, Row: "A", Col: 1}

	_, err := f.svc.Checkout(context.Background(), &models.CheckoutRequest{
		MembershipCode: "MEM001",
		PaymentMethod:  "QRIS",
	})

	_, ok := apperrors.AsSeatConflict(err)
	require.True(t, ok)
	assert.Equal(t, 1, f.carts.count())
	assert.Equal(t, 0, f.ledger.orderCount())
}

// Two members race to buy an overlapping seat. Exactly one checkout may
// succeed; the loser gets a seat conflict and keeps their cart.
func TestCheckoutConcurrentOverlap(t *testing.T) {
	f := newCheckoutFixture()
	f.cartSeats(t, 1, "MEM001", 1, 40000, 1, 2)
	f.cartSeats(t, 2, "MEM002", 1, 40000, 2, 3)

	results := make([]error, 2)
	var wg sync.WaitGroup
	for i, code := range []string{"MEM001", "MEM002"} {
		wg.Add(1)
		go func(i int, code string) {
			defer wg.Done()
			_, err := f.svc.Checkout(context.Background(), &models.CheckoutRequest{
				MembershipCode: code,
				PaymentMethod:  "QRIS",
			})
			results[i] = err
		}(i, code)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range results {
		if err == nil {
			successes++
		} else if _, ok := apperrors.AsSeatConflict(err); ok {
			conflicts++
		} else {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
	assert.Equal(t, 1, f.ledger.orderCount())

	// The contested seat belongs to exactly one order; the loser's cart
	// is untouched.
	sold, _ := f.ledger.IsSeatSold(context.Background(), 1, "A", 2)
	assert.True(t, sold)
	assert.Equal(t, 2, f.carts.count())
}

func TestGetOrder(t *testing.T) {
	f := newCheckoutFixture()
	f.cartSeats(t, 1, "MEM001", 1, 40000, 1)

	resp, err := f.svc.Checkout(context.Background(), &models.CheckoutRequest{
		MembershipCode: "MEM001",
		PaymentMethod:  "ShopeePay",
	})
	require.NoError(t, err)

	got, err := f.svc.GetOrder(context.Background(), resp.OrderCode)
	require.NoError(t, err)
	assert.Equal(t, resp.OrderCode, got.OrderCode)
	assert.Equal(t, resp.FinalPrice, got.FinalPrice)
	assert.Equal(t, "SUCCESS", got.Status)

	_, err = f.svc.GetOrder(context.Background(), "ORD-FFFFFF")
	assert.ErrorIs(t, err, apperrors.ErrOrderNotFound)
}

func TestOrderCodeFormat(t *testing.T) {
	code := newOrderCode()
	assert.Len(t, code, 10)
	assert.Equal(t, "ORD-", code[:4])
	for _, c := range code[4:] {
		assert.Contains(t, "0123456789ABCDEF-", fmt.Sprintf("%c", c))
	}
}
