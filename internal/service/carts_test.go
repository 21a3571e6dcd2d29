package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "bioskop/internal/errors"
	"bioskop/internal/models"
)

func testSchedule() *models.ScheduleDetail {
	return &models.ScheduleDetail{
		Schedule: models.Schedule{
			ID:         1,
			Code:       "SCH001",
			MovieID:    1,
			StudioID:   1,
			ShowDate:   time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC),
			ShowTime:   "20:30",
		},
		MovieTitle: "The Conjuring",
		MoviePrice: 40000,
		StudioRows: 5,
		StudioCols: 8,
	}
}

func newCartFixture() (*CartService, *fakeCartStore, *fakeLedger) {
	carts := newFakeCartStore()
	ledger := newFakeLedger(carts)
	svc := NewCartService(
		newFakeScheduleStore(testSchedule()),
		newFakeMemberStore(&models.Membership{ID: 1, Code: "MEM001", Name: "Budi"}),
		carts,
		ledger,
	)
	return svc, carts, ledger
}

func TestCartAdd(t *testing.T) {
	svc, carts, _ := newCartFixture()

	resp, err := svc.Add(context.Background(), &models.AddToCartRequest{
		MembershipCode: "MEM001",
		ScheduleID:     1,
		Row:            "b",
		Col:            3,
	})
	require.NoError(t, err)

	assert.Equal(t, models.CartStatusAdded, resp.Status)
	assert.Equal(t, "B3", resp.Seat)
	assert.Equal(t, 1, carts.count())
}

func TestCartAddUnknownReferences(t *testing.T) {
	svc, _, _ := newCartFixture()

	_, err := svc.Add(context.Background(), &models.AddToCartRequest{
		MembershipCode: "MEM001",
		ScheduleID:     99,
		Row:            "A",
		Col:            1,
	})
	assert.ErrorIs(t, err, apperrors.ErrScheduleNotFound)

	_, err = svc.Add(context.Background(), &models.AddToCartRequest{
		MembershipCode: "MEM999",
		ScheduleID:     1,
		Row:            "A",
		Col:            1,
	})
	assert.ErrorIs(t, err, apperrors.ErrMemberNotFound)
}

func TestCartAddSeatOutOfBounds(t *testing.T) {
	svc, carts, _ := newCartFixture()

	cases := []struct {
		name string
		row  string
		col  int
	}{
		{"row not a letter", "7", 1},
		{"row beyond grid", "F", 1},
		{"column zero", "A", 0},
		{"column beyond grid", "A", 9},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(context.Background(), &models.AddToCartRequest{
				MembershipCode: "MEM001",
				ScheduleID:     1,
				Row:            tc.row,
				Col:            tc.col,
			})
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}
	assert.Equal(t, 0, carts.count())
}

func TestCartAddSoldSeat(t *testing.T) {
	svc, carts, ledger := newCartFixture()
	ledger.markSold(1, "C", 4)

	_, err := svc.Add(context.Background(), &models.AddToCartRequest{
		MembershipCode: "MEM001",
		ScheduleID:     1,
		Row:            "C",
		Col:            4,
	})

	conflict, ok := apperrors.AsSeatConflict(err)
	require.True(t, ok)
	assert.Equal(t, "C4", conflict.Seat())
	assert.Equal(t, 0, carts.count())
}

func TestCartAddDuplicate(t *testing.T) {
	svc, carts, _ := newCartFixture()

	req := &models.AddToCartRequest{
		MembershipCode: "MEM001",
		ScheduleID:     1,
		Row:            "A",
		Col:            1,
	}

	first, err := svc.Add(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.CartStatusAdded, first.Status)

	second, err := svc.Add(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.CartStatusAlreadyInCart, second.Status)
	assert.Equal(t, "A1", second.Seat)
	assert.Equal(t, 1, carts.count())
}

func TestCartGet(t *testing.T) {
	svc, _, _ := newCartFixture()

	for _, col := range []int{1, 2, 3} {
		_, err := svc.Add(context.Background(), &models.AddToCartRequest{
			MembershipCode: "MEM001",
			ScheduleID:     1,
			Row:            "A",
			Col:            col,
		})
		require.NoError(t, err)
	}

	cart, err := svc.Get(context.Background(), "MEM001")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 3)
	assert.Equal(t, int64(120000), cart.TotalPrice)
}

func TestCartGetEmpty(t *testing.T) {
	svc, _, _ := newCartFixture()

	cart, err := svc.Get(context.Background(), "MEM001")
	require.NoError(t, err)

	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
	assert.Equal(t, int64(0), cart.TotalPrice)
}

func TestCartGetUnknownMember(t *testing.T) {
	svc, _, _ := newCartFixture()

	_, err := svc.Get(context.Background(), "MEM999")
	assert.ErrorIs(t, err, apperrors.ErrMemberNotFound)
}

func TestCartRemove(t *testing.T) {
	svc, carts, _ := newCartFixture()

	_, err := svc.Add(context.Background(), &models.AddToCartRequest{
		MembershipCode: "MEM001",
		ScheduleID:     1,
		Row:            "A",
		Col:            1,
	})
	require.NoError(t, err)

	cart, err := svc.Get(context.Background(), "MEM001")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	cartID := cart.Items[0].CartID

	require.NoError(t, svc.Remove(context.Background(), cartID))
	assert.Equal(t, 0, carts.count())

	err = svc.Remove(context.Background(), cartID)
	assert.ErrorIs(t, err, apperrors.ErrCartItemNotFound)
}
