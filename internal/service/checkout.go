package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "bioskop/internal/errors"
	"bioskop/internal/logger"
	"bioskop/internal/messaging"
	"bioskop/internal/models"
	"bioskop/internal/pricing"
)

// Payment methods accepted at checkout, matched case-insensitively. Only
// CASH settles with tendered cash and change; the rest are treated as
// exact-amount payments.
var paymentMethods = []string{"QRIS", "Debit", "Gopay", "ShopeePay", "CASH"}

// canonicalMethod returns the canonical spelling of a payment method, or ""
// when the method is not supported.
func canonicalMethod(method string) string {
	for _, m := range paymentMethods {
		if strings.EqualFold(m, method) {
			return m
		}
	}
	return ""
}

var dayNames = map[time.Weekday]string{
	time.Monday:    "Senin",
	time.Tuesday:   "Selasa",
	time.Wednesday: "Rabu",
	time.Thursday:  "Kamis",
	time.Friday:    "Jumat",
	time.Saturday:  "Sabtu",
	time.Sunday:    "Minggu",
}

// CheckoutService turns a member's cart into an order. Steps 1-4 (load,
// validate, price, settle) are pure reads and computation; the commit is the
// only mutation and delegates atomicity to the seat ledger.
type CheckoutService struct {
	schedules ScheduleStore
	members   MemberStore
	carts     CartStore
	ledger    SeatLedger
	nats      *messaging.NATSClient
	now       func() time.Time
}

func NewCheckoutService(schedules ScheduleStore, members MemberStore, carts CartStore, ledger SeatLedger, natsClient *messaging.NATSClient) *CheckoutService {
	return &CheckoutService{
		schedules: schedules,
		members:   members,
		carts:     carts,
		ledger:    ledger,
		nats:      natsClient,
		now:       time.Now,
	}
}

func (s *CheckoutService) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	member, err := s.members.GetByCode(ctx, req.MembershipCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if member == nil {
		return nil, apperrors.ErrMemberNotFound
	}

	method := canonicalMethod(req.PaymentMethod)
	if method == "" {
		return nil, fmt.Errorf("%w: unsupported payment method %q", apperrors.ErrInvalidInput, req.PaymentMethod)
	}
	isCash := method == "CASH"

	// Load
	items, err := s.carts.ListByMember(ctx, member.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart: %w", err)
	}
	if len(items) == 0 {
		return nil, apperrors.ErrEmptyCart
	}

	// Validate: advisory re-check of every seat against the ledger. A seat
	// can still be sold between here and the commit; the ledger's unique
	// constraint settles that race.
	for _, item := range items {
		sold, err := s.ledger.IsSeatSold(ctx, item.ScheduleID, item.Row, item.Col)
		if err != nil {
			return nil, fmt.Errorf("failed to check seat ledger: %w", err)
		}
		if sold {
			return nil, &apperrors.SeatConflictError{ScheduleID: item.ScheduleID, Row: item.Row, Col: item.Col}
		}
	}

	// Price: the order is anchored to the first cart item's schedule, whose
	// date drives the calendar promo.
	schedule, err := s.schedules.GetByID(ctx, items[0].ScheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	if schedule == nil {
		return nil, apperrors.ErrScheduleNotFound
	}

	var total int64
	for _, item := range items {
		total += item.Price
	}
	seatCount := len(items)

	promo := pricing.SelectPromo(schedule.ShowDate, seatCount)
	finalPrice := pricing.FinalPrice(total, promo.Discount)

	// Settle payment
	var cash, change int64
	if isCash {
		if req.CashAmount != nil {
			cash = *req.CashAmount
		}
		if cash < finalPrice {
			return nil, &apperrors.InsufficientCashError{Required: finalPrice, Given: cash}
		}
		change = cash - finalPrice
	} else {
		cash = finalPrice
	}

	// Commit
	transactedAt := s.now()
	order := &models.Order{
		Code:            newOrderCode(),
		MembershipID:    member.ID,
		MembershipCode:  member.Code,
		ScheduleID:      schedule.ID,
		PaymentMethod:   method,
		SeatCount:       seatCount,
		PromoName:       promo.Name,
		Discount:        promo.Discount,
		TotalPrice:      total,
		FinalPrice:      finalPrice,
		Cash:            &cash,
		Change:          &change,
		TransactionDate: transactedAt,
		DayName:         dayNames[transactedAt.Weekday()],
	}

	seats := make([]models.OrderSeat, len(items))
	seatLabels := make([]string, len(items))
	for i, item := range items {
		seats[i] = models.OrderSeat{
			ScheduleID: item.ScheduleID,
			StudioID:   item.StudioID,
			Row:        item.Row,
			Col:        item.Col,
		}
		seatLabels[i] = fmt.Sprintf("%s%d", item.Row, item.Col)
	}

	if err := s.ledger.CommitSale(ctx, order, seats); err != nil {
		if conflict, ok := apperrors.AsSeatConflict(err); ok {
			s.publish(ctx, models.EventSeatConflict, models.SeatConflictEvent{
				MembershipCode: member.Code,
				ScheduleID:     conflict.ScheduleID,
				Seat:           conflict.Seat(),
				Timestamp:      s.now(),
			})
			return nil, err
		}
		return nil, fmt.Errorf("failed to commit sale: %w", err)
	}

	s.publish(ctx, models.EventOrderCompleted, models.OrderCompletedEvent{
		OrderCode:      order.Code,
		MembershipCode: member.Code,
		ScheduleID:     schedule.ID,
		SeatCount:      seatCount,
		Seats:          seatLabels,
		PaymentMethod:  order.PaymentMethod,
		FinalPrice:     finalPrice,
		Timestamp:      s.now(),
	})

	return &models.CheckoutResponse{
		OrderCode:  order.Code,
		SeatCount:  seatCount,
		FinalPrice: finalPrice,
		Change:     change,
		Status:     "SUCCESS",
	}, nil
}

// GetOrder returns the confirmation view of a committed order.
func (s *CheckoutService) GetOrder(ctx context.Context, code string) (*models.CheckoutResponse, error) {
	order, err := s.ledger.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, apperrors.ErrOrderNotFound
	}

	var change int64
	if order.Change != nil {
		change = *order.Change
	}

	return &models.CheckoutResponse{
		OrderCode:  order.Code,
		SeatCount:  order.SeatCount,
		FinalPrice: order.FinalPrice,
		Change:     change,
		Status:     "SUCCESS",
	}, nil
}

// publish sends a domain event best-effort; failures are logged, never
// surfaced to the caller.
func (s *CheckoutService) publish(ctx context.Context, subject string, event interface{}) {
	if s.nats == nil {
		return
	}
	if err := s.nats.Publish(subject, event); err != nil {
		logger.WithContext(ctx).Error("Failed to publish event",
			"error", err,
			"event_type", subject)
	}
}

// newOrderCode generates an order code like ORD-3FA9C1.
func newOrderCode() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:6])
}
