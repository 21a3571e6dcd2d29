package models

import "time"

// NATS Event Types
const (
	EventOrderCompleted = "order.completed"
	EventSeatConflict   = "checkout.seat_conflict"
)

// OrderCompletedEvent is published after a checkout commit succeeds.
type OrderCompletedEvent struct {
	OrderCode      string    `json:"order_code"`
	MembershipCode string    `json:"membership_code"`
	ScheduleID     int64     `json:"schedule_id"`
	SeatCount      int       `json:"seat_count"`
	Seats          []string  `json:"seats"`
	PaymentMethod  string    `json:"payment_method"`
	FinalPrice     int64     `json:"final_price"`
	Timestamp      time.Time `json:"timestamp"`
}

// SeatConflictEvent is published when a checkout loses the commit race.
type SeatConflictEvent struct {
	MembershipCode string    `json:"membership_code"`
	ScheduleID     int64     `json:"schedule_id"`
	Seat           string    `json:"seat"`
	Timestamp      time.Time `json:"timestamp"`
}
