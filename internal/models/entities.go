package models

import (
	"time"
)

// Movie represents a film in the catalog. Price is derived from duration
// when the movie is created and stored in the smallest currency unit.
type Movie struct {
	ID       int64  `json:"id" db:"id"`
	Code     string `json:"code" db:"code"`
	Title    string `json:"title" db:"title"`
	Genre    string `json:"genre" db:"genre"`
	Duration int    `json:"duration" db:"duration_min"`
	Director string `json:"director" db:"director"`
	Rating   string `json:"rating" db:"rating"`
	Price    int64  `json:"price" db:"price"`
}

// Studio represents a screening room with a fixed seat grid. The grid is
// immutable once the studio_seats rows are generated.
type Studio struct {
	ID   int64  `json:"id" db:"id"`
	Code string `json:"code" db:"code"`
	Name string `json:"name" db:"name"`
	Rows int    `json:"rows" db:"row_count"`
	Cols int    `json:"cols" db:"col_count"`
}

// StudioSeat is one position in a studio grid, identified by row letter
// (A..) and 1-based column number.
type StudioSeat struct {
	ID       int64  `json:"id" db:"id"`
	StudioID int64  `json:"studio_id" db:"studio_id"`
	Row      string `json:"row" db:"row_letter"`
	Col      int    `json:"col" db:"col_number"`
}

// Membership is a registered member, referenced by code in carts and orders.
type Membership struct {
	ID   int64  `json:"id" db:"id"`
	Code string `json:"code" db:"code"`
	Name string `json:"name" db:"name"`
}

// Schedule is a single screening of a movie in a studio.
type Schedule struct {
	ID         int64     `json:"id" db:"id"`
	Code       string    `json:"code" db:"code"`
	MovieID    int64     `json:"movie_id" db:"movie_id"`
	MovieCode  string    `json:"movie_code" db:"movie_code"`
	StudioID   int64     `json:"studio_id" db:"studio_id"`
	StudioCode string    `json:"studio_code" db:"studio_code"`
	ShowDate   time.Time `json:"show_date" db:"show_date"`
	ShowTime   string    `json:"show_time" db:"show_time"`
}

// CartItem is a member's provisional claim on a seat. It does not block
// other members from carting or buying the same seat; only the seat ledger
// decides ownership. Price is a snapshot of the movie price at add time.
type CartItem struct {
	ID             int64     `json:"id" db:"id"`
	MembershipID   int64     `json:"membership_id" db:"membership_id"`
	MembershipCode string    `json:"membership_code" db:"membership_code"`
	ScheduleID     int64     `json:"schedule_id" db:"schedule_id"`
	StudioID       int64     `json:"studio_id" db:"studio_id"`
	Row            string    `json:"row" db:"row_letter"`
	Col            int       `json:"col" db:"col_number"`
	Price          int64     `json:"price" db:"price"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Order is an immutable record of a completed purchase. Cash and Change are
// nil for non-cash payment methods.
type Order struct {
	ID              int64     `json:"id" db:"id"`
	Code            string    `json:"code" db:"code"`
	MembershipID    int64     `json:"membership_id" db:"membership_id"`
	MembershipCode  string    `json:"membership_code" db:"membership_code"`
	ScheduleID      int64     `json:"schedule_id" db:"schedule_id"`
	PaymentMethod   string    `json:"payment_method" db:"payment_method"`
	SeatCount       int       `json:"seat_count" db:"seat_count"`
	PromoName       string    `json:"promo_name" db:"promo_name"`
	Discount        int       `json:"discount" db:"discount"`
	TotalPrice      int64     `json:"total_price" db:"total_price"`
	FinalPrice      int64     `json:"final_price" db:"final_price"`
	Cash            *int64    `json:"cash" db:"cash"`
	Change          *int64    `json:"change" db:"change"`
	TransactionDate time.Time `json:"transaction_date" db:"transaction_date"`
	DayName         string    `json:"day_name" db:"day_name"`
}

// OrderSeat is one seat-ledger entry, bound to exactly one order. The
// storage-level unique constraint on (schedule_id, row_letter, col_number)
// guarantees a seat is sold at most once per screening.
type OrderSeat struct {
	ID         int64  `json:"id" db:"id"`
	OrderID    int64  `json:"order_id" db:"order_id"`
	ScheduleID int64  `json:"schedule_id" db:"schedule_id"`
	StudioID   int64  `json:"studio_id" db:"studio_id"`
	Row        string `json:"row" db:"row_letter"`
	Col        int    `json:"col" db:"col_number"`
}

// ScheduleDetail is a schedule joined with its movie and studio for display
// and for the checkout engine's pricing and bounds checks.
type ScheduleDetail struct {
	Schedule
	MovieTitle    string `json:"movie_title"`
	MovieGenre    string `json:"movie_genre"`
	MoviePrice    int64  `json:"movie_price"`
	MovieDuration int    `json:"movie_duration"`
	StudioName    string `json:"studio_name"`
	StudioRows    int    `json:"studio_rows"`
	StudioCols    int    `json:"studio_cols"`
}
