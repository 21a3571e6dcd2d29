package models

// Request/response contracts for the HTTP API. Monetary amounts are integers
// in the smallest currency unit.

// AddToCartRequest - POST /api/cart
type AddToCartRequest struct {
	MembershipCode string `json:"membership_code" binding:"required"`
	ScheduleID     int64  `json:"schedule_id" binding:"required"`
	Row            string `json:"row" binding:"required"`
	Col            int    `json:"col" binding:"required,gte=1"`
}

// Cart add outcomes. Adding a seat already in the member's own cart is not
// an error; the response status distinguishes the two cases.
const (
	CartStatusAdded         = "added"
	CartStatusAlreadyInCart = "already_in_cart"
)

type AddToCartResponse struct {
	Status string `json:"status"`
	Seat   string `json:"seat"`
}

// CartItemResponse is one cart row joined with display data.
type CartItemResponse struct {
	CartID     int64  `json:"cart_id"`
	MovieTitle string `json:"movie_title"`
	StudioName string `json:"studio_name"`
	DateTime   string `json:"date_time"`
	Seat       string `json:"seat"`
	Price      int64  `json:"price"`
}

// CartResponse - GET /api/cart/:member
type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalPrice int64              `json:"total_price"`
}

// CheckoutRequest - POST /api/checkout. CashAmount is required only for CASH.
type CheckoutRequest struct {
	MembershipCode string `json:"membership_code" binding:"required"`
	PaymentMethod  string `json:"payment_method" binding:"required"`
	CashAmount     *int64 `json:"cash_amount,omitempty"`
}

// CheckoutResponse - returned by POST /api/checkout and GET /api/orders/:code
type CheckoutResponse struct {
	OrderCode  string `json:"order_code"`
	SeatCount  int    `json:"seat_count"`
	FinalPrice int64  `json:"final_price"`
	Change     int64  `json:"change"`
	Status     string `json:"status"`
}

// SeatMapResponse - GET /api/schedules/:code/seats
type SeatMapResponse struct {
	ScheduleCode string   `json:"schedule_code"`
	MovieTitle   string   `json:"movie_title"`
	Studio       string   `json:"studio"`
	Display      []string `json:"display"`
}

// MoviePublic is the catalog view of a movie.
type MoviePublic struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Duration  int           `json:"duration"`
	Price     int64         `json:"price"`
	Genre     string        `json:"genre"`
	Rating    string        `json:"rating"`
	Director  string        `json:"director"`
	Schedules []ScheduleOut `json:"schedules,omitempty"`
}

// NowPlayingResponse - GET /api/movies/now-playing
type NowPlayingResponse struct {
	Count int           `json:"count"`
	Data  []MoviePublic `json:"data"`
}

// ScheduleOut is the display form of a schedule. ID is what cart requests
// reference.
type ScheduleOut struct {
	ID         int64  `json:"id"`
	Code       string `json:"code"`
	MovieCode  string `json:"movie_code"`
	StudioCode string `json:"studio_code"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	MovieTitle string `json:"movie_title"`
	StudioName string `json:"studio_name"`
}

// Admin inputs. Movie price is derived from duration by the pricing rule,
// never taken from the client.

type MovieInput struct {
	Code     string `json:"code" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Genre    string `json:"genre" binding:"required"`
	Duration int    `json:"duration" binding:"required,gte=1"`
	Director string `json:"director" binding:"required"`
	Rating   string `json:"rating" binding:"required"`
}

type StudioInput struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
	Rows int    `json:"rows" binding:"required,gte=1,lte=26"`
	Cols int    `json:"cols" binding:"required,gte=1"`
}

type MembershipInput struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type ScheduleInput struct {
	MovieCode  string `json:"movie_code" binding:"required"`
	StudioCode string `json:"studio_code" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
}

// Reporting rows.

type MovieTicketsRow struct {
	MovieID int64  `json:"movie_id"`
	Title   string `json:"title"`
	Tickets int64  `json:"tickets_sold"`
}

type DailyMoviesReport struct {
	Date string            `json:"date"`
	Data []MovieTicketsRow `json:"data"`
}

type WeeklyBucket struct {
	Week      int               `json:"week"`
	DateRange string            `json:"date_range"`
	Top       *MovieTicketsRow  `json:"top_movie"`
	Data      []MovieTicketsRow `json:"data"`
}

type WeeklyMoviesReport struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Weeks []WeeklyBucket `json:"weeks"`
}

type MonthlyMoviesReport struct {
	Year  int               `json:"year"`
	Month int               `json:"month"`
	Data  []MovieTicketsRow `json:"data"`
}

type GenreShareRow struct {
	Genre   string  `json:"genre"`
	Tickets int64   `json:"tickets_sold"`
	Share   float64 `json:"share_pct"`
}

type PaymentMethodRow struct {
	Method string  `json:"method"`
	Orders int64   `json:"orders"`
	Share  float64 `json:"share_pct"`
}
