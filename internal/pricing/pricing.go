// Package pricing holds the ticket price tiers and promotion rules. All
// amounts are integers in the smallest currency unit.
package pricing

import "time"

// TicketPrice derives the seat price of a screening from the movie duration
// in minutes.
func TicketPrice(durationMin int) int64 {
	if durationMin >= 180 {
		return 50000
	}
	if durationMin >= 125 {
		return 45000
	}
	return 40000
}

// Promo is a discount selected for one checkout.
type Promo struct {
	Name     string
	Discount int // percentage, 0-100
}

// SelectPromo picks the promotion for a checkout. The calendar promo takes
// priority over the bulk promo when both match.
func SelectPromo(showDate time.Time, seatCount int) Promo {
	if showDate.Day() == 12 {
		return Promo{Name: "SUPER 12.12", Discount: 30}
	}
	if seatCount >= 5 {
		return Promo{Name: "BULK 5+", Discount: 20}
	}
	return Promo{Name: "NO PROMO", Discount: 0}
}

// FinalPrice applies a percentage discount, flooring the discount amount.
func FinalPrice(total int64, discount int) int64 {
	return total - total*int64(discount)/100
}
