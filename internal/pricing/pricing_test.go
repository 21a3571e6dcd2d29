package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTicketPrice(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		want     int64
	}{
		{"short film", 90, 40000},
		{"just below mid tier", 124, 40000},
		{"mid tier lower bound", 125, 45000},
		{"mid tier", 150, 45000},
		{"just below top tier", 179, 45000},
		{"top tier lower bound", 180, 50000},
		{"epic", 200, 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TicketPrice(tt.duration))
		})
	}
}

func TestSelectPromo(t *testing.T) {
	dec12 := time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC)
	dec13 := time.Date(2024, 12, 13, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		date      time.Time
		seatCount int
		want      Promo
	}{
		{"no promo", dec13, 1, Promo{"NO PROMO", 0}},
		{"bulk at five seats", dec13, 5, Promo{"BULK 5+", 20}},
		{"bulk above five seats", dec13, 6, Promo{"BULK 5+", 20}},
		{"four seats is not bulk", dec13, 4, Promo{"NO PROMO", 0}},
		{"calendar promo", dec12, 1, Promo{"SUPER 12.12", 30}},
		{"calendar promo beats bulk", dec12, 6, Promo{"SUPER 12.12", 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectPromo(tt.date, tt.seatCount))
		})
	}
}

func TestFinalPrice(t *testing.T) {
	// five seats at 45000 on a non-promo date with the bulk discount
	assert.Equal(t, int64(180000), FinalPrice(5*45000, 20))

	// discount amount is floored
	assert.Equal(t, int64(71), FinalPrice(101, 30)) // 101 - floor(30.3) = 71

	assert.Equal(t, int64(40000), FinalPrice(40000, 0))
}
