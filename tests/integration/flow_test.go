package integration

import (
	"strings"
	"testing"

	"bioskop/internal/models"
)

// The flow tests assume a server seeded with the December 2024 demo data
// (cmd/seed -clear) and CATALOG_REF_DATE=2024-12-01.

func TestAPI_HealthCheck(t *testing.T) {
	client := NewTestClient(t)
	client.HealthCheck(t)
}

func TestAPI_NowPlaying(t *testing.T) {
	client := NewTestClient(t)

	listing := client.NowPlaying(t)
	if listing.Count == 0 {
		t.Fatal("Expected at least one movie in the catalog")
	}

	for _, movie := range listing.Data {
		if movie.Price == 0 {
			t.Fatalf("Movie %s has no price", movie.ID)
		}
	}
}

func TestAPI_PurchaseFlow(t *testing.T) {
	client := NewTestClient(t)

	// Pick a screening from the catalog.
	listing := client.NowPlaying(t)
	if listing.Count == 0 {
		t.Fatal("Expected at least one movie in the catalog")
	}

	movie := client.GetMovie(t, listing.Data[0].ID)
	if len(movie.Schedules) == 0 {
		t.Fatalf("Movie %s has no schedules", movie.ID)
	}
	schedule := movie.Schedules[0]

	// Find two free seats on the rendered map.
	seatMap := client.GetSeatMap(t, schedule.Code)
	row, cols := findFreeSeats(t, seatMap, 2)

	// Cart them.
	for _, col := range cols {
		resp := client.AddToCart(t, "MEM001", schedule.ID, row, col)
		if resp.Status != models.CartStatusAdded {
			t.Fatalf("Expected seat %s%d to be added, got %s", row, col, resp.Status)
		}
	}

	cart := client.GetCart(t, "MEM001")
	if len(cart.Items) != len(cols) {
		t.Fatalf("Expected %d cart items, got %d", len(cols), len(cart.Items))
	}
	if cart.TotalPrice != int64(len(cols))*movie.Price {
		t.Fatalf("Expected cart total %d, got %d", int64(len(cols))*movie.Price, cart.TotalPrice)
	}

	// Re-adding the same seat reports already_in_cart.
	dup := client.AddToCart(t, "MEM001", schedule.ID, row, cols[0])
	if dup.Status != models.CartStatusAlreadyInCart {
		t.Fatalf("Expected already_in_cart, got %s", dup.Status)
	}

	// Cash checkout with surplus.
	cash := cart.TotalPrice + 50000
	order := client.Checkout(t, &models.CheckoutRequest{
		MembershipCode: "MEM001",
		PaymentMethod:  "CASH",
		CashAmount:     &cash,
	})
	if order.Status != "SUCCESS" {
		t.Fatalf("Expected SUCCESS, got %s", order.Status)
	}
	if order.SeatCount != len(cols) {
		t.Fatalf("Expected %d seats on order, got %d", len(cols), order.SeatCount)
	}
	if order.Change != cash-order.FinalPrice {
		t.Fatalf("Expected change %d, got %d", cash-order.FinalPrice, order.Change)
	}

	// The cart is gone and the order is retrievable.
	cart = client.GetCart(t, "MEM001")
	if len(cart.Items) != 0 {
		t.Fatalf("Expected empty cart after checkout, got %d items", len(cart.Items))
	}

	fetched := client.GetOrder(t, order.OrderCode)
	if fetched.FinalPrice != order.FinalPrice {
		t.Fatalf("Order %s final price mismatch: %d vs %d", order.OrderCode, fetched.FinalPrice, order.FinalPrice)
	}

	// The bought seats now render as sold.
	seatMap = client.GetSeatMap(t, schedule.Code)
	assertSeatsSold(t, seatMap, row, cols)
}

// findFreeSeats scans the rendered display for n free seats in one row.
func findFreeSeats(t *testing.T, seatMap *models.SeatMapResponse, n int) (string, []int) {
	t.Helper()

	// Row lines look like "A  O X   O O"; the first two display lines are
	// the screen banner and the column numbers.
	for _, line := range seatMap.Display[2:] {
		if len(line) < 1 {
			continue
		}
		row := string(line[0])

		var cols []int
		col := 0
		for _, symbol := range strings.Fields(line[1:]) {
			col++
			if symbol == "O" {
				cols = append(cols, col)
			}
			if len(cols) == n {
				return row, cols
			}
		}
	}

	t.Skipf("Fewer than %d free seats in one row for %s", n, seatMap.ScheduleCode)
	return "", nil
}

func assertSeatsSold(t *testing.T, seatMap *models.SeatMapResponse, row string, cols []int) {
	t.Helper()

	for _, line := range seatMap.Display[2:] {
		if len(line) == 0 || string(line[0]) != row {
			continue
		}
		symbols := strings.Fields(line[1:])
		for _, col := range cols {
			if col > len(symbols) || symbols[col-1] != "X" {
				t.Fatalf("Expected seat %s%d to render as sold in %q", row, col, line)
			}
		}
		return
	}
	t.Fatalf("Row %s not found in seat map", row)
}
