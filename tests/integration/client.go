package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"bioskop/internal/models"
)

// TestClient drives a running API instance over HTTP. The integration
// tests are skipped unless BIOSKOP_API_URL points at a live server seeded
// with the demo data set (cmd/seed -clear).
type TestClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewTestClient returns a client for the server named by BIOSKOP_API_URL,
// skipping the test when the variable is unset.
func NewTestClient(t *testing.T) *TestClient {
	baseURL := os.Getenv("BIOSKOP_API_URL")
	if baseURL == "" {
		t.Skip("BIOSKOP_API_URL not set, skipping integration test")
	}

	return &TestClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *TestClient) makeRequest(t *testing.T, method, path string, body interface{}) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}

	return resp
}

func decode(t *testing.T, resp *http.Response, want int, out interface{}) {
	defer resp.Body.Close()

	if resp.StatusCode != want {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status %d, got %d. Body: %s", want, resp.StatusCode, string(body))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
	}
}

// HealthCheck verifies the server and its database are up.
func (c *TestClient) HealthCheck(t *testing.T) {
	resp := c.makeRequest(t, "GET", "/health", nil)
	decode(t, resp, http.StatusOK, nil)
}

// NowPlaying lists the public movie catalog.
func (c *TestClient) NowPlaying(t *testing.T) *models.NowPlayingResponse {
	resp := c.makeRequest(t, "GET", "/api/movies/now-playing", nil)

	var result models.NowPlayingResponse
	decode(t, resp, http.StatusOK, &result)
	return &result
}

// GetMovie fetches one movie with its schedules.
func (c *TestClient) GetMovie(t *testing.T, code string) *models.MoviePublic {
	resp := c.makeRequest(t, "GET", "/api/movies/"+code, nil)

	var result models.MoviePublic
	decode(t, resp, http.StatusOK, &result)
	return &result
}

// GetSeatMap fetches the rendered seat grid of a screening.
func (c *TestClient) GetSeatMap(t *testing.T, scheduleCode string) *models.SeatMapResponse {
	resp := c.makeRequest(t, "GET", fmt.Sprintf("/api/schedules/%s/seats", scheduleCode), nil)

	var result models.SeatMapResponse
	decode(t, resp, http.StatusOK, &result)
	return &result
}

// AddToCart puts one seat in a member's cart.
func (c *TestClient) AddToCart(t *testing.T, memberCode string, scheduleID int64, row string, col int) *models.AddToCartResponse {
	req := models.AddToCartRequest{
		MembershipCode: memberCode,
		ScheduleID:     scheduleID,
		Row:            row,
		Col:            col,
	}

	resp := c.makeRequest(t, "POST", "/api/cart", req)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected status 200 or 201, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var result models.AddToCartResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode cart response: %v", err)
	}
	return &result
}

// GetCart fetches a member's cart.
func (c *TestClient) GetCart(t *testing.T, memberCode string) *models.CartResponse {
	resp := c.makeRequest(t, "GET", "/api/cart/"+memberCode, nil)

	var result models.CartResponse
	decode(t, resp, http.StatusOK, &result)
	return &result
}

// Checkout completes a member's cart into an order.
func (c *TestClient) Checkout(t *testing.T, req *models.CheckoutRequest) *models.CheckoutResponse {
	resp := c.makeRequest(t, "POST", "/api/checkout", req)

	var result models.CheckoutResponse
	decode(t, resp, http.StatusCreated, &result)
	return &result
}

// GetOrder fetches an order confirmation.
func (c *TestClient) GetOrder(t *testing.T, code string) *models.CheckoutResponse {
	resp := c.makeRequest(t, "GET", "/api/orders/"+code, nil)

	var result models.CheckoutResponse
	decode(t, resp, http.StatusOK, &result)
	return &result
}
