package handlers

import (
	"net/http"

	"bioskop/internal/logger"
	"bioskop/internal/models"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

// Checkout and order handlers

// Checkout - POST /api/checkout
func (h *Handlers) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := logger.ContextWithMemberCode(c.Request.Context(), req.MembershipCode)
	response, err := h.services.Checkout.Checkout(ctx, &req)
	if err != nil {
		h.handleServiceError(c, err, "Failed to checkout")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetOrder - GET /api/orders/:code
func (h *Handlers) GetOrder(c *gin.Context) {
	response, err := h.services.Checkout.GetOrder(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.handleServiceError(c, err, "Failed to get order")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetOrderQR - GET /api/orders/:code/qr
// Returns the order code as a PNG QR image for gate scanning.
func (h *Handlers) GetOrderQR(c *gin.Context) {
	code := c.Param("code")

	// Resolve first so unknown codes stay 404 instead of encoding garbage.
	if _, err := h.services.Checkout.GetOrder(c.Request.Context(), code); err != nil {
		h.handleServiceError(c, err, "Failed to get order")
		return
	}

	png, err := qrcode.Encode(code, qrcode.Medium, 256)
	if err != nil {
		h.handleServiceError(c, err, "Failed to encode QR")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
