package handlers

import (
	"net/http"
	"strconv"

	"bioskop/internal/logger"
	"bioskop/internal/models"

	"github.com/gin-gonic/gin"
)

// Cart handlers

// AddToCart - POST /api/cart
func (h *Handlers) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := logger.ContextWithMemberCode(c.Request.Context(), req.MembershipCode)
	response, err := h.services.Carts.Add(ctx, &req)
	if err != nil {
		h.handleServiceError(c, err, "Failed to add seat to cart")
		return
	}

	status := http.StatusCreated
	if response.Status == models.CartStatusAlreadyInCart {
		status = http.StatusOK
	}
	c.JSON(status, response)
}

// GetCart - GET /api/cart/:member
func (h *Handlers) GetCart(c *gin.Context) {
	response, err := h.services.Carts.Get(c.Request.Context(), c.Param("member"))
	if err != nil {
		h.handleServiceError(c, err, "Failed to get cart")
		return
	}

	c.JSON(http.StatusOK, response)
}

// RemoveCartItem - DELETE /api/cart/:id
func (h *Handlers) RemoveCartItem(c *gin.Context) {
	cartID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart id"})
		return
	}

	if err := h.services.Carts.Remove(c.Request.Context(), cartID); err != nil {
		h.handleServiceError(c, err, "Failed to remove cart item")
		return
	}

	c.Status(http.StatusNoContent)
}
