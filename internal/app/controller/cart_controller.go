package controller

import (
	"errors"
	"net/http"

	"github.com/Kalpana12-cmd/amazon/internal/app/service"
	apperrors "github.com/Kalpana12-cmd/amazon/internal/errors"
	"github.com/Kalpana12-cmd/amazon/internal/middleware"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type SetDeliveryOptionRequest struct {
	DeliveryOptionID string `json:"delivery_option_id" binding:"required"`
}

// GetCart returns the cart line items
// GET /api/v1/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	items := ctrl.cartService.Items()

	log.Debug("Cart fetched", map[string]interface{}{
		"count": len(items),
	})

	c.JSON(http.StatusOK, gin.H{
		"items":          items,
		"count":          len(items),
		"total_quantity": ctrl.cartService.TotalQuantity(),
	})
}

// AddToCart adds a product to the cart
// POST /api/v1/cart
func (ctrl *CartController) AddToCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid add to cart request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	err := ctrl.cartService.Add(c.Request.Context(), req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrInvalidQuantity) {
			apperrors.BadRequest(c, apperrors.CartInvalidQuantity, "Quantity must be between 1 and 1000")
			return
		}
		log.Error("Failed to add item to cart", err, map[string]interface{}{
			"product_id": req.ProductID,
		})
		apperrors.InternalError(c, "Failed to add item to cart")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Item added to cart",
		"total_quantity": ctrl.cartService.TotalQuantity(),
	})
}

// SetQuantity replaces a line item's quantity
// PUT /api/v1/cart/:productId
func (ctrl *CartController) SetQuantity(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	productID := c.Param("productId")

	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid set quantity request", map[string]interface{}{
			"product_id": productID,
			"error":      err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	err := ctrl.cartService.SetQuantity(c.Request.Context(), productID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrInvalidQuantity) {
			apperrors.BadRequest(c, apperrors.CartInvalidQuantity, "Quantity must be between 1 and 1000")
			return
		}
		if errors.Is(err, service.ErrItemNotFound) {
			apperrors.NotFound(c, apperrors.CartItemNotFound, "Cart item not found")
			return
		}
		log.Error("Failed to update cart quantity", err, map[string]interface{}{
			"product_id": productID,
		})
		apperrors.InternalError(c, "Failed to update cart item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated",
	})
}

// SetDeliveryOption changes a line item's delivery option
// PUT /api/v1/cart/:productId/delivery-option
func (ctrl *CartController) SetDeliveryOption(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	productID := c.Param("productId")

	var req SetDeliveryOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid delivery option request", map[string]interface{}{
			"product_id": productID,
			"error":      err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	err := ctrl.cartService.SetDeliveryOption(c.Request.Context(), productID, req.DeliveryOptionID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDeliveryOption) {
			apperrors.BadRequest(c, apperrors.CartInvalidDeliveryOption, "Unknown delivery option")
			return
		}
		if errors.Is(err, service.ErrItemNotFound) {
			apperrors.NotFound(c, apperrors.CartItemNotFound, "Cart item not found")
			return
		}
		log.Error("Failed to update delivery option", err, map[string]interface{}{
			"product_id":         productID,
			"delivery_option_id": req.DeliveryOptionID,
		})
		apperrors.InternalError(c, "Failed to update cart item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Delivery option updated",
	})
}

// RemoveFromCart removes a line item. Removing an absent product still
// answers 200, deletes are idempotent.
// DELETE /api/v1/cart/:productId
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	productID := c.Param("productId")

	if err := ctrl.cartService.Remove(c.Request.Context(), productID); err != nil {
		log.Error("Failed to remove cart item", err, map[string]interface{}{
			"product_id": productID,
		})
		apperrors.InternalError(c, "Failed to remove cart item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item removed",
	})
}

// ClearCart empties the cart
// DELETE /api/v1/cart
func (ctrl *CartController) ClearCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	if err := ctrl.cartService.Clear(c.Request.Context()); err != nil {
		log.Error("Failed to clear cart", err, nil)
		apperrors.InternalError(c, "Failed to clear cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
	})
}
