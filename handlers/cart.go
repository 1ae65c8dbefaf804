package handlers

import (
	"errors"
	"net/http"

	"storefront/middleware"
	"storefront/services/cart"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

// CartHandler exposes cart operations over HTTP.
type CartHandler struct {
	Service cart.CartService
}

func NewCartHandler(svc cart.CartService) *CartHandler {
	return &CartHandler{Service: svc}
}

// GetCartHandler returns the shopper's current cart.
func (h *CartHandler) GetCartHandler(c *gin.Context) {
	shopperID := middleware.GetShopperID(c)
	crt, err := h.Service.GetCart(c.Request.Context(), shopperID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load cart", err.Error())
		return
	}
	c.JSON(http.StatusOK, crt)
}

// AddServiceHandler adds a bookable service to the cart. Re-adding a
// service already in the cart is a no-op.
func (h *CartHandler) AddServiceHandler(c *gin.Context) {
	var input struct {
		ServiceID string `json:"service_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	shopperID := middleware.GetShopperID(c)
	crt, err := h.Service.AddService(c.Request.Context(), shopperID, input.ServiceID)
	if err != nil {
		h.writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, crt)
}

// AddProductHandler adds a product to the cart, or increments its quantity.
func (h *CartHandler) AddProductHandler(c *gin.Context) {
	var input struct {
		ProductID string `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	shopperID := middleware.GetShopperID(c)
	crt, err := h.Service.AddProduct(c.Request.Context(), shopperID, input.ProductID)
	if err != nil {
		h.writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, crt)
}

// SetQuantityHandler sets a product line's quantity; zero or less removes it.
func (h *CartHandler) SetQuantityHandler(c *gin.Context) {
	var input struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	shopperID := middleware.GetShopperID(c)
	crt, err := h.Service.SetProductQuantity(c.Request.Context(), shopperID, c.Param("id"), *input.Quantity)
	if err != nil {
		h.writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, crt)
}

// RemoveLineHandler removes a line regardless of kind.
func (h *CartHandler) RemoveLineHandler(c *gin.Context) {
	shopperID := middleware.GetShopperID(c)
	crt, err := h.Service.RemoveLine(c.Request.Context(), shopperID, c.Param("id"))
	if err != nil {
		h.writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, crt)
}

// ClearCartHandler empties the cart.
func (h *CartHandler) ClearCartHandler(c *gin.Context) {
	shopperID := middleware.GetShopperID(c)
	if err := h.Service.Clear(c.Request.Context(), shopperID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to clear cart", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

func (h *CartHandler) writeCartError(c *gin.Context, err error) {
	var catalogErr *cart.CatalogItemError
	if errors.As(err, &catalogErr) {
		utils.JSONError(c, http.StatusNotFound, "catalog item not found", catalogErr.Message)
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "cart operation failed", err.Error())
}
