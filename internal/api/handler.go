package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/PYTHTRADER/e-commerce/internal/catalog"
	"github.com/PYTHTRADER/e-commerce/internal/models"
	"github.com/PYTHTRADER/e-commerce/internal/shop"
	"github.com/PYTHTRADER/e-commerce/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler exposes the shop operation set over HTTP.
type Handler struct {
	shop    *shop.Shop
	catalog *catalog.Catalog
}

// NewHandler creates a new HTTP handler
func NewHandler(s *shop.Shop, cat *catalog.Catalog) *Handler {
	return &Handler{shop: s, catalog: cat}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/products", h.listProducts)
		v1.GET("/products/:id", h.getProduct)

		v1.GET("/cart", h.getCart)
		v1.POST("/cart/items", h.addCartItem)
		v1.PATCH("/cart/items", h.updateCartItem)
		v1.DELETE("/cart/items/:productId/:weight", h.removeCartItem)
		v1.DELETE("/cart", h.clearCart)

		v1.POST("/coupon", h.applyCoupon)
		v1.DELETE("/coupon", h.removeCoupon)

		v1.POST("/session", h.login)
		v1.DELETE("/session", h.logout)
		v1.POST("/addresses", h.saveAddress)

		v1.POST("/checkout", h.checkout)
		v1.GET("/orders", h.listOrders)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

func (h *Handler) listProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.catalog.Products()})
}

func (h *Handler) getProduct(c *gin.Context) {
	product := h.catalog.ProductByID(c.Param("id"))
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// getCart returns the cart lines with the reactive totals.
func (h *Handler) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items":           h.shop.Cart(),
		"cart_total":      h.shop.CartTotal(),
		"discount_amount": h.shop.DiscountAmount(),
		"final_total":     h.shop.FinalTotal(),
		"applied_coupon":  h.shop.AppliedCoupon(),
	})
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Weight    string `json:"weight" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

func (h *Handler) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	product, variant, err := h.catalog.VariantOf(req.ProductID, req.Weight)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if err := h.shop.AddItem(product, variant, req.Quantity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.shop.Cart()})
}

type updateItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Weight    string `json:"weight" binding:"required"`
	Delta     int    `json:"delta" binding:"required"`
}

func (h *Handler) updateCartItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	h.shop.UpdateQuantity(req.ProductID, req.Weight, req.Delta)
	c.JSON(http.StatusOK, gin.H{"items": h.shop.Cart()})
}

func (h *Handler) removeCartItem(c *gin.Context) {
	h.shop.RemoveItem(c.Param("productId"), c.Param("weight"))
	c.JSON(http.StatusOK, gin.H{"items": h.shop.Cart()})
}

func (h *Handler) clearCart(c *gin.Context) {
	h.shop.Clear()
	c.JSON(http.StatusOK, gin.H{"items": h.shop.Cart()})
}

type applyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

func (h *Handler) applyCoupon(c *gin.Context) {
	var req applyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	// Coupon rejection is expected flow, reported in-band with 200.
	result := h.shop.ApplyCoupon(req.Code)
	c.JSON(http.StatusOK, gin.H{
		"applied":         result.Applied,
		"message":         result.Message,
		"discount_amount": h.shop.DiscountAmount(),
		"final_total":     h.shop.FinalTotal(),
	})
}

func (h *Handler) removeCoupon(c *gin.Context) {
	h.shop.RemoveCoupon()
	c.JSON(http.StatusOK, gin.H{"final_total": h.shop.FinalTotal()})
}

type loginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	user := h.shop.Login(req.Email)
	c.JSON(http.StatusOK, user)
}

func (h *Handler) logout(c *gin.Context) {
	h.shop.Logout()
	c.Status(http.StatusNoContent)
}

type saveAddressRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
}

func (h *Handler) saveAddress(c *gin.Context) {
	var req saveAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	addr, ok := h.shop.SaveAddress(models.Address{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Street:     req.Street,
		City:       req.City,
		PostalCode: req.PostalCode,
	})
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
		return
	}
	c.JSON(http.StatusCreated, addr)
}

type checkoutRequest struct {
	Shipping      shop.ShippingDetails `json:"shipping" binding:"required"`
	PaymentMethod string               `json:"payment_method" binding:"required"`
}

func (h *Handler) checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	orderID, err := h.shop.PlaceOrder(c.Request.Context(), req.Shipping, req.PaymentMethod)
	if err != nil {
		c.JSON(checkoutStatus(err), gin.H{"error": "Failed to place order", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order_id": orderID})
}

func checkoutStatus(err error) int {
	switch {
	case errors.Is(err, shop.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, shop.ErrEmptyCart), errors.Is(err, shop.ErrCheckoutInProgress):
		return http.StatusConflict
	case errors.Is(err, shop.ErrPaymentDeclined):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) listOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": h.shop.Orders()})
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
