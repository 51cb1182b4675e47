package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-api/models"
	"storefront-api/services"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// PlaceOrder godoc
// @Summary Place order
// @Description Create a new order record
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body models.PlaceOrderRequest true "Order Request"
// @Success 201 {object} models.PlaceOrderResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) PlaceOrder(c *gin.Context) {
	var req models.PlaceOrderRequest
	_ = c.ShouldBindJSON(&req)

	orderID, err := ctrl.orders.PlaceOrder(c.Request.Context(), req)
	switch {
	case errors.Is(err, services.ErrMissingOrderFields):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "All fields are required.",
		})
	case err != nil:
		log.Printf("Error placing order: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Error placing order",
			Error:   err.Error(),
		})
	default:
		log.Printf("Order inserted: %d", orderID)
		c.JSON(http.StatusCreated, models.PlaceOrderResponse{
			Message: "Order placed successfully",
			OrderID: orderID,
		})
	}
}

// ListOrders godoc
// @Summary List orders
// @Description Customer-facing order listing, most recent first
// @Tags Orders
// @Produce json
// @Success 200 {array} models.OrderSummary
// @Failure 500 {object} models.ErrorResponse
// @Router /orders [get]
func (ctrl *OrderController) ListOrders(c *gin.Context) {
	orders, err := ctrl.orders.ListOrders(c.Request.Context())
	if err != nil {
		log.Printf("Database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Database error",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// ListAdminOrders godoc
// @Summary List orders (admin)
// @Description Paginated full order records for the admin panel
// @Tags Orders
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} models.Order
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/orders [get]
func (ctrl *OrderController) ListAdminOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	orders, err := ctrl.orders.ListOrdersAdmin(c.Request.Context(), page, limit)
	if err != nil {
		log.Printf("Error fetching orders: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Database error",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, orders)
}
