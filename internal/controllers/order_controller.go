package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/middleware"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	service services.OrderService
}

func NewOrderController(service services.OrderService) *OrderController {
	return &OrderController{service: service}
}

type createOrderRequest struct {
	PizzaIDs        []uint `json:"pizza_ids" binding:"required"`
	DeliveryAddress string `json:"delivery_address" binding:"max=255"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"omitempty,orderstatus"`
}

func orderResponse(order models.Order) models.DTO {
	dto := order.ToDTO()
	pizzas := make([]models.DTO, 0, len(order.Pizzas))
	for _, pizza := range order.Pizzas {
		pizzas = append(pizzas, pizza.ToDTO())
	}
	dto["pizzas"] = pizzas
	return dto
}

func orderListResponse(orders []models.Order) []models.DTO {
	out := make([]models.DTO, 0, len(orders))
	for _, order := range orders {
		out = append(out, orderResponse(order))
	}
	return out
}

// identityOrAbort reads the caller set by the auth middleware
func identityOrAbort(c *gin.Context) (models.Identity, bool) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized, "User not authenticated"))
		return models.Identity{}, false
	}
	return identity, true
}

// CreateOrder godoc
// @Summary Place an order
// @Description Unknown pizza ids are skipped. The order fails when none of the ids exist. The delivery address defaults to the user's address.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body createOrderRequest true "Order"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/orders [post]
func (oc *OrderController) CreateOrder(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	order, err := oc.service.CreateOrder(c.Request.Context(), identity, req.PizzaIDs, req.DeliveryAddress)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, orderResponse(*order))
}

// ListOrders godoc
// @Summary List orders
// @Description Admins see every order, users see their own
// @Tags orders
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Security BearerAuth
// @Router /api/v1/orders [get]
func (oc *OrderController) ListOrders(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	orders, err := oc.service.ListOrders(c.Request.Context(), identity)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderListResponse(orders))
}

// GetOrder godoc
// @Summary Get an order
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/orders/{id} [get]
func (oc *OrderController) GetOrder(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "order")
	if !ok {
		return
	}

	order, err := oc.service.GetOrder(c.Request.Context(), identity, id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderResponse(*order))
}

// CancelOrder godoc
// @Summary Cancel an order
// @Description Owners and admins can cancel orders that are not yet Preparing, On the way or Delivered
// @Tags orders
// @Param id path int true "Order ID"
// @Success 204
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/orders/{id} [delete]
func (oc *OrderController) CancelOrder(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "order")
	if !ok {
		return
	}

	if err := oc.service.CancelOrder(c.Request.Context(), identity, id); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param status body updateStatusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/orders/{id} [put]
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	if !identity.IsAdmin() {
		c.JSON(http.StatusForbidden, models.NewAPIError(models.ErrForbidden, "only admins can change order status"))
		return
	}
	id, ok := parseIDParam(c, "order")
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "status must be one of: New, Preparing, On the way, Delivered, Cancelled")
		return
	}

	order, err := oc.service.UpdateStatus(c.Request.Context(), identity, id, req.Status)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderResponse(*order))
}
