package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/reports"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/gin-gonic/gin"
)

type ReportController struct {
	service services.ReportService
}

func NewReportController(service services.ReportService) *ReportController {
	return &ReportController{service: service}
}

// OrderStats godoc
// @Summary Order statistics
// @Tags reports
// @Produce json
// @Success 200 {object} reports.Stats
// @Security BearerAuth
// @Router /api/v1/orders/stats [get]
func (rc *ReportController) OrderStats(c *gin.Context) {
	stats, err := rc.service.OrderStats(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// RecentOrders godoc
// @Summary Most recent orders
// @Tags reports
// @Produce json
// @Param limit query int false "Number of orders (default 10)"
// @Success 200 {array} map[string]interface{}
// @Security BearerAuth
// @Router /api/v1/orders/recent [get]
func (rc *ReportController) RecentOrders(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	orders, err := rc.service.RecentOrders(c.Request.Context(), limit)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderListResponse(orders))
}

// PopularPizzas godoc
// @Summary Most ordered pizzas
// @Tags reports
// @Produce json
// @Param limit query int false "Number of pizzas (default 5)"
// @Success 200 {array} reports.PizzaCount
// @Router /api/v1/pizzas/popular [get]
func (rc *ReportController) PopularPizzas(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	popular, err := rc.service.PopularPizzas(c.Request.Context(), limit)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if popular == nil {
		popular = []reports.PizzaCount{}
	}
	c.JSON(http.StatusOK, popular)
}

// PizzasByPrice godoc
// @Summary Pizzas sorted by ascending price
// @Tags reports
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /api/v1/pizzas/by-price [get]
func (rc *ReportController) PizzasByPrice(c *gin.Context) {
	pizzas, err := rc.service.PizzasByPrice(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, pizzaListResponse(pizzas))
}

// ActiveUsers godoc
// @Summary Users ranked by number of orders
// @Tags reports
// @Produce json
// @Success 200 {array} reports.UserActivity
// @Security BearerAuth
// @Router /api/v1/users/active [get]
func (rc *ReportController) ActiveUsers(c *gin.Context) {
	active, err := rc.service.ActiveUsers(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	if active == nil {
		active = []reports.UserActivity{}
	}
	c.JSON(http.StatusOK, active)
}
