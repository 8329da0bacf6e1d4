package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas, optionally filtered by name
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
	// CreatePizza creates a new pizza
	CreatePizza(c *gin.Context)
	// UpdatePizza patches an existing pizza
	UpdatePizza(c *gin.Context)
	// DeletePizza deletes a pizza by its ID
	DeletePizza(c *gin.Context)
}

type controller struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &controller{service: service}
}

// server-managed keys ignored in pizza payloads
var pizzaReadOnlyKeys = []string{"id", "created_at", "updated_at", "ingredients", "ingredient_ids"}

func pizzaResponse(p models.Pizza) models.DTO {
	dto := p.ToDTO()
	ingredients := make([]models.DTO, 0, len(p.Ingredients))
	for _, ingredient := range p.Ingredients {
		ingredients = append(ingredients, ingredient.ToDTO())
	}
	dto["ingredients"] = ingredients
	return dto
}

func pizzaListResponse(pizzas []models.Pizza) []models.DTO {
	out := make([]models.DTO, 0, len(pizzas))
	for _, p := range pizzas {
		out = append(out, pizzaResponse(p))
	}
	return out
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas, or the pizzas with an exact name
// @Tags pizzas
// @Accept json
// @Produce json
// @Param name query string false "Filter by exact pizza name"
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} models.APIError
// @Router /api/v1/pizzas [get]
func (c *controller) GetAllPizzas(ctx *gin.Context) {
	var (
		pizzas []models.Pizza
		err    error
	)
	if name, ok := ctx.GetQuery("name"); ok {
		pizzas, err = c.service.FindByName(ctx.Request.Context(), name)
	} else {
		pizzas, err = c.service.GetAllPizzas(ctx.Request.Context())
	}
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizzaListResponse(pizzas))
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza by its ID
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/pizzas/{id} [get]
func (c *controller) GetPizzaByID(ctx *gin.Context) {
	pizzaID, ok := parseIDParam(ctx, "pizza")
	if !ok {
		return
	}

	pizza, err := c.service.GetPizzaByID(ctx.Request.Context(), pizzaID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizzaResponse(*pizza))
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Description Create a new pizza. ingredient_ids must reference existing ingredients.
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body object{name=string,description=string,price=number,size=string,ingredient_ids=[]int} true "Pizza"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/pizzas [post]
func (c *controller) CreatePizza(ctx *gin.Context) {
	var body models.DTO
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	ingredientIDs, err := ingredientIDsFrom(body)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	stripKeys(body, pizzaReadOnlyKeys...)

	pizza, err := models.FromDTO[models.Pizza](body)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	created, err := c.service.CreatePizza(ctx.Request.Context(), pizza, ingredientIDs)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, pizzaResponse(*created))
}

// UpdatePizza godoc
// @Summary Update a pizza
// @Description Patch a pizza: only the fields present in the body change. ingredient_ids, when present, replaces the ingredient list.
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Param pizza body object{name=string,description=string,price=number,size=string,ingredient_ids=[]int} true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/pizzas/{id} [put]
func (c *controller) UpdatePizza(ctx *gin.Context) {
	pizzaID, ok := parseIDParam(ctx, "pizza")
	if !ok {
		return
	}

	var body models.DTO
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	ingredientIDs, err := ingredientIDsFrom(body)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	stripKeys(body, pizzaReadOnlyKeys...)

	updated, err := c.service.UpdatePizza(ctx.Request.Context(), pizzaID, body, ingredientIDs)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizzaResponse(*updated))
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Delete a pizza by its ID
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/pizzas/{id} [delete]
func (c *controller) DeletePizza(ctx *gin.Context) {
	pizzaID, ok := parseIDParam(ctx, "pizza")
	if !ok {
		return
	}

	if err := c.service.DeletePizza(ctx.Request.Context(), pizzaID); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ingredientIDsFrom returns nil when the body has no ingredient_ids key
func ingredientIDsFrom(body models.DTO) ([]uint, error) {
	raw, ok := body["ingredient_ids"]
	if !ok || raw == nil {
		return nil, nil
	}
	return parseIDList(raw, "ingredient_ids")
}
