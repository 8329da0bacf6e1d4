package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/gin-gonic/gin"
)

type IngredientController struct {
	service services.IngredientService
}

func NewIngredientController(service services.IngredientService) *IngredientController {
	return &IngredientController{service: service}
}

// ListIngredients godoc
// @Summary List ingredients
// @Tags ingredients
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /api/v1/ingredients [get]
func (ic *IngredientController) ListIngredients(c *gin.Context) {
	ingredients, err := ic.service.GetAllIngredients(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	out := make([]models.DTO, 0, len(ingredients))
	for _, ingredient := range ingredients {
		out = append(out, ingredient.ToDTO())
	}
	c.JSON(http.StatusOK, out)
}

// CreateIngredient godoc
// @Summary Create an ingredient
// @Tags ingredients
// @Accept json
// @Produce json
// @Param ingredient body object{name=string} true "Ingredient"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/ingredients [post]
func (ic *IngredientController) CreateIngredient(c *gin.Context) {
	var body models.DTO
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	stripKeys(body, "id")

	ingredient, err := models.FromDTO[models.Ingredient](body)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if err := ic.service.CreateIngredient(c.Request.Context(), ingredient); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ingredient.ToDTO())
}

// DeleteIngredient godoc
// @Summary Delete an ingredient
// @Tags ingredients
// @Param id path int true "Ingredient ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/ingredients/{id} [delete]
func (ic *IngredientController) DeleteIngredient(c *gin.Context) {
	id, ok := parseIDParam(c, "ingredient")
	if !ok {
		return
	}
	if err := ic.service.DeleteIngredient(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
