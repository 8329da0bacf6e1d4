package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService services.UserService
}

func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetProfile godoc
// @Summary Current user profile
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /api/v1/users/me [get]
func (uc *UserController) GetProfile(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	user, err := uc.userService.GetUserByUsername(c.Request.Context(), identity.Username)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.PublicDTO())
}

// UpdateProfile godoc
// @Summary Update contact details
// @Description Only email, phone and address can change; absent fields are kept
// @Tags users
// @Accept json
// @Produce json
// @Param profile body object{email=string,phone=string,address=string} true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/users/me [put]
func (uc *UserController) UpdateProfile(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	var body models.DTO
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	user, err := uc.userService.UpdateProfile(c.Request.Context(), identity.Username, body)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.PublicDTO())
}
