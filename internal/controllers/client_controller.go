package controllers

import (
	"net/http"
	"strings"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var supportedGrantTypes = map[string]bool{
	"client_credentials": true,
	"authorization_code": true,
}

type ClientController struct {
	clientService services.ClientService
}

func NewClientController(clientService services.ClientService) *ClientController {
	return &ClientController{clientService: clientService}
}

type createClientRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Domain      string `json:"domain"`
	Scopes      string `json:"scopes"`
	GrantTypes  string `json:"grant_types"`
	RedirectURI string `json:"redirect_uri" binding:"omitempty,url"`
}

// CreateClient godoc
// @Summary Create OAuth2 client
// @Description Create a new OAuth2 client acting on behalf of the authenticated user
// @Tags OAuth2 Clients
// @Accept json
// @Produce json
// @Param client body createClientRequest true "Client details"
// @Success 201 {object} map[string]interface{} "Client created with client_id and client_secret"
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/clients [post]
func (cc *ClientController) CreateClient(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}

	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	grantTypes := strings.Fields(req.GrantTypes)
	if len(grantTypes) == 0 {
		grantTypes = []string{"client_credentials"}
	}
	for _, grant := range grantTypes {
		if !supportedGrantTypes[grant] {
			respondBadRequest(c, "unsupported grant type '"+grant+"'")
			return
		}
	}

	// the plain secret is returned once and only its hash is stored
	secret := uuid.New().String()
	hashedSecret, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		respondWithError(c, err)
		return
	}

	client := &models.OAuthClient{
		ID:          uuid.New().String(),
		Secret:      string(hashedSecret),
		Name:        req.Name,
		Domain:      req.Domain,
		Scopes:      strings.Join(strings.Fields(req.Scopes), " "),
		GrantTypes:  strings.Join(grantTypes, " "),
		RedirectURI: req.RedirectURI,
		UserID:      identity.UserID,
	}

	if err := cc.clientService.CreateClient(c.Request.Context(), client); err != nil {
		respondWithError(c, err)
		return
	}

	response := client.ToDTO()
	response["client_secret"] = secret
	c.JSON(http.StatusCreated, response)
}

// ListClients godoc
// @Summary List OAuth2 clients
// @Description Get all OAuth2 clients owned by the authenticated user
// @Tags OAuth2 Clients
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Security BearerAuth
// @Router /api/v1/clients [get]
func (cc *ClientController) ListClients(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	clients, err := cc.clientService.GetClientsByUserID(c.Request.Context(), identity.UserID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	out := make([]models.DTO, 0, len(clients))
	for _, client := range clients {
		out = append(out, client.ToDTO())
	}
	c.JSON(http.StatusOK, out)
}

// DeleteClient godoc
// @Summary Delete OAuth2 client
// @Description Delete an OAuth2 client owned by the authenticated user
// @Tags OAuth2 Clients
// @Param id path string true "Client ID"
// @Success 204 "Client deleted successfully"
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/clients/{id} [delete]
func (cc *ClientController) DeleteClient(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	if err := cc.clientService.DeleteClient(c.Request.Context(), c.Param("id"), identity.UserID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
