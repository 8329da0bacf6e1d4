package auth

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/go-oauth2/oauth2/v4"
	"github.com/sirupsen/logrus"
)

// HandleAuthorize issues an authorization code for the authenticated user and
// redirects back to the client
// @Summary Authorization Endpoint
// @Description Issue an authorization code for the logged-in user
// @Tags OAuth2
// @Param client_id query string true "Client ID"
// @Param redirect_uri query string false "Redirect URI (defaults to the registered one)"
// @Param scope query string false "Requested scope"
// @Param state query string false "Opaque state echoed back to the client"
// @Success 302
// @Failure 400 {object} models.OAuth2Error
// @Security BearerAuth
// @Router /oauth/authorize [get]
func (o *OAuthService) HandleAuthorize(c *gin.Context) {
	clientID := c.Query("client_id")
	redirectURI := c.Query("redirect_uri")
	scope := c.Query("scope")
	state := c.Query("state")

	var client models.OAuthClient
	if err := o.db.WithContext(c.Request.Context()).Where("id = ?", clientID).First(&client).Error; err != nil {
		c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrInvalidClient, "unknown client"))
		return
	}

	if redirectURI == "" {
		redirectURI = client.RedirectURI
	}
	if redirectURI == "" || (client.RedirectURI != "" && redirectURI != client.RedirectURI) {
		c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrInvalidRequest, "invalid redirect_uri"))
		return
	}

	userID := c.GetUint("userID")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, models.NewOAuth2Error(models.ErrInvalidRequest, "user not authenticated"))
		return
	}

	ti, err := o.server.Manager.GenerateAuthToken(c.Request.Context(), oauth2.Code, &oauth2.TokenGenerateRequest{
		ClientID:    clientID,
		UserID:      strconv.FormatUint(uint64(userID), 10),
		RedirectURI: redirectURI,
		Scope:       scope,
		Request:     c.Request,
	})
	if err != nil {
		log.WithFields(logrus.Fields{"client_id": clientID, "error": err.Error()}).Warn("Authorization code generation failed")
		c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrInvalidRequest, err.Error()))
		return
	}

	target, err := url.Parse(redirectURI)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrInvalidRequest, "invalid redirect_uri"))
		return
	}
	query := target.Query()
	query.Set("code", ti.GetCode())
	if state != "" {
		query.Set("state", state)
	}
	target.RawQuery = query.Encode()

	c.Redirect(http.StatusFound, target.String())
}
