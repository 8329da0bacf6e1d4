package auth

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/go-oauth2/oauth2/v4"
	oauth2errors "github.com/go-oauth2/oauth2/v4/errors"
	"github.com/sirupsen/logrus"
)

// HandleToken handles the token endpoint for both client credentials and authorization code grants
// @Summary Token Endpoint
// @Description Obtain an access token using client credentials or authorization code grant
// @Tags OAuth2
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param grant_type formData string true "Grant type: client_credentials or authorization_code"
// @Param client_id formData string true "Client ID"
// @Param client_secret formData string true "Client Secret"
// @Param code formData string false "Authorization code (required for authorization_code grant)"
// @Param redirect_uri formData string false "Redirect URI (required for authorization_code grant)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.OAuth2Error
// @Failure 401 {object} models.OAuth2Error
// @Router /oauth/token [post]
func (o *OAuthService) HandleToken(c *gin.Context) {
	grantType := oauth2.GrantType(c.PostForm("grant_type"))
	clientID, clientSecret := clientCredentials(c)
	if clientID == "" {
		c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrInvalidRequest, "client_id is required"))
		return
	}

	req := &oauth2.TokenGenerateRequest{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scope:        c.PostForm("scope"),
		Request:      c.Request,
	}

	switch grantType {
	case oauth2.ClientCredentials:
		o.issueToken(c, grantType, req)
	case oauth2.AuthorizationCode:
		req.Code = c.PostForm("code")
		req.RedirectURI = c.PostForm("redirect_uri")
		if req.Code == "" {
			c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrInvalidRequest, "code is required"))
			return
		}
		o.issueToken(c, grantType, req)
	default:
		c.JSON(http.StatusBadRequest, models.NewOAuth2Error(models.ErrUnsupportedGrantType, "supported grant types: client_credentials, authorization_code"))
	}
}

func (o *OAuthService) issueToken(c *gin.Context, grantType oauth2.GrantType, req *oauth2.TokenGenerateRequest) {
	if grantType == oauth2.ClientCredentials && req.Scope == "" {
		if client, err := o.server.Manager.GetClient(c.Request.Context(), req.ClientID); err == nil {
			if registered, ok := client.(*models.OAuthClient); ok {
				req.Scope = registered.Scopes
			}
		}
	}

	ti, err := o.server.Manager.GenerateAccessToken(c.Request.Context(), grantType, req)
	if err != nil {
		status, code := tokenErrorResponse(grantType, err)
		log.WithFields(logrus.Fields{
			"client_id":  req.ClientID,
			"grant_type": grantType,
			"error":      err.Error(),
		}).Warn("Token request rejected")
		c.JSON(status, models.NewOAuth2Error(code, err.Error()))
		return
	}

	response := gin.H{
		"access_token": ti.GetAccess(),
		"token_type":   "Bearer",
		"expires_in":   int64(ti.GetAccessExpiresIn().Seconds()),
		"scope":        ti.GetScope(),
	}
	if refresh := ti.GetRefresh(); refresh != "" {
		response["refresh_token"] = refresh
	}
	c.JSON(http.StatusOK, response)
}

// clientCredentials reads the client id and secret from the form or from HTTP basic auth
func clientCredentials(c *gin.Context) (string, string) {
	if id, secret, ok := c.Request.BasicAuth(); ok {
		return id, secret
	}
	return c.PostForm("client_id"), c.PostForm("client_secret")
}

func tokenErrorResponse(grantType oauth2.GrantType, err error) (int, string) {
	switch {
	case errors.Is(err, oauth2errors.ErrInvalidClient):
		return http.StatusUnauthorized, models.ErrInvalidClient
	case errors.Is(err, oauth2errors.ErrInvalidAuthorizeCode),
		errors.Is(err, oauth2errors.ErrInvalidRedirectURI):
		return http.StatusBadRequest, models.ErrInvalidGrant
	case grantType == oauth2.AuthorizationCode:
		// unknown or expired codes surface as storage errors
		return http.StatusBadRequest, models.ErrInvalidGrant
	default:
		// unknown clients surface as storage errors
		return http.StatusUnauthorized, models.ErrInvalidClient
	}
}
