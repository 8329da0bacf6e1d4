package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenRouter(oauthService *OAuthService, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/oauth/token", oauthService.HandleToken)
	router.GET("/oauth/authorize", func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}, oauthService.HandleAuthorize)
	return router
}

func postToken(router *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestClientCredentialsFlow(t *testing.T) {
	db := setupTestDB(t)
	oauthService := NewOAuthService(db, testSecret)
	owner := createUser(t, db, "luigi", models.RoleUser)
	createClient(t, db, "test_client_id", "test_secret", owner)

	w := postToken(tokenRouter(oauthService, owner.ID), url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"test_client_id"},
		"client_secret": {"test_secret"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Bearer", response["token_type"])
	// scope defaults to the client's registered scopes
	assert.Equal(t, "read write", response["scope"])

	claims := parseClaims(t, response["access_token"].(string))
	assert.Equal(t, "luigi", claims["username"])
	assert.Equal(t, models.RoleUser, claims["role"])
}

func TestClientCredentialsBasicAuth(t *testing.T) {
	db := setupTestDB(t)
	oauthService := NewOAuthService(db, testSecret)
	owner := createUser(t, db, "luigi", models.RoleUser)
	createClient(t, db, "basic_client", "basic_secret", owner)

	req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader("grant_type=client_credentials"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth("basic_client", "basic_secret")
	w := httptest.NewRecorder()
	tokenRouter(oauthService, owner.ID).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestClientCredentialsInvalidSecret(t *testing.T) {
	db := setupTestDB(t)
	oauthService := NewOAuthService(db, testSecret)
	owner := createUser(t, db, "luigi", models.RoleUser)
	createClient(t, db, "test_client_id", "correct_secret", owner)

	w := postToken(tokenRouter(oauthService, owner.ID), url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"test_client_id"},
		"client_secret": {"wrong_secret"},
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var response models.OAuth2Error
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, models.ErrInvalidClient, response.Error)
}

func TestTokenRequestValidation(t *testing.T) {
	db := setupTestDB(t)
	oauthService := NewOAuthService(db, testSecret)
	router := tokenRouter(oauthService, 1)

	testCases := []struct {
		name   string
		form   url.Values
		status int
	}{
		{"missing client id", url.Values{"grant_type": {"client_credentials"}}, http.StatusBadRequest},
		{"unsupported grant", url.Values{"grant_type": {"password"}, "client_id": {"x"}}, http.StatusBadRequest},
		{"missing code", url.Values{"grant_type": {"authorization_code"}, "client_id": {"x"}}, http.StatusBadRequest},
		{"unknown client", url.Values{"grant_type": {"client_credentials"}, "client_id": {"nobody"}, "client_secret": {"s"}}, http.StatusUnauthorized},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := postToken(router, tt.form)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestAuthorizationCodeFlow(t *testing.T) {
	db := setupTestDB(t)
	oauthService := NewOAuthService(db, testSecret)
	owner := createUser(t, db, "peach", models.RoleUser)
	createClient(t, db, "web_app", "web_secret", createUser(t, db, "developer", models.RoleUser))
	router := tokenRouter(oauthService, owner.ID)

	req := httptest.NewRequest(http.MethodGet, "/oauth/authorize?client_id=web_app&state=xyz&scope=read", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusFound, w.Code, w.Body.String())

	location, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/callback", location.Path)
	assert.Equal(t, "xyz", location.Query().Get("state"))
	code := location.Query().Get("code")
	require.NotEmpty(t, code)

	form := url.Values{
		"grant_type":    {"authorization_code"},
		"client_id":     {"web_app"},
		"client_secret": {"web_secret"},
		"code":          {code},
		"redirect_uri":  {"http://localhost/callback"},
	}
	w = postToken(router, form)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	// the token acts for the user who authorized, not the client owner
	claims := parseClaims(t, response["access_token"].(string))
	assert.Equal(t, "peach", claims["username"])

	// codes are single use
	w = postToken(router, form)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthorizeRejectsForeignRedirect(t *testing.T) {
	db := setupTestDB(t)
	oauthService := NewOAuthService(db, testSecret)
	owner := createUser(t, db, "peach", models.RoleUser)
	createClient(t, db, "web_app", "web_secret", owner)

	req := httptest.NewRequest(http.MethodGet, "/oauth/authorize?client_id=web_app&redirect_uri=http://evil.example/cb", nil)
	w := httptest.NewRecorder()
	tokenRouter(oauthService, owner.ID).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
