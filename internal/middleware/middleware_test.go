package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("middleware-test-secret")

func signToken(t *testing.T, method jwt.SigningMethod, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func validClaims(role string) jwt.MapClaims {
	return jwt.MapClaims{
		"uid":      "2",
		"username": "mario",
		"role":     role,
		"exp":      time.Now().Add(time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}
}

func protectedRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	chain := append([]gin.HandlerFunc{OAuth2Auth(testSecret)}, handlers...)
	chain = append(chain, func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": identity.Username, "role": identity.Role, "uid": identity.UserID, "client": c.GetString(ContextClientID)})
	})
	router.GET("/protected", chain...)
	return router
}

func doRequest(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestOAuth2AuthAcceptsValidTokens(t *testing.T) {
	router := protectedRouter()

	w := doRequest(router, "Bearer "+signToken(t, jwt.SigningMethodHS256, testSecret, validClaims(models.RoleUser)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"username":"mario","role":"user","uid":2,"client":""}`, w.Body.String())

	// OAuth2 access tokens are HS512 and carry the client id as audience
	claims := validClaims(models.RoleAdmin)
	claims["aud"] = "dev-client"
	claims["uid"] = float64(2)
	w = doRequest(router, "Bearer "+signToken(t, jwt.SigningMethodHS512, testSecret, claims))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"username":"mario","role":"admin","uid":2,"client":"dev-client"}`, w.Body.String())
}

func TestOAuth2AuthRejectsBadTokens(t *testing.T) {
	router := protectedRouter()

	expired := validClaims(models.RoleUser)
	expired["exp"] = time.Now().Add(-time.Minute).Unix()
	noUsername := validClaims(models.RoleUser)
	delete(noUsername, "username")
	noUID := validClaims(models.RoleUser)
	delete(noUID, "uid")
	badRole := validClaims("superuser")
	future := validClaims(models.RoleUser)
	future["iat"] = time.Now().Add(time.Hour).Unix()

	testCases := []struct {
		name          string
		authorization string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"empty token", "Bearer "},
		{"garbage", "Bearer not-a-jwt"},
		{"wrong secret", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims(models.RoleUser))},
		{"expired", "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, expired)},
		{"missing username", "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, noUsername)},
		{"missing uid", "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, noUID)},
		{"unknown role", "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, badRole)},
		{"issued in the future", "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, future)},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.authorization)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "error_description")
		})
	}
}

func TestRequireRole(t *testing.T) {
	router := protectedRouter(RequireRole(models.RoleAdmin))

	w := doRequest(router, "Bearer "+signToken(t, jwt.SigningMethodHS256, testSecret, validClaims(models.RoleUser)))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), models.ErrForbidden)

	w = doRequest(router, "Bearer "+signToken(t, jwt.SigningMethodHS256, testSecret, validClaims(models.RoleAdmin)))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleWithoutIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", RequireRole(models.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	requestID := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, requestID)
	assert.Contains(t, buf.String(), requestID)
	assert.Contains(t, buf.String(), `"status":204`)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get(RequestIDHeader))
}
