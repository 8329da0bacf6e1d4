package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Keys under which OAuth2Auth stores the caller in the gin context
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextUserRole = "userRole"
	ContextClientID = "clientID"
)

// login tokens are HS256, OAuth2 access tokens HS512
var acceptedMethods = []string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS512.Alg()}

// OAuth2Auth validates the bearer token (RFC 6750) and stores the caller identity
// in the gin context. Both login tokens and OAuth2 access tokens are accepted.
func OAuth2Auth(jwtSecret []byte) gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods(acceptedMethods), jwt.WithIssuedAt())

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respondWithOAuth2Error(c, "authorization_required",
				"Missing Authorization header. A valid Bearer token is required.")
			return
		}
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			respondWithOAuth2Error(c, "invalid_request",
				"Authorization header must use Bearer scheme. Format: 'Bearer <token>'")
			return
		}
		if tokenString == "" {
			respondWithOAuth2Error(c, "invalid_token", "Bearer token is empty")
			return
		}

		claims := jwt.MapClaims{}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
			return jwtSecret, nil
		}); err != nil {
			respondWithOAuth2Error(c, "invalid_token", describeTokenError(err))
			return
		}

		identity, err := identityFromClaims(claims)
		if err != nil {
			respondWithOAuth2Error(c, "invalid_token", err.Error())
			return
		}

		c.Set(ContextUserID, identity.UserID)
		c.Set(ContextUsername, identity.Username)
		c.Set(ContextUserRole, identity.Role)
		// OAuth2 access tokens name the issuing client as audience
		if aud, err := claims.GetAudience(); err == nil && len(aud) > 0 && aud[0] != "" {
			c.Set(ContextClientID, aud[0])
		}

		c.Next()
	}
}

// CurrentIdentity returns the authenticated caller stored by OAuth2Auth
func CurrentIdentity(c *gin.Context) (models.Identity, bool) {
	username := c.GetString(ContextUsername)
	if username == "" {
		return models.Identity{}, false
	}
	return models.Identity{
		UserID:   c.GetUint(ContextUserID),
		Username: username,
		Role:     c.GetString(ContextUserRole),
	}, true
}

func respondWithOAuth2Error(c *gin.Context, errorCode, description string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":             errorCode,
		"error_description": description,
	})
}

func describeTokenError(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token has expired"
	case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return "token not yet valid"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "token signature is invalid"
	default:
		return fmt.Sprintf("token parsing failed: %v", err)
	}
}

// identityFromClaims requires uid, username and a known role; no defaults are applied
func identityFromClaims(claims jwt.MapClaims) (models.Identity, error) {
	userID, err := userIDClaim(claims)
	if err != nil {
		return models.Identity{}, err
	}

	username, _ := claims["username"].(string)
	if username == "" {
		return models.Identity{}, fmt.Errorf("token missing required 'username' claim")
	}

	role, _ := claims["role"].(string)
	switch role {
	case models.RoleAdmin, models.RoleUser:
	case "":
		return models.Identity{}, fmt.Errorf("token missing required 'role' claim")
	default:
		return models.Identity{}, fmt.Errorf("invalid role '%s'. Allowed roles: admin, user", role)
	}

	return models.Identity{UserID: userID, Username: username, Role: role}, nil
}

// userIDClaim reads "uid" as a numeric string or a JSON number
func userIDClaim(claims jwt.MapClaims) (uint, error) {
	switch uid := claims["uid"].(type) {
	case string:
		parsed, err := strconv.ParseUint(uid, 10, 32)
		if err != nil || parsed == 0 {
			return 0, fmt.Errorf("invalid uid claim '%s'", uid)
		}
		return uint(parsed), nil
	case float64:
		if uid < 1 {
			return 0, fmt.Errorf("invalid uid claim: must be positive, got %v", uid)
		}
		return uint(uid), nil
	default:
		return 0, fmt.Errorf("token missing required 'uid' claim")
	}
}
