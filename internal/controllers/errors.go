package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
}

// statusForKind is the single place where domain error kinds become HTTP status codes
func statusForKind(kind models.ErrorKind) (int, string) {
	switch kind {
	case models.KindNotFound:
		return http.StatusNotFound, models.ErrNotFound
	case models.KindValidation:
		return http.StatusBadRequest, models.ErrValidationFailed
	case models.KindPermission:
		return http.StatusForbidden, models.ErrForbidden
	case models.KindInvalidState:
		return http.StatusConflict, models.ErrOrderInvalidState
	case models.KindIntegrity:
		return http.StatusConflict, models.ErrConflict
	case models.KindUnauthorized:
		return http.StatusUnauthorized, models.ErrUnauthorized
	default:
		return http.StatusInternalServerError, models.ErrInternalServer
	}
}

// respondWithError writes the API error body matching err
func respondWithError(ctx *gin.Context, err error) {
	var domainErr *models.DomainError
	if errors.As(err, &domainErr) {
		status, code := statusForKind(domainErr.Kind)
		ctx.JSON(status, models.NewAPIError(code, domainErr.Message))
		return
	}

	log.WithFields(logrus.Fields{
		"path":  ctx.FullPath(),
		"error": err.Error(),
	}).Error("Unhandled error")
	ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Internal server error"))
}

func respondBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, message))
}

// parseIDParam reads the ":id" path parameter, answering 400 when it is not a positive integer
func parseIDParam(ctx *gin.Context, resource string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondBadRequest(ctx, fmt.Sprintf("Invalid %s ID format", resource))
		return 0, false
	}
	return uint(id), true
}

// parseLimit reads the optional "limit" query parameter; zero means the report default
func parseLimit(ctx *gin.Context) (int, bool) {
	raw := ctx.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		respondBadRequest(ctx, "limit must be a non-negative integer")
		return 0, false
	}
	return limit, true
}

// parseIDList converts a JSON array of ids decoded into a DTO value
func parseIDList(raw any, field string) ([]uint, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, models.NewValidationError(fmt.Sprintf("field '%s' must be an array of ids", field))
	}
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		id, err := models.ParseID(item)
		if err != nil {
			return nil, models.NewValidationError(fmt.Sprintf("field '%s' must contain non-negative integers", field))
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// stripKeys removes server-managed keys from client input
func stripKeys(dto models.DTO, keys ...string) {
	for _, key := range keys {
		delete(dto, key)
	}
}
