// Package controller holds the gin handlers. Handlers translate HTTP to
// service calls and map the apperr taxonomy back to statuses; no business
// rules live here.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ndthang/interntrack/internal/apperr"
	"github.com/ndthang/interntrack/internal/dto"
)

func respondError(ctx *gin.Context, err error) {
	ctx.JSON(httpStatus(err), dto.ErrorResponse{Error: err.Error()})
}

func httpStatus(err error) int {
	switch {
	case errors.Is(err, apperr.ErrAuthRequired):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrInvalidAnswer):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperr.ErrDuplicateAnswer):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrSessionNotFound), errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
