package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Ahmad-Raza810/blog-application/internal/apperrors"
	"github.com/Ahmad-Raza810/blog-application/pkg/utils"
)

// respondError maps a service error onto its HTTP status. Every typed
// failure keeps its own message; anything unrecognized is an internal
// error and its detail stays out of the response.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCursor),
		errors.Is(err, apperrors.ErrPostHasComments):
		utils.SendErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrBadCredentials),
		errors.Is(err, apperrors.ErrRefreshTokenInvalid),
		errors.Is(err, apperrors.ErrRefreshTokenExpired),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenMalformed):
		utils.SendErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperrors.ErrNotAllowedOperation):
		utils.SendErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, apperrors.ErrResourceNotFound):
		utils.SendErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrEmailTaken),
		errors.Is(err, apperrors.ErrResourceExists):
		utils.SendErrorResponse(c, http.StatusConflict, err.Error())
	default:
		logrus.Errorf("Unhandled error: %v", err)
		utils.SendErrorResponse(c, http.StatusInternalServerError, "Something went wrong.")
	}
}
