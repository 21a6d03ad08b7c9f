package controller

import (
	"errors"
	"net/http"

	"edu_assessment_backend/internal/util"
	"edu_assessment_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Validation and not-found outcomes go back as-is; storage failures are
// logged with their cause and surfaced as a generic internal error.
func respondServiceError(c *gin.Context, err error) {
	var invalidErr *util.InvalidInputError
	var notFoundErr *util.NotFoundError
	var repoErr *util.RepositoryError

	switch {
	case errors.As(err, &invalidErr):
		util.ValidationFailed(c, invalidErr.Field, invalidErr.Rule, invalidErr.Detail)
	case errors.As(err, &notFoundErr):
		util.Fail(c, http.StatusNotFound, "NOT_FOUND", notFoundErr.Error())
	case errors.As(err, &repoErr):
		logger.Log.Error("storage failure",
			zap.String("lookup", repoErr.Lookup),
			zap.Error(repoErr.Err),
		)
		util.Fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	default:
		logger.Log.Error("unexpected failure", zap.Error(err))
		util.Fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
