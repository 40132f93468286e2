package controller

import (
	"errors"
	"net/http"

	"workload_survey/internal/scoring"
	"workload_survey/internal/service"
	"workload_survey/internal/survey"
	"workload_survey/internal/util"
	"workload_survey/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps domain errors onto the response envelope.
func respondError(c *gin.Context, err error) {
	var incomplete *survey.StepIncompleteError
	switch {
	case errors.As(err, &incomplete):
		missing := incomplete.Missing
		if missing == nil {
			missing = []string{}
		}
		util.ErrorWithData(c, http.StatusUnprocessableEntity, err.Error(), gin.H{
			"step":    incomplete.Step,
			"missing": missing,
		})
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrSectionNotFound):
		util.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, survey.ErrPersonnelNotFound):
		util.Error(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, survey.ErrSessionClosed):
		util.Error(c, http.StatusConflict, err.Error())
	case errors.Is(err, survey.ErrInvalidRating),
		errors.Is(err, survey.ErrUnknownItem),
		errors.Is(err, service.ErrInvalidWeight),
		errors.Is(err, service.ErrUnknownExport),
		errors.Is(err, util.ErrEmptyRoster),
		errors.Is(err, util.ErrEmptyWeights):
		util.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrInvalidPassword):
		util.Error(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, scoring.ErrMissingRating):
		logger.Log.Error("Scoring reached an incomplete response", zap.Error(err))
		util.InternalServerError(c)
	default:
		util.LogInternalError(c, err)
	}
}
