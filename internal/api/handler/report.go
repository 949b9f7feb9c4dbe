package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"

	"github.com/socialpulse/follower-report-api/internal/config"
	"github.com/socialpulse/follower-report-api/internal/usecases/reporting"
	"github.com/socialpulse/follower-report-api/pkg/apiErrors"
	"github.com/socialpulse/follower-report-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetFollowerReport serves the full follower growth report, recomputed from
// the spreadsheet on every request.
func GetFollowerReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, err := service.GetFollowerReport(r.Context())
		if err != nil {
			logger.WithError(err).Error("report: failed to build follower report")
			apiErrors.WriteError(w, errorCode(err), apiErrors.FetchFailedMessage, err.Error())
			return
		}

		logger.WithFields(log.Fields{
			"employees":      len(report.Employees),
			"business_lines": len(report.BusinessLines),
		}).Info("report: follower report generated")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("report: failed to encode response")
		}
	})
}

// errorCode picks ENV_VARS_MISSING for configuration failures, the
// provider-supplied reason when the Sheets API answered with one, and
// INTERNAL_ERROR otherwise.
func errorCode(err error) string {
	var missing *config.MissingEnvError
	if errors.As(err, &missing) {
		return apiErrors.ErrEnvVarsMissing
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && len(apiErr.Errors) > 0 && apiErr.Errors[0].Reason != "" {
		return apiErr.Errors[0].Reason
	}

	return apiErrors.ErrInternal
}
