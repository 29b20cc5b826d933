package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/cardform/internal/api"
	"github.com/DanielPopoola/cardform/internal/application"
)

// BuildErrorResponse maps an application error to its status and body.
func BuildErrorResponse(err error) (int, api.ErrorResponse) {
	return application.ToHTTPStatus(err), api.ErrorResponse{
		Success: false,
		Error: api.ErrorDetail{
			Code:    application.ToErrorCode(err),
			Message: err.Error(),
		},
	}
}

// WriteError maps application errors to HTTP responses
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode, response := BuildErrorResponse(err)

	if statusCode >= http.StatusInternalServerError && logger != nil {
		logger.Error("request failed",
			"error", err,
			"code", response.Error.Code,
			"category", application.CategorizeError(err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}
