package controllers

import (
	"context"
	"emission-service/internal/pkg/exceptions"
	"emission-service/internal/pkg/utils"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

// buildErrorResponse maps a usecase error to the JSON error envelope, turning
// an expired request deadline into a 504.
func buildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
