package controllers

import (
	"emission-service/internal/app/contracts"
	"emission-service/internal/pkg/constvars"
	"emission-service/internal/pkg/dto/responses"
	"emission-service/internal/pkg/exceptions"
	"emission-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type StatsController struct {
	Log              *zap.Logger
	StatsUsecase     contracts.StatsUsecase
	DashboardUsecase contracts.DashboardUsecase
}

func NewStatsController(logger *zap.Logger, statsUsecase contracts.StatsUsecase, dashboardUsecase contracts.DashboardUsecase) *StatsController {
	return &StatsController{
		Log:              logger,
		StatsUsecase:     statsUsecase,
		DashboardUsecase: dashboardUsecase,
	}
}

func (ctrl *StatsController) GetStats(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StatsGetSuccess, buildStats(r, ctrl.StatsUsecase))
}

func (ctrl *StatsController) GetWeekSeries(w http.ResponseWriter, r *http.Request) {
	series := ctrl.StatsUsecase.GetWeekSeries(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WeekSeriesGetSuccess, utils.ConvertWeekSeriesToResponse(series))
}

func (ctrl *StatsController) GetMonthBuckets(w http.ResponseWriter, r *http.Request) {
	summary := ctrl.StatsUsecase.GetMonthSummary(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MonthBucketGetSuccess, utils.ConvertMonthSummaryToResponse(summary))
}

func (ctrl *StatsController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSession(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	dashboard := ctrl.DashboardUsecase.GetDashboard(r.Context(), session)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardGetSuccess, utils.ConvertDashboardToResponse(dashboard))
}

func buildStats(r *http.Request, statsUsecase contracts.StatsUsecase) responses.Stats {
	return utils.ConvertStatsToResponse(statsUsecase.GetStats(r.Context()))
}
