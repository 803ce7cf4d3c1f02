package dashboard

import (
	"context"
	"mediboard-service/internal/app/config"
	"mediboard-service/internal/pkg/constvars"
	"mediboard-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	DashboardUsecase DashboardUsecase
	RequestTimeout   time.Duration
}

func NewDashboardController(logger *zap.Logger, dashboardUsecase DashboardUsecase, internalConfig *config.InternalConfig) *DashboardController {
	return &DashboardController{
		Log:              logger,
		DashboardUsecase: dashboardUsecase,
		RequestTimeout:   time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second,
	}
}

func (ctrl *DashboardController) Summary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	summary, err := ctrl.DashboardUsecase.Summary(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardFetchSuccess, summary)
}
