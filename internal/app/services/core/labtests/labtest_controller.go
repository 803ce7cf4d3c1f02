package labtests

import (
	"context"
	"mediboard-service/internal/app/config"
	"mediboard-service/internal/pkg/constvars"
	"mediboard-service/internal/pkg/dto/requests"
	"mediboard-service/internal/pkg/exceptions"
	"mediboard-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type LabTestController struct {
	Log            *zap.Logger
	LabTestUsecase LabTestUsecase
	RequestTimeout time.Duration
	BodyLimit      int64
}

func NewLabTestController(logger *zap.Logger, labTestUsecase LabTestUsecase, internalConfig *config.InternalConfig) *LabTestController {
	return &LabTestController{
		Log:            logger,
		LabTestUsecase: labTestUsecase,
		RequestTimeout: time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second,
		BodyLimit:      int64(internalConfig.App.RequestBodyLimitInMegabyte) << 20,
	}
}

func (ctrl *LabTestController) Actions(w http.ResponseWriter, r *http.Request) {
	labTestID := chi.URLParam(r, constvars.URLParamLabTestID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.LabTestUsecase.Actions(ctx, labTestID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, response)
}

func (ctrl *LabTestController) Transition(w http.ResponseWriter, r *http.Request) {
	labTestID := chi.URLParam(r, constvars.URLParamLabTestID)

	request := new(requests.LabTestTransitionRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, notification, err := ctrl.LabTestUsecase.Transition(ctx, labTestID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithNotification(w, constvars.StatusOK, notification, response)
}

func (ctrl *LabTestController) UploadReport(w http.ResponseWriter, r *http.Request) {
	labTestID := chi.URLParam(r, constvars.URLParamLabTestID)

	err := r.ParseMultipartForm(ctrl.BodyLimit)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	file, fileHeader, err := r.FormFile("report")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	response, notification, err := ctrl.LabTestUsecase.AttachReport(ctx, labTestID, file, fileHeader)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithNotification(w, constvars.StatusCreated, notification, response)
}
