package resources

import (
	"context"
	"fmt"
	"mediboard-service/internal/app/config"
	"mediboard-service/internal/pkg/constvars"
	"mediboard-service/internal/pkg/dto/requests"
	"mediboard-service/internal/pkg/exceptions"
	"mediboard-service/internal/pkg/hms_dto"
	"mediboard-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type Controller[T hms_dto.Record] struct {
	Log            *zap.Logger
	Usecase        Usecase[T]
	RequestTimeout time.Duration
}

func NewController[T hms_dto.Record](logger *zap.Logger, usecase Usecase[T], internalConfig *config.InternalConfig) *Controller[T] {
	return &Controller[T]{
		Log:            logger,
		Usecase:        usecase,
		RequestTimeout: time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second,
	}
}

func (ctrl *Controller[T]) List(w http.ResponseWriter, r *http.Request) {
	query := requests.ListQuery{
		Search:    r.URL.Query().Get(constvars.QueryParamSearch),
		SortField: r.URL.Query().Get(constvars.QueryParamSort),
		SortOrder: r.URL.Query().Get(constvars.QueryParamOrder),
		Filters:   map[string]string{},
	}
	for _, field := range ctrl.Usecase.Descriptor().FilterFields {
		if value := r.URL.Query().Get(field); value != "" {
			query.Filters[field] = value
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	list, err := ctrl.Usecase.List(ctx, query)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := list.EmptyMessage
	if message == "" {
		message = fmt.Sprintf(constvars.ListFetchedSuccess, ctrl.Usecase.Descriptor().Name)
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, list)
}

func (ctrl *Controller[T]) Create(w http.ResponseWriter, r *http.Request) {
	draft := map[string]interface{}{}
	err := json.NewDecoder(r.Body).Decode(&draft)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	record, notification, err := ctrl.Usecase.Create(ctx, draft)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithNotification(w, constvars.StatusCreated, notification, record)
}

func (ctrl *Controller[T]) Update(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, constvars.URLParamRecordID)

	draft := map[string]interface{}{}
	err := json.NewDecoder(r.Body).Decode(&draft)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	record, notification, err := ctrl.Usecase.Update(ctx, recordID, draft)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithNotification(w, constvars.StatusOK, notification, record)
}

func (ctrl *Controller[T]) Delete(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, constvars.URLParamRecordID)
	confirmed := r.URL.Query().Get(constvars.QueryParamConfirm) == "true"

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	notification, err := ctrl.Usecase.Delete(ctx, recordID, confirmed)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithNotification(w, constvars.StatusOK, notification, nil)
}
