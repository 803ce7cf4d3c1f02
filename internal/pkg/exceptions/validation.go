package exceptions

import (
	"fmt"
	"mediboard-service/internal/pkg/constvars"
)

var (
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrRequiredField = func(label string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, fmt.Sprintf("%s is required", label), fmt.Sprintf(constvars.ErrDevRequiredFieldMissing, label))
	}
	ErrFieldFormat = func(label string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, fmt.Sprintf("%s is not in a valid format", label), fmt.Sprintf(constvars.ErrDevFieldFormatInvalid, label))
	}
	ErrFieldOption = func(label string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, fmt.Sprintf("%s has an invalid value", label), fmt.Sprintf(constvars.ErrDevFieldOptionInvalid, label))
	}
	ErrDeleteNotConfirmed = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientDeleteNotConfirmed, constvars.ErrDevDeleteNotConfirmed)
	}
	ErrRecordNotFound = func(recordID, resource string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientRecordNotFound, fmt.Sprintf(constvars.ErrDevRecordNotFound, recordID, resource))
	}
	ErrWorkflowActionNotAllowed = func(action, status string, billed bool) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, fmt.Sprintf("action %q is not allowed while the lab test is in %q", action, status), fmt.Sprintf(constvars.ErrDevWorkflowActionNotAllowed, action, status, billed))
	}
	ErrUnknownWorkflowAction = func(action string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevUnknownWorkflowAction, action))
	}
	ErrUploadedFileTooLarge = func(maxSizeMB int64) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, fmt.Sprintf("uploaded file may not exceed %dMB", maxSizeMB), fmt.Sprintf(constvars.ErrDevUploadedFileTooLarge, maxSizeMB))
	}
)
