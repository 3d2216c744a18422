package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	govalidator "github.com/go-playground/validator/v10"

	"github.com/tuanvumaihuynh/product-catalog/internal/http/gen"
	"github.com/tuanvumaihuynh/product-catalog/pkg/validator"
	"github.com/tuanvumaihuynh/product-catalog/pkg/zerror"
)

// ErrorResponse is the error body returned by every product endpoint.
type ErrorResponse struct {
	gen.ErrorResponse

	// StatusCode is the HTTP status written alongside the body.
	StatusCode int `json:"-"`
}

const (
	validationErrorCode     = "validationError"
	invalidParameterCode    = "invalidParameter"
	internalServerErrorCode = "internalServerError"
)

var InternalServerErr = ErrorResponse{
	ErrorResponse: gen.ErrorResponse{
		Code:    internalServerErrorCode,
		Message: "an unknown error occurred",
	},
	StatusCode: http.StatusInternalServerError,
}

// New classifies err into an ErrorResponse. Errors that are not known to the
// API are reported as InternalServerErr so no internals leak to the client.
func New(err error) ErrorResponse {
	var zErr zerror.ZError
	if errors.As(err, &zErr) {
		return ErrorResponse{
			ErrorResponse: gen.ErrorResponse{
				Code:    zErr.Code(),
				Message: zErr.Msg(),
			},
			StatusCode: ZErrorStatusToHTTPStatus(zErr.Status()),
		}
	}

	var validationErrs govalidator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return fromValidationErrors(validationErrs)
	}

	if isParamBindingErr(err) {
		return ErrorResponse{
			ErrorResponse: gen.ErrorResponse{
				Code:    invalidParameterCode,
				Message: err.Error(),
			},
			StatusCode: http.StatusBadRequest,
		}
	}

	return InternalServerErr
}

// Write writes the response as JSON with its status code.
func (e ErrorResponse) Write(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	return json.NewEncoder(w).Encode(e)
}

func fromValidationErrors(errs govalidator.ValidationErrors) ErrorResponse {
	details := make([]gen.FieldError, len(errs))
	for i, fe := range errs {
		details[i] = gen.FieldError{
			Field:   fe.Field(),
			Message: validator.ValidationErrorMessage(fe),
		}
	}

	return ErrorResponse{
		ErrorResponse: gen.ErrorResponse{
			Code:    validationErrorCode,
			Message: "validation error",
			Details: &details,
		},
		StatusCode: http.StatusBadRequest,
	}
}

var zerrorHTTPStatus = map[zerror.Status]int{
	zerror.StatusBadRequest:          http.StatusBadRequest,
	zerror.StatusValidationFailed:    http.StatusBadRequest,
	zerror.StatusUnauthorized:        http.StatusUnauthorized,
	zerror.StatusForbidden:           http.StatusForbidden,
	zerror.StatusNotFound:            http.StatusNotFound,
	zerror.StatusConflict:            http.StatusConflict,
	zerror.StatusUnprocessableEntity: http.StatusUnprocessableEntity,
	zerror.StatusTooManyRequests:     http.StatusTooManyRequests,
	zerror.StatusNotImplemented:      http.StatusNotImplemented,
	zerror.StatusBadGateway:          http.StatusBadGateway,
	zerror.StatusServiceUnavailable:  http.StatusServiceUnavailable,
	zerror.StatusTimeout:             http.StatusGatewayTimeout,
}

// ZErrorStatusToHTTPStatus maps a zerror status to its HTTP status.
// Unknown statuses map to 500.
func ZErrorStatusToHTTPStatus(status zerror.Status) int {
	if code, ok := zerrorHTTPStatus[status]; ok {
		return code
	}
	return http.StatusInternalServerError
}

func isParamBindingErr(err error) bool {
	var (
		e1 *gen.UnescapedCookieParamError
		e2 *gen.UnmarshalingParamError
		e3 *gen.RequiredParamError
		e4 *gen.RequiredHeaderError
		e5 *gen.InvalidParamFormatError
		e6 *gen.TooManyValuesForParamError
	)

	return errors.As(err, &e1) ||
		errors.As(err, &e2) ||
		errors.As(err, &e3) ||
		errors.As(err, &e4) ||
		errors.As(err, &e5) ||
		errors.As(err, &e6)
}
