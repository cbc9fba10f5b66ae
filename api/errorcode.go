package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/covid19-estimator-api/estimator"
	"github.com/bitmark-inc/covid19-estimator-api/utils"
)

var (
	errorMessageMap = map[int64]string{
		1010: "invalid parameters",
		1011: "cannot parse request",

		1020: estimator.ErrInvalidTimeToElapse.Error(),
		1021: estimator.ErrNegativeReportedCases.Error(),
		1022: estimator.ErrNegativeHospitalBeds.Error(),
		1023: estimator.ErrInvalidIncomePopulation.Error(),
		1024: estimator.ErrNegativeIncome.Error(),
		1025: estimator.ErrProjectionOverflow.Error(),
	}

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorInvalidTimeToElapse     = errorJSON(1020)
	errorNegativeReportedCases   = errorJSON(1021)
	errorNegativeHospitalBeds    = errorJSON(1022)
	errorInvalidIncomePopulation = errorJSON(1023)
	errorNegativeIncome          = errorJSON(1024)
	errorProjectionOverflow      = errorJSON(1025)

	validationErrors = map[error]ErrorResponse{
		estimator.ErrInvalidTimeToElapse:     errorInvalidTimeToElapse,
		estimator.ErrNegativeReportedCases:   errorNegativeReportedCases,
		estimator.ErrNegativeHospitalBeds:    errorNegativeHospitalBeds,
		estimator.ErrInvalidIncomePopulation: errorInvalidIncomePopulation,
		estimator.ErrNegativeIncome:          errorNegativeIncome,
		estimator.ErrProjectionOverflow:      errorProjectionOverflow,
	}
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// validationError maps an estimator validation error to its response
func validationError(err error) ErrorResponse {
	if resp, ok := validationErrors[err]; ok {
		return resp
	}
	return errorInvalidParameters
}

// localized translates the message of the error into the language of the request
func localized(c *gin.Context, obj ErrorResponse) ErrorResponse {
	obj.Message = utils.Localize(c.GetHeader("Accept-Language"), "error_"+strconv.FormatInt(obj.Code, 10), obj.Message)
	return obj
}
