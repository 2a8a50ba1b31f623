package http

import (
	"errors"
	"net/http"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"

	"github.com/publibudget/go-commitment-engine/internal/common/validation"
)

type (
	RestErrorResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Code    interface{} `json:"code"`
		Message string      `json:"message" example:"error"`
	}

	RestTotalRowResponseModel struct {
		Kind      string      `json:"kind" example:"collection"`
		Contents  interface{} `json:"contents"`
		TotalRows int         `json:"total_rows" example:"100"`
	}

	RestErrorValidationResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Message string      `json:"message" example:"validation error"`
		Errors  interface{} `json:"errors"`
	}
)

func RestSuccessResponse(c echo.Context, code int, in interface{}) error {
	return c.JSON(code, in)
}

func RestSuccessResponseListWithTotalRows(c echo.Context, data interface{}, totalRows int) error {
	return c.JSON(http.StatusOK, RestTotalRowResponseModel{
		Kind:      "collection",
		Contents:  data,
		TotalRows: totalRows,
	})
}

func RestErrorResponse(c echo.Context, code int, err error) error {
	return c.JSON(code, RestErrorResponseModel{
		Status:  "error",
		Code:    code,
		Message: err.Error(),
	})
}

func RestErrorValidationResponse(c echo.Context, err error) error {
	var details []validation.ErrorValidateResponse

	var merr *multierror.Error
	if errors.As(err, &merr) {
		for _, e := range merr.Errors {
			var ev validation.ErrorValidateResponse
			if errors.As(e, &ev) {
				details = append(details, ev)
				continue
			}
			details = append(details, validation.ErrorValidateResponse{Message: e.Error()})
		}
	} else {
		details = append(details, validation.ErrorValidateResponse{Message: err.Error()})
	}

	return c.JSON(http.StatusUnprocessableEntity, RestErrorValidationResponseModel{
		Status:  "error",
		Message: "validation error",
		Errors:  details,
	})
}
