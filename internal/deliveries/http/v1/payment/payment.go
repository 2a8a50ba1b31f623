package payment

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/publibudget/go-commitment-engine/internal/common/http"
	"github.com/publibudget/go-commitment-engine/internal/common/validation"
	"github.com/publibudget/go-commitment-engine/internal/models"
	"github.com/publibudget/go-commitment-engine/internal/services"
)

type paymentHandler struct {
	paymentSvc services.PaymentService
}

// New payment handler will initialize the payments/ resources endpoint
func New(app *echo.Group, paymentSvc services.PaymentService) {
	handler := paymentHandler{
		paymentSvc: paymentSvc,
	}
	api := app.Group("/payments")
	api.POST("", handler.createPayment)
	api.POST("/:id/cancel", handler.cancelPayment)
}

func (h *paymentHandler) createPayment(c echo.Context) error {
	req := new(models.CreatePaymentReq)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	in, err := req.TransformAndValidate()
	if err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.paymentSvc.Create(c.Request().Context(), in)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, res.ToDocumentOut())
}

func (h *paymentHandler) cancelPayment(c echo.Context) error {
	res, err := h.paymentSvc.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToDocumentOut())
}
