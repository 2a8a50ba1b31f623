package invoice

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/publibudget/go-commitment-engine/internal/common/http"
	"github.com/publibudget/go-commitment-engine/internal/common/validation"
	"github.com/publibudget/go-commitment-engine/internal/models"
	"github.com/publibudget/go-commitment-engine/internal/services"
)

type invoiceHandler struct {
	invoiceSvc services.InvoiceService
}

// New invoice handler will initialize the invoices/ resources endpoint
func New(app *echo.Group, invoiceSvc services.InvoiceService) {
	handler := invoiceHandler{
		invoiceSvc: invoiceSvc,
	}
	api := app.Group("/invoices")
	api.POST("", handler.createInvoice)
	api.POST("/:id/validate", handler.validateInvoice)
	api.POST("/:id/cancel", handler.cancelInvoice)
}

func (h *invoiceHandler) createInvoice(c echo.Context) error {
	req := new(models.CreateInvoiceReq)

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

	res, err := h.invoiceSvc.Create(c.Request().Context(), in)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, res.ToDocumentOut())
}

func (h *invoiceHandler) validateInvoice(c echo.Context) error {
	res, err := h.invoiceSvc.Validate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToDocumentOut())
}

func (h *invoiceHandler) cancelInvoice(c echo.Context) error {
	res, err := h.invoiceSvc.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToDocumentOut())
}
