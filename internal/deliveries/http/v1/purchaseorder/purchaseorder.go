package purchaseorder

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/publibudget/go-commitment-engine/internal/common/http"
	"github.com/publibudget/go-commitment-engine/internal/common/validation"
	"github.com/publibudget/go-commitment-engine/internal/models"
	"github.com/publibudget/go-commitment-engine/internal/services"
)

type purchaseOrderHandler struct {
	purchaseOrderSvc services.PurchaseOrderService
}

// New purchase order handler will initialize the purchase-orders/ resources endpoint
func New(app *echo.Group, purchaseOrderSvc services.PurchaseOrderService) {
	handler := purchaseOrderHandler{
		purchaseOrderSvc: purchaseOrderSvc,
	}
	api := app.Group("/purchase-orders")
	api.POST("", handler.createPurchaseOrder)
	api.POST("/:id/validate", handler.validatePurchaseOrder)
	api.POST("/:id/receive", handler.receivePurchaseOrder)
	api.POST("/:id/cancel", handler.cancelPurchaseOrder)
}

func (h *purchaseOrderHandler) createPurchaseOrder(c echo.Context) error {
	req := new(models.CreatePurchaseOrderReq)

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

	res, err := h.purchaseOrderSvc.Create(c.Request().Context(), in)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, res.ToDocumentOut())
}

func (h *purchaseOrderHandler) validatePurchaseOrder(c echo.Context) error {
	res, err := h.purchaseOrderSvc.Validate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToDocumentOut())
}

func (h *purchaseOrderHandler) receivePurchaseOrder(c echo.Context) error {
	res, err := h.purchaseOrderSvc.Receive(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToDocumentOut())
}

func (h *purchaseOrderHandler) cancelPurchaseOrder(c echo.Context) error {
	res, err := h.purchaseOrderSvc.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToDocumentOut())
}
