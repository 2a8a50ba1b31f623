package expense

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/publibudget/go-commitment-engine/internal/common/http"
	"github.com/publibudget/go-commitment-engine/internal/common/validation"
	"github.com/publibudget/go-commitment-engine/internal/models"
	"github.com/publibudget/go-commitment-engine/internal/services"
)

type expenseHandler struct {
	expenseSvc services.ExpenseService
}

// New expense handler will initialize the expenses/ resources endpoint
func New(app *echo.Group, expenseSvc services.ExpenseService) {
	handler := expenseHandler{
		expenseSvc: expenseSvc,
	}
	api := app.Group("/expenses")
	api.POST("", handler.createExpense)
	api.POST("/:id/validate", handler.validateExpense)
	api.POST("/:id/ordonnance", handler.ordonnanceExpense)
	api.POST("/:id/cancel", handler.cancelExpense)
}

func (h *expenseHandler) createExpense(c echo.Context) error {
	req := new(models.CreateExpenseReq)

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

	res, err := h.expenseSvc.Create(c.Request().Context(), in)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, res.ToDocumentOut())
}

func (h *expenseHandler) validateExpense(c echo.Context) error {
	res, err := h.expenseSvc.Validate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToDocumentOut())
}

func (h *expenseHandler) ordonnanceExpense(c echo.Context) error {
	res, err := h.expenseSvc.Ordonnance(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToDocumentOut())
}

func (h *expenseHandler) cancelExpense(c echo.Context) error {
	res, err := h.expenseSvc.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToDocumentOut())
}
