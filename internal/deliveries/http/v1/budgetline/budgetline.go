package budgetline

import (
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/publibudget/go-commitment-engine/internal/common"
	"github.com/publibudget/go-commitment-engine/internal/common/http"
	"github.com/publibudget/go-commitment-engine/internal/common/validation"
	"github.com/publibudget/go-commitment-engine/internal/models"
	"github.com/publibudget/go-commitment-engine/internal/services"
)

type budgetLineHandler struct {
	budgetLineSvc services.BudgetLineService
}

// New budget line handler will initialize the budget-lines/ resources endpoint
func New(app *echo.Group, budgetLineSvc services.BudgetLineService) {
	handler := budgetLineHandler{
		budgetLineSvc: budgetLineSvc,
	}
	api := app.Group("/budget-lines")
	api.POST("", handler.createBudgetLine)
	api.GET("", handler.listBudgetLines)
	api.GET("/:id", handler.getBudgetLine)
	api.PATCH("/:id", handler.amendBudgetLine)
}

func (h *budgetLineHandler) createBudgetLine(c echo.Context) error {
	req := new(models.CreateBudgetLineReq)

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

	res, err := h.budgetLineSvc.Create(c.Request().Context(), in)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, res)
}

func (h *budgetLineHandler) getBudgetLine(c echo.Context) error {
	res, err := h.budgetLineSvc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *budgetLineHandler) amendBudgetLine(c echo.Context) error {
	req := new(models.AmendBudgetLineReq)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	montantModifie, err := common.NewDecimalFromString(req.MontantModifie)
	if err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	res, err := h.budgetLineSvc.Amend(c.Request().Context(), c.Param("id"), *montantModifie)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *budgetLineHandler) listBudgetLines(c echo.Context) error {
	opts := models.BudgetLineFilterOptions{
		Code: c.QueryParam("code"),
	}

	if raw := c.QueryParam("exercice"); raw != "" {
		exercice, err := strconv.Atoi(raw)
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}
		opts.Exercice = exercice
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}
		opts.Limit = limit
	}

	res, err := h.budgetLineSvc.List(c.Request().Context(), opts)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponseListWithTotalRows(c, res, len(res))
}
