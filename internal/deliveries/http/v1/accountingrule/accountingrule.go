package accountingrule

import (
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/publibudget/go-commitment-engine/internal/common/http"
	"github.com/publibudget/go-commitment-engine/internal/common/validation"
	"github.com/publibudget/go-commitment-engine/internal/models"
	"github.com/publibudget/go-commitment-engine/internal/services"
)

type ruleHandler struct {
	ruleSvc services.AccountingRuleService
}

// New accounting rule handler will initialize the accounting-rules/ resources endpoint
func New(app *echo.Group, ruleSvc services.AccountingRuleService) {
	handler := ruleHandler{
		ruleSvc: ruleSvc,
	}
	api := app.Group("/accounting-rules")
	api.POST("", handler.createRule)
	api.GET("", handler.listRules)
	api.GET("/:id", handler.getRule)
	api.PUT("/:id", handler.updateRule)
	api.PATCH("/:id/active", handler.setRuleActive)
}

func (h *ruleHandler) createRule(c echo.Context) error {
	req := new(models.CreateAccountingRuleReq)

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

	res, err := h.ruleSvc.Create(c.Request().Context(), in)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, res)
}

func (h *ruleHandler) getRule(c echo.Context) error {
	res, err := h.ruleSvc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *ruleHandler) listRules(c echo.Context) error {
	opts := models.RuleFilterOptions{
		TypeOperation: models.OperationType(c.QueryParam("typeOperation")),
		ActiveOnly:    c.QueryParam("activeOnly") == "true",
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}
		opts.Limit = limit
	}

	res, err := h.ruleSvc.List(c.Request().Context(), opts)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponseListWithTotalRows(c, res, len(res))
}

func (h *ruleHandler) updateRule(c echo.Context) error {
	req := new(models.CreateAccountingRuleReq)

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

	res, err := h.ruleSvc.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res)
}

func (h *ruleHandler) setRuleActive(c echo.Context) error {
	req := new(models.SetRuleActiveReq)

	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	if err := h.ruleSvc.SetActive(c.Request().Context(), c.Param("id"), *req.Actif); err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return c.NoContent(nethttp.StatusNoContent)
}
