package engagement

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/publibudget/go-commitment-engine/internal/common/http"
	"github.com/publibudget/go-commitment-engine/internal/common/validation"
	"github.com/publibudget/go-commitment-engine/internal/models"
	"github.com/publibudget/go-commitment-engine/internal/services"
)

type engagementHandler struct {
	engagementSvc services.EngagementService
}

// New engagement handler will initialize the engagements/ resources endpoint
func New(app *echo.Group, engagementSvc services.EngagementService) {
	handler := engagementHandler{
		engagementSvc: engagementSvc,
	}
	api := app.Group("/engagements")
	api.POST("", handler.createEngagement)
	api.POST("/:id/validate", handler.validateEngagement)
	api.POST("/:id/cancel", handler.cancelEngagement)
}

func (h *engagementHandler) createEngagement(c echo.Context) error {
	req := new(models.CreateEngagementReq)

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

	res, err := h.engagementSvc.Create(c.Request().Context(), in)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, res.ToDocumentOut())
}

func (h *engagementHandler) validateEngagement(c echo.Context) error {
	res, err := h.engagementSvc.Validate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToDocumentOut())
}

func (h *engagementHandler) cancelEngagement(c echo.Context) error {
	res, err := h.engagementSvc.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToDocumentOut())
}
