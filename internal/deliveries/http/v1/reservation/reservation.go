package reservation

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/publibudget/go-commitment-engine/internal/common/http"
	"github.com/publibudget/go-commitment-engine/internal/common/validation"
	"github.com/publibudget/go-commitment-engine/internal/models"
	"github.com/publibudget/go-commitment-engine/internal/services"
)

type reservationHandler struct {
	reservationSvc services.ReservationService
}

// New reservation handler will initialize the reservations/ resources endpoint
func New(app *echo.Group, reservationSvc services.ReservationService) {
	handler := reservationHandler{
		reservationSvc: reservationSvc,
	}
	api := app.Group("/reservations")
	api.POST("", handler.createReservation)
	api.POST("/:id/cancel", handler.cancelReservation)
}

func (h *reservationHandler) createReservation(c echo.Context) error {
	req := new(models.CreateReservationReq)

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

	res, err := h.reservationSvc.Create(c.Request().Context(), in)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, res.ToDocumentOut())
}

func (h *reservationHandler) cancelReservation(c echo.Context) error {
	res, err := h.reservationSvc.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToDocumentOut())
}
