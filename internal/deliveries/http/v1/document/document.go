package document

import (
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/publibudget/go-commitment-engine/internal/common/http"
	"github.com/publibudget/go-commitment-engine/internal/models"
	"github.com/publibudget/go-commitment-engine/internal/services"
)

type documentHandler struct {
	documentSvc services.DocumentService
}

// New document handler will initialize the documents/ resources endpoint
func New(app *echo.Group, documentSvc services.DocumentService) {
	handler := documentHandler{
		documentSvc: documentSvc,
	}
	api := app.Group("/documents")
	api.GET("", handler.listDocuments)
	api.GET("/:id", handler.getDocument)
	api.GET("/:id/postings", handler.listDocumentPostings)
}

func (h *documentHandler) getDocument(c echo.Context) error {
	res, err := h.documentSvc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, res.ToDocumentOut())
}

func (h *documentHandler) listDocuments(c echo.Context) error {
	opts := models.DocumentFilterOptions{
		Kind:         models.OperationType(c.QueryParam("kind")),
		BudgetLineID: c.QueryParam("budgetLineId"),
		Statut:       c.QueryParam("statut"),
		SourceID:     c.QueryParam("sourceId"),
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}
		opts.Limit = limit
	}

	res, err := h.documentSvc.List(c.Request().Context(), opts)
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	data := make([]models.DocumentOut, 0, len(res))
	for i := range res {
		data = append(data, res[i].ToDocumentOut())
	}

	return http.RestSuccessResponseListWithTotalRows(c, data, len(data))
}

func (h *documentHandler) listDocumentPostings(c echo.Context) error {
	res, err := h.documentSvc.ListPostings(c.Request().Context(), c.Param("id"))
	if err != nil {
		return http.RestErrorResponse(c, http.StatusCodeFromError(err), err)
	}

	data := make([]models.JournalPostingOut, 0, len(res))
	for _, p := range res {
		data = append(data, p.ToPostingOut())
	}

	return http.RestSuccessResponseListWithTotalRows(c, data, len(data))
}
