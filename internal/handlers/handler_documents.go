package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/bizdocs_dashboard/internal/apperrors"
	portssvc "github.com/SscSPs/bizdocs_dashboard/internal/core/ports/services"
	"github.com/SscSPs/bizdocs_dashboard/internal/dto"
	"github.com/SscSPs/bizdocs_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

type documentHandler struct {
	documentService portssvc.DocumentSvc
	currencyService portssvc.CurrencyFormatterSvc
}

func registerDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvc, currencyService portssvc.CurrencyFormatterSvc) {
	h := &documentHandler{documentService: documentService, currencyService: currencyService}

	documents := rg.Group("/documents")
	{
		documents.GET("/recent", h.listRecent)
	}
}

// listRecent godoc
// @Summary Recent documents
// @Description Lists the user's newest documents with amounts formatted in their own currency
// @Tags documents
// @Produce json
// @Param limit query int false "Maximum number of documents" default(5) minimum(1) maximum(50)
// @Success 200 {object} dto.RecentDocumentsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to load documents"
// @Security BearerAuth
// @Router /documents/recent [get]
func (h *documentHandler) listRecent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
		return
	}

	var query dto.RecentDocumentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(bindingErrorMessage(err)))
		return
	}

	docs, err := h.documentService.ListRecentDocuments(c.Request.Context(), userID, query.Limit)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
			return
		}
		logger.Error("Failed to list recent documents", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to load documents"))
		return
	}

	res := dto.RecentDocumentsResponse{Success: true, Documents: make([]dto.DocumentResponse, len(docs))}
	for i, d := range docs {
		formatted, err := h.currencyService.Format(d.TotalAmount, d.CurrencyCode)
		if err != nil {
			// unknown stored currency: show the plain amount rather than failing the panel
			formatted = d.TotalAmount.String() + " " + d.CurrencyCode
		}
		res.Documents[i] = dto.ToDocumentResponse(d, formatted)
	}

	c.JSON(http.StatusOK, res)
}
