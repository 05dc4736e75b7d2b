// Package handler provides the HTTP handlers for the stockinfo feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stocks_api/internal/feature/stockinfo/transport/http/dto"
	"stocks_api/internal/feature/stockinfo/usecase"
	"stocks_api/internal/shared/apierr"
)

// StockInfoUsecase defines the enrichment operation this handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type StockInfoUsecase interface {
	GetCompanyStockInfo(ctx context.Context, id uint) (*usecase.CompanyStockInfoView, error)
}

// StockInfoHandler handles HTTP requests for enriched company stock info.
type StockInfoHandler struct {
	uc StockInfoUsecase
}

// NewStockInfoHandler creates a new StockInfoHandler.
func NewStockInfoHandler(uc StockInfoUsecase) *StockInfoHandler {
	return &StockInfoHandler{uc: uc}
}

// Get handles GET /companies/company-stocks/:id.
// Unknown ids and failed provider lookups both answer 404 with the
// failure message as the body.
func (h *StockInfoHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid company id")
		return
	}
	view, err := h.uc.GetCompanyStockInfo(c.Request.Context(), uint(id))
	if err != nil {
		slog.Warn("company stock info lookup failed", "id", id, "error", err)
		e := apierr.From(err)
		c.String(e.Status, e.Message)
		return
	}
	c.JSON(http.StatusOK, dto.FromView(view))
}
