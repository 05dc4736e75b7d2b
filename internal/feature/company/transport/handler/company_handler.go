// Package handler provides the HTTP handlers for the company feature.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stocks_api/internal/feature/company/domain/entity"
	"stocks_api/internal/feature/company/transport/http/dto"
	"stocks_api/internal/feature/company/usecase"
	"stocks_api/internal/shared/apierr"
)

// CompanyUsecase defines the directory operations this handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CompanyUsecase interface {
	List(ctx context.Context) ([]entity.Company, error)
	Get(ctx context.Context, id uint) (*entity.Company, error)
	Create(ctx context.Context, in usecase.CompanyInput) (*entity.Company, error)
	Update(ctx context.Context, id uint, in usecase.CompanyInput) (*entity.Company, error)
}

// CompanyHandler handles HTTP requests for the company directory.
type CompanyHandler struct {
	uc CompanyUsecase
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(uc CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// List handles GET /companies and returns every company as JSON.
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("company list failed", "error", err)
		fail(c, err)
		return
	}
	out := make([]dto.CompanyResponse, 0, len(companies))
	for i := range companies {
		out = append(out, dto.FromEntity(&companies[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /companies/:id.
// Missing records answer 404 with the failure message as the body.
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	company, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(company))
}

// Create handles POST /companies.
// Returns 201 with a Location header on success, 400 on a malformed body
// and 409 when the symbol is already taken.
func (h *CompanyHandler) Create(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("company create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	company, err := h.uc.Create(c.Request.Context(), usecase.CompanyInput{
		Name:    req.Name,
		Country: req.Country,
		Symbol:  req.Symbol,
		Website: req.Website,
		Email:   req.Email,
	})
	if err != nil {
		slog.Warn("company create failed", "symbol", req.Symbol, "error", err)
		fail(c, err)
		return
	}
	slog.Info("company created", "id", company.ID, "symbol", company.Symbol)
	c.Header("Location", fmt.Sprintf("/companies/%d", company.ID))
	c.JSON(http.StatusCreated, dto.FromEntity(company))
}

// Update handles PUT /companies/:id and answers 204 on success.
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("company update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	_, err := h.uc.Update(c.Request.Context(), id, usecase.CompanyInput{
		Name:    req.Name,
		Country: req.Country,
		Symbol:  req.Symbol,
		Website: req.Website,
		Email:   req.Email,
	})
	if err != nil {
		slog.Warn("company update failed", "id", id, "error", err)
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseID extracts the numeric :id path parameter, answering 400 itself
// when the value is not a positive integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid company id")
		return 0, false
	}
	return uint(id), true
}

// fail translates a usecase failure into a status code and a plain-text
// body carrying the failure message verbatim.
func fail(c *gin.Context, err error) {
	e := apierr.From(err)
	c.String(e.Status, e.Message)
}
