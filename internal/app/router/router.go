// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"

	companyhandler "stocks_api/internal/feature/company/transport/handler"
	stockinfohandler "stocks_api/internal/feature/stockinfo/transport/handler"
	"stocks_api/internal/interface/handler"
)

// NewRouter wires the company directory and stock-info endpoints.
func NewRouter(company *companyhandler.CompanyHandler, stockInfo *stockinfohandler.StockInfoHandler) *gin.Engine {
	r := gin.Default()

	// Liveness probe
	r.GET("/healthz", handler.Health)

	companies := r.Group("/companies")
	{
		companies.GET("", company.List)
		companies.POST("", company.Create)
		companies.GET("/:id", company.Get)
		companies.PUT("/:id", company.Update)

		// Enriched view: identity merged with the day's market metrics
		companies.GET("/company-stocks/:id", stockInfo.Get)
	}

	return r
}
