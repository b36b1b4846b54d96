package http

import (
	"net/http"

	"stock-alert-engine/internal/api/dto"
	"stock-alert-engine/internal/api/service"
	"stock-alert-engine/pkg/logger"

	"github.com/labstack/echo/v4"
)

// StockHandler handles HTTP requests for stock lookups.
type StockHandler struct {
	stockService service.StockService
	logger       *logger.Logger
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockService service.StockService, logger *logger.Logger) *StockHandler {
	return &StockHandler{stockService: stockService, logger: logger}
}

// RegisterRoutes registers the stock routes to the Echo group.
func (h *StockHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/search", h.Search)
	g.POST("/details", h.GetDetails)
}

// Search returns the current price for a company name. The data must stay
// fresh, so responses are marked uncacheable.
func (h *StockHandler) Search(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	if req.CompanyName == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "company_name is required"})
	}

	c.Response().Header().Set("Cache-Control", "no-store")

	response := h.stockService.Search(c.Request().Context(), req.CompanyName)
	return c.JSON(http.StatusOK, response)
}

// GetDetails returns the full extracted snapshot for a company name.
func (h *StockHandler) GetDetails(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	if req.CompanyName == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "company_name is required"})
	}

	c.Response().Header().Set("Cache-Control", "no-store")

	response := h.stockService.GetDetails(c.Request().Context(), req.CompanyName)
	return c.JSON(http.StatusOK, response)
}
