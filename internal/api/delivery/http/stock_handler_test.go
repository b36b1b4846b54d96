package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stock-alert-engine/internal/api/dto"
	"stock-alert-engine/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStockService struct {
	search  *dto.SearchResponse
	details *dto.StockDetailsResponse
}

func (s *stubStockService) Search(_ context.Context, _ string) *dto.SearchResponse {
	return s.search
}

func (s *stubStockService) GetDetails(_ context.Context, _ string) *dto.StockDetailsResponse {
	return s.details
}

func performRequest(t *testing.T, handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func TestSearchReturnsServiceResponse(t *testing.T) {
	price := 165.50
	handler := NewStockHandler(&stubStockService{
		search: &dto.SearchResponse{CompanyName: "Tata Steel Ltd", Price: &price, Success: true},
	}, logger.NewNop())

	rec := performRequest(t, handler.Search, `{"company_name": "tata steel"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var response dto.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "Tata Steel Ltd", response.CompanyName)
}

func TestSearchRejectsEmptyCompanyName(t *testing.T) {
	handler := NewStockHandler(&stubStockService{}, logger.NewNop())

	rec := performRequest(t, handler.Search, `{"company_name": ""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "company_name is required", response.Error)
}

func TestSearchRejectsMalformedPayload(t *testing.T) {
	handler := NewStockHandler(&stubStockService{}, logger.NewNop())

	rec := performRequest(t, handler.Search, `{"company_name": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchFailedLookupStillHTTPOK(t *testing.T) {
	handler := NewStockHandler(&stubStockService{
		search: &dto.SearchResponse{CompanyName: "ghost corp", Success: false, Error: "company not found for query \"ghost corp\""},
	}, logger.NewNop())

	rec := performRequest(t, handler.Search, `{"company_name": "ghost corp"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.NotEmpty(t, response.Error)
}

func TestGetDetailsReturnsFullSnapshot(t *testing.T) {
	price := 165.50
	high := 184.60
	handler := NewStockHandler(&stubStockService{
		details: &dto.StockDetailsResponse{
			CompanyName: "Tata Steel Ltd",
			Price:       &price,
			High:        &high,
			MarketCap:   "2,06,744 Cr.",
			Success:     true,
		},
	}, logger.NewNop())

	rec := performRequest(t, handler.GetDetails, `{"company_name": "tata steel"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var response dto.StockDetailsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "2,06,744 Cr.", response.MarketCap)
	require.NotNil(t, response.High)
	assert.Equal(t, 184.60, *response.High)
}

func TestGetDetailsRejectsEmptyCompanyName(t *testing.T) {
	handler := NewStockHandler(&stubStockService{}, logger.NewNop())

	rec := performRequest(t, handler.GetDetails, `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
