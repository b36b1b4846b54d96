package service

import (
	"context"

	"stock-alert-engine/internal/api/dto"
	"stock-alert-engine/internal/scraper"
	"stock-alert-engine/pkg/logger"
)

// StockService exposes the extraction pipeline to the API layer. Any
// internal failure is folded into a success=false response rather than
// surfacing as a transport-level error.
type StockService interface {
	Search(ctx context.Context, companyName string) *dto.SearchResponse
	GetDetails(ctx context.Context, companyName string) *dto.StockDetailsResponse
}

// Snapshotter is the slice of the scraper this service needs.
type Snapshotter interface {
	Snapshot(ctx context.Context, companyName string) (*scraper.Snapshot, error)
}

type stockService struct {
	snapshots Snapshotter
	logger    *logger.Logger
}

// NewStockService creates a new StockService.
func NewStockService(snapshots Snapshotter, log *logger.Logger) StockService {
	return &stockService{snapshots: snapshots, logger: log}
}

func (s *stockService) Search(ctx context.Context, companyName string) *dto.SearchResponse {
	response := &dto.SearchResponse{CompanyName: companyName}

	snapshot, err := s.snapshots.Snapshot(ctx, companyName)
	if err != nil {
		s.logger.Error("Search failed", logger.ErrorField(err), logger.StringField("company", companyName))
		response.Error = err.Error()
		return response
	}

	response.CompanyName = snapshot.CompanyName
	response.Price = snapshot.Price
	response.Success = snapshot.Success()
	if !response.Success {
		response.Error = "price not found"
	}
	return response
}

func (s *stockService) GetDetails(ctx context.Context, companyName string) *dto.StockDetailsResponse {
	response := &dto.StockDetailsResponse{CompanyName: companyName}

	snapshot, err := s.snapshots.Snapshot(ctx, companyName)
	if err != nil {
		s.logger.Error("Details lookup failed", logger.ErrorField(err), logger.StringField("company", companyName))
		response.Error = err.Error()
		return response
	}

	response.CompanyName = snapshot.CompanyName
	response.Price = snapshot.Price
	response.High = snapshot.High
	response.Low = snapshot.Low
	response.MarketCap = snapshot.MarketCap
	response.ROE = snapshot.ROE
	response.ROCE = snapshot.ROCE
	response.Description = snapshot.Description
	response.Success = snapshot.Success()
	if !response.Success {
		response.Error = "price not found"
	}
	return response
}
