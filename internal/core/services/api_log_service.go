package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/news_aggregator_app/internal/apperrors"
	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_aggregator_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/news_aggregator_app/internal/core/ports/services"
	"github.com/SscSPs/news_aggregator_app/internal/dto"
	"github.com/SscSPs/news_aggregator_app/internal/utils"
	"github.com/google/uuid"
)

// DefaultStatsWindowDays is used when no stats window is requested.
const DefaultStatsWindowDays = 7

type apiLogService struct {
	BaseService
	logRepo portsrepo.APILogRepositoryFacade
}

func NewAPILogService(logRepo portsrepo.APILogRepositoryFacade) portssvc.APILogSvcFacade {
	return &apiLogService{logRepo: logRepo}
}

func (s *apiLogService) RecordAPICall(ctx context.Context, req dto.CreateAPILogRequest) (*domain.APILog, error) {
	entry := domain.APILog{
		ID:             uuid.NewString(),
		APISource:      strings.TrimSpace(req.APISource),
		Endpoint:       req.Endpoint,
		StatusCode:     req.StatusCode,
		ResponseTimeMs: req.ResponseTimeMs,
		CreatedAt:      s.Now(),
	}
	if err := s.logRepo.SaveAPILog(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record api call: %w", err)
	}
	return &entry, nil
}

func (s *apiLogService) ListAPILogs(ctx context.Context, r domain.APILogRange) ([]domain.APILog, error) {
	if r.End.Before(r.Start) {
		return nil, apperrors.NewValidationFailedError("endDate must not be before startDate",
			apperrors.FieldError{Field: "endDate", Message: "must not be before startDate"})
	}
	logs, err := s.logRepo.FindAPILogsByRange(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to list api logs: %w", err)
	}
	if logs == nil {
		logs = []domain.APILog{}
	}
	return logs, nil
}

// GetAPIStats averages are rounded to utils.ResponseTimePrecision places.
func (s *apiLogService) GetAPIStats(ctx context.Context, days int) ([]domain.APILogStats, error) {
	if days <= 0 {
		days = DefaultStatsWindowDays
	}
	since := s.Now().Add(-time.Duration(days) * 24 * time.Hour)
	stats, err := s.logRepo.AggregateAPILogs(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate api logs: %w", err)
	}
	for i := range stats {
		stats[i].AvgResponseTimeMs = utils.RoundWithPrecision(stats[i].AvgResponseTimeMs, utils.ResponseTimePrecision)
	}
	if stats == nil {
		stats = []domain.APILogStats{}
	}
	return stats, nil
}
