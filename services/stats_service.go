package services

import (
	"context"
	"fmt"

	"github.com/blogem/api-hits/models"
	"github.com/blogem/api-hits/repositories"
)

// StatsService aggregates hits for the dashboard
type StatsService interface {
	Compute(ctx context.Context) (*models.Stats, error)
}

type statsService struct {
	hitRepo repositories.HitRepository
}

// NewStatsService creates a new stats service
func NewStatsService(hitRepo repositories.HitRepository) StatsService {
	return &statsService{hitRepo: hitRepo}
}

// Compute reads every hit and builds the three dashboard views in one pass.
// Pie chart keys and bar chart labels keep the order they were first seen in,
// so labels follow storage order rather than calendar order.
func (s *statsService) Compute(ctx context.Context) (*models.Stats, error) {
	hits, err := s.hitRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load hits: %w", err)
	}

	return Aggregate(hits), nil
}

// Aggregate reduces hits into stats
func Aggregate(hits []models.Hit) *models.Stats {
	stats := models.NewStats()
	for _, hit := range hits {
		n, _ := stats.PieChartData.Get(hit.UserAgent)
		stats.PieChartData.Set(hit.UserAgent, n+1)
		stats.BarChartData.Increment(models.FormatDate(hit.Timestamp.UTC()))
		stats.TableData = append(stats.TableData, models.NewHitRow(hit))
	}
	return stats
}
