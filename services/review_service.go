package services

import (
	"context"
	"fmt"

	"github.com/anjiri1684/pesuconnect/models"
)

type ReviewSummary struct {
	Count   int64
	Average string
	Reviews []models.ReviewEntry
}

func (s *Service) Reviews(ctx context.Context, studentID int64) (ReviewSummary, error) {
	stats, err := s.store.ReviewStats(ctx, studentID)
	if err != nil {
		return ReviewSummary{}, err
	}
	reviews, err := s.store.ListReviews(ctx, studentID)
	if err != nil {
		return ReviewSummary{}, err
	}
	return ReviewSummary{
		Count:   stats.Count,
		Average: fmt.Sprintf("%.2f", stats.Avg),
		Reviews: reviews,
	}, nil
}
