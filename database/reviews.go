package database

import (
	"context"
	"fmt"

	"github.com/anjiri1684/pesuconnect/models"
)

func (s *Store) ReviewStats(ctx context.Context, studentID int64) (models.ReviewStats, error) {
	var stats models.ReviewStats
	err := s.read(ctx).Raw(
		"SELECT COALESCE(fn_GetStudentAverageRating(?), 0) AS avg, COALESCE(fn_GetStudentReviewCount(?), 0) AS count",
		studentID, studentID).Scan(&stats).Error
	if err != nil {
		return models.ReviewStats{}, fmt.Errorf("review stats: %w", err)
	}
	return stats, nil
}

func (s *Store) ListReviews(ctx context.Context, studentID int64) ([]models.ReviewEntry, error) {
	var reviews []models.ReviewEntry
	err := s.read(ctx).Raw(`
		SELECT r.rating, r.review_text, p.title AS project_title
		FROM review r
		JOIN contract c ON r.contract_id = c.contract_id
		JOIN project p ON c.project_id = p.project_id
		WHERE r.student_id = ?
		ORDER BY c.end_date DESC`, studentID).Scan(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}
