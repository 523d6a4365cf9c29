package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anjiri1684/pesuconnect/models"
	"gorm.io/gorm"
)

// SearchProjects calls sp_SearchProjects. An empty keyword is sent as NULL so
// the procedure matches every title.
func (s *Store) SearchProjects(ctx context.Context, keyword string, status models.ProjectStatus) ([]models.ProjectListing, error) {
	var kw any
	if keyword = strings.TrimSpace(keyword); keyword != "" {
		kw = keyword
	}

	var projects []models.ProjectListing
	err := s.read(ctx).Raw("SELECT * FROM sp_SearchProjects(?, ?)", kw, string(status)).Scan(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("search projects: %w", err)
	}
	return projects, nil
}

func (s *Store) CreateProject(ctx context.Context, ownerID int64, title, description string, deadline time.Time) error {
	err := s.write(ctx, func(tx *gorm.DB) error {
		return tx.Exec("CALL sp_CreateProject(?, ?, ?, ?)", ownerID, title, description, deadline).Error
	})
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (s *Store) ListOwnedProjects(ctx context.Context, ownerID int64) ([]models.OwnedProject, error) {
	var projects []models.OwnedProject
	err := s.read(ctx).Raw(`
		SELECT
			p.project_id,
			p.title,
			p.status,
			fn_GetProjectApplicationCount(p.project_id) AS pending_apps
		FROM project p
		WHERE p.student_id = ?
		ORDER BY p.project_id`, ownerID).Scan(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("list owned projects: %w", err)
	}
	return projects, nil
}

// ProjectsDueBetween lists open projects whose deadline falls in [from, to].
func (s *Store) ProjectsDueBetween(ctx context.Context, from, to time.Time) ([]models.ProjectDue, error) {
	var projects []models.ProjectDue
	err := s.read(ctx).Raw(`
		SELECT p.project_id, p.title, p.deadline, s.name AS owner_name, s.email AS owner_email
		FROM project p
		JOIN student s ON p.student_id = s.student_id
		WHERE p.status = ? AND p.deadline BETWEEN ? AND ?`,
		string(models.ProjectOpen), from, to).Scan(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("list projects due: %w", err)
	}
	return projects, nil
}
