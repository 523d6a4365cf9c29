package database

import (
	"context"
	"fmt"

	"github.com/anjiri1684/pesuconnect/models"
	"gorm.io/gorm"
)

func (s *Store) CreateApplication(ctx context.Context, studentID, projectID int64) error {
	err := s.write(ctx, func(tx *gorm.DB) error {
		return tx.Exec("CALL sp_CreateApplication(?, ?)", studentID, projectID).Error
	})
	if err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	return nil
}

func (s *Store) ListPendingApplications(ctx context.Context, projectID int64) ([]models.PendingApplication, error) {
	var applications []models.PendingApplication
	err := s.read(ctx).Raw(`
		SELECT
			a.application_id,
			a.application_date,
			s.student_id AS applicant_id,
			s.name AS applicant_name,
			s.email AS applicant_email
		FROM application a
		JOIN student s ON a.student_id = s.student_id
		WHERE a.project_id = ? AND a.status = ?
		ORDER BY a.application_date`, projectID, string(models.ApplicationPending)).Scan(&applications).Error
	if err != nil {
		return nil, fmt.Errorf("list pending applications: %w", err)
	}
	return applications, nil
}

// AcceptApplication hands the transition to sp_AcceptApplication, which also
// creates the contract.
func (s *Store) AcceptApplication(ctx context.Context, applicationID int64) error {
	err := s.write(ctx, func(tx *gorm.DB) error {
		return tx.Exec("CALL sp_AcceptApplication(?)", applicationID).Error
	})
	if err != nil {
		return fmt.Errorf("accept application: %w", err)
	}
	return nil
}

func (s *Store) RejectApplication(ctx context.Context, applicationID int64) error {
	err := s.write(ctx, func(tx *gorm.DB) error {
		return tx.Exec("CALL sp_RejectApplication(?)", applicationID).Error
	})
	if err != nil {
		return fmt.Errorf("reject application: %w", err)
	}
	return nil
}
