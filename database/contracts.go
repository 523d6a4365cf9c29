package database

import (
	"context"
	"fmt"

	"github.com/anjiri1684/pesuconnect/models"
	"gorm.io/gorm"
)

func (s *Store) ListFreelanceContracts(ctx context.Context, studentID int64) ([]models.FreelanceContract, error) {
	var contracts []models.FreelanceContract
	err := s.read(ctx).Raw(`
		SELECT
			c.contract_id,
			p.title AS project_title,
			s.name AS project_owner_name,
			c.start_date,
			c.end_date
		FROM contract c
		JOIN project p ON c.project_id = p.project_id
		JOIN student s ON p.student_id = s.student_id
		WHERE c.student_id = ? AND p.status = ?`, studentID, string(models.ProjectInProgress)).Scan(&contracts).Error
	if err != nil {
		return nil, fmt.Errorf("list freelance contracts: %w", err)
	}
	return contracts, nil
}

func (s *Store) ListOwnerContracts(ctx context.Context, studentID int64) ([]models.OwnerContract, error) {
	var contracts []models.OwnerContract
	err := s.read(ctx).Raw(`
		SELECT
			c.contract_id,
			p.title AS project_title,
			s.student_id AS freelancer_id,
			s.name AS freelancer_name,
			s.email AS freelancer_email,
			c.start_date,
			c.end_date
		FROM contract c
		JOIN project p ON c.project_id = p.project_id
		JOIN student s ON c.student_id = s.student_id
		WHERE p.student_id = ? AND p.status = ?`, studentID, string(models.ProjectInProgress)).Scan(&contracts).Error
	if err != nil {
		return nil, fmt.Errorf("list owner contracts: %w", err)
	}
	return contracts, nil
}

func (s *Store) CompleteContract(ctx context.Context, contractID int64) error {
	err := s.write(ctx, func(tx *gorm.DB) error {
		return tx.Exec("CALL sp_CompleteContract(?)", contractID).Error
	})
	if err != nil {
		return fmt.Errorf("complete contract: %w", err)
	}
	return nil
}

// CreateReview passes arguments in the order sp_CreateReview declares them:
// text, rating, contract, reviewer.
func (s *Store) CreateReview(ctx context.Context, text string, rating int, contractID, reviewerID int64) error {
	err := s.write(ctx, func(tx *gorm.DB) error {
		return tx.Exec("CALL sp_CreateReview(?, ?, ?, ?)", text, rating, contractID, reviewerID).Error
	})
	if err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (s *Store) RecordPayment(ctx context.Context, amount float64, method string, contractID int64) error {
	err := s.write(ctx, func(tx *gorm.DB) error {
		return tx.Exec(`
			INSERT INTO payment (amount, payment_date, status, payment_method, contract_id)
			VALUES (?, CURRENT_DATE, ?, ?, ?)`, amount, models.PaymentPaid, method, contractID).Error
	})
	if err != nil {
		return fmt.Errorf("record payment: %w", err)
	}
	return nil
}
