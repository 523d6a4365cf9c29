package database

import (
	"context"
	"fmt"

	"github.com/anjiri1684/pesuconnect/models"
	"gorm.io/gorm"
)

// Login verifies credentials through sp_StudentLogin, which returns the
// student row on a match and nothing otherwise.
func (s *Store) Login(ctx context.Context, email, password string) (*models.Student, error) {
	var student models.Student
	res := s.read(ctx).Raw("SELECT * FROM sp_StudentLogin(?, ?)", email, password).Scan(&student)
	if res.Error != nil {
		return nil, fmt.Errorf("login: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrInvalidCredentials
	}
	return &student, nil
}

func (s *Store) RegisterStudent(ctx context.Context, student *models.Student) error {
	err := s.write(ctx, func(tx *gorm.DB) error {
		return tx.Create(student).Error
	})
	if err != nil {
		return fmt.Errorf("register student: %w", err)
	}
	return nil
}
