package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/anjiri1684/pesuconnect/models"
)

func (s *Service) Login(ctx context.Context, in LoginInput) (*models.Student, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	return s.store.Login(ctx, in.Email, in.Password)
}

// Register checks the whole form before the student row is inserted.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.Student, error) {
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Department = strings.TrimSpace(in.Department)
	in.Year = strings.TrimSpace(in.Year)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	year, err := strconv.Atoi(in.Year)
	if err != nil || year < 1 {
		return nil, fieldError("Year", "Year of study must be a number of at least 1.")
	}

	student := &models.Student{
		Name:        in.Name,
		Email:       in.Email,
		Password:    in.Password,
		Department:  in.Department,
		YearOfStudy: year,
	}
	if in.Phone != "" {
		student.PhoneNumber = &in.Phone
	}
	if err := s.store.RegisterStudent(ctx, student); err != nil {
		return nil, err
	}

	s.email(student.Name, student.Email, "Welcome to PESUConnect!",
		fmt.Sprintf("<h1>Welcome, %s!</h1><p>Your account is ready. Log in to browse open projects or post your own.</p>", escape(student.Name)))
	return student, nil
}
