// Package servicestest provides in-memory stand-ins for the services
// dependencies.
package servicestest

import (
	"context"
	"sync"
	"time"

	"github.com/anjiri1684/pesuconnect/models"
)

// Store records every call by method name and returns canned data.
type Store struct {
	mu    sync.Mutex
	calls []string

	Student   *models.Student
	Open      []models.ProjectListing
	Owned     []models.OwnedProject
	Pending   []models.PendingApplication
	Skills    []models.SkillEntry
	AddResult models.AddSkillResult
	Freelance []models.FreelanceContract
	Owner     []models.OwnerContract
	Stats     models.ReviewStats
	Reviews   []models.ReviewEntry

	// FailOn makes the named method return FailErr.
	FailOn  string
	FailErr error

	Registered *models.Student
	Keyword    string
	Project    struct {
		Title, Description string
		Deadline           time.Time
	}
	Review struct {
		Text       string
		Rating     int
		ReviewerID int64
	}
	Payment struct {
		Amount float64
		Method string
	}
	SkillName string
	Level     models.Proficiency
}

func (f *Store) call(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	if f.FailOn == name {
		return f.FailErr
	}
	return nil
}

// Calls returns the method names invoked so far, in order.
func (f *Store) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *Store) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

func (f *Store) Login(_ context.Context, _, _ string) (*models.Student, error) {
	if err := f.call("Login"); err != nil {
		return nil, err
	}
	return f.Student, nil
}

func (f *Store) RegisterStudent(_ context.Context, s *models.Student) error {
	f.Registered = s
	return f.call("RegisterStudent")
}

func (f *Store) SearchProjects(_ context.Context, keyword string, _ models.ProjectStatus) ([]models.ProjectListing, error) {
	f.Keyword = keyword
	return f.Open, f.call("SearchProjects")
}

func (f *Store) CreateProject(_ context.Context, _ int64, title, description string, deadline time.Time) error {
	f.Project.Title, f.Project.Description, f.Project.Deadline = title, description, deadline
	return f.call("CreateProject")
}

func (f *Store) ListOwnedProjects(_ context.Context, _ int64) ([]models.OwnedProject, error) {
	return f.Owned, f.call("ListOwnedProjects")
}

func (f *Store) CreateApplication(_ context.Context, _, _ int64) error {
	return f.call("CreateApplication")
}

func (f *Store) ListPendingApplications(_ context.Context, _ int64) ([]models.PendingApplication, error) {
	return f.Pending, f.call("ListPendingApplications")
}

func (f *Store) AcceptApplication(_ context.Context, _ int64) error {
	return f.call("AcceptApplication")
}

func (f *Store) RejectApplication(_ context.Context, _ int64) error {
	return f.call("RejectApplication")
}

func (f *Store) ListSkills(_ context.Context, _ int64) ([]models.SkillEntry, error) {
	return f.Skills, f.call("ListSkills")
}

func (f *Store) AddSkill(_ context.Context, _ int64, name string, level models.Proficiency) (models.AddSkillResult, error) {
	f.SkillName, f.Level = name, level
	if err := f.call("AddSkill"); err != nil {
		return models.AddSkillResult{}, err
	}
	return f.AddResult, nil
}

func (f *Store) UpdateSkill(_ context.Context, _, _ int64, level models.Proficiency) error {
	f.Level = level
	return f.call("UpdateSkill")
}

func (f *Store) RemoveSkill(_ context.Context, _, _ int64) error {
	return f.call("RemoveSkill")
}

func (f *Store) ListFreelanceContracts(_ context.Context, _ int64) ([]models.FreelanceContract, error) {
	return f.Freelance, f.call("ListFreelanceContracts")
}

func (f *Store) ListOwnerContracts(_ context.Context, _ int64) ([]models.OwnerContract, error) {
	return f.Owner, f.call("ListOwnerContracts")
}

func (f *Store) CompleteContract(_ context.Context, _ int64) error {
	return f.call("CompleteContract")
}

func (f *Store) CreateReview(_ context.Context, text string, rating int, _, reviewerID int64) error {
	f.Review.Text, f.Review.Rating, f.Review.ReviewerID = text, rating, reviewerID
	return f.call("CreateReview")
}

func (f *Store) RecordPayment(_ context.Context, amount float64, method string, _ int64) error {
	f.Payment.Amount, f.Payment.Method = amount, method
	return f.call("RecordPayment")
}

func (f *Store) ReviewStats(_ context.Context, _ int64) (models.ReviewStats, error) {
	return f.Stats, f.call("ReviewStats")
}

func (f *Store) ListReviews(_ context.Context, _ int64) ([]models.ReviewEntry, error) {
	return f.Reviews, f.call("ListReviews")
}
