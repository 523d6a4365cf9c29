package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anjiri1684/pesuconnect/models"
)

const dateLayout = "2006-01-02"

func (s *Service) OpenProjects(ctx context.Context, keyword string) ([]models.ProjectListing, error) {
	return s.store.SearchProjects(ctx, strings.TrimSpace(keyword), models.ProjectOpen)
}

// Apply only accepts a project that is currently listed as open.
func (s *Service) Apply(ctx context.Context, studentID, projectID int64) error {
	open, err := s.store.SearchProjects(ctx, "", models.ProjectOpen)
	if err != nil {
		return err
	}
	if !containsProject(open, projectID) {
		return ErrProjectNotListed
	}
	return s.store.CreateApplication(ctx, studentID, projectID)
}

func containsProject(list []models.ProjectListing, id int64) bool {
	for _, p := range list {
		if p.ProjectID == id {
			return true
		}
	}
	return false
}

func (s *Service) CreateProject(ctx context.Context, ownerID int64, in ProjectInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Deadline = strings.TrimSpace(in.Deadline)
	if err := validateStruct(in); err != nil {
		return err
	}
	deadline, err := time.Parse(dateLayout, in.Deadline)
	if err != nil {
		return fieldError("Deadline", "Deadline must use the YYYY-MM-DD format.")
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !deadline.After(today) {
		return fieldError("Deadline", "Deadline must be after today.")
	}
	return s.store.CreateProject(ctx, ownerID, in.Title, in.Description, deadline)
}

func (s *Service) MyProjects(ctx context.Context, ownerID int64) ([]models.OwnedProject, error) {
	return s.store.ListOwnedProjects(ctx, ownerID)
}

func (s *Service) ownedProject(ctx context.Context, ownerID, projectID int64) (models.OwnedProject, error) {
	owned, err := s.store.ListOwnedProjects(ctx, ownerID)
	if err != nil {
		return models.OwnedProject{}, err
	}
	for _, p := range owned {
		if p.ProjectID == projectID {
			return p, nil
		}
	}
	return models.OwnedProject{}, ErrProjectNotOwned
}

func (s *Service) PendingApplications(ctx context.Context, ownerID, projectID int64) (models.OwnedProject, []models.PendingApplication, error) {
	project, err := s.ownedProject(ctx, ownerID, projectID)
	if err != nil {
		return models.OwnedProject{}, nil, err
	}
	apps, err := s.store.ListPendingApplications(ctx, projectID)
	if err != nil {
		return models.OwnedProject{}, nil, err
	}
	return project, apps, nil
}

type Decision int

const (
	Accept Decision = iota + 1
	Reject
)

func (d Decision) String() string {
	switch d {
	case Accept:
		return "accepted"
	case Reject:
		return "rejected"
	}
	return "unknown"
}

func ParseDecision(s string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "accept":
		return Accept, nil
	case "r", "reject":
		return Reject, nil
	}
	return 0, ErrInvalidDecision
}

// DecideApplication accepts or rejects an application that is pending on a
// project the caller owns, then notifies the applicant.
func (s *Service) DecideApplication(ctx context.Context, ownerID, projectID, applicationID int64, d Decision) error {
	project, apps, err := s.PendingApplications(ctx, ownerID, projectID)
	if err != nil {
		return err
	}
	var app *models.PendingApplication
	for i := range apps {
		if apps[i].ApplicationID == applicationID {
			app = &apps[i]
			break
		}
	}
	if app == nil {
		return ErrApplicationNotListed
	}

	eventType := models.EventApplicationAccepted
	switch d {
	case Accept:
		err = s.store.AcceptApplication(ctx, applicationID)
	case Reject:
		eventType = models.EventApplicationRejected
		err = s.store.RejectApplication(ctx, applicationID)
	default:
		return ErrInvalidDecision
	}
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("Your application for '%s' was %s.", project.Title, d)
	s.publish(app.ApplicantID, eventType, msg)
	s.email(app.ApplicantName, app.ApplicantEmail, "Application "+d.String(),
		fmt.Sprintf("<h1>Application update</h1><p>%s</p>", escape(msg)))
	return nil
}
