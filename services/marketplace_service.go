package services

import (
	"context"
	"html/template"
	"log"
	"sync"
	"time"

	"github.com/anjiri1684/pesuconnect/models"
)

// Store is the data-access surface both front ends go through.
type Store interface {
	Login(ctx context.Context, email, password string) (*models.Student, error)
	RegisterStudent(ctx context.Context, student *models.Student) error

	SearchProjects(ctx context.Context, keyword string, status models.ProjectStatus) ([]models.ProjectListing, error)
	CreateProject(ctx context.Context, ownerID int64, title, description string, deadline time.Time) error
	ListOwnedProjects(ctx context.Context, ownerID int64) ([]models.OwnedProject, error)

	CreateApplication(ctx context.Context, studentID, projectID int64) error
	ListPendingApplications(ctx context.Context, projectID int64) ([]models.PendingApplication, error)
	AcceptApplication(ctx context.Context, applicationID int64) error
	RejectApplication(ctx context.Context, applicationID int64) error

	ListSkills(ctx context.Context, studentID int64) ([]models.SkillEntry, error)
	AddSkill(ctx context.Context, studentID int64, name string, level models.Proficiency) (models.AddSkillResult, error)
	UpdateSkill(ctx context.Context, studentID, skillID int64, level models.Proficiency) error
	RemoveSkill(ctx context.Context, studentID, skillID int64) error

	ListFreelanceContracts(ctx context.Context, studentID int64) ([]models.FreelanceContract, error)
	ListOwnerContracts(ctx context.Context, studentID int64) ([]models.OwnerContract, error)
	CompleteContract(ctx context.Context, contractID int64) error
	CreateReview(ctx context.Context, text string, rating int, contractID, reviewerID int64) error
	RecordPayment(ctx context.Context, amount float64, method string, contractID int64) error

	ReviewStats(ctx context.Context, studentID int64) (models.ReviewStats, error)
	ListReviews(ctx context.Context, studentID int64) ([]models.ReviewEntry, error)
}

type Mailer interface {
	SendEmail(ctx context.Context, toName, toEmail, subject, htmlContent string) error
}

type Publisher interface {
	Publish(studentID int64, event models.Event)
}

type ReceiptIssuer interface {
	IssueReceipt(ctx context.Context, receipt models.Receipt) (string, error)
}

const backgroundTimeout = 90 * time.Second

type Service struct {
	store    Store
	mailer   Mailer
	events   Publisher
	receipts ReceiptIssuer
	now      func() time.Time

	wg sync.WaitGroup
}

type Option func(*Service)

func WithMailer(m Mailer) Option { return func(s *Service) { s.mailer = m } }

func WithPublisher(p Publisher) Option { return func(s *Service) { s.events = p } }

func WithReceipts(r ReceiptIssuer) Option { return func(s *Service) { s.receipts = r } }

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Wait blocks until queued emails and receipts have finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) background(name string, fn func(ctx context.Context) error) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			log.Printf("🔥 %s failed: %v", name, err)
		}
	}()
}

func (s *Service) email(name, toEmail, subject, body string) {
	if s.mailer == nil || toEmail == "" {
		return
	}
	s.background("email "+subject, func(ctx context.Context) error {
		return s.mailer.SendEmail(ctx, name, toEmail, subject, body)
	})
}

func (s *Service) publish(studentID int64, eventType, message string) {
	if s.events == nil {
		return
	}
	s.events.Publish(studentID, models.Event{Type: eventType, Message: message, At: s.now()})
}

func escape(s string) string {
	return template.HTMLEscapeString(s)
}
