package jobs

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/anjiri1684/pesuconnect/models"
	"github.com/robfig/cron/v3"
)

const reminderWindow = 48 * time.Hour

type DueProjectFinder interface {
	ProjectsDueBetween(ctx context.Context, from, to time.Time) ([]models.ProjectDue, error)
}

type Mailer interface {
	SendEmail(ctx context.Context, toName, toEmail, subject, htmlContent string) error
}

// DeadlineReminder emails owners of open projects whose deadline falls
// within the next two days.
type DeadlineReminder struct {
	store  DueProjectFinder
	mailer Mailer
	now    func() time.Time
}

func NewDeadlineReminder(store DueProjectFinder, mailer Mailer) *DeadlineReminder {
	return &DeadlineReminder{store: store, mailer: mailer, now: time.Now}
}

// Run returns the number of reminders sent.
func (r *DeadlineReminder) Run(ctx context.Context) (int, error) {
	log.Println("Running job: SendDeadlineReminders...")

	now := r.now()
	projects, err := r.store.ProjectsDueBetween(ctx, now, now.Add(reminderWindow))
	if err != nil {
		return 0, fmt.Errorf("find due projects: %w", err)
	}

	sent := 0
	for _, p := range projects {
		log.Printf("Sending deadline reminder for project ID: %d", p.ProjectID)
		subject := fmt.Sprintf("Reminder: '%s' is due %s", p.Title, p.Deadline.Format("Jan 2"))
		body := fmt.Sprintf(
			"<h1>Deadline Reminder</h1><p>Hi %s,</p><p>Your project <b>%s</b> is still open and its deadline is %s.</p><p>Review pending applications or update the project before then.</p>",
			template.HTMLEscapeString(p.OwnerName),
			template.HTMLEscapeString(p.Title),
			p.Deadline.Format("Monday, January 2, 2006"),
		)
		if err := r.mailer.SendEmail(ctx, p.OwnerName, p.OwnerEmail, subject, body); err != nil {
			log.Printf("🔥 Failed to send deadline reminder for project %d: %v", p.ProjectID, err)
			continue
		}
		sent++
	}
	return sent, nil
}

// Schedule registers the reminder on the cron spec.
func (r *DeadlineReminder) Schedule(c *cron.Cron, spec string) (cron.EntryID, error) {
	return c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		n, err := r.Run(ctx)
		if err != nil {
			log.Printf("🔥 Deadline reminder job failed: %v", err)
			return
		}
		log.Printf("✅ Sent %d deadline reminders.", n)
	})
}
