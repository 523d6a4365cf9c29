package jobs

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/anjiri1684/pesuconnect/models"
	"github.com/robfig/cron/v3"
)

type fakeFinder struct {
	from, to time.Time
	projects []models.ProjectDue
	err      error
}

func (f *fakeFinder) ProjectsDueBetween(_ context.Context, from, to time.Time) ([]models.ProjectDue, error) {
	f.from, f.to = from, to
	return f.projects, f.err
}

type fakeMailer struct {
	to      []string
	bodies  []string
	failFor string
}

func (m *fakeMailer) SendEmail(_ context.Context, _, toEmail, _, body string) error {
	if toEmail == m.failFor {
		return errors.New("rejected")
	}
	m.to = append(m.to, toEmail)
	m.bodies = append(m.bodies, body)
	return nil
}

func TestDeadlineReminderRun(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	finder := &fakeFinder{projects: []models.ProjectDue{
		{ProjectID: 1, Title: "Poster <A3>", Deadline: now.Add(24 * time.Hour), OwnerName: "Asha", OwnerEmail: "asha@pesu.edu"},
		{ProjectID: 2, Title: "Website", Deadline: now.Add(36 * time.Hour), OwnerName: "Ravi", OwnerEmail: "ravi@pesu.edu"},
	}}
	mailer := &fakeMailer{failFor: "ravi@pesu.edu"}
	job := NewDeadlineReminder(finder, mailer)
	job.now = func() time.Time { return now }

	sent, err := job.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sent != 1 {
		t.Fatalf("sent = %d, want 1", sent)
	}
	if !finder.from.Equal(now) || !finder.to.Equal(now.Add(48*time.Hour)) {
		t.Fatalf("window = %v..%v", finder.from, finder.to)
	}
	if len(mailer.to) != 1 || mailer.to[0] != "asha@pesu.edu" {
		t.Fatalf("recipients = %v", mailer.to)
	}
	if !strings.Contains(mailer.bodies[0], "Poster &lt;A3&gt;") {
		t.Fatalf("body not escaped: %s", mailer.bodies[0])
	}
}

func TestDeadlineReminderStoreError(t *testing.T) {
	job := NewDeadlineReminder(&fakeFinder{err: errors.New("db down")}, &fakeMailer{})
	if _, err := job.Run(context.Background()); err == nil || !strings.Contains(err.Error(), "db down") {
		t.Fatalf("err = %v", err)
	}
}

func TestDeadlineReminderSchedule(t *testing.T) {
	c := cron.New()
	job := NewDeadlineReminder(&fakeFinder{}, &fakeMailer{})
	if _, err := job.Schedule(c, "0 8 * * *"); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if len(c.Entries()) != 1 {
		t.Fatalf("entries = %d", len(c.Entries()))
	}
	if _, err := job.Schedule(c, "not a spec"); err == nil {
		t.Fatal("expected invalid spec error")
	}
}
