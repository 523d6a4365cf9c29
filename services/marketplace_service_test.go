package services

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/anjiri1684/pesuconnect/models"
	"github.com/anjiri1684/pesuconnect/services/servicestest"
)

var fixedNow = time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

func newTestService(store *servicestest.Store, opts ...Option) *Service {
	return NewService(store, append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)...)
}

func assertCalls(t *testing.T, store *servicestest.Store, want ...string) {
	t.Helper()
	got := store.Calls()
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("store calls = %v, want %v", got, want)
	}
}

func validRegister() RegisterInput {
	return RegisterInput{
		Email:           "asha@pesu.edu",
		Name:            "Asha",
		Password:        "secret",
		ConfirmPassword: "secret",
		Department:      "CSE",
		Year:            "3",
	}
}

func TestRegisterRejectsBeforeStore(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterInput)
		field  string
	}{
		{"password mismatch", func(in *RegisterInput) { in.ConfirmPassword = "other" }, ""},
		{"empty email", func(in *RegisterInput) { in.Email = "  " }, "Email"},
		{"empty name", func(in *RegisterInput) { in.Name = "" }, "Name"},
		{"empty password", func(in *RegisterInput) { in.Password, in.ConfirmPassword = "", "" }, "Password"},
		{"empty department", func(in *RegisterInput) { in.Department = "" }, "Department"},
		{"empty year", func(in *RegisterInput) { in.Year = "" }, "Year"},
		{"year not numeric", func(in *RegisterInput) { in.Year = "third" }, "Year"},
		{"year zero", func(in *RegisterInput) { in.Year = "0" }, "Year"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &servicestest.Store{}
			in := validRegister()
			tt.mutate(&in)

			_, err := newTestService(store).Register(context.Background(), in)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.field == "" {
				if !errors.Is(err, ErrPasswordMismatch) {
					t.Fatalf("err = %v, want ErrPasswordMismatch", err)
				}
			} else {
				var fe *FormError
				if !errors.As(err, &fe) {
					t.Fatalf("err = %T %v, want *FormError", err, err)
				}
				if _, ok := fe.Errors[tt.field]; !ok {
					t.Fatalf("form errors %v missing %s", fe.Errors, tt.field)
				}
			}
			assertCalls(t, store)
		})
	}
}

func TestRegisterInsertsAndWelcomes(t *testing.T) {
	store := &servicestest.Store{}
	mailer := &servicestest.Mailer{}
	svc := newTestService(store, WithMailer(mailer))

	in := validRegister()
	in.Phone = " 9876543210 "
	student, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	svc.Wait()

	assertCalls(t, store, "RegisterStudent")
	if student.YearOfStudy != 3 || student.PhoneNumber == nil || *student.PhoneNumber != "9876543210" {
		t.Fatalf("unexpected student %+v", student)
	}
	if len(mailer.Sent()) != 1 || mailer.Sent()[0].ToEmail != "asha@pesu.edu" {
		t.Fatalf("welcome email not sent: %+v", mailer.Sent())
	}
}

func TestRegisterWithoutPhoneStoresNull(t *testing.T) {
	store := &servicestest.Store{}
	if _, err := newTestService(store).Register(context.Background(), validRegister()); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if store.Registered.PhoneNumber != nil {
		t.Fatalf("phone = %q, want nil", *store.Registered.PhoneNumber)
	}
}

func TestLoginRequiresBothFields(t *testing.T) {
	for _, in := range []LoginInput{{Email: "", Password: "x"}, {Email: "a@b.c", Password: ""}} {
		store := &servicestest.Store{}
		_, err := newTestService(store).Login(context.Background(), in)
		var fe *FormError
		if !errors.As(err, &fe) {
			t.Fatalf("Login(%+v) err = %v, want *FormError", in, err)
		}
		assertCalls(t, store)
	}
}

func TestLoginPassesThrough(t *testing.T) {
	store := &servicestest.Store{Student: &models.Student{StudentID: 4, Name: "Ravi"}}
	got, err := newTestService(store).Login(context.Background(), LoginInput{Email: " ravi@pesu.edu ", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.StudentID != 4 {
		t.Fatalf("student = %+v", got)
	}
	assertCalls(t, store, "Login")
}

func TestApplyRequiresListedProject(t *testing.T) {
	store := &servicestest.Store{Open: []models.ProjectListing{{ProjectID: 3}, {ProjectID: 5}}}
	svc := newTestService(store)

	if err := svc.Apply(context.Background(), 1, 4); !errors.Is(err, ErrNotListed) {
		t.Fatalf("Apply unlisted err = %v, want ErrNotListed", err)
	}
	assertCalls(t, store, "SearchProjects")

	store.Reset()
	if err := svc.Apply(context.Background(), 1, 5); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	assertCalls(t, store, "SearchProjects", "CreateApplication")
}

func TestCreateProjectDeadline(t *testing.T) {
	tests := []struct {
		deadline string
		ok       bool
	}{
		{"2025-03-11", true},
		{"2025-03-10", false},
		{"2025-01-01", false},
		{"11-03-2025", false},
		{"", false},
	}
	for _, tt := range tests {
		store := &servicestest.Store{}
		err := newTestService(store).CreateProject(context.Background(), 1, ProjectInput{
			Title:       "Logo design",
			Description: "Need a logo",
			Deadline:    tt.deadline,
		})
		if tt.ok {
			if err != nil {
				t.Fatalf("deadline %q: %v", tt.deadline, err)
			}
			assertCalls(t, store, "CreateProject")
			if store.Project.Deadline.Format(dateLayout) != tt.deadline {
				t.Fatalf("deadline stored as %v", store.Project.Deadline)
			}
			continue
		}
		var fe *FormError
		if !errors.As(err, &fe) {
			t.Fatalf("deadline %q err = %v, want *FormError", tt.deadline, err)
		}
		assertCalls(t, store)
	}
}

func TestCreateProjectRequiresTitleAndDescription(t *testing.T) {
	store := &servicestest.Store{}
	err := newTestService(store).CreateProject(context.Background(), 1, ProjectInput{Deadline: "2025-05-01"})
	var fe *FormError
	if !errors.As(err, &fe) || len(fe.Errors) != 2 {
		t.Fatalf("err = %v, want two field errors", err)
	}
	assertCalls(t, store)
}

func TestParseDecision(t *testing.T) {
	for in, want := range map[string]Decision{"a": Accept, "Accept": Accept, " r ": Reject, "REJECT": Reject} {
		got, err := ParseDecision(in)
		if err != nil || got != want {
			t.Fatalf("ParseDecision(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseDecision("maybe"); !errors.Is(err, ErrInvalidDecision) {
		t.Fatalf("err = %v, want ErrInvalidDecision", err)
	}
}

func TestDecideApplication(t *testing.T) {
	newStore := func() *servicestest.Store {
		return &servicestest.Store{
			Owned:   []models.OwnedProject{{ProjectID: 7, Title: "Website"}},
			Pending: []models.PendingApplication{{ApplicationID: 21, ApplicantID: 8, ApplicantName: "Meera", ApplicantEmail: "meera@pesu.edu"}},
		}
	}

	t.Run("project not owned", func(t *testing.T) {
		store := newStore()
		err := newTestService(store).DecideApplication(context.Background(), 1, 99, 21, Accept)
		if !errors.Is(err, ErrProjectNotOwned) {
			t.Fatalf("err = %v", err)
		}
		assertCalls(t, store, "ListOwnedProjects")
	})

	t.Run("application not pending", func(t *testing.T) {
		store := newStore()
		err := newTestService(store).DecideApplication(context.Background(), 1, 7, 22, Reject)
		if !errors.Is(err, ErrApplicationNotListed) {
			t.Fatalf("err = %v", err)
		}
		assertCalls(t, store, "ListOwnedProjects", "ListPendingApplications")
	})

	t.Run("accept notifies applicant", func(t *testing.T) {
		store := newStore()
		mailer := &servicestest.Mailer{}
		events := &servicestest.Publisher{}
		svc := newTestService(store, WithMailer(mailer), WithPublisher(events))

		if err := svc.DecideApplication(context.Background(), 1, 7, 21, Accept); err != nil {
			t.Fatalf("DecideApplication: %v", err)
		}
		svc.Wait()
		assertCalls(t, store, "ListOwnedProjects", "ListPendingApplications", "AcceptApplication")
		if len(events.Events()) != 1 || events.Events()[0].StudentID != 8 || events.Events()[0].Event.Type != models.EventApplicationAccepted {
			t.Fatalf("events = %+v", events.Events())
		}
		if len(mailer.Sent()) != 1 || mailer.Sent()[0].Subject != "Application accepted" {
			t.Fatalf("mail = %+v", mailer.Sent())
		}
	})

	t.Run("reject failure is returned", func(t *testing.T) {
		store := newStore()
		store.FailOn, store.FailErr = "RejectApplication", errors.New("boom")
		events := &servicestest.Publisher{}
		err := newTestService(store, WithPublisher(events)).DecideApplication(context.Background(), 1, 7, 21, Reject)
		if err == nil || err.Error() != "boom" {
			t.Fatalf("err = %v", err)
		}
		if len(events.Events()) != 0 {
			t.Fatalf("events published after failure: %+v", events.Events())
		}
	})
}

func TestSkills(t *testing.T) {
	t.Run("add normalizes proficiency", func(t *testing.T) {
		store := &servicestest.Store{AddResult: models.AddSkillResult{SkillID: 9, NewSkill: true}}
		res, err := newTestService(store).AddSkill(context.Background(), 1, SkillInput{Name: " Go ", Proficiency: "advanced"})
		if err != nil {
			t.Fatalf("AddSkill: %v", err)
		}
		if store.Level != models.Advanced || store.SkillName != "Go" || !res.NewSkill {
			t.Fatalf("level = %q, result = %+v", store.Level, res)
		}
	})

	t.Run("add rejects unknown proficiency", func(t *testing.T) {
		store := &servicestest.Store{}
		_, err := newTestService(store).AddSkill(context.Background(), 1, SkillInput{Name: "Go", Proficiency: "expert"})
		var fe *FormError
		if !errors.As(err, &fe) {
			t.Fatalf("err = %v", err)
		}
		assertCalls(t, store)
	})

	t.Run("add rejects empty name", func(t *testing.T) {
		store := &servicestest.Store{}
		_, err := newTestService(store).AddSkill(context.Background(), 1, SkillInput{Name: "  ", Proficiency: "Beginner"})
		var fe *FormError
		if !errors.As(err, &fe) {
			t.Fatalf("err = %v", err)
		}
		assertCalls(t, store)
	})

	t.Run("update only owned skill", func(t *testing.T) {
		store := &servicestest.Store{Skills: []models.SkillEntry{{SkillID: 2, SkillName: "SQL"}}}
		svc := newTestService(store)
		if err := svc.UpdateSkill(context.Background(), 1, 3, "Beginner"); !errors.Is(err, ErrSkillNotAdded) {
			t.Fatalf("err = %v", err)
		}
		store.Reset()
		if err := svc.UpdateSkill(context.Background(), 1, 2, "INTERMEDIATE"); err != nil {
			t.Fatalf("UpdateSkill: %v", err)
		}
		assertCalls(t, store, "ListSkills", "UpdateSkill")
		if store.Level != models.Intermediate {
			t.Fatalf("level = %q", store.Level)
		}
	})

	t.Run("remove only owned skill", func(t *testing.T) {
		store := &servicestest.Store{Skills: []models.SkillEntry{{SkillID: 2}}}
		svc := newTestService(store)
		if err := svc.RemoveSkill(context.Background(), 1, 5); !errors.Is(err, ErrNotListed) {
			t.Fatalf("err = %v", err)
		}
		assertCalls(t, store, "ListSkills")
	})
}

func TestReviewsFormatsAverage(t *testing.T) {
	store := &servicestest.Store{
		Stats:   models.ReviewStats{Avg: 4.3333, Count: 3},
		Reviews: []models.ReviewEntry{{Rating: 5, ProjectTitle: "App"}},
	}
	got, err := newTestService(store).Reviews(context.Background(), 1)
	if err != nil {
		t.Fatalf("Reviews: %v", err)
	}
	if got.Average != "4.33" || got.Count != 3 || len(got.Reviews) != 1 {
		t.Fatalf("summary = %+v", got)
	}
}
