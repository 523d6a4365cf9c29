package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/anjiri1684/pesuconnect/models"
	"github.com/anjiri1684/pesuconnect/services"
)

const dateLayout = "2006-01-02"

func (a *App) viewProjects(ctx context.Context, user *models.Student) error {
	a.println("\n--- Available Projects ---")
	projects, err := a.svc.OpenProjects(ctx, "")
	if err != nil {
		a.printf("Error fetching projects: %v\n", err)
		return nil
	}
	if len(projects) == 0 {
		a.println("No open projects found.")
		return nil
	}

	listed := make(map[int64]bool, len(projects))
	for _, p := range projects {
		listed[p.ProjectID] = true
		a.println("-------------------------")
		a.printf("  ID: %d\n", p.ProjectID)
		a.printf("  Title: %s\n", p.Title)
		a.printf("  Owner: %s\n", p.OwnerName)
		a.printf("  Deadline: %s\n", p.Deadline.Format(dateLayout))
		a.printf("  Description: %s\n", p.Description)
	}
	a.println("-------------------------")

	projectID, ok, err := a.selectID("\nEnter a Project ID to apply, or (q) to go back: ",
		func(id int64) bool { return listed[id] }, "Error: Invalid Project ID from the list.")
	if err != nil || !ok {
		return err
	}
	if err := a.svc.Apply(ctx, user.StudentID, projectID); err != nil {
		a.printf("\nError applying for project: %s\n", describe(err))
		return nil
	}
	a.println("\nSuccess! Your application has been submitted.")
	return nil
}

func (a *App) createProject(ctx context.Context, user *models.Student) error {
	a.println("\n--- Create a New Project ---")
	var in services.ProjectInput
	var err error
	if in.Title, err = a.prompt("Project Title: "); err != nil {
		return err
	}
	if in.Description, err = a.prompt("Project Description: "); err != nil {
		return err
	}

	for {
		if in.Deadline, err = a.prompt("Deadline (YYYY-MM-DD): "); err != nil {
			return err
		}
		err = a.svc.CreateProject(ctx, user.StudentID, in)
		var fe *services.FormError
		if errors.As(err, &fe) {
			if msg, bad := fe.Errors["Deadline"]; bad && len(fe.Errors) == 1 {
				a.printf("Error: %s\n", msg)
				continue
			}
			a.printf("Error: %s\n", fe.Message)
			return nil
		}
		break
	}
	if err != nil {
		a.printf("Error creating project: %v\n", err)
		return nil
	}
	a.println("\nSuccess! Your project has been posted.")
	return nil
}

func (a *App) manageMyProjects(ctx context.Context, user *models.Student) error {
	a.println("\n--- Manage My Projects ---")
	projects, err := a.svc.MyProjects(ctx, user.StudentID)
	if err != nil {
		a.printf("Error fetching your projects: %v\n", err)
		return nil
	}
	if len(projects) == 0 {
		a.println("You have not created any projects.")
		return nil
	}

	owned := make(map[int64]bool, len(projects))
	a.println("Your projects:")
	for _, p := range projects {
		owned[p.ProjectID] = true
		a.printf("  ID: %d | %s (%s)\n", p.ProjectID, p.Title, p.Status)
		a.printf("  Pending Applications: %d\n", p.PendingApps)
		a.println("  --------------------")
	}

	projectID, ok, err := a.selectID("\nEnter a Project ID to review applications, or (q) to go back: ",
		func(id int64) bool { return owned[id] }, "Error: Invalid Project ID from your list.")
	if err != nil || !ok {
		return err
	}
	return a.reviewApplications(ctx, user, projectID)
}

func (a *App) reviewApplications(ctx context.Context, user *models.Student, projectID int64) error {
	_, apps, err := a.svc.PendingApplications(ctx, user.StudentID, projectID)
	if err != nil {
		a.printf("Error fetching applications: %s\n", describe(err))
		return nil
	}
	if len(apps) == 0 {
		a.println("\nThere are no pending applications for this project.")
		return nil
	}

	pending := make(map[int64]bool, len(apps))
	a.println("\n--- Pending Applications ---")
	for _, app := range apps {
		pending[app.ApplicationID] = true
		a.printf("  ID: %d | Applicant: %s | Date: %s\n", app.ApplicationID, app.ApplicantName, app.ApplicationDate.Format(dateLayout))
	}

	for {
		appID, ok, err := a.selectID("\nEnter an Application ID to process, or (q) to go back: ",
			func(id int64) bool { return pending[id] }, "Error: Invalid Application ID from the list.")
		if err != nil || !ok {
			return err
		}
		action, err := a.prompt(fmt.Sprintf("Accept (a) or Reject (r) application %d? ", appID))
		if err != nil {
			return err
		}
		decision, err := services.ParseDecision(action)
		if err != nil {
			a.println("Invalid action. Please enter 'a' or 'r'.")
			continue
		}
		if err := a.svc.DecideApplication(ctx, user.StudentID, projectID, appID, decision); err != nil {
			a.printf("Error processing application: %s\n", describe(err))
			continue
		}
		if decision == services.Accept {
			a.println("\nApplication accepted! A contract has been created.")
		} else {
			a.println("\nApplication rejected.")
		}
		return nil
	}
}
