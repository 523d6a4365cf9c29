package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/anjiri1684/pesuconnect/database"
	"github.com/anjiri1684/pesuconnect/models"
	"github.com/anjiri1684/pesuconnect/services"
)

func (a *App) manageSkills(ctx context.Context, user *models.Student) error {
	for {
		a.viewSkills(ctx, user)
		a.println("\n--- Manage Skills Menu ---")
		a.println("1. Add a new skill")
		a.println("2. Update a skill's proficiency")
		a.println("3. Remove a skill")
		a.println("4. Back to Dashboard")
		choice, err := a.prompt("Enter your choice (1-4): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = a.addSkill(ctx, user)
		case "2":
			err = a.updateSkill(ctx, user)
		case "3":
			err = a.removeSkill(ctx, user)
		case "4":
			return nil
		default:
			a.println("\nInvalid choice. Please enter 1-4.")
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) viewSkills(ctx context.Context, user *models.Student) []models.SkillEntry {
	a.println("\n--- Your Current Skills ---")
	skills, err := a.svc.Skills(ctx, user.StudentID)
	if err != nil {
		a.printf("Error fetching skills: %v\n", err)
		return nil
	}
	if len(skills) == 0 {
		a.println("You have not added any skills yet.")
	}
	for _, s := range skills {
		a.printf("  - ID: %d | %s (%s)\n", s.SkillID, s.SkillName, s.ProficiencyLevel)
	}
	return skills
}

// promptProficiency re-prompts until the answer names a known level.
func (a *App) promptProficiency(label string) (models.Proficiency, error) {
	for {
		raw, err := a.prompt(label)
		if err != nil {
			return "", err
		}
		level, err := models.ParseProficiency(raw)
		if err == nil {
			return level, nil
		}
		a.println("Invalid input. Please try again.")
	}
}

func (a *App) addSkill(ctx context.Context, user *models.Student) error {
	a.println("\n--- Add a New Skill ---")
	name, err := a.prompt("Enter the name of the skill (e.g., Python, Graphic Design): ")
	if err != nil {
		return err
	}
	if name == "" {
		a.println("Skill name cannot be empty.")
		return nil
	}
	level, err := a.promptProficiency("Enter your proficiency for " + name + " (Beginner, Intermediate, Advanced): ")
	if err != nil {
		return err
	}

	res, err := a.svc.AddSkill(ctx, user.StudentID, services.SkillInput{Name: name, Proficiency: string(level)})
	switch {
	case errors.Is(err, database.ErrSkillAlreadyAdded):
		a.printf("Error: You have already added '%s' to your profile.\n", name)
		return nil
	case err != nil:
		a.printf("\nError adding skill: %s\n", describe(err))
		return nil
	}
	if res.NewSkill {
		a.printf("'%s' is a new skill. Added it to the system.\n", name)
	}
	a.printf("\nSuccess! '%s' (%s) added to your profile.\n", name, level)
	return nil
}

// pickOwnedSkill lists the student's skills and reads one of their IDs.
// ok is false when there is nothing to pick or the input was rejected.
func (a *App) pickOwnedSkill(ctx context.Context, user *models.Student, label string) (skillID int64, ok bool, err error) {
	skills := a.viewSkills(ctx, user)
	if len(skills) == 0 {
		return 0, false, nil
	}
	raw, err := a.prompt(label)
	if err != nil {
		return 0, false, err
	}
	skillID, convErr := strconv.ParseInt(raw, 10, 64)
	if convErr != nil {
		a.println("\nError: Skill ID must be a number.")
		return 0, false, nil
	}
	for _, s := range skills {
		if s.SkillID == skillID {
			return skillID, true, nil
		}
	}
	a.println("Error: You have not added this skill.")
	return 0, false, nil
}

func (a *App) updateSkill(ctx context.Context, user *models.Student) error {
	a.println("\n--- Update a Skill ---")
	skillID, ok, err := a.pickOwnedSkill(ctx, user, "\nEnter the ID of the skill to update: ")
	if err != nil || !ok {
		return err
	}
	level, err := a.promptProficiency("Enter new proficiency (Beginner, Intermediate, Advanced): ")
	if err != nil {
		return err
	}
	if err := a.svc.UpdateSkill(ctx, user.StudentID, skillID, string(level)); err != nil {
		a.printf("\nError updating skill: %s\n", describe(err))
		return nil
	}
	a.println("\nSuccess! Skill proficiency updated.")
	return nil
}

func (a *App) removeSkill(ctx context.Context, user *models.Student) error {
	a.println("\n--- Remove a Skill ---")
	skillID, ok, err := a.pickOwnedSkill(ctx, user, "\nEnter the ID of the skill to remove: ")
	if err != nil || !ok {
		return err
	}
	if err := a.svc.RemoveSkill(ctx, user.StudentID, skillID); err != nil {
		a.printf("\nError removing skill: %s\n", describe(err))
		return nil
	}
	a.println("\nSuccess! Skill removed from your profile.")
	return nil
}
