package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/anjiri1684/pesuconnect/models"
	"github.com/anjiri1684/pesuconnect/services"
)

func formatEnd(t *time.Time) string {
	if t == nil {
		return "None"
	}
	return t.Format(dateLayout)
}

func (a *App) viewContracts(ctx context.Context, user *models.Student) error {
	a.println("\n--- Your Active Contracts ---")
	board, err := a.svc.Contracts(ctx, user.StudentID)
	if err != nil {
		a.printf("Error fetching contracts: %v\n", err)
		return nil
	}

	a.println("\nContracts as Freelancer (Working on):")
	if len(board.Freelance) == 0 {
		a.println("You are not currently working on any projects.")
	}
	for _, c := range board.Freelance {
		a.println("  --------------------")
		a.printf("  Project: %s\n", c.ProjectTitle)
		a.printf("  Owner: %s\n", c.ProjectOwnerName)
		a.printf("  Contract ID: %d\n", c.ContractID)
		a.printf("  Start: %s | End: %s\n", c.StartDate.Format(dateLayout), formatEnd(c.EndDate))
	}

	a.println("\nContracts as Project Owner (Hired for):")
	if len(board.Owner) == 0 {
		a.println("You have not hired for any active projects.")
	}
	owned := make(map[int64]bool, len(board.Owner))
	for _, c := range board.Owner {
		owned[c.ContractID] = true
		a.println("  --------------------")
		a.printf("  Project: %s\n", c.ProjectTitle)
		a.printf("  Freelancer: %s\n", c.FreelancerName)
		a.printf("  Contract ID: %d\n", c.ContractID)
		a.printf("  Start: %s | End: %s\n", c.StartDate.Format(dateLayout), formatEnd(c.EndDate))
	}

	contractID, ok, err := a.selectID("\nEnter a Contract ID to complete (from your 'Project Owner' list), or (q) to go back: ",
		func(id int64) bool { return owned[id] }, "Error: Invalid Contract ID from your 'Project Owner' list.")
	if err != nil || !ok {
		return err
	}
	return a.completeContract(ctx, user, contractID)
}

// completeContract gathers the review and payment details first, then runs
// the completion steps in one go.
func (a *App) completeContract(ctx context.Context, user *models.Student, contractID int64) error {
	a.println("\n--- Complete Contract ---")
	confirm, err := a.prompt(fmt.Sprintf("Are you sure you want to mark Contract %d as complete? (y/n): ", contractID))
	if err != nil {
		return err
	}
	if strings.ToLower(confirm) != "y" {
		a.println("Action cancelled.")
		return nil
	}

	var in services.CompletionInput
	a.println("\nPlease leave a review for the freelancer.")
	for {
		raw, err := a.prompt("Rating (1-5): ")
		if err != nil {
			return err
		}
		rating, convErr := strconv.Atoi(raw)
		if convErr != nil {
			a.println("Error: Please enter a number.")
			continue
		}
		if rating < 1 || rating > 5 {
			a.println("Error: Rating must be between 1 and 5.")
			continue
		}
		in.Rating = rating
		break
	}
	if in.Comment, err = a.prompt("Review comment: "); err != nil {
		return err
	}

	a.println("\nPlease process the payment.")
	for {
		raw, err := a.prompt("Enter payment amount (e.g., 5000.00): ")
		if err != nil {
			return err
		}
		amount, convErr := strconv.ParseFloat(raw, 64)
		if convErr != nil {
			a.println("Error: Please enter a valid amount.")
			continue
		}
		if math.IsNaN(amount) || amount <= 0 {
			a.println("Error: Amount must be greater than zero.")
			continue
		}
		if amount > services.MaxAmount {
			a.printf("Error: Amount must be at most %.2f.\n", services.MaxAmount)
			continue
		}
		in.Amount = amount
		break
	}
	for {
		if in.Method, err = a.prompt("Payment Method (e.g., UPI, Card): "); err != nil {
			return err
		}
		if in.Method != "" {
			break
		}
		a.println("Error: Payment method is required.")
	}

	a.println("Marking contract as complete...")
	err = a.svc.CompleteContract(ctx, user, contractID, in)
	var stepErr *services.StepError
	switch {
	case errors.As(err, &stepErr):
		a.reportSteps(stepErr.Step)
		a.printf("\nAn error occurred during completion (%s): %v\n", stepErr.Step, stepErr.Err)
		return nil
	case err != nil:
		a.printf("\nAn error occurred during completion: %s\n", describe(err))
		return nil
	}
	a.reportSteps("")
	a.println("\nPayment processed successfully!")
	a.println("--- Contract Finished ---")
	return nil
}

// reportSteps prints the confirmation for every step before failed.
func (a *App) reportSteps(failed services.CompletionStep) {
	if failed == services.StepCompleteContract {
		return
	}
	a.println("Success! Contract is now 'Completed'.")
	if failed == services.StepCreateReview {
		return
	}
	a.println("Review submitted. Thank you!")
}

func (a *App) viewReviews(ctx context.Context, user *models.Student) error {
	a.println("\n--- Your Reviews ---")
	summary, err := a.svc.Reviews(ctx, user.StudentID)
	if err != nil {
		a.printf("Error fetching reviews: %v\n", err)
		return nil
	}
	a.printf("You have %d reviews, with an average rating of %s / 5.00\n", summary.Count, summary.Average)

	if len(summary.Reviews) > 0 {
		a.println("\n--- Comments ---")
		for _, r := range summary.Reviews {
			a.println("  --------------------")
			a.printf("  Project: %s\n", r.ProjectTitle)
			a.printf("  Rating: %d / 5\n", r.Rating)
			a.printf("  Comment: %s\n", r.ReviewText)
		}
	}
	_, err = a.prompt("\nPress Enter to return to the Dashboard...")
	return err
}
