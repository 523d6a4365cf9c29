package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/anjiri1684/pesuconnect/models"
)

type CompletionStep string

const (
	StepCompleteContract CompletionStep = "complete contract"
	StepCreateReview     CompletionStep = "create review"
	StepRecordPayment    CompletionStep = "record payment"
)

// StepError reports which completion step failed. Steps before it stay
// committed.
type StepError struct {
	Step CompletionStep
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

type ContractBoard struct {
	Freelance []models.FreelanceContract
	Owner     []models.OwnerContract
}

func (s *Service) Contracts(ctx context.Context, studentID int64) (ContractBoard, error) {
	freelance, err := s.store.ListFreelanceContracts(ctx, studentID)
	if err != nil {
		return ContractBoard{}, err
	}
	owner, err := s.store.ListOwnerContracts(ctx, studentID)
	if err != nil {
		return ContractBoard{}, err
	}
	return ContractBoard{Freelance: freelance, Owner: owner}, nil
}

// OwnedContract returns the active contract only if it is on one of the
// caller's projects.
func (s *Service) OwnedContract(ctx context.Context, ownerID, contractID int64) (models.OwnerContract, error) {
	owner, err := s.store.ListOwnerContracts(ctx, ownerID)
	if err != nil {
		return models.OwnerContract{}, err
	}
	for _, c := range owner {
		if c.ContractID == contractID {
			return c, nil
		}
	}
	return models.OwnerContract{}, ErrContractNotOwned
}

func (in *CompletionInput) normalize() {
	in.Comment = strings.TrimSpace(in.Comment)
	in.Method = strings.TrimSpace(in.Method)
}

// ValidateCompletion checks the review and payment fields without touching
// the store.
func ValidateCompletion(in CompletionInput) error {
	in.normalize()
	return validateStruct(in)
}

// CompleteContract closes the contract, reviews the freelancer and records
// the payment, in that order. Each step commits on its own; the first
// failure stops the sequence.
func (s *Service) CompleteContract(ctx context.Context, owner *models.Student, contractID int64, in CompletionInput) error {
	in.normalize()
	if err := validateStruct(in); err != nil {
		return err
	}
	contract, err := s.OwnedContract(ctx, owner.StudentID, contractID)
	if err != nil {
		return err
	}

	if err := s.store.CompleteContract(ctx, contractID); err != nil {
		return &StepError{Step: StepCompleteContract, Err: err}
	}
	if err := s.store.CreateReview(ctx, in.Comment, in.Rating, contractID, owner.StudentID); err != nil {
		return &StepError{Step: StepCreateReview, Err: err}
	}
	if err := s.store.RecordPayment(ctx, in.Amount, in.Method, contractID); err != nil {
		return &StepError{Step: StepRecordPayment, Err: err}
	}

	msg := fmt.Sprintf("Contract for '%s' is complete. You were rated %d/5 and paid %.2f via %s.",
		contract.ProjectTitle, in.Rating, in.Amount, in.Method)
	s.publish(contract.FreelancerID, models.EventContractCompleted, msg)
	s.email(contract.FreelancerName, contract.FreelancerEmail, "Contract completed",
		fmt.Sprintf("<h1>Well done!</h1><p>%s</p>", escape(msg)))

	if s.receipts != nil {
		receipt := models.Receipt{
			ContractID:     contractID,
			ProjectTitle:   contract.ProjectTitle,
			PayerName:      owner.Name,
			FreelancerName: contract.FreelancerName,
			Amount:         in.Amount,
			Method:         in.Method,
			IssuedAt:       s.now(),
		}
		s.issueReceipt(receipt, owner, contract)
	}
	return nil
}

func (s *Service) issueReceipt(receipt models.Receipt, owner *models.Student, contract models.OwnerContract) {
	s.background(fmt.Sprintf("receipt for contract %d", receipt.ContractID), func(ctx context.Context) error {
		url, err := s.receipts.IssueReceipt(ctx, receipt)
		if err != nil {
			return err
		}
		body := fmt.Sprintf("<h1>Payment receipt</h1><p>The receipt for '%s' is available <a href=\"%s\">here</a>.</p>",
			escape(receipt.ProjectTitle), escape(url))
		if s.mailer == nil {
			return nil
		}
		if err := s.mailer.SendEmail(ctx, owner.Name, owner.Email, "Payment receipt", body); err != nil {
			return err
		}
		return s.mailer.SendEmail(ctx, contract.FreelancerName, contract.FreelancerEmail, "Payment receipt", body)
	})
}
