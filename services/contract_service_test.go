package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/anjiri1684/pesuconnect/models"
	"github.com/anjiri1684/pesuconnect/services/servicestest"
)

var testOwner = &models.Student{StudentID: 1, Name: "Asha", Email: "asha@pesu.edu"}

func contractStore() *servicestest.Store {
	return &servicestest.Store{Owner: []models.OwnerContract{{
		ContractID:      11,
		ProjectTitle:    "Mobile app",
		FreelancerID:    6,
		FreelancerName:  "Kiran",
		FreelancerEmail: "kiran@pesu.edu",
	}}}
}

func validCompletion() CompletionInput {
	return CompletionInput{Rating: 5, Comment: " Great work ", Amount: 1500, Method: "UPI"}
}

func TestCompleteContractRunsAllSteps(t *testing.T) {
	store := contractStore()
	mailer := &servicestest.Mailer{}
	events := &servicestest.Publisher{}
	svc := newTestService(store, WithMailer(mailer), WithPublisher(events))

	if err := svc.CompleteContract(context.Background(), testOwner, 11, validCompletion()); err != nil {
		t.Fatalf("CompleteContract: %v", err)
	}
	svc.Wait()

	assertCalls(t, store, "ListOwnerContracts", "CompleteContract", "CreateReview", "RecordPayment")
	if store.Review.Text != "Great work" || store.Review.Rating != 5 || store.Review.ReviewerID != 1 {
		t.Fatalf("review = %+v", store.Review)
	}
	if store.Payment.Amount != 1500 || store.Payment.Method != "UPI" {
		t.Fatalf("payment = %+v", store.Payment)
	}
	if len(events.Events()) != 1 || events.Events()[0].StudentID != 6 {
		t.Fatalf("events = %+v", events.Events())
	}
	if len(mailer.Sent()) != 1 || mailer.Sent()[0].ToEmail != "kiran@pesu.edu" {
		t.Fatalf("mail = %+v", mailer.Sent())
	}
}

func TestCompleteContractStopsOnFirstFailure(t *testing.T) {
	tests := []struct {
		failOn string
		step   CompletionStep
		calls  []string
	}{
		{"CompleteContract", StepCompleteContract, []string{"ListOwnerContracts", "CompleteContract"}},
		{"CreateReview", StepCreateReview, []string{"ListOwnerContracts", "CompleteContract", "CreateReview"}},
		{"RecordPayment", StepRecordPayment, []string{"ListOwnerContracts", "CompleteContract", "CreateReview", "RecordPayment"}},
	}
	for _, tt := range tests {
		t.Run(tt.failOn, func(t *testing.T) {
			store := contractStore()
			cause := errors.New("procedure failed")
			store.FailOn, store.FailErr = tt.failOn, cause
			events := &servicestest.Publisher{}

			err := newTestService(store, WithPublisher(events)).CompleteContract(context.Background(), testOwner, 11, validCompletion())

			var stepErr *StepError
			if !errors.As(err, &stepErr) {
				t.Fatalf("err = %T %v, want *StepError", err, err)
			}
			if stepErr.Step != tt.step || !errors.Is(err, cause) {
				t.Fatalf("step = %q, err = %v", stepErr.Step, err)
			}
			assertCalls(t, store, tt.calls...)
			if len(events.Events()) != 0 {
				t.Fatalf("events published after failure: %+v", events.Events())
			}
		})
	}
}

func TestCompleteContractValidatesBeforeStore(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CompletionInput)
		field  string
	}{
		{"rating too low", func(in *CompletionInput) { in.Rating = 0 }, "Rating"},
		{"rating too high", func(in *CompletionInput) { in.Rating = 6 }, "Rating"},
		{"zero amount", func(in *CompletionInput) { in.Amount = 0 }, "Amount"},
		{"negative amount", func(in *CompletionInput) { in.Amount = -10 }, "Amount"},
		{"infinite amount", func(in *CompletionInput) { in.Amount = math.Inf(1) }, "Amount"},
		{"NaN amount", func(in *CompletionInput) { in.Amount = math.NaN() }, "Amount"},
		{"amount too large for the column", func(in *CompletionInput) { in.Amount = 100000000 }, "Amount"},
		{"no method", func(in *CompletionInput) { in.Method = " " }, "Method"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := contractStore()
			in := validCompletion()
			tt.mutate(&in)

			err := newTestService(store).CompleteContract(context.Background(), testOwner, 11, in)
			var fe *FormError
			if !errors.As(err, &fe) {
				t.Fatalf("err = %v, want *FormError", err)
			}
			if _, ok := fe.Errors[tt.field]; !ok {
				t.Fatalf("errors %v missing %s", fe.Errors, tt.field)
			}
			assertCalls(t, store)
		})
	}
}

func TestCompleteContractRequiresOwnerList(t *testing.T) {
	store := contractStore()
	err := newTestService(store).CompleteContract(context.Background(), testOwner, 12, validCompletion())
	if !errors.Is(err, ErrContractNotOwned) {
		t.Fatalf("err = %v", err)
	}
	assertCalls(t, store, "ListOwnerContracts")
}

type fakeReceipts struct {
	issued []models.Receipt
}

func (r *fakeReceipts) IssueReceipt(_ context.Context, receipt models.Receipt) (string, error) {
	r.issued = append(r.issued, receipt)
	return "https://res.example/receipt.pdf", nil
}

func TestCompleteContractIssuesReceipt(t *testing.T) {
	store := contractStore()
	receipts := &fakeReceipts{}
	mailer := &servicestest.Mailer{}
	svc := newTestService(store, WithReceipts(receipts), WithMailer(mailer))

	if err := svc.CompleteContract(context.Background(), testOwner, 11, validCompletion()); err != nil {
		t.Fatalf("CompleteContract: %v", err)
	}
	svc.Wait()

	if len(receipts.issued) != 1 {
		t.Fatalf("receipts = %+v", receipts.issued)
	}
	r := receipts.issued[0]
	if r.PayerName != "Asha" || r.FreelancerName != "Kiran" || r.Amount != 1500 || !r.IssuedAt.Equal(fixedNow) {
		t.Fatalf("receipt = %+v", r)
	}
	// completion email plus the receipt link to both parties
	if len(mailer.Sent()) != 3 {
		t.Fatalf("mail = %+v", mailer.Sent())
	}
}

func TestContractsBoard(t *testing.T) {
	store := contractStore()
	store.Freelance = []models.FreelanceContract{{ContractID: 3}}
	board, err := newTestService(store).Contracts(context.Background(), 1)
	if err != nil {
		t.Fatalf("Contracts: %v", err)
	}
	if len(board.Freelance) != 1 || len(board.Owner) != 1 {
		t.Fatalf("board = %+v", board)
	}
}

func TestRenderReceiptHTML(t *testing.T) {
	html, err := RenderReceiptHTML(models.Receipt{ContractID: 11, ProjectTitle: "<App>", Amount: 12.5, IssuedAt: fixedNow})
	if err != nil {
		t.Fatalf("RenderReceiptHTML: %v", err)
	}
	for _, want := range []string{"#11", "&lt;App&gt;", "12.50", "March 10, 2025"} {
		if !strings.Contains(html, want) {
			t.Fatalf("receipt html missing %q", want)
		}
	}
}

func TestValidateCompletionAmountBounds(t *testing.T) {
	in := validCompletion()
	in.Amount = MaxAmount
	if err := ValidateCompletion(in); err != nil {
		t.Fatalf("max amount rejected: %v", err)
	}

	in.Amount = math.Inf(1)
	var fe *FormError
	if err := ValidateCompletion(in); !errors.As(err, &fe) {
		t.Fatalf("err = %v, want *FormError", err)
	}
	if got := fe.Errors["Amount"]; got != "Amount must be at most 99999999.99." {
		t.Fatalf("Amount message = %q", got)
	}
}

func TestReceiptPrintParams(t *testing.T) {
	p := receiptPrintParams(11)
	if p.PaperWidth != receiptPaperWidth || p.PaperHeight != receiptPaperHeight {
		t.Fatalf("paper = %vx%v, want A5", p.PaperWidth, p.PaperHeight)
	}
	for name, m := range map[string]float64{"top": p.MarginTop, "bottom": p.MarginBottom, "left": p.MarginLeft, "right": p.MarginRight} {
		if m != receiptMargin {
			t.Fatalf("%s margin = %v", name, m)
		}
	}
	if p.PageRanges != "1" || !p.PrintBackground {
		t.Fatalf("page ranges = %q, background = %v", p.PageRanges, p.PrintBackground)
	}
	if !p.DisplayHeaderFooter || !strings.Contains(p.FooterTemplate, "contract #11") {
		t.Fatalf("footer = %q", p.FooterTemplate)
	}
}
