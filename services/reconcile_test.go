package services

import (
	"errors"
	"testing"
	"time"

	"partner-portal-api/models"
)

func pendingRequest(partnerIDs ...int) models.ApprovalRequest {
	responses := make([]models.PartnerResponse, len(partnerIDs))
	for i, id := range partnerIDs {
		responses[i] = models.PartnerResponse{
			ResponseID: i + 1,
			ApprovalID: 1,
			PartnerID:  id,
			Response:   models.ResponsePending,
		}
	}
	return models.ApprovalRequest{
		ApprovalID: 1,
		Title:      "Sponsorship agreement",
		Status:     models.ApprovalStatusPending,
		Responses:  responses,
	}
}

func TestDeriveApprovalStatus(t *testing.T) {
	r := func(responses ...string) []models.PartnerResponse {
		rows := make([]models.PartnerResponse, len(responses))
		for i, resp := range responses {
			rows[i] = models.PartnerResponse{PartnerID: i + 1, Response: resp}
		}
		return rows
	}

	tests := []struct {
		name      string
		responses []models.PartnerResponse
		want      string
	}{
		{"no recipients", nil, models.ApprovalStatusPending},
		{"all pending", r("pending", "pending"), models.ApprovalStatusPending},
		{"unanimous approval", r("approved", "approved", "approved"), models.ApprovalStatusApproved},
		{"single recipient approved", r("approved"), models.ApprovalStatusApproved},
		{"one rejection blocks everything", r("approved", "rejected", "approved"), models.ApprovalStatusRejected},
		{"some approved rest pending", r("approved", "pending"), models.ApprovalStatusPartiallyApproved},
		{"only pending and rejected", r("pending", "rejected"), models.ApprovalStatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveApprovalStatus(tt.responses); got != tt.want {
				t.Fatalf("DeriveApprovalStatus(%v) = %q, want %q", tt.responses, got, tt.want)
			}
		})
	}
}

// Walks a three-recipient request through approve, reject, approve and checks
// the derived status after each step.
func TestRecordResponseStatusProgression(t *testing.T) {
	now := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	req := pendingRequest(1, 2, 3)

	req, err := RecordResponse(req, 1, models.ResponseApproved, "", now)
	if err != nil {
		t.Fatalf("first response failed: %v", err)
	}
	if req.Status != models.ApprovalStatusPartiallyApproved {
		t.Fatalf("after one approval expected partially_approved, got %q", req.Status)
	}

	req, err = RecordResponse(req, 2, models.ResponseRejected, "budget not confirmed", now.Add(time.Hour))
	if err != nil {
		t.Fatalf("second response failed: %v", err)
	}
	if req.Status != models.ApprovalStatusRejected {
		t.Fatalf("after a rejection expected rejected, got %q", req.Status)
	}

	// A late approval is still recorded but cannot lift the rejection.
	req, err = RecordResponse(req, 3, models.ResponseApproved, "", now.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("late response failed: %v", err)
	}
	if req.Status != models.ApprovalStatusRejected {
		t.Fatalf("rejection should be absorbing, got %q", req.Status)
	}

	third := req.ResponseFor(3)
	if third == nil || third.Response != models.ResponseApproved || third.RespondedAt == nil {
		t.Fatalf("late approval was not recorded: %+v", third)
	}
}

func TestRecordResponseUnanimousApproval(t *testing.T) {
	now := time.Now()
	req := pendingRequest(10, 20)

	var err error
	for _, id := range []int{10, 20} {
		req, err = RecordResponse(req, id, models.ResponseApproved, "", now)
		if err != nil {
			t.Fatalf("response from partner %d failed: %v", id, err)
		}
	}

	if req.Status != models.ApprovalStatusApproved {
		t.Fatalf("expected approved after unanimous approval, got %q", req.Status)
	}
}

func TestRecordResponseReplacesExistingDecision(t *testing.T) {
	now := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	req := pendingRequest(1, 2)

	req, err := RecordResponse(req, 1, models.ResponseRejected, "missing appendix", now)
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}

	req, err = RecordResponse(req, 1, models.ResponseApproved, "", now.Add(time.Hour))
	if err != nil {
		t.Fatalf("re-response failed: %v", err)
	}

	row := req.ResponseFor(1)
	if row.Response != models.ResponseApproved {
		t.Fatalf("expected replaced response approved, got %q", row.Response)
	}
	if row.Comment != nil {
		t.Fatalf("expected previous comment cleared, got %q", *row.Comment)
	}
	if row.RespondedAt == nil || !row.RespondedAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("expected responded_at updated to latest decision, got %v", row.RespondedAt)
	}
	if req.Status != models.ApprovalStatusPartiallyApproved {
		t.Fatalf("expected partially_approved after withdrawal of rejection, got %q", req.Status)
	}
}

func TestRecordResponseTrimsComment(t *testing.T) {
	req := pendingRequest(1)

	req, err := RecordResponse(req, 1, models.ResponseRejected, "  logo is outdated  ", time.Now())
	if err != nil {
		t.Fatalf("response failed: %v", err)
	}

	row := req.ResponseFor(1)
	if row.Comment == nil || *row.Comment != "logo is outdated" {
		t.Fatalf("expected trimmed comment, got %v", row.Comment)
	}
}

func TestRecordResponseUnknownRecipient(t *testing.T) {
	req := pendingRequest(1, 2)

	_, err := RecordResponse(req, 99, models.ResponseApproved, "", time.Now())
	if !errors.Is(err, ErrUnknownRecipient) {
		t.Fatalf("expected ErrUnknownRecipient, got %v", err)
	}
}

func TestRecordResponseInvalidResponseValue(t *testing.T) {
	req := pendingRequest(1)

	for _, bad := range []string{"", "pending", "maybe", "APPROVED"} {
		if _, err := RecordResponse(req, 1, bad, "", time.Now()); !errors.Is(err, ErrInvalidResponse) {
			t.Fatalf("response %q: expected ErrInvalidResponse, got %v", bad, err)
		}
	}
}

func TestRecordResponseDoesNotMutateInput(t *testing.T) {
	original := pendingRequest(1, 2)

	updated, err := RecordResponse(original, 1, models.ResponseApproved, "fine", time.Now())
	if err != nil {
		t.Fatalf("response failed: %v", err)
	}

	if original.Status != models.ApprovalStatusPending {
		t.Fatalf("input status mutated to %q", original.Status)
	}
	for _, row := range original.Responses {
		if row.Response != models.ResponsePending || row.Comment != nil || row.RespondedAt != nil {
			t.Fatalf("input response row mutated: %+v", row)
		}
	}
	if updated.ResponseFor(1).Response != models.ResponseApproved {
		t.Fatalf("updated copy missing the recorded response")
	}
}
