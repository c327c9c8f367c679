package services

import (
	"errors"
	"strings"
	"time"

	"partner-portal-api/models"
)

// Usage errors returned by RecordResponse. Callers are expected to have
// validated recipient membership already; these exist as a contract check.
var (
	ErrUnknownRecipient = errors.New("partner is not a recipient of this approval request")
	ErrInvalidResponse  = errors.New("response must be approved or rejected")
)

// RecordResponse replaces the given recipient's response on the request and
// re-derives the overall status from the full updated response set. The input
// request is not mutated: the returned request carries a fresh response slice,
// so concurrent readers of the old snapshot never observe a partial update.
//
// Callers must invoke this on a freshly-read request snapshot and serialize
// writes per request (row lock or optimistic concurrency), otherwise a
// concurrent response can be silently dropped.
func RecordResponse(req models.ApprovalRequest, partnerID int, response, comment string, now time.Time) (models.ApprovalRequest, error) {
	if response != models.ResponseApproved && response != models.ResponseRejected {
		return req, ErrInvalidResponse
	}

	updated := make([]models.PartnerResponse, len(req.Responses))
	copy(updated, req.Responses)

	found := false
	for i := range updated {
		if updated[i].PartnerID != partnerID {
			continue
		}
		found = true
		updated[i].Response = response
		respondedAt := now
		updated[i].RespondedAt = &respondedAt
		if trimmed := strings.TrimSpace(comment); trimmed != "" {
			updated[i].Comment = &trimmed
		} else {
			updated[i].Comment = nil
		}
	}
	if !found {
		return req, ErrUnknownRecipient
	}

	req.Responses = updated
	req.Status = DeriveApprovalStatus(updated)
	return req, nil
}

// DeriveApprovalStatus recomputes the overall request status from scratch.
// A single rejection is absorbing: any objection blocks the whole request no
// matter how many others approved. With no rejection, unanimous approval wins;
// a mix of approvals and pending responses is partially approved; a request
// nobody has approved yet stays pending.
func DeriveApprovalStatus(responses []models.PartnerResponse) string {
	if len(responses) == 0 {
		return models.ApprovalStatusPending
	}

	var approved, rejected, pending int
	for _, r := range responses {
		switch r.Response {
		case models.ResponseApproved:
			approved++
		case models.ResponseRejected:
			rejected++
		default:
			pending++
		}
	}

	switch {
	case rejected > 0:
		return models.ApprovalStatusRejected
	case pending == 0:
		return models.ApprovalStatusApproved
	case approved > 0:
		return models.ApprovalStatusPartiallyApproved
	default:
		return models.ApprovalStatusPending
	}
}
