// Package workflow holds the offer status rules: which statuses allow which
// actions, and which transitions exist.
//
// The gates below are literal tables. They are not derived from each other
// nor from any ordering of the statuses: the business rules are not monotonic
// (validated is neither editable nor classifiable as without follow-up).
package workflow

import (
	"slices"

	"leasing_offers/internal/domain/entities"
)

// editableStatuses is an allow-list: equipment is frozen once the leaser has
// approved, not merely once the offer was sent.
var editableStatuses = map[entities.WorkflowStatus]bool{
	entities.StatusDraft:                 true,
	entities.StatusSent:                  true,
	entities.StatusOfferSend:             true,
	entities.StatusInternalReview:        true,
	entities.StatusInternalApproved:      true,
	entities.StatusInternalDocsRequested: true,
	entities.StatusLeaserReview:          true,
	entities.StatusLeaserIntroduced:      true,
}

// noFollowUpDenied is a deny-list, independent from editableStatuses.
var noFollowUpDenied = map[entities.WorkflowStatus]bool{
	entities.StatusWithoutFollowUp:  true,
	entities.StatusInternalRejected: true,
	entities.StatusLeaserRejected:   true,
	entities.StatusValidated:        true,
	entities.StatusFinanced:         true,
	entities.StatusSigned:           true,
	entities.StatusCompleted:        true,
	entities.StatusContractSent:     true,
}

var googleReviewStatuses = map[entities.WorkflowStatus]bool{
	entities.StatusValidated:    true,
	entities.StatusSigned:       true,
	entities.StatusCompleted:    true,
	entities.StatusFinanced:     true,
	entities.StatusContractSent: true,
}

var reactivationTargets = map[entities.WorkflowStatus]bool{
	entities.StatusDraft:          true,
	entities.StatusSent:           true,
	entities.StatusInternalReview: true,
}

// commissionStatuses are the statuses whose entry creates the ambassador commission.
var commissionStatuses = map[entities.WorkflowStatus]bool{
	entities.StatusLeaserReview: true,
	entities.StatusValidated:    true,
}

func IsEditableStatus(s entities.WorkflowStatus) bool {
	return editableStatuses[s]
}

// EditableStatuses lists the editable statuses in a stable order.
func EditableStatuses() []entities.WorkflowStatus {
	keys := make([]entities.WorkflowStatus, 0, len(editableStatuses))
	for k := range editableStatuses {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// CanEdit reports whether the offer's equipment and figures may still change.
func CanEdit(o entities.Offer) bool {
	return IsEditableStatus(o.WorkflowStatus)
}

// IsNoFollowUpAllowed is true for every known status outside the deny-list.
// Unknown statuses are refused.
func IsNoFollowUpAllowed(s entities.WorkflowStatus) bool {
	return s.Valid() && !noFollowUpDenied[s]
}

// CanClassifyNoFollowUp reports whether the offer may be parked as without follow-up.
func CanClassifyNoFollowUp(o entities.Offer) bool {
	return IsNoFollowUpAllowed(o.WorkflowStatus)
}

// CanSendGoogleReviewRequest gates the review-request notification. It is not a
// transition.
func CanSendGoogleReviewRequest(o entities.Offer) bool {
	return googleReviewStatuses[o.WorkflowStatus]
}

func IsReactivationTarget(s entities.WorkflowStatus) bool {
	return reactivationTargets[s]
}

// TriggersCommission reports whether entering s creates the ambassador commission.
func TriggersCommission(s entities.WorkflowStatus) bool {
	return commissionStatuses[s]
}
