package entities

// WorkflowStatus is the position of an offer in its multi-party approval lifecycle.
//
// Domain notes:
//   - The values are persisted as-is and shared with the portals, so they are
//     never renamed.
//   - offer_send and leaser_introduced are older spellings still produced by the
//     partner and ambassador portals; they are first-class statuses here.

type WorkflowStatus string

const (
	StatusDraft                 WorkflowStatus = "draft"
	StatusSent                  WorkflowStatus = "sent"
	StatusOfferSend             WorkflowStatus = "offer_send"
	StatusInfoRequested         WorkflowStatus = "info_requested"
	StatusInternalReview        WorkflowStatus = "internal_review"
	StatusInternalApproved      WorkflowStatus = "internal_approved"
	StatusInternalDocsRequested WorkflowStatus = "internal_docs_requested"
	StatusInternalRejected      WorkflowStatus = "internal_rejected"
	StatusLeaserIntroduced      WorkflowStatus = "leaser_introduced"
	StatusLeaserReview          WorkflowStatus = "leaser_review"
	StatusLeaserApproved        WorkflowStatus = "leaser_approved"
	StatusLeaserDocsRequested   WorkflowStatus = "leaser_docs_requested"
	StatusLeaserRejected        WorkflowStatus = "leaser_rejected"
	StatusValidated             WorkflowStatus = "validated"
	StatusFinanced              WorkflowStatus = "financed"
	StatusContractSent          WorkflowStatus = "contract_sent"
	StatusSigned                WorkflowStatus = "signed"
	StatusCompleted             WorkflowStatus = "completed"
	StatusRejected              WorkflowStatus = "rejected"
	StatusWithoutFollowUp       WorkflowStatus = "without_follow_up"
)

// AllWorkflowStatuses lists every known status in lifecycle order.
var AllWorkflowStatuses = []WorkflowStatus{
	StatusDraft,
	StatusSent,
	StatusOfferSend,
	StatusInfoRequested,
	StatusInternalReview,
	StatusInternalApproved,
	StatusInternalDocsRequested,
	StatusInternalRejected,
	StatusLeaserIntroduced,
	StatusLeaserReview,
	StatusLeaserApproved,
	StatusLeaserDocsRequested,
	StatusLeaserRejected,
	StatusValidated,
	StatusFinanced,
	StatusContractSent,
	StatusSigned,
	StatusCompleted,
	StatusRejected,
	StatusWithoutFollowUp,
}

func (s WorkflowStatus) Valid() bool {
	for _, known := range AllWorkflowStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Score is the tri-state outcome of an internal or leaser review.
type Score string

const (
	ScoreA Score = "A"
	ScoreB Score = "B"
	ScoreC Score = "C"
)

func (s Score) Valid() bool {
	return s == ScoreA || s == ScoreB || s == ScoreC
}
