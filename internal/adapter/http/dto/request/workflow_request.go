package request

import (
	"strings"

	"leasing_offers/internal/domain/entities"
)

type UpdateStatusRequest struct {
	Status         string `json:"status" binding:"required"`
	PreviousStatus string `json:"previous_status" binding:"required"`
	Reason         string `json:"reason"`
}

func (r UpdateStatusRequest) Statuses() (next, previous entities.WorkflowStatus) {
	return entities.WorkflowStatus(strings.TrimSpace(r.Status)), entities.WorkflowStatus(strings.TrimSpace(r.PreviousStatus))
}

type ScoreRequest struct {
	Score  string `json:"score" binding:"required"`
	Reason string `json:"reason"`
}

func (r ScoreRequest) ResolveScore() entities.Score {
	return entities.Score(strings.ToUpper(strings.TrimSpace(r.Score)))
}

type NoFollowUpRequest struct {
	Reason string `json:"reason"`
}

type ReactivateRequest struct {
	Status string `json:"status" binding:"required"`
}
