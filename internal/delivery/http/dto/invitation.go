package dto

import (
	"time"

	"talentx/internal/domain/engagement"

	"github.com/google/uuid"
)

type CreateInvitationRequest struct {
	JobID    uuid.UUID `json:"job_id"`
	TalentID uuid.UUID `json:"talent_id"`
}

// RespondInvitationRequest carries the talent's answer. The wire field is
// "status": the client names the status it wants the invitation to take.
type RespondInvitationRequest struct {
	Status string `json:"status"`
}

type InvitationResponse struct {
	ID         uuid.UUID `json:"id"`
	JobID      uuid.UUID `json:"job_id"`
	EmployerID uuid.UUID `json:"employer_id"`
	TalentID   uuid.UUID `json:"talent_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewInvitationResponse(inv engagement.Invitation) InvitationResponse {
	return InvitationResponse{
		ID:         inv.ID,
		JobID:      inv.JobID,
		EmployerID: inv.EmployerID,
		TalentID:   inv.TalentID,
		Status:     string(inv.Status),
		CreatedAt:  inv.CreatedAt,
	}
}

func NewInvitationListResponse(invs []engagement.Invitation) []InvitationResponse {
	out := make([]InvitationResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, NewInvitationResponse(inv))
	}
	return out
}

type InvitationStatsResponse struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Declined int `json:"declined"`
}
