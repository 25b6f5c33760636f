package dto

import (
	"time"

	"talentx/internal/domain/engagement"

	"github.com/google/uuid"
)

type CreateApplicationRequest struct {
	JobID        uuid.UUID  `json:"job_id"`
	InvitationID *uuid.UUID `json:"invitation_id,omitempty"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status"`
}

type ApplicationResponse struct {
	ID           uuid.UUID  `json:"id"`
	JobID        uuid.UUID  `json:"job_id"`
	TalentID     uuid.UUID  `json:"talent_id"`
	Source       string     `json:"source"`
	InvitationID *uuid.UUID `json:"invitation_id,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

func NewApplicationResponse(app engagement.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:           app.ID,
		JobID:        app.JobID,
		TalentID:     app.TalentID,
		Source:       string(app.Source),
		InvitationID: app.InvitationID,
		Status:       string(app.Status),
		CreatedAt:    app.CreatedAt,
	}
}

func NewApplicationListResponse(apps []engagement.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, NewApplicationResponse(app))
	}
	return out
}

type JobApplicationCountResponse struct {
	JobID        uuid.UUID `json:"job_id"`
	Title        string    `json:"title"`
	Applications int       `json:"applications"`
}
