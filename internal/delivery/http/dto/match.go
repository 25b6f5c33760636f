package dto

import (
	"time"

	"talentx/internal/usecase"

	"github.com/google/uuid"
)

type TalentMatchResponse struct {
	TalentID        uuid.UUID `json:"talent_id"`
	Name            string    `json:"name"`
	Skills          []string  `json:"skills"`
	ExperienceYears int       `json:"experience_years"`
	MatchScore      int       `json:"match_score"`
}

func NewTalentMatchListResponse(matches []usecase.TalentMatch) []TalentMatchResponse {
	out := make([]TalentMatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, TalentMatchResponse{
			TalentID:        m.Profile.UserID,
			Name:            m.Profile.Name,
			Skills:          m.Profile.Skills,
			ExperienceYears: m.Profile.ExperienceYears,
			MatchScore:      m.MatchScore,
		})
	}
	return out
}

type JobMatchResponse struct {
	JobID               uuid.UUID  `json:"job_id"`
	Title               string     `json:"title"`
	CompanyName         string     `json:"company_name"`
	RequiredSkills      []string   `json:"required_skills"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	MatchScore          int        `json:"match_score"`
}

func NewJobMatchListResponse(matches []usecase.JobMatch) []JobMatchResponse {
	out := make([]JobMatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, JobMatchResponse{
			JobID:               m.Posting.ID,
			Title:               m.Posting.Title,
			CompanyName:         m.Posting.CompanyName,
			RequiredSkills:      m.Posting.RequiredSkills,
			ApplicationDeadline: m.Posting.ApplicationDeadline,
			MatchScore:          m.MatchScore,
		})
	}
	return out
}
