package talent

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the engine's read-only view of a job seeker.
type Profile struct {
	UserID          uuid.UUID
	Name            string
	Email           string
	Skills          []string
	ExperienceYears int
	Bio             string
	CreatedAt       time.Time
}
