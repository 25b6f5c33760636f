package job

import (
	"time"

	"github.com/google/uuid"
)

// Posting is the engine's read-only view of a job. Posting rows are owned by
// the external job CRUD path; the engine never writes them.
type Posting struct {
	ID                  uuid.UUID
	EmployerID          uuid.UUID
	Title               string
	CompanyName         string
	RequiredSkills      []string
	Description         string
	ApplicationDeadline *time.Time
	CreatedAt           time.Time
}

// Open reports whether the posting still accepts applications at the given
// instant.
func (p Posting) Open(now time.Time) bool {
	return p.ApplicationDeadline == nil || p.ApplicationDeadline.After(now)
}
