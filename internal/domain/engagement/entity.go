package engagement

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationSource string

const (
	SourceManual     ApplicationSource = "manual"
	SourceInvitation ApplicationSource = "invitation"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationReviewed ApplicationStatus = "reviewed"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
)

// Application is a talent's bid for a job, created manually or by accepting
// an invitation. InvitationID is set iff Source is SourceInvitation. At most
// one application may exist per (job, talent); the store enforces that with
// a unique index.
type Application struct {
	ID           uuid.UUID
	JobID        uuid.UUID
	TalentID     uuid.UUID
	Source       ApplicationSource
	InvitationID *uuid.UUID
	Status       ApplicationStatus
	CreatedAt    time.Time
}

// Invitation is an employer-initiated request for a specific talent to apply.
// It transitions out of pending exactly once.
type Invitation struct {
	ID         uuid.UUID
	JobID      uuid.UUID
	EmployerID uuid.UUID
	TalentID   uuid.UUID
	Status     InvitationStatus
	CreatedAt  time.Time
}

// ParseApplicationStatus validates an employer-supplied status string.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	switch ApplicationStatus(s) {
	case ApplicationPending, ApplicationReviewed, ApplicationAccepted, ApplicationRejected:
		return ApplicationStatus(s), true
	default:
		return "", false
	}
}

// ParseInvitationDecision validates a talent's response to an invitation.
func ParseInvitationDecision(s string) (InvitationStatus, bool) {
	switch InvitationStatus(s) {
	case InvitationAccepted, InvitationDeclined:
		return InvitationStatus(s), true
	default:
		return "", false
	}
}

// CanTransition reports whether an employer may move an application from one
// status to another. Review is optional: pending may be decided directly.
// Accepted and rejected are terminal.
func CanTransition(from, to ApplicationStatus) bool {
	switch from {
	case ApplicationPending:
		return to == ApplicationReviewed || to == ApplicationAccepted || to == ApplicationRejected
	case ApplicationReviewed:
		return to == ApplicationAccepted || to == ApplicationRejected
	default:
		return false
	}
}
