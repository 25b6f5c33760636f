package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"talentx/internal/domain/engagement"
	"talentx/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInvitationNotFound  = errors.New("invitation not found")
	ErrDuplicateInvitation = errors.New("invitation already exists")
	ErrTalentNotFound      = errors.New("talent not found")
)

type InvitationUsecase interface {
	Create(ctx context.Context, employerID, jobID, talentID uuid.UUID) (engagement.Invitation, error)
	// Respond moves a pending invitation to accepted or declined exactly
	// once. Accepting also creates the application; the two writes commit
	// atomically or not at all.
	Respond(ctx context.Context, talentID, invitationID uuid.UUID, decision string) (engagement.Invitation, error)
	ListForTalent(ctx context.Context, talentID uuid.UUID) ([]engagement.Invitation, error)
	ListSent(ctx context.Context, employerID uuid.UUID) ([]engagement.Invitation, error)
	TalentStats(ctx context.Context, talentID uuid.UUID) (repository.InvitationStats, error)
}

type Invitation struct {
	invitations repository.InvitationRepository
	apps        repository.ApplicationRepository
	jobs        repository.JobRepository
	notifier    EngagementNotifier
	logger      *log.Logger

	now func() time.Time
}

func NewInvitationUsecase(
	invitations repository.InvitationRepository,
	apps repository.ApplicationRepository,
	jobs repository.JobRepository,
	notifier EngagementNotifier,
	logger *log.Logger,
) *Invitation {
	return &Invitation{
		invitations: invitations,
		apps:        apps,
		jobs:        jobs,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

func (u *Invitation) Create(ctx context.Context, employerID, jobID, talentID uuid.UUID) (engagement.Invitation, error) {
	if employerID == uuid.Nil || jobID == uuid.Nil || talentID == uuid.Nil {
		return engagement.Invitation{}, ErrInvalidInput
	}

	posting, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return engagement.Invitation{}, ErrJobNotFound
		}
		return engagement.Invitation{}, ErrInternal
	}
	if posting.EmployerID != employerID {
		return engagement.Invitation{}, ErrAccessDenied
	}

	created, err := u.invitations.Create(ctx, engagement.Invitation{
		JobID:      jobID,
		EmployerID: employerID,
		TalentID:   talentID,
		Status:     engagement.InvitationPending,
	})
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return engagement.Invitation{}, ErrDuplicateInvitation
		case isForeignKeyViolation(err):
			return engagement.Invitation{}, ErrTalentNotFound
		default:
			return engagement.Invitation{}, ErrInternal
		}
	}

	if u.notifier != nil {
		u.notifier.InvitationCreated(created)
	}
	return created, nil
}

func (u *Invitation) Respond(ctx context.Context, talentID, invitationID uuid.UUID, decision string) (engagement.Invitation, error) {
	if talentID == uuid.Nil || invitationID == uuid.Nil {
		return engagement.Invitation{}, ErrInvalidInput
	}
	target, ok := engagement.ParseInvitationDecision(decision)
	if !ok {
		return engagement.Invitation{}, ErrInvalidInput
	}

	inv, err := u.invitations.FindByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, repository.ErrInvitationNotFound) {
			return engagement.Invitation{}, ErrInvitationNotFound
		}
		return engagement.Invitation{}, ErrInternal
	}
	if inv.TalentID != talentID {
		// Do not leak other talents' invitations.
		return engagement.Invitation{}, ErrInvitationNotFound
	}
	if inv.Status != engagement.InvitationPending {
		return engagement.Invitation{}, ErrInvalidState
	}

	if target == engagement.InvitationDeclined {
		updated, err := u.invitations.UpdateStatus(ctx, invitationID, engagement.InvitationDeclined)
		if err != nil {
			if errors.Is(err, repository.ErrInvitationNotPending) {
				return engagement.Invitation{}, ErrInvalidState
			}
			return engagement.Invitation{}, ErrInternal
		}
		if u.notifier != nil {
			u.notifier.InvitationResponded(updated)
		}
		return updated, nil
	}

	return u.accept(ctx, inv)
}

// accept flips the invitation and inserts the application as one unit.
// A job that vanished underneath the invitation counts as closed.
func (u *Invitation) accept(ctx context.Context, inv engagement.Invitation) (engagement.Invitation, error) {
	posting, err := u.jobs.FindByID(ctx, inv.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return engagement.Invitation{}, ErrDeadlinePassed
		}
		return engagement.Invitation{}, ErrInternal
	}
	if !posting.Open(u.now()) {
		return engagement.Invitation{}, ErrDeadlinePassed
	}

	invitationID := inv.ID
	_, err = u.apps.CreateFromInvitation(ctx, engagement.Application{
		JobID:        inv.JobID,
		TalentID:     inv.TalentID,
		Source:       engagement.SourceInvitation,
		InvitationID: &invitationID,
		Status:       engagement.ApplicationPending,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvitationNotPending):
			return engagement.Invitation{}, ErrInvalidState
		case isUniqueViolation(err):
			// The transaction rolled back; the invitation is still pending.
			return engagement.Invitation{}, ErrDuplicateApplication
		default:
			return engagement.Invitation{}, ErrInternal
		}
	}

	inv.Status = engagement.InvitationAccepted
	if u.notifier != nil {
		u.notifier.InvitationResponded(inv)
	}
	return inv, nil
}

func (u *Invitation) ListForTalent(ctx context.Context, talentID uuid.UUID) ([]engagement.Invitation, error) {
	if talentID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	invs, err := u.invitations.ListByTalent(ctx, talentID)
	if err != nil {
		return nil, ErrInternal
	}
	return invs, nil
}

func (u *Invitation) ListSent(ctx context.Context, employerID uuid.UUID) ([]engagement.Invitation, error) {
	if employerID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	invs, err := u.invitations.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, ErrInternal
	}
	return invs, nil
}

func (u *Invitation) TalentStats(ctx context.Context, talentID uuid.UUID) (repository.InvitationStats, error) {
	if talentID == uuid.Nil {
		return repository.InvitationStats{}, ErrInvalidInput
	}
	stats, err := u.invitations.StatsByTalent(ctx, talentID)
	if err != nil {
		return repository.InvitationStats{}, ErrInternal
	}
	return stats, nil
}
