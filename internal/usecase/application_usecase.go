package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"talentx/internal/domain/engagement"
	"talentx/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrJobNotFound          = errors.New("job not found")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrAccessDenied         = errors.New("access denied")
	ErrDuplicateApplication = errors.New("already applied to this job")
	ErrDeadlinePassed       = errors.New("application deadline has passed")
	ErrInvalidInvitation    = errors.New("invalid invitation")
	ErrInvalidState         = errors.New("invalid state transition")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInternal             = errors.New("internal error")
)

type CreateApplicationInput struct {
	JobID        uuid.UUID
	InvitationID *uuid.UUID
}

type ApplicationUsecase interface {
	Create(ctx context.Context, talentID uuid.UUID, in CreateApplicationInput) (engagement.Application, error)
	UpdateStatus(ctx context.Context, employerID, applicationID uuid.UUID, newStatus string) (engagement.Application, error)
	Withdraw(ctx context.Context, talentID, applicationID uuid.UUID) error
	ListForJob(ctx context.Context, employerID, jobID uuid.UUID) ([]engagement.Application, error)
	ListForTalent(ctx context.Context, talentID uuid.UUID) ([]engagement.Application, error)
	EmployerStats(ctx context.Context, employerID uuid.UUID) ([]repository.JobApplicationCount, error)
}

type Application struct {
	apps        repository.ApplicationRepository
	invitations repository.InvitationRepository
	jobs        repository.JobRepository
	notifier    EngagementNotifier
	logger      *log.Logger

	now func() time.Time
}

func NewApplicationUsecase(
	apps repository.ApplicationRepository,
	invitations repository.InvitationRepository,
	jobs repository.JobRepository,
	notifier EngagementNotifier,
	logger *log.Logger,
) *Application {
	return &Application{
		apps:        apps,
		invitations: invitations,
		jobs:        jobs,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

// Create submits an application, either manual or by accepting an invitation.
// The duplicate check is the store's unique index, not a pre-read: under
// concurrent submits for the same (job, talent) exactly one insert wins and
// the rest surface ErrDuplicateApplication.
func (u *Application) Create(ctx context.Context, talentID uuid.UUID, in CreateApplicationInput) (engagement.Application, error) {
	if talentID == uuid.Nil || in.JobID == uuid.Nil {
		return engagement.Application{}, ErrInvalidInput
	}

	posting, err := u.jobs.FindByID(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return engagement.Application{}, ErrJobNotFound
		}
		return engagement.Application{}, ErrInternal
	}
	if !posting.Open(u.now()) {
		return engagement.Application{}, ErrDeadlinePassed
	}

	app := engagement.Application{
		JobID:    in.JobID,
		TalentID: talentID,
		Source:   engagement.SourceManual,
		Status:   engagement.ApplicationPending,
	}

	if in.InvitationID != nil {
		inv, err := u.invitations.FindByID(ctx, *in.InvitationID)
		if err != nil {
			if errors.Is(err, repository.ErrInvitationNotFound) {
				return engagement.Application{}, ErrInvalidInvitation
			}
			return engagement.Application{}, ErrInternal
		}
		if inv.JobID != in.JobID || inv.TalentID != talentID || inv.Status != engagement.InvitationPending {
			return engagement.Application{}, ErrInvalidInvitation
		}

		app.Source = engagement.SourceInvitation
		app.InvitationID = in.InvitationID

		created, err := u.apps.CreateFromInvitation(ctx, app)
		if err != nil {
			return engagement.Application{}, u.mapConversionError(err)
		}
		u.notifySubmitted(created)
		return created, nil
	}

	created, err := u.apps.Create(ctx, app)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return engagement.Application{}, ErrDuplicateApplication
		case isForeignKeyViolation(err):
			// Job row vanished between the read and the insert; the job is
			// closed as far as this talent is concerned.
			return engagement.Application{}, ErrJobNotFound
		default:
			return engagement.Application{}, ErrInternal
		}
	}
	u.notifySubmitted(created)
	return created, nil
}

func (u *Application) UpdateStatus(ctx context.Context, employerID, applicationID uuid.UUID, newStatus string) (engagement.Application, error) {
	if employerID == uuid.Nil || applicationID == uuid.Nil {
		return engagement.Application{}, ErrInvalidInput
	}
	target, ok := engagement.ParseApplicationStatus(newStatus)
	if !ok {
		return engagement.Application{}, ErrInvalidInput
	}

	app, err := u.apps.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return engagement.Application{}, ErrApplicationNotFound
		}
		return engagement.Application{}, ErrInternal
	}

	posting, err := u.jobs.FindByID(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return engagement.Application{}, ErrJobNotFound
		}
		return engagement.Application{}, ErrInternal
	}
	if posting.EmployerID != employerID {
		return engagement.Application{}, ErrAccessDenied
	}

	if !engagement.CanTransition(app.Status, target) {
		return engagement.Application{}, ErrInvalidState
	}

	// Conditional update: if a concurrent decision moved the row first, the
	// transition is no longer valid and the caller must re-read.
	updated, err := u.apps.UpdateStatus(ctx, applicationID, app.Status, target)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return engagement.Application{}, ErrInvalidState
		}
		return engagement.Application{}, ErrInternal
	}
	if u.notifier != nil {
		u.notifier.ApplicationStatusChanged(updated)
	}
	return updated, nil
}

// Withdraw deletes the application outright; the talent relinquishes all
// rights to it and may apply again later.
func (u *Application) Withdraw(ctx context.Context, talentID, applicationID uuid.UUID) error {
	if talentID == uuid.Nil || applicationID == uuid.Nil {
		return ErrInvalidInput
	}

	app, err := u.apps.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return ErrApplicationNotFound
		}
		return ErrInternal
	}
	if app.TalentID != talentID {
		return ErrAccessDenied
	}

	if err := u.apps.Delete(ctx, applicationID); err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return ErrApplicationNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Application) ListForJob(ctx context.Context, employerID, jobID uuid.UUID) ([]engagement.Application, error) {
	if employerID == uuid.Nil || jobID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	posting, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrInternal
	}
	if posting.EmployerID != employerID {
		return nil, ErrAccessDenied
	}

	apps, err := u.apps.ListByJob(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	return apps, nil
}

func (u *Application) ListForTalent(ctx context.Context, talentID uuid.UUID) ([]engagement.Application, error) {
	if talentID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	apps, err := u.apps.ListByTalent(ctx, talentID)
	if err != nil {
		return nil, ErrInternal
	}
	return apps, nil
}

func (u *Application) EmployerStats(ctx context.Context, employerID uuid.UUID) ([]repository.JobApplicationCount, error) {
	if employerID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	counts, err := u.apps.CountByEmployerJobs(ctx, employerID)
	if err != nil {
		return nil, ErrInternal
	}
	return counts, nil
}

func (u *Application) mapConversionError(err error) error {
	switch {
	case errors.Is(err, repository.ErrInvitationNotPending):
		return ErrInvalidInvitation
	case isUniqueViolation(err):
		// The whole conversion rolled back: the invitation is still pending
		// and the existing application stands.
		return ErrDuplicateApplication
	default:
		return ErrInternal
	}
}

func (u *Application) notifySubmitted(app engagement.Application) {
	if u.notifier != nil {
		u.notifier.ApplicationSubmitted(app)
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
