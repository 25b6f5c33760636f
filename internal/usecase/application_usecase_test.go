package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talentx/internal/domain/engagement"
	"talentx/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505"}
}

func newApplicationFixture() (*Application, *mockJobRepo, *mockApplicationRepo, *mockInvitationRepo, *mockNotifier) {
	jobs := &mockJobRepo{postings: map[uuid.UUID]job.Posting{}}
	apps := &mockApplicationRepo{apps: map[uuid.UUID]engagement.Application{}}
	invs := &mockInvitationRepo{invs: map[uuid.UUID]engagement.Invitation{}}
	notifier := &mockNotifier{}
	uc := NewApplicationUsecase(apps, invs, jobs, notifier, nil)
	return uc, jobs, apps, invs, notifier
}

func TestApplicationCreate_JobNotFound(t *testing.T) {
	uc, _, _, _, _ := newApplicationFixture()

	_, err := uc.Create(context.Background(), uuid.New(), CreateApplicationInput{JobID: uuid.New()})
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApplicationCreate_DeadlinePassed(t *testing.T) {
	uc, jobs, _, _, _ := newApplicationFixture()

	jobID := uuid.New()
	past := time.Now().Add(-time.Hour)
	jobs.postings[jobID] = job.Posting{ID: jobID, EmployerID: uuid.New(), ApplicationDeadline: &past}

	_, err := uc.Create(context.Background(), uuid.New(), CreateApplicationInput{JobID: jobID})
	if !errors.Is(err, ErrDeadlinePassed) {
		t.Fatalf("expected ErrDeadlinePassed, got %v", err)
	}
}

func TestApplicationCreate_Manual(t *testing.T) {
	uc, jobs, apps, _, notifier := newApplicationFixture()

	jobID := uuid.New()
	talentID := uuid.New()
	jobs.postings[jobID] = job.Posting{ID: jobID, EmployerID: uuid.New()}

	created, err := uc.Create(context.Background(), talentID, CreateApplicationInput{JobID: jobID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Source != engagement.SourceManual {
		t.Fatalf("expected manual source, got %s", created.Source)
	}
	if created.Status != engagement.ApplicationPending {
		t.Fatalf("expected pending status, got %s", created.Status)
	}
	if created.InvitationID != nil {
		t.Fatal("manual application must not carry an invitation id")
	}
	if len(apps.created) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(apps.created))
	}
	if notifier.appSubmitted != 1 {
		t.Fatalf("expected 1 submission event, got %d", notifier.appSubmitted)
	}
}

func TestApplicationCreate_DuplicateFromUniqueIndex(t *testing.T) {
	uc, jobs, apps, _, _ := newApplicationFixture()

	jobID := uuid.New()
	jobs.postings[jobID] = job.Posting{ID: jobID, EmployerID: uuid.New()}
	apps.createErr = uniqueViolation()

	_, err := uc.Create(context.Background(), uuid.New(), CreateApplicationInput{JobID: jobID})
	if !errors.Is(err, ErrDuplicateApplication) {
		t.Fatalf("expected ErrDuplicateApplication, got %v", err)
	}
}

func TestApplicationCreate_InvitationMismatch(t *testing.T) {
	uc, jobs, _, invs, _ := newApplicationFixture()

	jobID := uuid.New()
	talentID := uuid.New()
	jobs.postings[jobID] = job.Posting{ID: jobID, EmployerID: uuid.New()}

	invID := uuid.New()
	invs.invs[invID] = engagement.Invitation{
		ID:       invID,
		JobID:    uuid.New(), // different job
		TalentID: talentID,
		Status:   engagement.InvitationPending,
	}

	_, err := uc.Create(context.Background(), talentID, CreateApplicationInput{JobID: jobID, InvitationID: &invID})
	if !errors.Is(err, ErrInvalidInvitation) {
		t.Fatalf("expected ErrInvalidInvitation, got %v", err)
	}
}

func TestApplicationCreate_FromInvitation(t *testing.T) {
	uc, jobs, apps, invs, _ := newApplicationFixture()

	jobID := uuid.New()
	talentID := uuid.New()
	jobs.postings[jobID] = job.Posting{ID: jobID, EmployerID: uuid.New()}

	invID := uuid.New()
	invs.invs[invID] = engagement.Invitation{
		ID:       invID,
		JobID:    jobID,
		TalentID: talentID,
		Status:   engagement.InvitationPending,
	}

	created, err := uc.Create(context.Background(), talentID, CreateApplicationInput{JobID: jobID, InvitationID: &invID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Source != engagement.SourceInvitation {
		t.Fatalf("expected invitation source, got %s", created.Source)
	}
	if created.InvitationID == nil || *created.InvitationID != invID {
		t.Fatal("expected invitation id on the application")
	}
	if len(apps.converted) != 1 || len(apps.created) != 0 {
		t.Fatal("expected the transactional conversion path, not a plain insert")
	}
}

func TestApplicationUpdateStatus_AccessDenied(t *testing.T) {
	uc, jobs, apps, _, _ := newApplicationFixture()

	jobID := uuid.New()
	appID := uuid.New()
	jobs.postings[jobID] = job.Posting{ID: jobID, EmployerID: uuid.New()}
	apps.apps[appID] = engagement.Application{ID: appID, JobID: jobID, Status: engagement.ApplicationPending}

	_, err := uc.UpdateStatus(context.Background(), uuid.New(), appID, "reviewed")
	if !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}

func TestApplicationUpdateStatus_IllegalTransition(t *testing.T) {
	uc, jobs, apps, _, _ := newApplicationFixture()

	employerID := uuid.New()
	jobID := uuid.New()
	appID := uuid.New()
	jobs.postings[jobID] = job.Posting{ID: jobID, EmployerID: employerID}
	apps.apps[appID] = engagement.Application{ID: appID, JobID: jobID, Status: engagement.ApplicationAccepted}

	_, err := uc.UpdateStatus(context.Background(), employerID, appID, "pending")
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestApplicationUpdateStatus_DirectDecision(t *testing.T) {
	uc, jobs, apps, _, notifier := newApplicationFixture()

	employerID := uuid.New()
	jobID := uuid.New()
	appID := uuid.New()
	jobs.postings[jobID] = job.Posting{ID: jobID, EmployerID: employerID}
	apps.apps[appID] = engagement.Application{ID: appID, JobID: jobID, Status: engagement.ApplicationPending}

	// Review is optional; pending may be decided directly.
	updated, err := uc.UpdateStatus(context.Background(), employerID, appID, "accepted")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != engagement.ApplicationAccepted {
		t.Fatalf("expected accepted, got %s", updated.Status)
	}
	if notifier.appStatusChanged != 1 {
		t.Fatalf("expected 1 status event, got %d", notifier.appStatusChanged)
	}
}

func TestApplicationWithdraw_OwnershipEnforced(t *testing.T) {
	uc, _, apps, _, _ := newApplicationFixture()

	appID := uuid.New()
	owner := uuid.New()
	apps.apps[appID] = engagement.Application{ID: appID, TalentID: owner, Status: engagement.ApplicationPending}

	if err := uc.Withdraw(context.Background(), uuid.New(), appID); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}

	if err := uc.Withdraw(context.Background(), owner, appID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(apps.deleted) != 1 {
		t.Fatalf("expected 1 deletion, got %d", len(apps.deleted))
	}
}

func TestApplicationListForJob_AccessDenied(t *testing.T) {
	uc, jobs, _, _, _ := newApplicationFixture()

	jobID := uuid.New()
	jobs.postings[jobID] = job.Posting{ID: jobID, EmployerID: uuid.New()}

	_, err := uc.ListForJob(context.Background(), uuid.New(), jobID)
	if !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}
