package usecase

import (
	"context"
	"encoding/json"
	"time"

	"talentx/internal/domain/engagement"
	"talentx/internal/domain/job"
	"talentx/internal/domain/talent"
	"talentx/internal/infrastructure/ai"
	"talentx/internal/repository"

	"github.com/google/uuid"
)

type mockJobRepo struct {
	postings map[uuid.UUID]job.Posting
	open     []job.Posting
	err      error
}

func (m *mockJobRepo) FindByID(_ context.Context, id uuid.UUID) (job.Posting, error) {
	if m.err != nil {
		return job.Posting{}, m.err
	}
	p, ok := m.postings[id]
	if !ok {
		return job.Posting{}, repository.ErrJobNotFound
	}
	return p, nil
}

func (m *mockJobRepo) ListOpen(_ context.Context, _ uuid.UUID) ([]job.Posting, error) {
	return m.open, m.err
}

type mockProfileRepo struct {
	profiles map[uuid.UUID]talent.Profile
	list     []talent.Profile
	err      error
}

func (m *mockProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (talent.Profile, error) {
	if m.err != nil {
		return talent.Profile{}, m.err
	}
	p, ok := m.profiles[userID]
	if !ok {
		return talent.Profile{}, repository.ErrProfileNotFound
	}
	return p, nil
}

func (m *mockProfileRepo) ListExcept(_ context.Context, exclude uuid.UUID) ([]talent.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]talent.Profile, 0, len(m.list))
	for _, p := range m.list {
		if p.UserID != exclude {
			out = append(out, p)
		}
	}
	return out, nil
}

type mockApplicationRepo struct {
	apps map[uuid.UUID]engagement.Application

	createErr  error
	convertErr error
	updateErr  error
	deleteErr  error

	created   []engagement.Application
	converted []engagement.Application
	deleted   []uuid.UUID
}

func (m *mockApplicationRepo) Create(_ context.Context, app engagement.Application) (engagement.Application, error) {
	if m.createErr != nil {
		return engagement.Application{}, m.createErr
	}
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	m.created = append(m.created, app)
	return app, nil
}

func (m *mockApplicationRepo) CreateFromInvitation(_ context.Context, app engagement.Application) (engagement.Application, error) {
	if m.convertErr != nil {
		return engagement.Application{}, m.convertErr
	}
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	m.converted = append(m.converted, app)
	return app, nil
}

func (m *mockApplicationRepo) FindByID(_ context.Context, id uuid.UUID) (engagement.Application, error) {
	app, ok := m.apps[id]
	if !ok {
		return engagement.Application{}, repository.ErrApplicationNotFound
	}
	return app, nil
}

func (m *mockApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to engagement.ApplicationStatus) (engagement.Application, error) {
	if m.updateErr != nil {
		return engagement.Application{}, m.updateErr
	}
	app, ok := m.apps[id]
	if !ok || app.Status != from {
		return engagement.Application{}, repository.ErrApplicationNotFound
	}
	app.Status = to
	m.apps[id] = app
	return app, nil
}

func (m *mockApplicationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.apps[id]; !ok {
		return repository.ErrApplicationNotFound
	}
	delete(m.apps, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockApplicationRepo) ListByJob(_ context.Context, _ uuid.UUID) ([]engagement.Application, error) {
	return nil, nil
}

func (m *mockApplicationRepo) ListByTalent(_ context.Context, _ uuid.UUID) ([]engagement.Application, error) {
	return nil, nil
}

func (m *mockApplicationRepo) CountByEmployerJobs(_ context.Context, _ uuid.UUID) ([]repository.JobApplicationCount, error) {
	return nil, nil
}

type mockInvitationRepo struct {
	invs map[uuid.UUID]engagement.Invitation

	createErr error
	updateErr error

	created []engagement.Invitation
	updated []engagement.Invitation
}

func (m *mockInvitationRepo) Create(_ context.Context, inv engagement.Invitation) (engagement.Invitation, error) {
	if m.createErr != nil {
		return engagement.Invitation{}, m.createErr
	}
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	m.created = append(m.created, inv)
	return inv, nil
}

func (m *mockInvitationRepo) FindByID(_ context.Context, id uuid.UUID) (engagement.Invitation, error) {
	inv, ok := m.invs[id]
	if !ok {
		return engagement.Invitation{}, repository.ErrInvitationNotFound
	}
	return inv, nil
}

func (m *mockInvitationRepo) UpdateStatus(_ context.Context, id uuid.UUID, to engagement.InvitationStatus) (engagement.Invitation, error) {
	if m.updateErr != nil {
		return engagement.Invitation{}, m.updateErr
	}
	inv, ok := m.invs[id]
	if !ok || inv.Status != engagement.InvitationPending {
		return engagement.Invitation{}, repository.ErrInvitationNotPending
	}
	inv.Status = to
	m.invs[id] = inv
	m.updated = append(m.updated, inv)
	return inv, nil
}

func (m *mockInvitationRepo) ListByTalent(_ context.Context, _ uuid.UUID) ([]engagement.Invitation, error) {
	return nil, nil
}

func (m *mockInvitationRepo) ListByEmployer(_ context.Context, _ uuid.UUID) ([]engagement.Invitation, error) {
	return nil, nil
}

func (m *mockInvitationRepo) StatsByTalent(_ context.Context, _ uuid.UUID) (repository.InvitationStats, error) {
	return repository.InvitationStats{}, nil
}

type mockNotifier struct {
	invitationCreated   int
	invitationResponded int
	appSubmitted        int
	appStatusChanged    int
}

func (m *mockNotifier) InvitationCreated(engagement.Invitation) { m.invitationCreated++ }

func (m *mockNotifier) InvitationResponded(engagement.Invitation) { m.invitationResponded++ }

func (m *mockNotifier) ApplicationSubmitted(engagement.Application) { m.appSubmitted++ }

func (m *mockNotifier) ApplicationStatusChanged(engagement.Application) { m.appStatusChanged++ }

type mockDelegate struct {
	score int
	err   error
	calls int
}

func (m *mockDelegate) MatchScore(_ context.Context, _ ai.ScoreRequest) (int, error) {
	m.calls++
	if m.err != nil {
		return 0, m.err
	}
	return m.score, nil
}

type mockRankingCache struct {
	entries map[string][]byte
	getErr  error
	setErr  error
	sets    int
}

func (m *mockRankingCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if m.getErr != nil {
		return false, m.getErr
	}
	b, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockRankingCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if m.entries == nil {
		m.entries = map[string][]byte{}
	}
	m.entries[key] = b
	m.sets++
	return nil
}
