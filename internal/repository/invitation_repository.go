package repository

import (
	"context"
	"errors"
	"time"

	"talentx/internal/database"
	"talentx/internal/domain/engagement"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrInvitationNotFound = errors.New("invitation not found")

// InvitationStats summarizes a talent's invitations by status.
type InvitationStats struct {
	Total    int
	Pending  int
	Accepted int
	Declined int
}

type InvitationRepository interface {
	Create(ctx context.Context, inv engagement.Invitation) (engagement.Invitation, error)
	FindByID(ctx context.Context, id uuid.UUID) (engagement.Invitation, error)
	// UpdateStatus moves a pending invitation to a terminal status; it
	// returns ErrInvitationNotPending when a concurrent response won.
	UpdateStatus(ctx context.Context, id uuid.UUID, to engagement.InvitationStatus) (engagement.Invitation, error)
	ListByTalent(ctx context.Context, talentID uuid.UUID) ([]engagement.Invitation, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]engagement.Invitation, error)
	StatsByTalent(ctx context.Context, talentID uuid.UUID) (InvitationStats, error)
}

type PostgresInvitationRepository struct {
	db database.DB
}

func NewPostgresInvitationRepository(db database.DB) *PostgresInvitationRepository {
	return &PostgresInvitationRepository{db: db}
}

const invitationColumns = `id, job_id, employer_id, talent_id, status, created_at`

func (r *PostgresInvitationRepository) Create(ctx context.Context, inv engagement.Invitation) (engagement.Invitation, error) {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	if inv.Status == "" {
		inv.Status = engagement.InvitationPending
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO invitations (id, job_id, employer_id, talent_id, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		inv.ID, inv.JobID, inv.EmployerID, inv.TalentID, inv.Status, inv.CreatedAt,
	)
	if err != nil {
		return engagement.Invitation{}, err
	}
	return inv, nil
}

func (r *PostgresInvitationRepository) FindByID(ctx context.Context, id uuid.UUID) (engagement.Invitation, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE id = $1`,
		id,
	)

	inv, err := scanInvitation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return engagement.Invitation{}, ErrInvitationNotFound
		}
		return engagement.Invitation{}, err
	}
	return inv, nil
}

func (r *PostgresInvitationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, to engagement.InvitationStatus) (engagement.Invitation, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE invitations SET status = $1
		 WHERE id = $2 AND status = $3
		 RETURNING `+invitationColumns,
		to, id, engagement.InvitationPending,
	)

	inv, err := scanInvitation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return engagement.Invitation{}, ErrInvitationNotPending
		}
		return engagement.Invitation{}, err
	}
	return inv, nil
}

func (r *PostgresInvitationRepository) ListByTalent(ctx context.Context, talentID uuid.UUID) ([]engagement.Invitation, error) {
	return r.list(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE talent_id = $1 ORDER BY created_at DESC`,
		talentID,
	)
}

func (r *PostgresInvitationRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]engagement.Invitation, error) {
	return r.list(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE employer_id = $1 ORDER BY created_at DESC`,
		employerID,
	)
}

func (r *PostgresInvitationRepository) StatsByTalent(ctx context.Context, talentID uuid.UUID) (InvitationStats, error) {
	rows, err := r.db.Query(ctx,
		`SELECT status, COUNT(*) FROM invitations WHERE talent_id = $1 GROUP BY status`,
		talentID,
	)
	if err != nil {
		return InvitationStats{}, err
	}
	defer rows.Close()

	var stats InvitationStats
	for rows.Next() {
		var status engagement.InvitationStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return InvitationStats{}, err
		}
		stats.Total += count
		switch status {
		case engagement.InvitationPending:
			stats.Pending = count
		case engagement.InvitationAccepted:
			stats.Accepted = count
		case engagement.InvitationDeclined:
			stats.Declined = count
		}
	}
	if err := rows.Err(); err != nil {
		return InvitationStats{}, err
	}
	return stats, nil
}

func (r *PostgresInvitationRepository) list(ctx context.Context, query string, arg any) ([]engagement.Invitation, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]engagement.Invitation, 0)
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanInvitation(row database.Row) (engagement.Invitation, error) {
	var inv engagement.Invitation
	err := row.Scan(
		&inv.ID,
		&inv.JobID,
		&inv.EmployerID,
		&inv.TalentID,
		&inv.Status,
		&inv.CreatedAt,
	)
	return inv, err
}
