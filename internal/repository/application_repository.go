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

var (
	ErrApplicationNotFound = errors.New("application not found")
	// ErrInvitationNotPending is returned when the transactional conversion
	// finds the invitation already responded to.
	ErrInvitationNotPending = errors.New("invitation not pending")
)

// JobApplicationCount is one row of the employer stats view.
type JobApplicationCount struct {
	JobID        uuid.UUID
	Title        string
	Applications int
}

type ApplicationRepository interface {
	Create(ctx context.Context, app engagement.Application) (engagement.Application, error)
	// CreateFromInvitation atomically flips the referenced invitation from
	// pending to accepted and inserts the application. Either both writes
	// commit or neither does; a duplicate application rolls the status flip
	// back, leaving the invitation pending.
	CreateFromInvitation(ctx context.Context, app engagement.Application) (engagement.Application, error)
	FindByID(ctx context.Context, id uuid.UUID) (engagement.Application, error)
	// UpdateStatus applies the change only if the row is still in the
	// expected status; it returns ErrApplicationNotFound when the row is
	// gone or has moved on.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to engagement.ApplicationStatus) (engagement.Application, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]engagement.Application, error)
	ListByTalent(ctx context.Context, talentID uuid.UUID) ([]engagement.Application, error)
	CountByEmployerJobs(ctx context.Context, employerID uuid.UUID) ([]JobApplicationCount, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `id, job_id, talent_id, source, invitation_id, status, created_at`

func (r *PostgresApplicationRepository) Create(ctx context.Context, app engagement.Application) (engagement.Application, error) {
	prepareApplication(&app)

	// The unique index on (job_id, talent_id) is the duplicate arbiter; no
	// pre-check SELECT, the caller maps the unique violation.
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, job_id, talent_id, source, invitation_id, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		app.ID, app.JobID, app.TalentID, app.Source, app.InvitationID, app.Status, app.CreatedAt,
	)
	if err != nil {
		return engagement.Application{}, err
	}
	return app, nil
}

func (r *PostgresApplicationRepository) CreateFromInvitation(ctx context.Context, app engagement.Application) (engagement.Application, error) {
	if app.InvitationID == nil {
		return engagement.Application{}, errors.New("missing invitation id")
	}
	prepareApplication(&app)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return engagement.Application{}, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	// Compare-and-swap on the invitation row: zero rows means a concurrent
	// response already consumed it.
	affected, err := tx.Exec(ctx,
		`UPDATE invitations SET status = $1 WHERE id = $2 AND status = $3`,
		engagement.InvitationAccepted, *app.InvitationID, engagement.InvitationPending,
	)
	if err != nil {
		return engagement.Application{}, err
	}
	if affected == 0 {
		return engagement.Application{}, ErrInvitationNotPending
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO applications (id, job_id, talent_id, source, invitation_id, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		app.ID, app.JobID, app.TalentID, app.Source, app.InvitationID, app.Status, app.CreatedAt,
	); err != nil {
		return engagement.Application{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return engagement.Application{}, err
	}
	return app, nil
}

func (r *PostgresApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (engagement.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`,
		id,
	)

	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return engagement.Application{}, ErrApplicationNotFound
		}
		return engagement.Application{}, err
	}
	return app, nil
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to engagement.ApplicationStatus) (engagement.Application, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE applications SET status = $1
		 WHERE id = $2 AND status = $3
		 RETURNING `+applicationColumns,
		to, id, from,
	)

	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return engagement.Application{}, ErrApplicationNotFound
		}
		return engagement.Application{}, err
	}
	return app, nil
}

func (r *PostgresApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]engagement.Application, error) {
	return r.list(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 ORDER BY created_at DESC`,
		jobID,
	)
}

func (r *PostgresApplicationRepository) ListByTalent(ctx context.Context, talentID uuid.UUID) ([]engagement.Application, error) {
	return r.list(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE talent_id = $1 ORDER BY created_at DESC`,
		talentID,
	)
}

func (r *PostgresApplicationRepository) CountByEmployerJobs(ctx context.Context, employerID uuid.UUID) ([]JobApplicationCount, error) {
	rows, err := r.db.Query(ctx,
		`SELECT j.id, j.title, COUNT(a.id)
		 FROM jobs j
		 LEFT JOIN applications a ON a.job_id = j.id
		 WHERE j.employer_id = $1
		 GROUP BY j.id, j.title
		 ORDER BY j.created_at DESC`,
		employerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobApplicationCount, 0)
	for rows.Next() {
		var c JobApplicationCount
		if err := rows.Scan(&c.JobID, &c.Title, &c.Applications); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) list(ctx context.Context, query string, arg any) ([]engagement.Application, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]engagement.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func prepareApplication(app *engagement.Application) {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	if app.Status == "" {
		app.Status = engagement.ApplicationPending
	}
	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now().UTC()
	}
}

func scanApplication(row database.Row) (engagement.Application, error) {
	var app engagement.Application
	err := row.Scan(
		&app.ID,
		&app.JobID,
		&app.TalentID,
		&app.Source,
		&app.InvitationID,
		&app.Status,
		&app.CreatedAt,
	)
	return app, err
}
