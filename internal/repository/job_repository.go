package repository

import (
	"context"
	"errors"

	"talentx/internal/database"
	"talentx/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (job.Posting, error)
	// ListOpen returns postings whose deadline is unset or in the future,
	// excluding those owned by the given user.
	ListOpen(ctx context.Context, excludeEmployerID uuid.UUID) ([]job.Posting, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `j.id, j.employer_id, j.title, COALESCE(u.company_name, ''), j.required_skills, COALESCE(j.description, ''), j.application_deadline, j.created_at`

func (r *PostgresJobRepository) FindByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs j
		 JOIN users u ON u.id = j.employer_id
		 WHERE j.id = $1`,
		id,
	)

	p, err := scanPosting(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Posting{}, ErrJobNotFound
		}
		return job.Posting{}, err
	}
	return p, nil
}

func (r *PostgresJobRepository) ListOpen(ctx context.Context, excludeEmployerID uuid.UUID) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs j
		 JOIN users u ON u.id = j.employer_id
		 WHERE (j.application_deadline IS NULL OR j.application_deadline > now())
		   AND j.employer_id <> $1
		 ORDER BY j.created_at DESC`,
		excludeEmployerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanPosting(row database.Row) (job.Posting, error) {
	var p job.Posting
	err := row.Scan(
		&p.ID,
		&p.EmployerID,
		&p.Title,
		&p.CompanyName,
		&p.RequiredSkills,
		&p.Description,
		&p.ApplicationDeadline,
		&p.CreatedAt,
	)
	return p, err
}
