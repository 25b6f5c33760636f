package repository

import (
	"context"
	"errors"

	"talentx/internal/database"
	"talentx/internal/domain/talent"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProfileNotFound = errors.New("talent profile not found")

type TalentProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (talent.Profile, error)
	// ListExcept returns every talent profile except the given user's own,
	// so employers never see themselves in candidate lists.
	ListExcept(ctx context.Context, excludeUserID uuid.UUID) ([]talent.Profile, error)
}

type PostgresTalentProfileRepository struct {
	db database.DB
}

func NewPostgresTalentProfileRepository(db database.DB) *PostgresTalentProfileRepository {
	return &PostgresTalentProfileRepository{db: db}
}

const profileColumns = `p.user_id, u.name, u.email, p.skills, p.experience_years, COALESCE(p.bio, ''), u.created_at`

func (r *PostgresTalentProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (talent.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+`
		 FROM talent_profiles p
		 JOIN users u ON u.id = p.user_id
		 WHERE p.user_id = $1`,
		userID,
	)

	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return talent.Profile{}, ErrProfileNotFound
		}
		return talent.Profile{}, err
	}
	return p, nil
}

func (r *PostgresTalentProfileRepository) ListExcept(ctx context.Context, excludeUserID uuid.UUID) ([]talent.Profile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+profileColumns+`
		 FROM talent_profiles p
		 JOIN users u ON u.id = p.user_id
		 WHERE p.user_id <> $1
		 ORDER BY u.created_at ASC`,
		excludeUserID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]talent.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
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

func scanProfile(row database.Row) (talent.Profile, error) {
	var p talent.Profile
	err := row.Scan(
		&p.UserID,
		&p.Name,
		&p.Email,
		&p.Skills,
		&p.ExperienceYears,
		&p.Bio,
		&p.CreatedAt,
	)
	return p, err
}
