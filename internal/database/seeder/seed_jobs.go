package seeder

import (
	"context"
	"fmt"

	"talentx/internal/database"
)

type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "employer_id", "title", "required_skills", "description", "application_deadline", "created_at"); err != nil {
		return err
	}

	employerID, err := userIDByEmail(ctx, db, "employer@talentx.dev")
	if err != nil {
		return err
	}

	jobs := []struct {
		Title          string
		RequiredSkills []string
		Description    string
	}{
		{
			Title:          "Senior Go Engineer",
			RequiredSkills: []string{"Go", "PostgreSQL", "Docker"},
			Description:    "Own backend services for the matching platform.",
		},
		{
			Title:          "Machine Learning Engineer",
			RequiredSkills: []string{"Python", "Machine Learning", "AWS"},
			Description:    "Build and ship ranking models.",
		},
		{
			Title:          "Frontend Developer",
			RequiredSkills: []string{"TypeScript", "React"},
			Description:    "Deliver the talent-facing dashboard.",
		},
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, j := range jobs {
		// Jobs carry no natural unique key; title-per-employer keeps the
		// seeder idempotent.
		var exists bool
		err := tx.QueryRow(
			ctx,
			`SELECT EXISTS (SELECT 1 FROM jobs WHERE employer_id = $1 AND title = $2)`,
			employerID, j.Title,
		).Scan(&exists)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		_, err = tx.Exec(
			ctx,
			`INSERT INTO jobs (employer_id, title, required_skills, description) VALUES ($1, $2, $3, $4)`,
			employerID, j.Title, j.RequiredSkills, j.Description,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
