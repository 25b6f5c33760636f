package seeder

import (
	"context"
	"fmt"

	"talentx/internal/database"
)

type TalentProfilesSeeder struct{}

func (TalentProfilesSeeder) Name() string { return "talent_profiles" }

func (TalentProfilesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "talent_profiles", "user_id", "skills", "experience_years", "bio"); err != nil {
		return err
	}

	profiles := []struct {
		Email           string
		Skills          []string
		ExperienceYears int
		Bio             string
	}{
		{Email: "ana@talentx.dev", Skills: []string{"Go", "PostgreSQL", "Docker"}, ExperienceYears: 5, Bio: "Backend engineer focused on data-heavy services."},
		{Email: "budi@talentx.dev", Skills: []string{"Python", "Machine Learning"}, ExperienceYears: 3, Bio: "ML practitioner moving into production systems."},
		{Email: "citra@talentx.dev", Skills: []string{"JavaScript", "TypeScript", "React"}, ExperienceYears: 2, Bio: "Frontend developer learning full-stack."},
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, p := range profiles {
		userID, err := userIDByEmail(ctx, db, p.Email)
		if err != nil {
			return err
		}

		_, err = tx.Exec(
			ctx,
			`INSERT INTO talent_profiles (user_id, skills, experience_years, bio)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (user_id) DO NOTHING`,
			userID, p.Skills, p.ExperienceYears, p.Bio,
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
