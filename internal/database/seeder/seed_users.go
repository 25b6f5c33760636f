package seeder

import (
	"context"
	"fmt"

	"talentx/internal/database"

	"golang.org/x/crypto/bcrypt"
)

// UsersSeeder inserts a demo employer and a handful of talents. Emails are the
// conflict key, so re-running is a no-op.
type UsersSeeder struct{}

func (UsersSeeder) Name() string { return "users" }

type demoUser struct {
	Email       string
	Password    string
	Name        string
	Role        string
	CompanyName string
}

func demoUsers() []demoUser {
	return []demoUser{
		{Email: "employer@talentx.dev", Password: "employer123", Name: "Acme Hiring", Role: "employer", CompanyName: "Acme Corp"},
		{Email: "ana@talentx.dev", Password: "talent123", Name: "Ana Pratama", Role: "talent"},
		{Email: "budi@talentx.dev", Password: "talent123", Name: "Budi Santoso", Role: "talent"},
		{Email: "citra@talentx.dev", Password: "talent123", Name: "Citra Dewi", Role: "talent"},
	}
}

func (UsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "email", "password_hash", "name", "role", "company_name", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, u := range demoUsers() {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.Email, err)
		}

		var company any
		if u.CompanyName != "" {
			company = u.CompanyName
		}

		_, err = tx.Exec(
			ctx,
			`INSERT INTO users (email, password_hash, name, role, company_name)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (email) DO NOTHING`,
			u.Email, string(hash), u.Name, u.Role, company,
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

func userIDByEmail(ctx context.Context, db database.DB, email string) (string, error) {
	var id string
	if err := db.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&id); err != nil {
		return "", fmt.Errorf("lookup user %s: %w", email, err)
	}
	return id, nil
}
