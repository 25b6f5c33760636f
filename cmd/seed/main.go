package main

import (
	"context"
	"log"
	"time"

	"talentx/internal/config"
	"talentx/internal/database"
	"talentx/internal/database/migration"
	dbpostgres "talentx/internal/database/postgres"
	"talentx/internal/database/seeder"
	"talentx/internal/pkg/jwt"

	"github.com/google/uuid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.Run(ctx, db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	runner := seeder.Runner{Seeders: seeder.Defaults()}
	if err := runner.Run(ctx, db); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	if err := printDemoTokens(ctx, db, cfg); err != nil {
		log.Fatalf("failed to mint demo tokens: %v", err)
	}

	log.Println("seed complete")
}

// printDemoTokens mints an access token per seeded demo account so a local
// setup can call the API without a separate identity service.
func printDemoTokens(ctx context.Context, db database.DB, cfg config.Config) error {
	jwtSvc := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn)

	rows, err := db.Query(ctx,
		`SELECT id, email, role FROM users WHERE email LIKE '%@talentx.dev' ORDER BY email`,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var email, role string
		if err := rows.Scan(&id, &email, &role); err != nil {
			return err
		}

		token, err := jwtSvc.GenerateAccessToken(id, role)
		if err != nil {
			return err
		}
		log.Printf("demo token | email=%s role=%s token=%s", email, role, token)
	}
	return rows.Err()
}
