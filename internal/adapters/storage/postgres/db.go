package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema crea la tabla animals si no existe.
// Columnas de texto libre; seq conserva el orden de inserción.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS animals (
			seq BIGSERIAL,
			id TEXT PRIMARY KEY,
			"type" TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL DEFAULT '',
			breed TEXT NOT NULL DEFAULT '',
			sex TEXT NOT NULL DEFAULT '',
			birthdate TEXT NOT NULL DEFAULT '',
			weight TEXT NOT NULL DEFAULT '',
			size TEXT NOT NULL DEFAULT '',
			"animalId" TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			"vetName" TEXT NOT NULL DEFAULT '',
			"visitType" TEXT NOT NULL DEFAULT '',
			"visitNotes" TEXT NOT NULL DEFAULT '',
			"feedingTime" TEXT NOT NULL DEFAULT '',
			"feedingAmount" TEXT NOT NULL DEFAULT '',
			"feedingWhat" TEXT NOT NULL DEFAULT '',
			photo TEXT NOT NULL DEFAULT '',
			"birthdateUnknown" BOOLEAN NOT NULL DEFAULT FALSE
		)
	`)
	return err
}
