package postgres

import (
	"context"
	"database/sql"
	"strings"

	"animal-tracker/internal/domain/animals"

	"github.com/google/uuid"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

func (r *AnimalsRepo) List(ctx context.Context) ([]animals.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id,
			"type", name, breed, sex,
			birthdate, weight, size,
			"animalId", location, description, notes,
			"vetName", "visitType", "visitNotes",
			"feedingTime", "feedingAmount", "feedingWhat",
			photo, "birthdateUnknown"
		FROM animals
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Record, 0)
	for rows.Next() {
		var a animals.Record
		if err := rows.Scan(
			&a.ID,
			&a.Type, &a.Name, &a.Breed, &a.Sex,
			&a.Birthdate, &a.Weight, &a.Size,
			&a.AnimalID, &a.Location, &a.Description, &a.Notes,
			&a.VetName, &a.VisitType, &a.VisitNotes,
			&a.FeedingTime, &a.FeedingAmount, &a.FeedingWhat,
			&a.Photo, &a.BirthdateUnknown,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *AnimalsRepo) Insert(ctx context.Context, a animals.Record) (string, error) {
	if strings.TrimSpace(a.ID) == "" {
		a.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (
			id,
			"type", name, breed, sex,
			birthdate, weight, size,
			"animalId", location, description, notes,
			"vetName", "visitType", "visitNotes",
			"feedingTime", "feedingAmount", "feedingWhat",
			photo, "birthdateUnknown"
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
	`,
		a.ID,
		a.Type, a.Name, a.Breed, a.Sex,
		a.Birthdate, a.Weight, a.Size,
		a.AnimalID, a.Location, a.Description, a.Notes,
		a.VetName, a.VisitType, a.VisitNotes,
		a.FeedingTime, a.FeedingAmount, a.FeedingWhat,
		a.Photo, a.BirthdateUnknown,
	)
	if err != nil {
		return "", err
	}
	return a.ID, nil
}

// Update reemplaza la fila entera. Filas afectadas = 0 si el id no existe.
func (r *AnimalsRepo) Update(ctx context.Context, a animals.Record) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animals
		SET
			"type" = $2,
			name = $3,
			breed = $4,
			sex = $5,
			birthdate = $6,
			weight = $7,
			size = $8,
			"animalId" = $9,
			location = $10,
			description = $11,
			notes = $12,
			"vetName" = $13,
			"visitType" = $14,
			"visitNotes" = $15,
			"feedingTime" = $16,
			"feedingAmount" = $17,
			"feedingWhat" = $18,
			photo = $19,
			"birthdateUnknown" = $20
		WHERE id = $1
	`,
		a.ID,
		a.Type, a.Name, a.Breed, a.Sex,
		a.Birthdate, a.Weight, a.Size,
		a.AnimalID, a.Location, a.Description, a.Notes,
		a.VetName, a.VisitType, a.VisitNotes,
		a.FeedingTime, a.FeedingAmount, a.FeedingWhat,
		a.Photo, a.BirthdateUnknown,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *AnimalsRepo) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM animals WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
