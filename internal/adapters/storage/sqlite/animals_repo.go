package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"animal-tracker/internal/domain/animals"

	"github.com/google/uuid"
)

var (
	selectAnimalsSQL string
	insertAnimalSQL  string
	updateAnimalSQL  string
	deleteAnimalSQL  = "DELETE FROM " + tableName + " WHERE id = ?"
)

func init() {
	keys := animals.Keys()

	sel := make([]string, 0, len(keys))
	set := make([]string, 0, len(keys))
	for _, k := range keys {
		// Filas viejas pueden tener NULL: se leen como "".
		sel = append(sel, "COALESCE("+k+", '')")
		set = append(set, k+" = ?")
	}

	selectAnimalsSQL = "SELECT id, " + strings.Join(sel, ", ") +
		", COALESCE(birthdateUnknown, 0) FROM " + tableName + " ORDER BY rowid"

	insertAnimalSQL = "INSERT INTO " + tableName + " (id, " + strings.Join(keys, ", ") +
		", birthdateUnknown) VALUES (" + strings.TrimSuffix(strings.Repeat("?,", len(keys)+2), ",") + ")"

	updateAnimalSQL = "UPDATE " + tableName + " SET " + strings.Join(set, ", ") +
		", birthdateUnknown = ? WHERE id = ?"
}

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

func (r *AnimalsRepo) List(ctx context.Context) ([]animals.Record, error) {
	rows, err := r.db.QueryContext(ctx, selectAnimalsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Record, 0)
	for rows.Next() {
		var a animals.Record
		var unknown int64

		dest := make([]any, 0, len(animals.Fields)+2)
		dest = append(dest, &a.ID)
		for _, f := range animals.Fields {
			dest = append(dest, f.Ptr(&a))
		}
		dest = append(dest, &unknown)

		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		a.BirthdateUnknown = unknown != 0
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AnimalsRepo) Insert(ctx context.Context, a animals.Record) (string, error) {
	if strings.TrimSpace(a.ID) == "" {
		a.ID = uuid.NewString()
	}

	args := make([]any, 0, len(animals.Fields)+2)
	args = append(args, a.ID)
	for _, v := range animals.Values(&a) {
		args = append(args, v)
	}
	args = append(args, boolToInt(a.BirthdateUnknown))

	if _, err := r.db.ExecContext(ctx, insertAnimalSQL, args...); err != nil {
		return "", err
	}
	return a.ID, nil
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Record) (int64, error) {
	args := make([]any, 0, len(animals.Fields)+2)
	for _, v := range animals.Values(&a) {
		args = append(args, v)
	}
	args = append(args, boolToInt(a.BirthdateUnknown), a.ID)

	res, err := r.db.ExecContext(ctx, updateAnimalSQL, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *AnimalsRepo) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteAnimalSQL, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
