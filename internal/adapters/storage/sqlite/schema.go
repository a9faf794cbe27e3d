package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"animal-tracker/internal/domain/animals"
)

const tableName = "tblAnimals"

// createTableSQL arma el DDL desde animals.Fields: todas las columnas son TEXT,
// salvo el flag birthdateUnknown (0/1).
func createTableSQL() string {
	cols := make([]string, 0, len(animals.Fields)+2)
	cols = append(cols, "id TEXT PRIMARY KEY")
	for _, f := range animals.Fields {
		cols = append(cols, f.Key+" TEXT")
	}
	cols = append(cols, "birthdateUnknown INTEGER NOT NULL DEFAULT 0")
	return "CREATE TABLE IF NOT EXISTS " + tableName + " (\n\t" + strings.Join(cols, ",\n\t") + "\n)"
}

// EnsureSchema crea la tabla si no existe y agrega las columnas que falten en
// bases creadas por versiones anteriores (p.ej. sin birthdateUnknown o sin name).
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createTableSQL()); err != nil {
		return fmt.Errorf("sqlite: create table: %w", err)
	}

	existing, err := columns(ctx, db)
	if err != nil {
		return err
	}

	for _, f := range animals.Fields {
		if _, ok := existing[strings.ToLower(f.Key)]; ok {
			continue
		}
		if _, err := db.ExecContext(ctx, "ALTER TABLE "+tableName+" ADD COLUMN "+f.Key+" TEXT"); err != nil {
			return fmt.Errorf("sqlite: add column %s: %w", f.Key, err)
		}
	}
	if _, ok := existing["birthdateunknown"]; !ok {
		if _, err := db.ExecContext(ctx, "ALTER TABLE "+tableName+" ADD COLUMN birthdateUnknown INTEGER NOT NULL DEFAULT 0"); err != nil {
			return fmt.Errorf("sqlite: add column birthdateUnknown: %w", err)
		}
	}
	return nil
}

func columns(ctx context.Context, db *sql.DB) (map[string]struct{}, error) {
	rows, err := db.QueryContext(ctx, "SELECT name FROM pragma_table_info('"+tableName+"')")
	if err != nil {
		return nil, fmt.Errorf("sqlite: table info: %w", err)
	}
	defer rows.Close()

	out := map[string]struct{}{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		// SQLite compara identificadores sin distinguir mayúsculas.
		out[strings.ToLower(name)] = struct{}{}
	}
	return out, rows.Err()
}
