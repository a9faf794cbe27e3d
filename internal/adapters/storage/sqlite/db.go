// Package sqlite guarda los animales en un archivo SQLite (driver pure-Go de modernc).
// La tabla tblAnimals es compatible con los animals.db ya existentes.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const pragmas = "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

// dsn agrega los pragmas a path, que puede ser un archivo o una URI "file:" con query.
func dsn(path string) string {
	if strings.Contains(path, "?") {
		return path + "&" + pragmas
	}
	return path + "?" + pragmas
}

// Open abre (o crea) la base en path. ":memory:" sirve para tests.
// Se usa una sola conexión: SQLite serializa escrituras igual, y así una
// escritura posterior siempre gana sin errores SQLITE_BUSY.
func Open(path string) (*sql.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("sqlite: empty path")
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}
	return db, nil
}
