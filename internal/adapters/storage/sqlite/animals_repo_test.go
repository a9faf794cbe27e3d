package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"animal-tracker/internal/domain/animals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "animals.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, EnsureSchema(context.Background(), db))
	return db
}

func fullRecord() animals.Record {
	return animals.Record{
		Type: "Dog", Name: "Rex", Breed: "Lab", Sex: "Male",
		Birthdate: "2020-01-01", Weight: "30", Size: "L",
		AnimalID: "A-1", Location: "Kennel 3",
		Description: "friendly", Notes: "likes balls",
		VetName: "Dr. Vet", VisitType: "Checkup", VisitNotes: "ok",
		FeedingTime: "08:00", FeedingAmount: "2 cups", FeedingWhat: "kibble",
		Photo: "data:image/png;base64,iVBORw0KGgo=",
	}
}

func TestAnimalsRepo_InsertList_RoundTripsAllFields(t *testing.T) {
	repo := NewAnimalsRepo(setupDB(t))
	ctx := context.Background()

	in := fullRecord()
	id, err := repo.Insert(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	want := in
	want.ID = id
	assert.Equal(t, want, items[0])
}

func TestAnimalsRepo_ListIsInsertionOrdered(t *testing.T) {
	repo := NewAnimalsRepo(setupDB(t))
	ctx := context.Background()

	// ids que ordenados alfabéticamente quedarían al revés
	for _, id := range []string{"z", "m", "a"} {
		_, err := repo.Insert(ctx, animals.Record{ID: id, Type: "Cat"})
		require.NoError(t, err)
	}

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"z", "m", "a"}, []string{items[0].ID, items[1].ID, items[2].ID})
}

func TestAnimalsRepo_Update_ReplacesEveryField(t *testing.T) {
	repo := NewAnimalsRepo(setupDB(t))
	ctx := context.Background()

	id, err := repo.Insert(ctx, fullRecord())
	require.NoError(t, err)

	replacement := animals.Record{ID: id, Type: "Cat", BirthdateUnknown: true}
	n, err := repo.Update(ctx, replacement)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, replacement, items[0])
}

func TestAnimalsRepo_UpdateDelete_UnknownID(t *testing.T) {
	repo := NewAnimalsRepo(setupDB(t))
	ctx := context.Background()

	n, err := repo.Update(ctx, animals.Record{ID: "missing", Type: "Cat"})
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.Delete(ctx, "missing")
	require.NoError(t, err)
	assert.Zero(t, n)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAnimalsRepo_Delete_Twice(t *testing.T) {
	repo := NewAnimalsRepo(setupDB(t))
	ctx := context.Background()

	id, err := repo.Insert(ctx, animals.Record{Type: "Dog"})
	require.NoError(t, err)

	n, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestEnsureSchema_MigratesLegacyTable(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "legacy.db"))
	require.NoError(t, err)
	defer db.Close()
	ctx := context.Background()

	// Tabla de la primera versión: sin name ni birthdateUnknown, columnas nullables.
	_, err = db.ExecContext(ctx, `CREATE TABLE tblAnimals (
		id TEXT PRIMARY KEY,
		type TEXT, breed TEXT, sex TEXT, birthdate TEXT, weight TEXT, size TEXT,
		animalId TEXT, location TEXT, description TEXT, notes TEXT, vetName TEXT,
		visitType TEXT, visitNotes TEXT, feedingTime TEXT, feedingAmount TEXT, feedingWhat TEXT,
		photo TEXT
	)`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO tblAnimals (id, type, breed) VALUES ('old-1', 'Dog', NULL)`)
	require.NoError(t, err)

	require.NoError(t, EnsureSchema(ctx, db))
	// idempotente
	require.NoError(t, EnsureSchema(ctx, db))

	items, err := NewAnimalsRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, animals.Record{ID: "old-1", Type: "Dog"}, items[0])
}

func TestOpen_FileURIWithQuery(t *testing.T) {
	assert.Equal(t, "a.db?"+pragmas, dsn("a.db"))
	assert.Equal(t, "file:a.db?mode=rwc&"+pragmas, dsn("file:a.db?mode=rwc"))

	db, err := Open("file:" + filepath.Join(t.TempDir(), "animals.db") + "?mode=rwc")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var timeout int
	require.NoError(t, db.QueryRow("PRAGMA busy_timeout").Scan(&timeout))
	assert.Equal(t, 5000, timeout)

	ctx := context.Background()
	require.NoError(t, EnsureSchema(ctx, db))
	repo := NewAnimalsRepo(db)
	_, err = repo.Insert(ctx, animals.Record{Type: "Cat"})
	require.NoError(t, err)
	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
