package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"animal-tracker/internal/domain/animals"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *AnimalsRepo) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return db, mock, NewAnimalsRepo(db)
}

var listColumns = []string{
	"id", "type", "name", "breed", "sex", "birthdate", "weight", "size",
	"animalId", "location", "description", "notes",
	"vetName", "visitType", "visitNotes",
	"feedingTime", "feedingAmount", "feedingWhat",
	"photo", "birthdateUnknown",
}

// rowArgs devuelve los valores en el orden de columnas de INSERT/UPDATE.
func rowArgs(a animals.Record) []driver.Value {
	return []driver.Value{
		a.ID,
		a.Type, a.Name, a.Breed, a.Sex,
		a.Birthdate, a.Weight, a.Size,
		a.AnimalID, a.Location, a.Description, a.Notes,
		a.VetName, a.VisitType, a.VisitNotes,
		a.FeedingTime, a.FeedingAmount, a.FeedingWhat,
		a.Photo, a.BirthdateUnknown,
	}
}

func TestList_Success_OrderedBySeq(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	rows := sqlmock.NewRows(listColumns).
		AddRow("id-1", "Dog", "Rex", "Lab", "Male", "2020-01-01", "30", "L", "A1", "K3", "", "", "", "", "", "", "", "", "", false).
		AddRow("id-2", "Cat", "Tom", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", true)

	mock.ExpectQuery(`SELECT .+ FROM animals\s+ORDER BY seq ASC`).WillReturnRows(rows)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "id-1", items[0].ID)
	assert.Equal(t, "Rex", items[0].Name)
	assert.Equal(t, "K3", items[0].Location)
	assert.Equal(t, "id-2", items[1].ID)
	assert.True(t, items[1].BirthdateUnknown)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_ConnectionLost(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("connection reset"))

	items, err := repo.List(context.Background())
	assert.Error(t, err)
	assert.Nil(t, items)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_GeneratesIDWhenEmpty(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO animals`).
		WithArgs(append([]driver.Value{sqlmock.AnyArg()}, rowArgs(animals.Record{Type: "Dog", Name: "Rex"})[1:]...)...).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := repo.Insert(context.Background(), animals.Record{Type: "Dog", Name: "Rex"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_KeepsGivenID(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	rec := animals.Record{ID: "given", Type: "Cat", Photo: "data:image/png;base64,AA=="}
	mock.ExpectExec(`INSERT INTO animals`).
		WithArgs(rowArgs(rec)...).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := repo.Insert(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, "given", id)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_ReturnsRowsAffected(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	rec := animals.Record{ID: "id-1", Type: "Cat", BirthdateUnknown: true}
	mock.ExpectExec(`UPDATE animals`).
		WithArgs(rowArgs(rec)...).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.Update(context.Background(), rec)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_UnknownID_Zero(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	rec := animals.Record{ID: "ghost", Type: "Cat"}
	mock.ExpectExec(`UPDATE animals`).
		WithArgs(rowArgs(rec)...).
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := repo.Update(context.Background(), rec)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_ReturnsRowsAffected(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM animals WHERE id = \$1`).
		WithArgs("id-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM animals`).
		WithArgs("id-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := repo.Delete(context.Background(), "id-1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.Delete(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema(t *testing.T) {
	db, mock, _ := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS animals`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, EnsureSchema(context.Background(), db))
	require.NoError(t, mock.ExpectationsWereMet())
}
