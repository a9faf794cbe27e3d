package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"animal-tracker/internal/domain/animals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimalRepo_InsertionOrder(t *testing.T) {
	repo := NewAnimalRepo()
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := repo.Insert(ctx, animals.Record{Type: "Dog", Name: name})
		require.NoError(t, err)
	}

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "a", items[0].Name)
	assert.Equal(t, "b", items[1].Name)
	assert.Equal(t, "c", items[2].Name)
	for _, it := range items {
		assert.NotEmpty(t, it.ID)
	}
}

func TestAnimalRepo_InsertKeepsGivenID_RejectsDuplicate(t *testing.T) {
	repo := NewAnimalRepo()
	ctx := context.Background()

	id, err := repo.Insert(ctx, animals.Record{ID: "x", Type: "Cat"})
	require.NoError(t, err)
	assert.Equal(t, "x", id)

	_, err = repo.Insert(ctx, animals.Record{ID: "x", Type: "Cat"})
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestAnimalRepo_UpdateDelete_MissingIDIsZero(t *testing.T) {
	repo := NewAnimalRepo()
	ctx := context.Background()

	n, err := repo.Update(ctx, animals.Record{ID: "ghost", Type: "Cat"})
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.Delete(ctx, "ghost")
	require.NoError(t, err)
	assert.Zero(t, n)

	items, _ := repo.List(ctx)
	assert.Empty(t, items)
}

func TestAnimalRepo_DeleteKeepsOrderOfRest(t *testing.T) {
	repo := NewAnimalRepo()
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3"} {
		_, err := repo.Insert(ctx, animals.Record{ID: id, Type: "Dog"})
		require.NoError(t, err)
	}
	n, err := repo.Delete(ctx, "2")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	items, _ := repo.List(ctx)
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "3", items[1].ID)
}

func TestAnimalRepo_ConcurrentUpdates_LastWriteWins(t *testing.T) {
	repo := NewAnimalRepo()
	ctx := context.Background()
	_, err := repo.Insert(ctx, animals.Record{ID: "a", Type: "Dog"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = repo.Update(ctx, animals.Record{ID: "a", Type: "Dog", Name: fmt.Sprintf("n%d", i)})
		}(i)
	}
	wg.Wait()

	items, _ := repo.List(ctx)
	require.Len(t, items, 1)
	assert.Regexp(t, `^n\d+$`, items[0].Name)
}
