package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"animal-tracker/internal/domain/animals"

	"github.com/google/uuid"
)

var (
	ErrDuplicateID = errors.New("animal already exists")
)

type animalRepo struct {
	mu    sync.RWMutex
	order []string // orden de inserción
	byID  map[string]animals.Record
}

func NewAnimalRepo() animals.Repository {
	return &animalRepo{
		byID: make(map[string]animals.Record),
	}
}

func (r *animalRepo) List(ctx context.Context) ([]animals.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Record, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *animalRepo) Insert(ctx context.Context, a animals.Record) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		a.ID = uuid.NewString()
	}
	if _, exists := r.byID[a.ID]; exists {
		return "", ErrDuplicateID
	}
	r.byID[a.ID] = a
	r.order = append(r.order, a.ID)
	return a.ID, nil
}

func (r *animalRepo) Update(ctx context.Context, a animals.Record) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return 0, nil
	}
	r.byID[a.ID] = a
	return 1, nil
}

func (r *animalRepo) Delete(ctx context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return 0, nil
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return 1, nil
}
