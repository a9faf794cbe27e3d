package animals

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo  Repository
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		newID: uuid.NewString,
	}
}

func (s *Service) List(ctx context.Context) ([]Record, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	if items == nil {
		items = []Record{}
	}
	return items, nil
}

// Create asigna identidad y guarda. Cualquier id que venga en r se ignora.
func (s *Service) Create(ctx context.Context, r Record) (string, error) {
	r = Normalize(r)
	if err := Validate(r); err != nil {
		return "", err
	}

	r.ID = s.newID()
	id, err := s.repo.Insert(ctx, r)
	if err != nil {
		return "", &StorageError{Op: "insert", Err: err}
	}
	return id, nil
}

// Update reemplaza el registro completo (no hay patch parcial).
// Un id inexistente devuelve 0 cambios, no error.
func (s *Service) Update(ctx context.Context, r Record) (int64, error) {
	r.ID = strings.TrimSpace(r.ID)
	if r.ID == "" {
		return 0, ErrMissingID
	}
	r = Normalize(r)
	if err := Validate(r); err != nil {
		return 0, err
	}

	n, err := s.repo.Update(ctx, r)
	if err != nil {
		return 0, &StorageError{Op: "update", Err: err}
	}
	return n, nil
}

func (s *Service) Delete(ctx context.Context, id string) (int64, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return 0, ErrMissingID
	}

	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, &StorageError{Op: "delete", Err: err}
	}
	return n, nil
}
