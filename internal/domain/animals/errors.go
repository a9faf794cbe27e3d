package animals

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")
	ErrMissingID  = errors.New("id is required")
)

// StorageError envuelve una falla de la capa de persistencia.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsStorageError reporta si err (o algo que envuelve) es un *StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
