package animals

import "context"

// Repository es el storage adapter: cuatro operaciones sobre una tabla con key id.
// Update y Delete devuelven filas afectadas; "no encontrado" es 0, no un error.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	Insert(ctx context.Context, r Record) (string, error)
	Update(ctx context.Context, r Record) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}
