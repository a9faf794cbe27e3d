package form

import (
	"context"
	"errors"
	"fmt"
	"os"

	"animal-tracker/internal/client/store"
	"animal-tracker/internal/domain/animals"
)

// Draft es lo que el usuario completó, antes de codificar la foto.
type Draft struct {
	Values           Values
	PhotoPath        string // archivo elegido; "" = mantener la foto actual
	RemovePhoto      bool
	BirthdateUnknown bool
}

// Prepare es la primera fase del envío: lee y codifica la foto elegida.
// Si no se eligió archivo ni se escribió un valor de photo, conserva la de existing.
// Si la lectura falla no se envía nada.
func (d Draft) Prepare(ctx context.Context, existing animals.Record) (animals.Record, error) {
	if err := ctx.Err(); err != nil {
		return animals.Record{}, err
	}

	rec := Read(d.Values)
	if d.BirthdateUnknown {
		rec.BirthdateUnknown = true
		rec.Birthdate = ""
	}

	switch {
	case d.RemovePhoto:
		rec.Photo = ""
	case d.PhotoPath != "":
		f, err := os.Open(d.PhotoPath)
		if err != nil {
			return animals.Record{}, fmt.Errorf("photo: %w", err)
		}
		defer f.Close()
		photo, err := EncodePhoto(f, d.PhotoPath)
		if err != nil {
			return animals.Record{}, err
		}
		rec.Photo = photo
	case rec.Photo == "":
		rec.Photo = existing.Photo
	}

	return rec, nil
}

// Target es lo que Submit necesita del store del cliente.
type Target interface {
	EditID() string
	Editing() (animals.Record, bool)
	Create(ctx context.Context, rec animals.Record) (string, error)
	Update(ctx context.Context, rec animals.Record) (int64, error)
}

type Result struct {
	ID      string
	Created bool
	Changes int64
}

// Submit valida, prepara y envía: update si el store está editando, create si no.
// Si el servidor aplicó el cambio pero la recarga falló, devuelve el Result
// completo junto con el error (store.ErrReloadFailed).
func Submit(ctx context.Context, t Target, d Draft) (Result, error) {
	if err := Validate(d.Values); err != nil {
		return Result{}, err
	}

	editID := t.EditID()
	existing, _ := t.Editing()

	rec, err := d.Prepare(ctx, existing)
	if err != nil {
		return Result{}, err
	}

	if editID == "" {
		id, err := t.Create(ctx, rec)
		if !committed(err) {
			return Result{}, err
		}
		return Result{ID: id, Created: true, Changes: 1}, err
	}

	rec.ID = editID
	n, err := t.Update(ctx, rec)
	if !committed(err) {
		return Result{}, err
	}
	return Result{ID: editID, Changes: n}, err
}

func committed(err error) bool {
	return err == nil || errors.Is(err, store.ErrReloadFailed)
}
