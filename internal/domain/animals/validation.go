package animals

import (
	"fmt"
	"strings"
)

// Normalize deja el registro en su representación canónica:
// - el centinela legacy birthdate="Unknown" pasa a BirthdateUnknown=true
// - con BirthdateUnknown=true la fecha queda vacía
// El storage nunca interpreta los campos; esto vive acá.
func Normalize(r Record) Record {
	if strings.EqualFold(strings.TrimSpace(r.Birthdate), UnknownBirthdate) {
		r.BirthdateUnknown = true
	}
	if r.BirthdateUnknown {
		r.Birthdate = ""
	}
	return r
}

// Validate aplica la única regla del dominio: type es obligatorio.
func Validate(r Record) error {
	if strings.TrimSpace(r.Type) == "" {
		return fmt.Errorf("%w: type is required", ErrValidation)
	}
	return nil
}
