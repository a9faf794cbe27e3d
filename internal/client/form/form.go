// Package form traduce entre los valores crudos del formulario (key → texto) y
// animals.Record, usando la tabla animals.Fields en ambos sentidos.
package form

import (
	"fmt"
	"sort"
	"strings"

	"animal-tracker/internal/domain/animals"
)

// Values son los inputs del formulario indexados por key JSON.
type Values map[string]string

// ValidationError es el rechazo local, antes de cualquier llamada de red.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return animals.ErrValidation }

// Fill precarga el formulario con rec. Con fecha desconocida el input de fecha queda vacío.
func Fill(rec animals.Record) Values {
	rec = animals.Normalize(rec)
	v := make(Values, len(animals.Fields))
	for _, f := range animals.Fields {
		v[f.Key] = *f.Ptr(&rec)
	}
	return v
}

// Read arma un Record a partir de v. Keys desconocidas se ignoran; el texto se recorta.
func Read(v Values) animals.Record {
	var rec animals.Record
	for _, f := range animals.Fields {
		*f.Ptr(&rec) = strings.TrimSpace(v[f.Key])
	}
	return rec
}

// Validate aplica la regla de type obligatorio.
func Validate(v Values) error {
	if strings.TrimSpace(v["type"]) == "" {
		return &ValidationError{Field: "type", Message: "is required"}
	}
	return nil
}

// Parse convierte asignaciones "key=value" en Values. Rechaza keys que no son campos.
func Parse(assignments []string) (Values, error) {
	v := Values{}
	for _, a := range assignments {
		key, val, ok := strings.Cut(a, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid assignment %q (want key=value)", a)
		}
		if _, known := animals.FieldByKey(key); !known {
			keys := animals.Keys()
			sort.Strings(keys)
			return nil, fmt.Errorf("unknown field %q (valid: %s)", key, strings.Join(keys, ", "))
		}
		v[key] = val
	}
	return v, nil
}

// Merge devuelve base con los valores de over encima.
func Merge(base, over Values) Values {
	out := make(Values, len(base)+len(over))
	for k, val := range base {
		out[k] = val
	}
	for k, val := range over {
		out[k] = val
	}
	return out
}
