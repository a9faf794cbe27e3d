// Package view arma lo que se muestra de la lista: filtro de búsqueda, filas de
// la grilla, detalle de un registro y tabla de texto para la terminal.
package view

import (
	"fmt"
	"io"
	"net/url"
	"strings"
	"text/tabwriter"

	"animal-tracker/internal/client/form"
	"animal-tracker/internal/domain/animals"
)

const (
	Empty   = "-"
	Unknown = "Unknown"

	placeholderURL = "https://placehold.co/300x250?text="
)

// Campos donde busca Filter.
var searchable = []func(r animals.Record) string{
	func(r animals.Record) string { return r.Name },
	func(r animals.Record) string { return r.Type },
	func(r animals.Record) string { return r.Breed },
	func(r animals.Record) string { return r.Location },
	func(r animals.Record) string { return r.AnimalID },
	func(r animals.Record) string { return r.Description },
}

// Row es una tarjeta de la grilla, ya con los valores de presentación.
type Row struct {
	ID        string
	Image     string // data URL de la foto o placeholder con el type
	Name      string
	Type      string
	Breed     string
	Sex       string
	Birthdate string
	Location  string
}

type Line struct {
	Label string
	Value string
}

// Filter devuelve los registros que contienen term (sin distinguir mayúsculas)
// en alguno de los campos buscables, en el orden recibido. term vacío = todos.
func Filter(records []animals.Record, term string) []animals.Record {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]animals.Record, 0, len(records))
	for _, r := range records {
		if term == "" || matches(r, term) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r animals.Record, term string) bool {
	for _, get := range searchable {
		if strings.Contains(strings.ToLower(get(r)), term) {
			return true
		}
	}
	return false
}

// Render filtra por term y arma las filas.
func Render(records []animals.Record, term string) []Row {
	filtered := Filter(records, term)
	rows := make([]Row, 0, len(filtered))
	for _, r := range filtered {
		rows = append(rows, Row{
			ID:        r.ID,
			Image:     Image(r),
			Name:      display(r.Name),
			Type:      display(r.Type),
			Breed:     display(r.Breed),
			Sex:       display(r.Sex),
			Birthdate: Birthdate(r),
			Location:  display(r.Location),
		})
	}
	return rows
}

// Image es la foto del registro o un placeholder con el type.
func Image(r animals.Record) string {
	if r.Photo != "" {
		return r.Photo
	}
	return placeholderURL + url.QueryEscape(r.Type)
}

func Birthdate(r animals.Record) string {
	r = animals.Normalize(r)
	if r.BirthdateUnknown {
		return Unknown
	}
	return display(r.Birthdate)
}

// Details lista todos los campos con su etiqueta. La foto se resume (mime y tamaño).
func Details(r animals.Record) []Line {
	lines := make([]Line, 0, len(animals.Fields)+1)
	lines = append(lines, Line{Label: "ID", Value: display(r.ID)})
	for _, f := range animals.Fields {
		var v string
		switch f.Key {
		case "birthdate":
			v = Birthdate(r)
		case "photo":
			v = photoSummary(r.Photo)
		default:
			v = display(*f.Ptr(&r))
		}
		lines = append(lines, Line{Label: f.Label, Value: v})
	}
	return lines
}

func photoSummary(p string) string {
	if p == "" {
		return Empty
	}
	data, mt, err := form.DecodePhoto(p)
	if err != nil {
		return "(unreadable)"
	}
	return fmt.Sprintf("%s, %d bytes", mt, len(data))
}

// WriteTable escribe rows como tabla alineada.
func WriteTable(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tNAME\tBREED\tSEX\tBIRTHDATE\tLOCATION")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Type, r.Name, r.Breed, r.Sex, r.Birthdate, r.Location)
	}
	return tw.Flush()
}

// WriteDetails escribe las líneas "Label: valor".
func WriteDetails(w io.Writer, lines []Line) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for _, l := range lines {
		fmt.Fprintf(tw, "%s:\t%s\n", l.Label, l.Value)
	}
	return tw.Flush()
}

func display(s string) string {
	if strings.TrimSpace(s) == "" {
		return Empty
	}
	return s
}
