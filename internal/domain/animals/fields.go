package animals

// Field describe un campo de texto del registro: key JSON / columna, etiqueta para
// mostrar y un accessor al string dentro del Record.
// Es la única enumeración de campos; formulario, vistas, export y SQL la consumen.
type Field struct {
	Key   string
	Label string
	Ptr   func(r *Record) *string
}

// Fields en el orden en que se muestran y se guardan (mismo orden que tblAnimals).
// No incluye id ni birthdateUnknown (no son texto libre).
var Fields = []Field{
	{Key: "type", Label: "Type", Ptr: func(r *Record) *string { return &r.Type }},
	{Key: "name", Label: "Name", Ptr: func(r *Record) *string { return &r.Name }},
	{Key: "breed", Label: "Breed", Ptr: func(r *Record) *string { return &r.Breed }},
	{Key: "sex", Label: "Sex", Ptr: func(r *Record) *string { return &r.Sex }},
	{Key: "birthdate", Label: "Birthdate", Ptr: func(r *Record) *string { return &r.Birthdate }},
	{Key: "weight", Label: "Weight", Ptr: func(r *Record) *string { return &r.Weight }},
	{Key: "size", Label: "Size", Ptr: func(r *Record) *string { return &r.Size }},
	{Key: "animalId", Label: "Animal ID", Ptr: func(r *Record) *string { return &r.AnimalID }},
	{Key: "location", Label: "Location", Ptr: func(r *Record) *string { return &r.Location }},
	{Key: "description", Label: "Description", Ptr: func(r *Record) *string { return &r.Description }},
	{Key: "notes", Label: "Notes", Ptr: func(r *Record) *string { return &r.Notes }},
	{Key: "vetName", Label: "Vet Name", Ptr: func(r *Record) *string { return &r.VetName }},
	{Key: "visitType", Label: "Visit Type", Ptr: func(r *Record) *string { return &r.VisitType }},
	{Key: "visitNotes", Label: "Visit Notes", Ptr: func(r *Record) *string { return &r.VisitNotes }},
	{Key: "feedingTime", Label: "Feeding Time", Ptr: func(r *Record) *string { return &r.FeedingTime }},
	{Key: "feedingAmount", Label: "Feeding Amount", Ptr: func(r *Record) *string { return &r.FeedingAmount }},
	{Key: "feedingWhat", Label: "Feeding What", Ptr: func(r *Record) *string { return &r.FeedingWhat }},
	{Key: "photo", Label: "Photo", Ptr: func(r *Record) *string { return &r.Photo }},
}

// FieldByKey busca un campo por su key JSON.
func FieldByKey(key string) (Field, bool) {
	for _, f := range Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Keys devuelve las keys de Fields en orden.
func Keys() []string {
	out := make([]string, 0, len(Fields))
	for _, f := range Fields {
		out = append(out, f.Key)
	}
	return out
}

// Values devuelve los valores de texto de r en el orden de Fields.
func Values(r *Record) []string {
	out := make([]string, 0, len(Fields))
	for _, f := range Fields {
		out = append(out, *f.Ptr(r))
	}
	return out
}
