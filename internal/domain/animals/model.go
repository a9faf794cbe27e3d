package animals

// Record es el registro de un animal del refugio / hogar temporal.
// Todos los campos de texto son libres; la ausencia de valor es "" (nunca una key faltante).
type Record struct {
	ID string `json:"id"`

	Type     string `json:"type"` // único campo obligatorio
	Name     string `json:"name"`
	Breed    string `json:"breed"`
	Sex      string `json:"sex"`
	Location string `json:"location"`
	AnimalID string `json:"animalId"` // identificador interno del refugio (chip, collar...)

	Birthdate        string `json:"birthdate"` // YYYY-MM-DD o vacío
	BirthdateUnknown bool   `json:"birthdateUnknown"`

	Weight string `json:"weight"`
	Size   string `json:"size"`

	Description string `json:"description"`
	Notes       string `json:"notes"`

	// Visita veterinaria
	VetName    string `json:"vetName"`
	VisitType  string `json:"visitType"`
	VisitNotes string `json:"visitNotes"`

	// Alimentación
	FeedingTime   string `json:"feedingTime"`
	FeedingAmount string `json:"feedingAmount"`
	FeedingWhat   string `json:"feedingWhat"`

	// Photo es un data URL (data:image/png;base64,...) guardado inline. Vacío = sin foto.
	Photo string `json:"photo"`
}

// UnknownBirthdate es el centinela que usaban versiones viejas del formulario.
// Se acepta en la entrada pero se normaliza a BirthdateUnknown=true.
const UnknownBirthdate = "Unknown"
