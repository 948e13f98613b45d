package models

import "time"

// FormDefinition is one event definition inside the shared forms document.
type FormDefinition struct {
	Titulo             string  `json:"titulo"`
	FechaCierre        string  `json:"fechaCierre"`
	Creado             string  `json:"creado"`
	TieneEvaluacion    bool    `json:"tieneEvaluacion"`
	ImagenEspecialidad *string `json:"imagenEspecialidad"`
	ImagenFirma1       *string `json:"imagenFirma1"`
	ImagenFirma2       *string `json:"imagenFirma2"`
	ImagenFirma3       *string `json:"imagenFirma3"`
}

// Form is a definition plus its computed open/closed state. Estado is never
// persisted; it is derived from the closing timestamp at read time.
type Form struct {
	FormDefinition
	Estado string `json:"estado"`
}

const (
	EstadoAbierto = "abierto"
	EstadoCerrado = "cerrado"
)

// EstadoAt reports the form state at the given instant. An unparsable
// closing timestamp leaves the form open, matching how the platform has
// always treated malformed dates.
func (f FormDefinition) EstadoAt(now time.Time) string {
	cierre, err := time.Parse(time.RFC3339, f.FechaCierre)
	if err != nil {
		return EstadoAbierto
	}
	if now.After(cierre) {
		return EstadoCerrado
	}
	return EstadoAbierto
}
