package models

// AttendanceRecord is one checkpoint submission for an event. The first
// checkpoint carries the full participant profile; later checkpoints only
// carry the identity reference, to keep the stored document small.
type AttendanceRecord struct {
	Nombre           string `json:"nombre,omitempty"`
	Correo           string `json:"correo,omitempty"`
	Edad             string `json:"edad,omitempty"`
	Telefono         string `json:"telefono,omitempty"`
	Asociacion       string `json:"asociacion,omitempty"`
	Fecha            string `json:"fecha"`
	VisitanteID      string `json:"visitanteId"`
	AsistenciaNumero int    `json:"asistenciaNumero"`
	EventoID         string `json:"id,omitempty"`
}
