package dto

type SubmitAttendanceRequest struct {
	ID               string `json:"id"`
	Nombre           string `json:"nombre"`
	Correo           string `json:"correo"`
	Edad             string `json:"edad,omitempty"`
	Telefono         string `json:"telefono,omitempty"`
	Asociacion       string `json:"asociacion,omitempty"`
	VisitanteID      string `json:"visitanteId,omitempty"`
	AsistenciaNumero int    `json:"asistenciaNumero"`
}

type SubmitAttendanceResponse struct {
	Success          bool   `json:"success"`
	NumeroAsistencia int    `json:"numeroAsistencia"`
	VisitanteID      string `json:"visitanteId"`
}
