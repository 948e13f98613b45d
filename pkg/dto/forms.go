package dto

import "encoding/json"

type CreateFormRequest struct {
	ID                 string            `json:"id"`
	Titulo             string            `json:"titulo"`
	FechaCierre        string            `json:"fechaCierre,omitempty"`
	Evaluation         []json.RawMessage `json:"evaluation,omitempty"`
	ImagenEspecialidad *string           `json:"imagenEspecialidad,omitempty"`
	ImagenFirma1       *string           `json:"imagenFirma1,omitempty"`
	ImagenFirma2       *string           `json:"imagenFirma2,omitempty"`
	ImagenFirma3       *string           `json:"imagenFirma3,omitempty"`
}

type CreateFormResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

type PurgeResponse struct {
	Mensaje    string   `json:"mensaje"`
	Eliminados []string `json:"eliminados"`
	Total      int      `json:"total"`
}
