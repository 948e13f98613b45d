package models

import "encoding/json"

// ExamResult is one participant's submitted exam for an event.
// Results are created once and never updated.
type ExamResult struct {
	VisitanteID string          `json:"visitanteId"`
	Respuestas  json.RawMessage `json:"respuestas"`
	Puntaje     json.Number     `json:"puntaje"`
	Fecha       string          `json:"fecha"`
}
