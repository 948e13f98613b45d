package dto

import "encoding/json"

type SaveEvaluationRequest struct {
	ID         string            `json:"id"`
	Evaluation []json.RawMessage `json:"evaluation"`
}

type SaveEvaluationResponse struct {
	OK bool `json:"ok"`
}

type SubmitExamResultRequest struct {
	ID          string          `json:"id"`
	VisitanteID string          `json:"visitanteId"`
	Respuestas  json.RawMessage `json:"respuestas"`
	Puntaje     json.Number     `json:"puntaje"`
}

type SubmitExamResultResponse struct {
	OK      bool        `json:"ok"`
	Puntaje json.Number `json:"puntaje"`
}

// ResponsesView is the combined read returned by verRespuestas.
type ResponsesView struct {
	Asistencias any `json:"asistencias"`
	Examenes    any `json:"examenes"`
}
