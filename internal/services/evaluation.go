package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/conquiguias/conquiguias-api/internal/models"
	"github.com/conquiguias/conquiguias-api/internal/store"
)

var ErrDuplicateResult = errors.New("exam result already submitted")

type EvaluationService struct {
	store store.Store
	now   func() time.Time
}

func NewEvaluationService(st store.Store) *EvaluationService {
	return &EvaluationService{store: st, now: time.Now}
}

func evaluationPath(eventID string) string {
	return fmt.Sprintf("evaluaciones/%s/evaluacion.json", eventID)
}

func resultsPath(eventID string) string {
	return fmt.Sprintf("evaluaciones/%s/resultados.json", eventID)
}

// Save replaces the event's evaluation document atomically. There is no
// merge: the questions array is the whole document.
func (s *EvaluationService) Save(ctx context.Context, eventID string, questions []json.RawMessage) error {
	var version store.Version
	if doc, err := s.store.Get(ctx, evaluationPath(eventID)); err == nil {
		version = doc.Version
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	message := fmt.Sprintf("Evaluación guardada para formulario %s", eventID)
	_, err := s.store.PutJSON(ctx, evaluationPath(eventID), questions, version, message)
	return err
}

// Get returns the evaluation questions for the event. Absence, malformed
// content and transport failures all yield an empty sequence: callers
// treat "no evaluation yet" as a normal state, never a fault.
func (s *EvaluationService) Get(ctx context.Context, eventID string) []json.RawMessage {
	doc, err := s.store.Get(ctx, evaluationPath(eventID))
	if err != nil {
		return []json.RawMessage{}
	}

	var questions []json.RawMessage
	if err := json.Unmarshal(doc.Content, &questions); err != nil || questions == nil {
		return []json.RawMessage{}
	}
	return questions
}

// SubmitResult appends one participant's exam result. At most one result
// exists per participant per event.
func (s *EvaluationService) SubmitResult(ctx context.Context, eventID, visitanteID string, respuestas json.RawMessage, puntaje json.Number) (*models.ExamResult, error) {
	var results []models.ExamResult
	var version store.Version

	doc, err := s.store.Get(ctx, resultsPath(eventID))
	if err == nil {
		version = doc.Version
		if err := json.Unmarshal(doc.Content, &results); err != nil {
			return nil, fmt.Errorf("corrupt results document for %s: %w", eventID, err)
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	for _, r := range results {
		if r.VisitanteID == visitanteID {
			return nil, ErrDuplicateResult
		}
	}

	result := models.ExamResult{
		VisitanteID: visitanteID,
		Respuestas:  respuestas,
		Puntaje:     puntaje,
		Fecha:       s.now().UTC().Format(time.RFC3339),
	}
	results = append(results, result)

	message := fmt.Sprintf("Nuevo resultado de examen para %s", eventID)
	if _, err := s.store.PutJSON(ctx, resultsPath(eventID), results, version, message); err != nil {
		return nil, err
	}
	return &result, nil
}

// Results returns every exam result for the event, empty when the
// document is absent or unreadable.
func (s *EvaluationService) Results(ctx context.Context, eventID string) []models.ExamResult {
	doc, err := s.store.Get(ctx, resultsPath(eventID))
	if err != nil {
		return []models.ExamResult{}
	}

	var results []models.ExamResult
	if err := json.Unmarshal(doc.Content, &results); err != nil || results == nil {
		return []models.ExamResult{}
	}
	return results
}
