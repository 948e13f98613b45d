package handlers

import (
	"context"
	"errors"

	"github.com/conquiguias/conquiguias-api/internal/services"
	"github.com/conquiguias/conquiguias-api/internal/store"
	"github.com/conquiguias/conquiguias-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type EvaluationHandler struct {
	evaluationService EvaluationServiceInterface
}

func NewEvaluationHandler(evaluationService EvaluationServiceInterface) *EvaluationHandler {
	return &EvaluationHandler{evaluationService: evaluationService}
}

func (h *EvaluationHandler) Save(c *drift.Context) {
	var req dto.SaveEvaluationRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("cuerpo de la petición inválido")
		return
	}

	if req.ID == "" {
		c.BadRequest("id es requerido")
		return
	}
	if len(req.Evaluation) == 0 {
		c.BadRequest("evaluation es requerido")
		return
	}

	if err := h.evaluationService.Save(context.Background(), req.ID, req.Evaluation); err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			_ = c.JSON(409, map[string]string{"error": "la evaluación fue modificada, intenta de nuevo"})
			return
		}
		c.InternalServerError("no se pudo guardar la evaluación")
		return
	}

	_ = c.JSON(200, dto.SaveEvaluationResponse{OK: true})
}

// Get always answers 200: an event without an evaluation yields an empty
// array, never an error body.
func (h *EvaluationHandler) Get(c *drift.Context) {
	eventID := c.QueryParam("id")
	if eventID == "" {
		c.BadRequest("id es requerido")
		return
	}

	_ = c.JSON(200, h.evaluationService.Get(context.Background(), eventID))
}

func (h *EvaluationHandler) SubmitResult(c *drift.Context) {
	var req dto.SubmitExamResultRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("cuerpo de la petición inválido")
		return
	}

	if req.ID == "" || req.VisitanteID == "" {
		c.BadRequest("id y visitanteId son requeridos")
		return
	}
	if len(req.Respuestas) == 0 {
		c.BadRequest("respuestas es requerido")
		return
	}
	if req.Puntaje == "" {
		c.BadRequest("puntaje es requerido")
		return
	}

	result, err := h.evaluationService.SubmitResult(context.Background(), req.ID, req.VisitanteID, req.Respuestas, req.Puntaje)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateResult):
			_ = c.JSON(409, map[string]string{"error": "ya enviaste el resultado de este examen"})
		case errors.Is(err, store.ErrVersionConflict):
			_ = c.JSON(409, map[string]string{"error": "el registro fue modificado, intenta de nuevo"})
		default:
			c.InternalServerError("no se pudo guardar el resultado")
		}
		return
	}

	_ = c.JSON(200, dto.SubmitExamResultResponse{OK: true, Puntaje: result.Puntaje})
}
