package handlers

import (
	"context"
	"errors"

	"github.com/conquiguias/conquiguias-api/internal/services"
	"github.com/conquiguias/conquiguias-api/internal/store"
	"github.com/conquiguias/conquiguias-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type AttendanceHandler struct {
	attendanceService AttendanceServiceInterface
	evaluationService EvaluationServiceInterface
}

func NewAttendanceHandler(attendanceService AttendanceServiceInterface, evaluationService EvaluationServiceInterface) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
		evaluationService: evaluationService,
	}
}

// Submit registers one checkpoint for a participant.
func (h *AttendanceHandler) Submit(c *drift.Context) {
	var req dto.SubmitAttendanceRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("cuerpo de la petición inválido")
		return
	}

	if req.ID == "" {
		c.BadRequest("id es requerido")
		return
	}
	if req.AsistenciaNumero == 0 {
		c.BadRequest("asistenciaNumero es requerido")
		return
	}
	if req.AsistenciaNumero == 1 {
		if req.Nombre == "" || req.Correo == "" {
			c.BadRequest("nombre y correo son requeridos")
			return
		}
	} else if req.VisitanteID == "" {
		c.BadRequest("visitanteId es requerido")
		return
	}

	record, err := h.attendanceService.Submit(context.Background(), req.ID, services.AttendanceSubmission{
		VisitanteID:      req.VisitanteID,
		Nombre:           req.Nombre,
		Correo:           req.Correo,
		Edad:             req.Edad,
		Telefono:         req.Telefono,
		Asociacion:       req.Asociacion,
		AsistenciaNumero: req.AsistenciaNumero,
	})
	if err != nil {
		var orderErr *services.CheckpointOrderError
		switch {
		case errors.Is(err, services.ErrCheckpointRange):
			c.BadRequest("asistenciaNumero fuera de rango")
		case errors.As(err, &orderErr):
			c.BadRequest(orderErr.Error())
		case errors.Is(err, services.ErrDuplicateAttendance):
			_ = c.JSON(409, map[string]string{"error": "ya registraste esta asistencia"})
		case errors.Is(err, store.ErrVersionConflict):
			_ = c.JSON(409, map[string]string{"error": "el registro fue modificado, intenta de nuevo"})
		default:
			c.InternalServerError("no se pudo guardar la asistencia")
		}
		return
	}

	_ = c.JSON(200, dto.SubmitAttendanceResponse{
		Success:          true,
		NumeroAsistencia: record.AsistenciaNumero,
		VisitanteID:      record.VisitanteID,
	})
}

// Read returns an event's attendance records, optionally filtered to one
// participant by correo.
func (h *AttendanceHandler) Read(c *drift.Context) {
	eventID := c.QueryParam("id")
	if eventID == "" {
		c.BadRequest("id es requerido")
		return
	}

	var err error
	var records any
	if correo := c.QueryParam("correo"); correo != "" {
		records, err = h.attendanceService.ByEmail(context.Background(), eventID, correo)
	} else {
		records, err = h.attendanceService.ByEvent(context.Background(), eventID)
	}
	if err != nil {
		c.InternalServerError("no se pudieron leer las asistencias")
		return
	}

	_ = c.JSON(200, records)
}

// Responses returns the combined attendance and exam-result view for an event.
func (h *AttendanceHandler) Responses(c *drift.Context) {
	eventID := c.QueryParam("id")
	if eventID == "" {
		c.BadRequest("id es requerido")
		return
	}

	ctx := context.Background()

	asistencias, err := h.attendanceService.ByEvent(ctx, eventID)
	if err != nil {
		c.InternalServerError("no se pudieron leer las asistencias")
		return
	}

	_ = c.JSON(200, dto.ResponsesView{
		Asistencias: asistencias,
		Examenes:    h.evaluationService.Results(ctx, eventID),
	})
}
