package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/conquiguias/conquiguias-api/internal/services"
	"github.com/conquiguias/conquiguias-api/internal/store"
	"github.com/conquiguias/conquiguias-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type FormHandler struct {
	formService FormServiceInterface
}

func NewFormHandler(formService FormServiceInterface) *FormHandler {
	return &FormHandler{formService: formService}
}

func (h *FormHandler) Create(c *drift.Context) {
	var req dto.CreateFormRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("cuerpo de la petición inválido")
		return
	}

	if req.ID == "" {
		c.BadRequest("id es requerido")
		return
	}
	if req.Titulo == "" {
		c.BadRequest("titulo es requerido")
		return
	}
	if req.FechaCierre != "" {
		if _, err := time.Parse(time.RFC3339, req.FechaCierre); err != nil {
			c.BadRequest("fechaCierre no es una fecha válida")
			return
		}
	}

	_, err := h.formService.Create(context.Background(), req.ID, services.FormInput{
		Titulo:             req.Titulo,
		FechaCierre:        req.FechaCierre,
		Evaluation:         req.Evaluation,
		ImagenEspecialidad: req.ImagenEspecialidad,
		ImagenFirma1:       req.ImagenFirma1,
		ImagenFirma2:       req.ImagenFirma2,
		ImagenFirma3:       req.ImagenFirma3,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFormExists):
			_ = c.JSON(409, map[string]string{"error": "ya existe un formulario con ese id"})
		case errors.Is(err, store.ErrVersionConflict):
			_ = c.JSON(409, map[string]string{"error": "el registro fue modificado, intenta de nuevo"})
		default:
			c.InternalServerError("no se pudo crear el formulario")
		}
		return
	}

	_ = c.JSON(201, dto.CreateFormResponse{OK: true, ID: req.ID})
}

func (h *FormHandler) Get(c *drift.Context) {
	id := c.QueryParam("id")
	if id == "" {
		c.BadRequest("id es requerido")
		return
	}

	form, err := h.formService.Get(context.Background(), id)
	if err != nil {
		if errors.Is(err, services.ErrFormNotFound) {
			c.NotFound("formulario no encontrado")
			return
		}
		c.InternalServerError("no se pudo leer el formulario")
		return
	}

	_ = c.JSON(200, form)
}

func (h *FormHandler) List(c *drift.Context) {
	forms, err := h.formService.List(context.Background())
	if err != nil {
		c.InternalServerError("no se pudieron listar los formularios")
		return
	}

	_ = c.JSON(200, forms)
}

// Purge drops every expired form and reports what was removed.
func (h *FormHandler) Purge(c *drift.Context) {
	purged, err := h.formService.PurgeExpired(context.Background(), time.Now())
	if err != nil {
		c.InternalServerError("no se pudieron limpiar los formularios vencidos")
		return
	}

	mensaje := "no hay formularios vencidos"
	if len(purged) > 0 {
		mensaje = fmt.Sprintf("se eliminaron %d formularios vencidos", len(purged))
	}

	_ = c.JSON(200, dto.PurgeResponse{
		Mensaje:    mensaje,
		Eliminados: purged,
		Total:      len(purged),
	})
}
