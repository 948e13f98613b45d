package handlers

import (
	"context"
	"errors"

	"github.com/conquiguias/conquiguias-api/internal/services"
	"github.com/conquiguias/conquiguias-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type ImageHandler struct {
	imageService ImageServiceInterface
}

func NewImageHandler(imageService ImageServiceInterface) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

func (h *ImageHandler) Upload(c *drift.Context) {
	var req dto.UploadImageRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("cuerpo de la petición inválido")
		return
	}

	if req.Carpeta == "" || req.Nombre == "" || req.Contenido == "" {
		c.BadRequest("carpeta, nombre y contenido son requeridos")
		return
	}

	url, err := h.imageService.Upload(context.Background(), req.Carpeta, req.Nombre, req.Contenido)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidFolder):
			c.BadRequest("carpeta inválida")
		case errors.Is(err, services.ErrImageExists):
			_ = c.JSON(409, map[string]string{"error": "ya existe una imagen con ese nombre"})
		default:
			c.InternalServerError("no se pudo subir la imagen")
		}
		return
	}

	_ = c.JSON(201, dto.UploadImageResponse{OK: true, URL: url})
}

func (h *ImageHandler) List(c *drift.Context) {
	carpeta := c.QueryParam("carpeta")
	if carpeta == "" {
		c.BadRequest("carpeta es requerida")
		return
	}

	images, err := h.imageService.List(context.Background(), carpeta)
	if err != nil {
		if errors.Is(err, services.ErrInvalidFolder) {
			c.BadRequest("carpeta inválida")
			return
		}
		c.InternalServerError("no se pudieron listar las imágenes")
		return
	}

	_ = c.JSON(200, images)
}
