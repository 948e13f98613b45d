package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/conquiguias/conquiguias-api/internal/imgur"
	"github.com/conquiguias/conquiguias-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type SocialHandler struct {
	imgurClient ImgurClientInterface
	admins      []string
}

func NewSocialHandler(imgurClient ImgurClientInterface, admins []string) *SocialHandler {
	return &SocialHandler{imgurClient: imgurClient, admins: admins}
}

type socialRoute struct {
	method  string
	handler drift.HandlerFunc
}

// Handle resolves the ?action= parameter against a closed route table.
func (h *SocialHandler) Handle(c *drift.Context) {
	routes := map[string]socialRoute{
		"health":        {http.MethodGet, h.health},
		"get-client-id": {http.MethodGet, h.getClientID},
		"get-admins":    {http.MethodGet, h.getAdmins},
		"upload":        {http.MethodPost, h.upload},
		"delete":        {http.MethodPost, h.delete},
	}

	route, ok := routes[c.QueryParam("action")]
	if !ok {
		c.BadRequest("acción desconocida")
		return
	}
	if c.Request.Method != route.method {
		_ = c.JSON(405, map[string]string{"error": "método no permitido"})
		return
	}
	route.handler(c)
}

func (h *SocialHandler) health(c *drift.Context) {
	_ = c.JSON(200, map[string]string{"status": "ok"})
}

func (h *SocialHandler) getClientID(c *drift.Context) {
	if !h.imgurClient.IsConfigured() {
		_ = c.JSON(503, map[string]string{"error": "servicio de imágenes no configurado"})
		return
	}
	_ = c.JSON(200, dto.ClientIDResponse{ClientID: h.imgurClient.ClientID()})
}

func (h *SocialHandler) getAdmins(c *drift.Context) {
	admins := h.admins
	if admins == nil {
		admins = []string{}
	}
	_ = c.JSON(200, dto.AdminsResponse{Admins: admins})
}

func (h *SocialHandler) upload(c *drift.Context) {
	var req dto.SocialUploadRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("cuerpo de la petición inválido")
		return
	}
	if req.Imagen == "" {
		c.BadRequest("imagen es requerida")
		return
	}

	image, err := h.imgurClient.Upload(context.Background(), req.Imagen)
	if err != nil {
		if errors.Is(err, imgur.ErrNotConfigured) {
			_ = c.JSON(503, map[string]string{"error": "servicio de imágenes no configurado"})
			return
		}
		c.InternalServerError("no se pudo subir la imagen")
		return
	}

	_ = c.JSON(200, dto.SocialUploadResponse{
		Mensaje:    "imagen subida",
		ID:         image.ID,
		Link:       image.Link,
		DeleteHash: image.DeleteHash,
	})
}

func (h *SocialHandler) delete(c *drift.Context) {
	var req dto.SocialDeleteRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("cuerpo de la petición inválido")
		return
	}
	if req.DeleteHash == "" {
		c.BadRequest("deletehash es requerido")
		return
	}

	if err := h.imgurClient.Delete(context.Background(), req.DeleteHash); err != nil {
		if errors.Is(err, imgur.ErrNotConfigured) {
			_ = c.JSON(503, map[string]string{"error": "servicio de imágenes no configurado"})
			return
		}
		c.InternalServerError("no se pudo eliminar la imagen")
		return
	}

	_ = c.JSON(200, map[string]string{"mensaje": "imagen eliminada"})
}
