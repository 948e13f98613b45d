package handlers

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/conquiguias/conquiguias-api/internal/identity"
	"github.com/conquiguias/conquiguias-api/internal/middleware"
	"github.com/conquiguias/conquiguias-api/internal/services"
	"github.com/conquiguias/conquiguias-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type AuthHandler struct {
	authService AuthServiceInterface
}

func NewAuthHandler(authService AuthServiceInterface) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Handle dispatches the auth envelope. The action set is closed; anything
// else is a bad request.
func (h *AuthHandler) Handle(c *drift.Context) {
	var req dto.AuthRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("cuerpo de la petición inválido")
		return
	}

	switch req.Action {
	case "register":
		h.register(c, req.Data)
	case "checkAuth":
		h.checkAuth(c, req.Data)
	case "resendVerification":
		h.resendVerification(c, req.Data)
	case "resetPassword":
		h.resetPassword(c, req.Data)
	default:
		c.BadRequest("acción desconocida")
	}
}

// Session introspects the bearer token validated by the auth middleware.
func (h *AuthHandler) Session(c *drift.Context) {
	_ = c.JSON(200, dto.SessionResponse{
		UID:   middleware.GetUID(c),
		Email: middleware.GetEmail(c),
	})
}

func (h *AuthHandler) register(c *drift.Context, data json.RawMessage) {
	var in dto.RegisterData
	if err := json.Unmarshal(data, &in); err != nil {
		c.BadRequest("datos de registro inválidos")
		return
	}

	if in.Nombre == "" || in.Apellido == "" || in.Email == "" || in.Password == "" {
		c.BadRequest("nombre, apellido, email y password son requeridos")
		return
	}

	result, err := h.authService.Register(context.Background(), services.RegisterInput{
		Nombre:   in.Nombre,
		Apellido: in.Apellido,
		Edad:     in.Edad,
		Sexo:     in.Sexo,
		Pais:     in.Pais,
		Email:    in.Email,
		Password: in.Password,
		Foto:     in.Foto,
		FotoTipo: in.FotoTipo,
	})
	if err != nil {
		h.mapIdentityError(c, err)
		return
	}

	_ = c.JSON(201, dto.RegisterResponse{
		Success: true,
		UserID:  result.User.UID,
		Token:   result.Token,
	})
}

func (h *AuthHandler) checkAuth(c *drift.Context, data json.RawMessage) {
	var in dto.CheckAuthData
	if err := json.Unmarshal(data, &in); err != nil || in.UID == "" {
		c.BadRequest("uid es requerido")
		return
	}

	result, err := h.authService.CheckAuth(context.Background(), in.UID)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			_ = c.JSON(200, dto.CheckAuthResponse{Authenticated: false})
			return
		}
		c.InternalServerError("no se pudo verificar la sesión")
		return
	}

	_ = c.JSON(200, dto.CheckAuthResponse{
		Authenticated: true,
		User:          result.User,
		Token:         result.Token,
	})
}

func (h *AuthHandler) resendVerification(c *drift.Context, data json.RawMessage) {
	email, ok := h.bindEmail(c, data)
	if !ok {
		return
	}

	if err := h.authService.ResendVerification(context.Background(), email); err != nil {
		h.mapIdentityError(c, err)
		return
	}
	_ = c.JSON(200, dto.SuccessResponse{Success: true})
}

func (h *AuthHandler) resetPassword(c *drift.Context, data json.RawMessage) {
	email, ok := h.bindEmail(c, data)
	if !ok {
		return
	}

	if err := h.authService.ResetPassword(context.Background(), email); err != nil {
		h.mapIdentityError(c, err)
		return
	}
	_ = c.JSON(200, dto.SuccessResponse{Success: true})
}

func (h *AuthHandler) bindEmail(c *drift.Context, data json.RawMessage) (string, bool) {
	var in dto.EmailData
	if err := json.Unmarshal(data, &in); err != nil || in.Email == "" {
		c.BadRequest("email es requerido")
		return "", false
	}
	return in.Email, true
}

func (h *AuthHandler) mapIdentityError(c *drift.Context, err error) {
	switch {
	case errors.Is(err, identity.ErrEmailExists):
		c.BadRequest("el correo ya está registrado")
	case errors.Is(err, identity.ErrInvalidEmail):
		c.BadRequest("el correo electrónico no es válido")
	case errors.Is(err, identity.ErrWeakPassword):
		c.BadRequest("la contraseña debe tener al menos 6 caracteres")
	case errors.Is(err, identity.ErrUserNotFound):
		c.NotFound("usuario no encontrado")
	default:
		c.InternalServerError("servicio de autenticación no disponible")
	}
}
