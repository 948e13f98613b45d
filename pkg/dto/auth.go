package dto

import "encoding/json"

// AuthRequest is the envelope for POST /api/auth; Data is decoded per action.
type AuthRequest struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type RegisterData struct {
	Nombre   string      `json:"nombre"`
	Apellido string      `json:"apellido"`
	Edad     json.Number `json:"edad,omitempty"`
	Sexo     string      `json:"sexo,omitempty"`
	Pais     string      `json:"pais,omitempty"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Foto     string      `json:"foto,omitempty"`
	FotoTipo string      `json:"fotoTipo,omitempty"`
}

type CheckAuthData struct {
	UID string `json:"uid"`
}

type EmailData struct {
	Email string `json:"email"`
}

type RegisterResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
	Token   string `json:"token,omitempty"`
}

type CheckAuthResponse struct {
	Authenticated bool   `json:"authenticated"`
	User          any    `json:"user,omitempty"`
	Token         string `json:"token,omitempty"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type SessionResponse struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}
