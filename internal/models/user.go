package models

import (
	"encoding/json"
	"time"
)

// UserProfile is the Firestore document stored per registered user.
type UserProfile struct {
	Nombre          string      `json:"nombre" firestore:"nombre"`
	Apellido        string      `json:"apellido" firestore:"apellido"`
	Edad            json.Number `json:"edad,omitempty" firestore:"edad"`
	Sexo            string      `json:"sexo,omitempty" firestore:"sexo"`
	Pais            string      `json:"pais,omitempty" firestore:"pais"`
	Email           string      `json:"email" firestore:"email"`
	FotoURL         *string     `json:"fotoURL" firestore:"fotoURL"`
	EmailVerificado bool        `json:"emailVerificado" firestore:"emailVerificado"`
	Creado          time.Time   `json:"creado" firestore:"creado,serverTimestamp"`
}
