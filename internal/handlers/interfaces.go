package handlers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/conquiguias/conquiguias-api/internal/imgur"
	"github.com/conquiguias/conquiguias-api/internal/models"
	"github.com/conquiguias/conquiguias-api/internal/services"
)

// AttendanceServiceInterface defines the methods used by handlers from AttendanceService
type AttendanceServiceInterface interface {
	Submit(ctx context.Context, eventID string, sub services.AttendanceSubmission) (*models.AttendanceRecord, error)
	ByEvent(ctx context.Context, eventID string) ([]models.AttendanceRecord, error)
	ByEmail(ctx context.Context, eventID, correo string) ([]models.AttendanceRecord, error)
}

// FormServiceInterface defines the methods used by handlers from FormService
type FormServiceInterface interface {
	Create(ctx context.Context, id string, in services.FormInput) (*models.FormDefinition, error)
	Get(ctx context.Context, id string) (*models.Form, error)
	List(ctx context.Context) (map[string]models.FormDefinition, error)
	PurgeExpired(ctx context.Context, now time.Time) ([]string, error)
}

// EvaluationServiceInterface defines the methods used by handlers from EvaluationService
type EvaluationServiceInterface interface {
	Save(ctx context.Context, eventID string, questions []json.RawMessage) error
	Get(ctx context.Context, eventID string) []json.RawMessage
	SubmitResult(ctx context.Context, eventID, visitanteID string, respuestas json.RawMessage, puntaje json.Number) (*models.ExamResult, error)
	Results(ctx context.Context, eventID string) []models.ExamResult
}

// ImageServiceInterface defines the methods used by handlers from ImageService
type ImageServiceInterface interface {
	Upload(ctx context.Context, carpeta, nombre, contenidoBase64 string) (string, error)
	List(ctx context.Context, carpeta string) ([]models.ImageEntry, error)
}

// AuthServiceInterface defines the methods used by handlers from AuthService
type AuthServiceInterface interface {
	Register(ctx context.Context, input services.RegisterInput) (*services.AuthResult, error)
	CheckAuth(ctx context.Context, uid string) (*services.AuthResult, error)
	ResendVerification(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email string) error
}

// ImgurClientInterface defines the methods used by handlers from the imgur client
type ImgurClientInterface interface {
	IsConfigured() bool
	ClientID() string
	Upload(ctx context.Context, imageBase64 string) (*imgur.Image, error)
	Delete(ctx context.Context, deleteHash string) error
}
