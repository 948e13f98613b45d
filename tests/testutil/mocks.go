package testutil

import (
	"context"
	"encoding/json"
	"time"

	"github.com/conquiguias/conquiguias-api/internal/imgur"
	"github.com/conquiguias/conquiguias-api/internal/models"
	"github.com/conquiguias/conquiguias-api/internal/services"
	"github.com/stretchr/testify/mock"
)

// MockAttendanceService mocks the AttendanceService
type MockAttendanceService struct {
	mock.Mock
}

func (m *MockAttendanceService) Submit(ctx context.Context, eventID string, sub services.AttendanceSubmission) (*models.AttendanceRecord, error) {
	args := m.Called(ctx, eventID, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceService) ByEvent(ctx context.Context, eventID string) ([]models.AttendanceRecord, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceService) ByEmail(ctx context.Context, eventID, correo string) ([]models.AttendanceRecord, error) {
	args := m.Called(ctx, eventID, correo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AttendanceRecord), args.Error(1)
}

// MockFormService mocks the FormService
type MockFormService struct {
	mock.Mock
}

func (m *MockFormService) Create(ctx context.Context, id string, in services.FormInput) (*models.FormDefinition, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FormDefinition), args.Error(1)
}

func (m *MockFormService) Get(ctx context.Context, id string) (*models.Form, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Form), args.Error(1)
}

func (m *MockFormService) List(ctx context.Context) (map[string]models.FormDefinition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]models.FormDefinition), args.Error(1)
}

func (m *MockFormService) PurgeExpired(ctx context.Context, now time.Time) ([]string, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockEvaluationService mocks the EvaluationService
type MockEvaluationService struct {
	mock.Mock
}

func (m *MockEvaluationService) Save(ctx context.Context, eventID string, questions []json.RawMessage) error {
	args := m.Called(ctx, eventID, questions)
	return args.Error(0)
}

func (m *MockEvaluationService) Get(ctx context.Context, eventID string) []json.RawMessage {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]json.RawMessage)
}

func (m *MockEvaluationService) SubmitResult(ctx context.Context, eventID, visitanteID string, respuestas json.RawMessage, puntaje json.Number) (*models.ExamResult, error) {
	args := m.Called(ctx, eventID, visitanteID, respuestas, puntaje)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ExamResult), args.Error(1)
}

func (m *MockEvaluationService) Results(ctx context.Context, eventID string) []models.ExamResult {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]models.ExamResult)
}

// MockImageService mocks the ImageService
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Upload(ctx context.Context, carpeta, nombre, contenidoBase64 string) (string, error) {
	args := m.Called(ctx, carpeta, nombre, contenidoBase64)
	return args.String(0), args.Error(1)
}

func (m *MockImageService) List(ctx context.Context, carpeta string) ([]models.ImageEntry, error) {
	args := m.Called(ctx, carpeta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ImageEntry), args.Error(1)
}

// MockAuthService mocks the AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, input services.RegisterInput) (*services.AuthResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.AuthResult), args.Error(1)
}

func (m *MockAuthService) CheckAuth(ctx context.Context, uid string) (*services.AuthResult, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.AuthResult), args.Error(1)
}

func (m *MockAuthService) ResendVerification(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// MockImgurClient mocks the imgur client
type MockImgurClient struct {
	mock.Mock
}

func (m *MockImgurClient) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockImgurClient) ClientID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockImgurClient) Upload(ctx context.Context, imageBase64 string) (*imgur.Image, error) {
	args := m.Called(ctx, imageBase64)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*imgur.Image), args.Error(1)
}

func (m *MockImgurClient) Delete(ctx context.Context, deleteHash string) error {
	args := m.Called(ctx, deleteHash)
	return args.Error(0)
}
