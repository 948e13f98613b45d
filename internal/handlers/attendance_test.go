package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/conquiguias/conquiguias-api/internal/models"
	"github.com/conquiguias/conquiguias-api/internal/services"
	"github.com/conquiguias/conquiguias-api/pkg/dto"
	"github.com/conquiguias/conquiguias-api/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAttendanceTest(t *testing.T) (*testutil.MockAttendanceService, *testutil.MockEvaluationService, *AttendanceHandler) {
	t.Helper()
	mockAttendance := new(testutil.MockAttendanceService)
	mockEvaluation := new(testutil.MockEvaluationService)
	handler := NewAttendanceHandler(mockAttendance, mockEvaluation)
	return mockAttendance, mockEvaluation, handler
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return testutil.NewHTTPTestClient(t, handler).POST(path, body, nil)
}

func getRequest(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	return testutil.NewHTTPTestClient(t, handler).GET(path, nil)
}

func TestAttendanceHandler_Submit_Success(t *testing.T) {
	mockAttendance, _, handler := setupAttendanceTest(t)

	record := &models.AttendanceRecord{
		Nombre:           "Ana Pérez",
		Correo:           "ana@example.com",
		VisitanteID:      "visitor-1",
		AsistenciaNumero: 1,
	}
	mockAttendance.On("Submit", mock.Anything, "evt1", mock.Anything).Return(record, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Post("/api/guardar", handler.Submit)

	rec := postJSON(t, app, "/api/guardar", dto.SubmitAttendanceRequest{
		ID:               "evt1",
		Nombre:           "Ana Pérez",
		Correo:           "ana@example.com",
		AsistenciaNumero: 1,
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.SubmitAttendanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, 1, response.NumeroAsistencia)
	assert.Equal(t, "visitor-1", response.VisitanteID)

	mockAttendance.AssertExpectations(t)
}

func TestAttendanceHandler_Submit_MissingEventID(t *testing.T) {
	_, _, handler := setupAttendanceTest(t)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Post("/api/guardar", handler.Submit)

	rec := postJSON(t, app, "/api/guardar", dto.SubmitAttendanceRequest{
		Nombre:           "Ana Pérez",
		Correo:           "ana@example.com",
		AsistenciaNumero: 1,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "id es requerido")
}

func TestAttendanceHandler_Submit_Duplicate(t *testing.T) {
	mockAttendance, _, handler := setupAttendanceTest(t)

	mockAttendance.On("Submit", mock.Anything, "evt1", mock.Anything).
		Return(nil, services.ErrDuplicateAttendance)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Post("/api/guardar", handler.Submit)

	rec := postJSON(t, app, "/api/guardar", dto.SubmitAttendanceRequest{
		ID:               "evt1",
		Nombre:           "Ana Pérez",
		Correo:           "ana@example.com",
		AsistenciaNumero: 1,
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAttendanceHandler_Submit_OrderViolation(t *testing.T) {
	mockAttendance, _, handler := setupAttendanceTest(t)

	mockAttendance.On("Submit", mock.Anything, "evt1", mock.Anything).
		Return(nil, &services.CheckpointOrderError{Required: 1, Requested: 2})

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Post("/api/guardar", handler.Submit)

	rec := postJSON(t, app, "/api/guardar", dto.SubmitAttendanceRequest{
		ID:               "evt1",
		VisitanteID:      "visitor-1",
		AsistenciaNumero: 2,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "asistencia 1")
}

func TestAttendanceHandler_Submit_LaterCheckpointRequiresVisitorID(t *testing.T) {
	_, _, handler := setupAttendanceTest(t)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Post("/api/guardar", handler.Submit)

	rec := postJSON(t, app, "/api/guardar", dto.SubmitAttendanceRequest{
		ID:               "evt1",
		AsistenciaNumero: 2,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "visitanteId es requerido")
}

func TestAttendanceHandler_Read_FiltersByEmail(t *testing.T) {
	mockAttendance, _, handler := setupAttendanceTest(t)

	records := []models.AttendanceRecord{{VisitanteID: "visitor-1", Correo: "ana@example.com", AsistenciaNumero: 1}}
	mockAttendance.On("ByEmail", mock.Anything, "evt1", "ana@example.com").Return(records, nil)

	app := drift.New()
	app.Get("/api/leer", handler.Read)

	rec := getRequest(t, app, "/api/leer?id=evt1&correo=ana@example.com")

	assert.Equal(t, http.StatusOK, rec.Code)
	mockAttendance.AssertExpectations(t)
}

func TestAttendanceHandler_Read_MissingID(t *testing.T) {
	_, _, handler := setupAttendanceTest(t)

	app := drift.New()
	app.Get("/api/leer", handler.Read)

	rec := getRequest(t, app, "/api/leer")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceHandler_Responses_CombinesViews(t *testing.T) {
	mockAttendance, mockEvaluation, handler := setupAttendanceTest(t)

	mockAttendance.On("ByEvent", mock.Anything, "evt1").
		Return([]models.AttendanceRecord{{VisitanteID: "visitor-1", AsistenciaNumero: 1}}, nil)
	mockEvaluation.On("Results", mock.Anything, "evt1").
		Return([]models.ExamResult{{VisitanteID: "visitor-1", Puntaje: json.Number("8")}})

	app := drift.New()
	app.Get("/api/verRespuestas", handler.Responses)

	rec := getRequest(t, app, "/api/verRespuestas?id=evt1")

	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Contains(t, response, "asistencias")
	assert.Contains(t, response, "examenes")
}

func TestAttendanceHandler_Responses_ReadFailure(t *testing.T) {
	mockAttendance, _, handler := setupAttendanceTest(t)

	mockAttendance.On("ByEvent", mock.Anything, "evt1").Return(nil, errors.New("boom"))

	app := drift.New()
	app.Get("/api/verRespuestas", handler.Responses)

	rec := getRequest(t, app, "/api/verRespuestas?id=evt1")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
