package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/conquiguias/conquiguias-api/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupCompatApp(t *testing.T) (*testutil.MockEvaluationService, *testutil.MockFormService, http.Handler) {
	t.Helper()
	mockAttendance := new(testutil.MockAttendanceService)
	mockEvaluation := new(testutil.MockEvaluationService)
	mockForms := new(testutil.MockFormService)
	mockImages := new(testutil.MockImageService)

	router := NewCompatRouter(
		NewAttendanceHandler(mockAttendance, mockEvaluation),
		NewFormHandler(mockForms),
		NewEvaluationHandler(mockEvaluation),
		NewImageHandler(mockImages),
	)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Get("/api/formulario", router.Handle)
	app.Post("/api/formulario", router.Handle)
	return mockEvaluation, mockForms, app
}

func TestCompatRouter_UnknownAction(t *testing.T) {
	_, _, app := setupCompatApp(t)

	rec := getRequest(t, app, "/api/formulario?accion=borrarTodo")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "acción desconocida")
}

func TestCompatRouter_WrongMethod(t *testing.T) {
	_, _, app := setupCompatApp(t)

	// guardarFormulario is POST-only
	rec := getRequest(t, app, "/api/formulario?accion=guardarFormulario")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCompatRouter_RoutesToHandler(t *testing.T) {
	mockEvaluation, _, app := setupCompatApp(t)

	mockEvaluation.On("Get", mock.Anything, "evt1").Return([]json.RawMessage{})

	rec := getRequest(t, app, "/api/formulario?accion=obtenerEvaluacion&id=evt1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	mockEvaluation.AssertExpectations(t)
}

func TestCompatRouter_PurgeAcceptsAnyMethod(t *testing.T) {
	_, mockForms, app := setupCompatApp(t)

	mockForms.On("PurgeExpired", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]string{}, nil).Twice()

	rec := getRequest(t, app, "/api/formulario?accion=limpiarFormulariosVencidos")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(t, app, "/api/formulario?accion=limpiarFormulariosVencidos", map[string]string{})
	assert.Equal(t, http.StatusOK, rec.Code)
}
