package handlers

import (
	"net/http"

	"github.com/m1z23r/drift/pkg/drift"
)

type compatRoute struct {
	// empty method accepts any verb
	method  string
	handler drift.HandlerFunc
}

// CompatRouter serves the legacy /api/formulario?accion= surface by
// resolving a closed action table onto the same handlers the dedicated
// routes use.
type CompatRouter struct {
	routes map[string]compatRoute
}

func NewCompatRouter(attendance *AttendanceHandler, forms *FormHandler, evaluations *EvaluationHandler, images *ImageHandler) *CompatRouter {
	return &CompatRouter{routes: map[string]compatRoute{
		"guardar":                     {http.MethodPost, attendance.Submit},
		"leer":                        {http.MethodGet, attendance.Read},
		"verRespuestas":               {http.MethodGet, attendance.Responses},
		"guardarFormulario":           {http.MethodPost, forms.Create},
		"obtenerFormulario":           {http.MethodGet, forms.Get},
		"listarFormularios":           {http.MethodGet, forms.List},
		"limpiarFormulariosVencidos":  {"", forms.Purge},
		"guardarEvaluacion":           {http.MethodPost, evaluations.Save},
		"obtenerEvaluacion":           {http.MethodGet, evaluations.Get},
		"guardarResultadoExamen":      {http.MethodPost, evaluations.SubmitResult},
		"listarImagenes":              {http.MethodGet, images.List},
		"subirImagen":                 {http.MethodPost, images.Upload},
	}}
}

func (r *CompatRouter) Handle(c *drift.Context) {
	route, ok := r.routes[c.QueryParam("accion")]
	if !ok {
		c.BadRequest("acción desconocida")
		return
	}
	if route.method != "" && c.Request.Method != route.method {
		_ = c.JSON(405, map[string]string{"error": "método no permitido"})
		return
	}
	route.handler(c)
}
