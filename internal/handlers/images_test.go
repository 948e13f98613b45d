package handlers

import (
	"net/http"
	"testing"

	"github.com/conquiguias/conquiguias-api/internal/models"
	"github.com/conquiguias/conquiguias-api/internal/services"
	"github.com/conquiguias/conquiguias-api/pkg/dto"
	"github.com/conquiguias/conquiguias-api/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestImageHandler_Upload_Success(t *testing.T) {
	mockImages := new(testutil.MockImageService)
	handler := NewImageHandler(mockImages)

	mockImages.On("Upload", mock.Anything, "firmas", "director.png", "aGVsbG8=").
		Return("https://conquiguias.vercel.app/images/firmas/director.png", nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Post("/api/subirImagen", handler.Upload)

	rec := postJSON(t, app, "/api/subirImagen", dto.UploadImageRequest{
		Carpeta:   "firmas",
		Nombre:    "director.png",
		Contenido: "aGVsbG8=",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "director.png")
	mockImages.AssertExpectations(t)
}

func TestImageHandler_Upload_MissingFields(t *testing.T) {
	mockImages := new(testutil.MockImageService)
	handler := NewImageHandler(mockImages)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Post("/api/subirImagen", handler.Upload)

	rec := postJSON(t, app, "/api/subirImagen", dto.UploadImageRequest{Carpeta: "firmas"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImageHandler_Upload_InvalidFolder(t *testing.T) {
	mockImages := new(testutil.MockImageService)
	handler := NewImageHandler(mockImages)

	mockImages.On("Upload", mock.Anything, "otros", "foto.png", "aGVsbG8=").
		Return("", services.ErrInvalidFolder)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Post("/api/subirImagen", handler.Upload)

	rec := postJSON(t, app, "/api/subirImagen", dto.UploadImageRequest{
		Carpeta:   "otros",
		Nombre:    "foto.png",
		Contenido: "aGVsbG8=",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "carpeta inválida")
}

func TestImageHandler_Upload_ExistingName(t *testing.T) {
	mockImages := new(testutil.MockImageService)
	handler := NewImageHandler(mockImages)

	mockImages.On("Upload", mock.Anything, "firmas", "director.png", "aGVsbG8=").
		Return("", services.ErrImageExists)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Post("/api/subirImagen", handler.Upload)

	rec := postJSON(t, app, "/api/subirImagen", dto.UploadImageRequest{
		Carpeta:   "firmas",
		Nombre:    "director.png",
		Contenido: "aGVsbG8=",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestImageHandler_List_Success(t *testing.T) {
	mockImages := new(testutil.MockImageService)
	handler := NewImageHandler(mockImages)

	images := []models.ImageEntry{{Nombre: "nudos.png", URL: "https://raw.example.com/x", Ruta: "images/especialidades/nudos.png"}}
	mockImages.On("List", mock.Anything, "especialidades").Return(images, nil)

	app := drift.New()
	app.Get("/api/listarImagenes", handler.List)

	rec := getRequest(t, app, "/api/listarImagenes?carpeta=especialidades")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "nudos.png")
}

func TestImageHandler_List_MissingFolder(t *testing.T) {
	mockImages := new(testutil.MockImageService)
	handler := NewImageHandler(mockImages)

	app := drift.New()
	app.Get("/api/listarImagenes", handler.List)

	rec := getRequest(t, app, "/api/listarImagenes")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
