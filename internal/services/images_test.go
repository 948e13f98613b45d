package services_test

import (
	"context"
	"testing"

	"github.com/conquiguias/conquiguias-api/internal/services"
	"github.com/conquiguias/conquiguias-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadImage_InvalidFolder(t *testing.T) {
	st := testutil.NewMemStore()
	svc := services.NewImageService(st, "https://conquiguias.vercel.app")

	_, err := svc.Upload(context.Background(), "otros", "foto.png", "aGVsbG8=")
	assert.ErrorIs(t, err, services.ErrInvalidFolder)
}

func TestUploadImage_Success(t *testing.T) {
	st := testutil.NewMemStore()
	svc := services.NewImageService(st, "https://conquiguias.vercel.app/")

	url, err := svc.Upload(context.Background(), "firmas", "director.png", "aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "https://conquiguias.vercel.app/images/firmas/director.png", url)
	assert.Equal(t, []byte("aGVsbG8="), st.Contents("images/firmas/director.png"))
}

func TestUploadImage_ExistingNameConflicts(t *testing.T) {
	st := testutil.NewMemStore()
	svc := services.NewImageService(st, "https://conquiguias.vercel.app")
	ctx := context.Background()

	_, err := svc.Upload(ctx, "firmas", "director.png", "aGVsbG8=")
	require.NoError(t, err)

	_, err = svc.Upload(ctx, "firmas", "director.png", "b3Rybw==")
	assert.ErrorIs(t, err, services.ErrImageExists)

	// Original content untouched.
	assert.Equal(t, []byte("aGVsbG8="), st.Contents("images/firmas/director.png"))
}

func TestListImages_FiltersExtensions(t *testing.T) {
	st := testutil.NewMemStore()
	svc := services.NewImageService(st, "https://conquiguias.vercel.app")
	ctx := context.Background()

	_, err := svc.Upload(ctx, "especialidades", "nudos.png", "aGVsbG8=")
	require.NoError(t, err)
	st.SeedRaw("images/especialidades/notas.txt", []byte("no es imagen"))

	images, err := svc.List(ctx, "especialidades")
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "nudos.png", images[0].Nombre)
	assert.Equal(t, "images/especialidades/nudos.png", images[0].Ruta)
}

func TestListImages_AbsentFolderIsEmpty(t *testing.T) {
	st := testutil.NewMemStore()
	svc := services.NewImageService(st, "https://conquiguias.vercel.app")

	images, err := svc.List(context.Background(), "firmas")
	require.NoError(t, err)
	assert.Empty(t, images)
	assert.NotNil(t, images)
}
