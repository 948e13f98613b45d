package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/conquiguias/conquiguias-api/internal/models"
	"github.com/conquiguias/conquiguias-api/internal/store"
)

var (
	ErrInvalidFolder = errors.New("invalid image folder")
	ErrImageExists   = errors.New("image already exists")
)

var imageFolders = map[string]bool{
	"especialidades": true,
	"firmas":         true,
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

type ImageService struct {
	store   store.Store
	baseURL string
}

func NewImageService(st store.Store, baseURL string) *ImageService {
	return &ImageService{store: st, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Upload stores an already base64-encoded image. Filenames are create-only
// within a folder: an existing object at the same path is a conflict.
func (s *ImageService) Upload(ctx context.Context, carpeta, nombre, contenidoBase64 string) (string, error) {
	if !imageFolders[carpeta] {
		return "", ErrInvalidFolder
	}

	objectPath := fmt.Sprintf("images/%s/%s", carpeta, nombre)
	if _, err := s.store.Get(ctx, objectPath); err == nil {
		return "", ErrImageExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return "", err
	}

	message := fmt.Sprintf("Subir imagen: %s en %s", nombre, carpeta)
	if _, err := s.store.PutBlob(ctx, objectPath, contenidoBase64, message); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/images/%s/%s", s.baseURL, carpeta, nombre), nil
}

// List enumerates the image files in a folder. An absent folder is an
// empty list, not an error.
func (s *ImageService) List(ctx context.Context, carpeta string) ([]models.ImageEntry, error) {
	if !imageFolders[carpeta] {
		return nil, ErrInvalidFolder
	}

	entries, err := s.store.List(ctx, "images/"+carpeta)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []models.ImageEntry{}, nil
		}
		return nil, err
	}

	images := make([]models.ImageEntry, 0, len(entries))
	for _, e := range entries {
		if e.Type != "file" || !imageExtensions[strings.ToLower(path.Ext(e.Name))] {
			continue
		}
		images = append(images, models.ImageEntry{
			Nombre: e.Name,
			URL:    e.DownloadURL,
			Ruta:   e.Path,
		})
	}
	return images, nil
}
