package models

// ImageEntry is a projection of one stored image file.
type ImageEntry struct {
	Nombre string `json:"nombre"`
	URL    string `json:"url"`
	Ruta   string `json:"ruta"`
}
