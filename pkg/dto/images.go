package dto

type UploadImageRequest struct {
	Carpeta   string `json:"carpeta"`
	Nombre    string `json:"nombre"`
	Contenido string `json:"contenido"`
}

type UploadImageResponse struct {
	OK  bool   `json:"ok"`
	URL string `json:"url"`
}
