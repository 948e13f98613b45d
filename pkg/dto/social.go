package dto

type SocialUploadRequest struct {
	Imagen string `json:"imagen"`
}

type SocialUploadResponse struct {
	Mensaje    string `json:"mensaje"`
	ID         string `json:"id"`
	Link       string `json:"link"`
	DeleteHash string `json:"deletehash"`
}

type SocialDeleteRequest struct {
	DeleteHash string `json:"deletehash"`
}

type ClientIDResponse struct {
	ClientID string `json:"clientId"`
}

type AdminsResponse struct {
	Admins []string `json:"admins"`
}
