package dto

type UploadProfileImageResponse struct {
	Stored  bool   `json:"stored"`
	Warning string `json:"warning,omitempty"`
}
