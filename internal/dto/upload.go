package dto

// TempUploadResponse is returned by POST /api/upload/temp.
type TempUploadResponse struct {
	TempID   string `json:"tempId"`
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	FileSize int64  `json:"fileSize"`
}

// UploadResponse is returned by POST /api/upload for authenticated permanent uploads.
type UploadResponse struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	FileSize int64  `json:"fileSize"`
}
