package deploy

import "time"

// PageUpload is one page as submitted to the deployment backend.
type PageUpload struct {
	Path            string `json:"path"`
	Title           string `json:"title"`
	MetaDescription string `json:"meta_description"`
	Content         string `json:"content"`
	WordCount       int    `json:"word_count"`
	Method          string `json:"generation_method"`
}

// UploadBatch is the batch submission request body.
type UploadBatch struct {
	DeploymentID string       `json:"deployment_id"`
	BusinessID   string       `json:"business_id"`
	Pages        []PageUpload `json:"pages"`
}

// BackendResponse is the deployment backend's response envelope.
type BackendResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Config holds deployment backend settings.
type Config struct {
	BaseURL    string        `json:"base_url"`
	APIKey     string        `json:"api_key"`
	BatchSize  int           `json:"batch_size"`
	EnableGzip bool          `json:"enable_gzip"`
	Timeout    time.Duration `json:"timeout"`
}
