package model

// StoredFile describes one accepted upload. URL is the public path the
// content document references; the bytes themselves live in the upload
// directory under Filename.
type StoredFile struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
}
