package models

// VerificationResult is the outcome of the content verifier for an image
type VerificationResult struct {
	Verified    bool    `json:"verified"`
	Explanation string  `json:"explanation"`
	Confidence  float64 `json:"ai_confidence"`
}

// UploadResult is returned after an image is stored with the blob collaborator
type UploadResult struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}
