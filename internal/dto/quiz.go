package dto

// UploadResponse returns the opaque identifier for a processed upload.
// @Description Response body after a successful PDF upload
type UploadResponse struct {
	FileID string `json:"fileId"`
}

// GenerateRequest asks for flashcards or a quiz from a processed upload.
// @Description Request body for generation endpoints
type GenerateRequest struct {
	FileID string `json:"fileId"`
	Prompt string `json:"prompt"`
}

// SubmittedAnswer is one (question index, selected option) pair in a
// submission.
type SubmittedAnswer struct {
	QuestionIndex       int `json:"questionIndex"`
	SelectedOptionIndex int `json:"selectedOptionIndex"`
}

// SubmitAttemptRequest carries the answers for a quiz submission.
// @Description Request body for submitting quiz answers
type SubmitAttemptRequest struct {
	Answers []SubmittedAnswer `json:"answers"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}
