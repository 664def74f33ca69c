package dto

import "github.com/lshigami/Formery/internal/builder"

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries the editable profile fields; nil means "leave
// unchanged".
type UpdateProfileRequest struct {
	Name         *string `json:"name"`
	ProfileImage *string `json:"profileImage"`
}

// SaveFormRequest is the full form definition as transmitted on save. Content
// validation (non-empty title, at least one question, known question types)
// happens in the service through the builder rules, not through binding tags,
// so the client receives the same messages the builder shows locally.
type SaveFormRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Theme       string             `json:"theme"`
	Questions   []builder.Question `json:"questions"`
}

// AnswerInput is one submitted {questionId, question, answer} triple.
type AnswerInput struct {
	QuestionID string `json:"questionId" binding:"required"`
	Question   string `json:"question"`
	Answer     any    `json:"answer"`
}

type SubmitResponseRequest struct {
	FormID  uint          `json:"formId" binding:"required"`
	Answers []AnswerInput `json:"answers" binding:"required,dive"`
}
