package dto

import (
	"time"

	"github.com/lshigami/Formery/internal/builder"
	"github.com/lshigami/Formery/internal/model"
)

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// MessageResponse is the short acknowledgement the auth endpoints return; the
// client reads the `msg` field verbatim.
type MessageResponse struct {
	Msg      string `json:"msg"`
	Username string `json:"username,omitempty"`
}

// SessionResponse answers "is a user logged in" for app start.
type SessionResponse struct {
	LoggedIn bool   `json:"loggedIn"`
	Username string `json:"username,omitempty"`
}

type ProfileResponse struct {
	ID             uint      `json:"id"`
	Username       string    `json:"username"`
	Name           string    `json:"name,omitempty"`
	Email          string    `json:"email"`
	ProfileImage   string    `json:"profileImage,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	FormCount      int64     `json:"formCount"`
	TotalResponses int64     `json:"totalResponses"`
}

// FormDTO is the full form definition as served to the builder (edit mode) and
// the fill flow.
type FormDTO struct {
	ID          uint               `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Theme       string             `json:"theme"`
	Questions   []builder.Question `json:"questions"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// FormSummaryDTO lists a user's forms with their response counts.
type FormSummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Theme         string    `json:"theme"`
	QuestionCount int       `json:"question_count"`
	ResponseCount int64     `json:"response_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type ResponseDTO struct {
	ID          uint           `json:"id"`
	FormID      uint           `json:"form_id"`
	Answers     []model.Answer `json:"answers"`
	SubmittedAt time.Time      `json:"submitted_at"`
}

// TemplateDTO is a prefilled definition built from a named starter template.
type TemplateDTO struct {
	Name        string             `json:"name"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Theme       string             `json:"theme"`
	Questions   []builder.Question `json:"questions"`
}

type UploadResponse struct {
	FilePath string `json:"filePath"`
}
