package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Answer is one stored {questionId, questionText, answerValue} triple. The
// answer value keeps whatever shape the question type produced: string, list
// of strings, integer rating, category-to-items mapping, or a stored-file
// reference.
type Answer struct {
	QuestionID string `json:"questionId"`
	Question   string `json:"question"`
	Answer     any    `json:"answer"`
}

// AnswerList stores a response's answers as one jsonb column, preserving the
// form's question order.
type AnswerList []Answer

func (l AnswerList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *AnswerList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, l)
	case string:
		return json.Unmarshal([]byte(data), l)
	}
	return fmt.Errorf("unsupported source type %T for AnswerList", src)
}

type Response struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	FormID      uint           `json:"form_id" gorm:"not null;index"`
	Form        Form           `json:"form,omitempty" gorm:"foreignKey:FormID"`
	Answers     AnswerList     `json:"answers" gorm:"type:jsonb"`
	SubmittedAt time.Time      `json:"submitted_at" gorm:"autoCreateTime"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
