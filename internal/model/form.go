package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lshigami/Formery/internal/builder"
	"gorm.io/gorm"
)

// QuestionList stores a form's ordered questions as one jsonb column, so the
// saved definition round-trips byte-for-byte in question order.
type QuestionList []builder.Question

func (l QuestionList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *QuestionList) Scan(src any) error {
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
	return fmt.Errorf("unsupported source type %T for QuestionList", src)
}

type Form struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	Theme       string         `json:"theme" gorm:"default:'default'"`
	Questions   QuestionList   `json:"questions" gorm:"type:jsonb"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Definition converts the stored row back into the builder's form definition.
func (f *Form) Definition() builder.Definition {
	return builder.Definition{
		Title:       f.Title,
		Description: f.Description,
		Theme:       f.Theme,
		Questions:   []builder.Question(f.Questions),
	}
}
