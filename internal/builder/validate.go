package builder

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownQuestionType = errors.New("unknown question type")
	ErrEmptyListField      = errors.New("list field must keep at least one element")
)

// ValidateDefinition checks a full definition the way the builder's save path
// does: trimmed non-empty title, at least one question, only known question
// types, and the at-least-one-element invariant on every list-valued field a
// question's type requires. The gateway applies the same rules server-side so
// a hand-crafted payload cannot bypass the builder.
func ValidateDefinition(def Definition) error {
	if strings.TrimSpace(def.Title) == "" {
		return ErrTitleRequired
	}
	if len(def.Questions) == 0 {
		return ErrNoQuestions
	}
	for i, q := range def.Questions {
		if !IsValidType(q.Type) {
			return fmt.Errorf("question %d: %w: %q", i, ErrUnknownQuestionType, q.Type)
		}
		switch q.Type {
		case TypeMCQ, TypeCheckbox, TypeDropdown:
			if len(q.Options) == 0 {
				return fmt.Errorf("question %d: options: %w", i, ErrEmptyListField)
			}
		case TypeCategorize:
			if len(q.Categories) == 0 {
				return fmt.Errorf("question %d: categories: %w", i, ErrEmptyListField)
			}
			if len(q.Items) == 0 {
				return fmt.Errorf("question %d: items: %w", i, ErrEmptyListField)
			}
		}
	}
	return nil
}
