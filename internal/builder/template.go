package builder

import "fmt"

// TemplateFor returns a fresh default question body for the given type. The
// ID is not assigned here; the caller owns identity. Passing an unknown tag is
// a programming error, not a runtime condition, so it panics.
func TemplateFor(t QuestionType) Question {
	switch t {
	case TypeMCQ:
		return Question{Type: TypeMCQ, Text: "Multiple Choice Question", Options: []string{"Option 1", "Option 2"}}
	case TypeCheckbox:
		return Question{Type: TypeCheckbox, Text: "Checkbox Question", Options: []string{"Option 1", "Option 2"}}
	case TypeShort:
		return Question{Type: TypeShort, Text: "Short Answer Question"}
	case TypeLong:
		return Question{Type: TypeLong, Text: "Long Answer Question"}
	case TypeRating:
		return Question{Type: TypeRating, Text: "Rating Question", Scale: 5}
	case TypeDropdown:
		return Question{Type: TypeDropdown, Text: "Dropdown Question", Options: []string{"Option 1", "Option 2"}}
	case TypeFile:
		return Question{Type: TypeFile, Text: "File Upload Question"}
	case TypeCategorize:
		return Question{
			Type:       TypeCategorize,
			Text:       "Categorize Question",
			Categories: []string{"Category 1", "Category 2"},
			Items:      []string{"Item 1", "Item 2"},
		}
	case TypeDate:
		return Question{Type: TypeDate, Text: "Date Question"}
	case TypeTime:
		return Question{Type: TypeTime, Text: "Time Question"}
	}
	panic(fmt.Sprintf("builder: unknown question type %q", t))
}

// IsValidType reports whether t is one of the supported question tags.
func IsValidType(t QuestionType) bool {
	for _, known := range QuestionTypes {
		if t == known {
			return true
		}
	}
	return false
}
