package builder

import "strconv"

// QuestionType tags the fixed palette of question kinds a form can contain.
type QuestionType string

const (
	TypeMCQ        QuestionType = "mcq"
	TypeCheckbox   QuestionType = "checkbox"
	TypeShort      QuestionType = "short"
	TypeLong       QuestionType = "long"
	TypeRating     QuestionType = "rating"
	TypeDropdown   QuestionType = "dropdown"
	TypeFile       QuestionType = "file"
	TypeCategorize QuestionType = "categorize"
	TypeDate       QuestionType = "date"
	TypeTime       QuestionType = "time"
)

// QuestionTypes lists every supported tag, in toolbar order.
var QuestionTypes = []QuestionType{
	TypeMCQ, TypeCheckbox, TypeShort, TypeLong, TypeRating,
	TypeDropdown, TypeFile, TypeCategorize, TypeDate, TypeTime,
}

// Question is one input item within a form. ID and Type are assigned at
// creation and never change afterwards; only the content fields are editable.
// Fields that do not apply to the question's type carry no meaning and are
// omitted from the serialized form.
type Question struct {
	ID         string       `json:"id"`
	Type       QuestionType `json:"type"`
	Text       string       `json:"text"`
	Options    []string     `json:"options,omitempty"`    // mcq, checkbox, dropdown
	Scale      int          `json:"scale,omitempty"`      // rating
	Categories []string     `json:"categories,omitempty"` // categorize
	Items      []string     `json:"items,omitempty"`      // categorize
	Files      []string     `json:"files,omitempty"`      // file: stored-file references
}

// ListField names a list-valued question field that the builder can grow and
// shrink one element at a time.
type ListField string

const (
	FieldOptions    ListField = "options"
	FieldCategories ListField = "categories"
	FieldItems      ListField = "items"
)

// listFieldRef returns a pointer to the slice the field names, or nil when the
// field does not exist on any question.
func (q *Question) listFieldRef(field ListField) *[]string {
	switch field {
	case FieldOptions:
		return &q.Options
	case FieldCategories:
		return &q.Categories
	case FieldItems:
		return &q.Items
	}
	return nil
}

// AddListItem appends a default-labeled placeholder ("Option 3", "Category 2",
// ...) to the named list field. Adding always succeeds for a valid field.
func (q *Question) AddListItem(field ListField) bool {
	ref := q.listFieldRef(field)
	if ref == nil {
		return false
	}
	*ref = append(*ref, defaultListLabel(field, len(*ref)+1))
	return true
}

// RemoveListItem deletes the element at index from the named list field. The
// removal is refused when it would leave the field empty: every list-valued
// field keeps at least one element.
func (q *Question) RemoveListItem(field ListField, index int) bool {
	ref := q.listFieldRef(field)
	if ref == nil || index < 0 || index >= len(*ref) {
		return false
	}
	if len(*ref) <= 1 {
		return false
	}
	*ref = append((*ref)[:index], (*ref)[index+1:]...)
	return true
}

// SetListItem overwrites the label at index in the named list field.
func (q *Question) SetListItem(field ListField, index int, value string) bool {
	ref := q.listFieldRef(field)
	if ref == nil || index < 0 || index >= len(*ref) {
		return false
	}
	(*ref)[index] = value
	return true
}

// MoveListItem re-splices the element at from to position to, preserving the
// relative order of everything else. This backs drag-reordering of options.
func (q *Question) MoveListItem(field ListField, from, to int) bool {
	ref := q.listFieldRef(field)
	if ref == nil {
		return false
	}
	return spliceStrings(ref, from, to)
}

func defaultListLabel(field ListField, n int) string {
	switch field {
	case FieldOptions:
		return "Option " + strconv.Itoa(n)
	case FieldCategories:
		return "Category " + strconv.Itoa(n)
	case FieldItems:
		return "Item " + strconv.Itoa(n)
	}
	return ""
}

func spliceStrings(ref *[]string, from, to int) bool {
	s := *ref
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) || from == to {
		return false
	}
	moved := s[from]
	s = append(s[:from], s[from+1:]...)
	s = append(s[:to], append([]string{moved}, s[to:]...)...)
	*ref = s
	return true
}
