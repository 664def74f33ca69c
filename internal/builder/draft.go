package builder

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Definition is the saved schema of a form: title, description, theme and the
// ordered question list. Question order is the display and fill order.
type Definition struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Theme       string     `json:"theme"`
	Questions   []Question `json:"questions"`
}

// Direction selects the neighbor a question is swapped with.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

var (
	ErrTitleRequired = errors.New("form title is required")
	ErrNoQuestions   = errors.New("form must contain at least one question")
)

// Draft is the single in-memory form definition owned by one editing session.
// It is created empty, hydrated from a persisted form (edit mode) or from a
// named template (prefill mode), mutated through the methods below, and
// discarded after Save hands the full value to the gateway. There is no dirty
// tracking and no local copy survives a successful save.
type Draft struct {
	Definition

	// FormID is non-zero once the draft is bound to a persisted form, in
	// which case Save updates instead of creating.
	FormID uint
}

// NewDraft returns an empty draft with the default title, description and theme.
func NewDraft() *Draft {
	return &Draft{Definition: Definition{
		Title:       "Untitled Form",
		Description: "Form description",
		Theme:       DefaultThemeID,
		Questions:   nil,
	}}
}

// NewDraftFrom hydrates a draft from a persisted definition for editing.
func NewDraftFrom(id uint, def Definition) *Draft {
	if def.Theme == "" {
		def.Theme = DefaultThemeID
	}
	return &Draft{Definition: def, FormID: id}
}

// AddQuestion appends a fresh question of the given type, built from its
// template and assigned a new unique id. It returns the appended question.
func (d *Draft) AddQuestion(t QuestionType) Question {
	q := TemplateFor(t)
	q.ID = uuid.NewString()
	d.Questions = append(d.Questions, q)
	return q
}

// UpdateQuestion replaces the question whose id matches. The stored id and
// type are kept; only content fields are taken from the new value. A missing
// id is a tolerated no-op: the question may have been deleted in the same
// event tick that produced the edit.
func (d *Draft) UpdateQuestion(id string, updated Question) {
	for i := range d.Questions {
		if d.Questions[i].ID == id {
			updated.ID = id
			updated.Type = d.Questions[i].Type
			d.Questions[i] = updated
			return
		}
	}
}

// RemoveQuestion deletes the question whose id matches; no-op if absent.
func (d *Draft) RemoveQuestion(id string) {
	for i := range d.Questions {
		if d.Questions[i].ID == id {
			d.Questions = append(d.Questions[:i], d.Questions[i+1:]...)
			return
		}
	}
}

// QuestionByID returns a pointer into the draft's question list, or nil.
func (d *Draft) QuestionByID(id string) *Question {
	for i := range d.Questions {
		if d.Questions[i].ID == id {
			return &d.Questions[i]
		}
	}
	return nil
}

// MoveQuestion swaps the question at index with its neighbor in the given
// direction. Moving the first question up or the last one down is a no-op,
// as is an index outside the list.
func (d *Draft) MoveQuestion(index int, dir Direction) {
	if index < 0 || index >= len(d.Questions) {
		return
	}
	target := index - 1
	if dir == DirectionDown {
		target = index + 1
	}
	if target < 0 || target >= len(d.Questions) {
		return
	}
	d.MoveQuestionTo(index, target)
}

// MoveQuestionTo re-splices the question at from to position to: the question
// is removed from its origin index and inserted at the target index, keeping
// every other question's relative order. Drag reordering reduces to this.
func (d *Draft) MoveQuestionTo(from, to int) {
	if from < 0 || from >= len(d.Questions) || to < 0 || to >= len(d.Questions) || from == to {
		return
	}
	moved := d.Questions[from]
	d.Questions = append(d.Questions[:from], d.Questions[from+1:]...)
	d.Questions = append(d.Questions[:to], append([]Question{moved}, d.Questions[to:]...)...)
}

// Validate checks the save precondition: a trimmed non-empty title and at
// least one question.
func (d *Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrTitleRequired
	}
	if len(d.Questions) == 0 {
		return ErrNoQuestions
	}
	return nil
}

// FormSaver is the slice of the remote gateway the builder needs to persist a
// definition.
type FormSaver interface {
	CreateForm(ctx context.Context, def Definition) (uint, error)
	UpdateForm(ctx context.Context, id uint, def Definition) error
}

// Save transmits the draft's full current value to the gateway, updating when
// the draft is bound to an existing form and creating otherwise. Validation
// failures never reach the gateway, and a gateway failure leaves the in-memory
// draft unchanged; there is no retry.
func (d *Draft) Save(ctx context.Context, gw FormSaver) (uint, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	if d.FormID != 0 {
		if err := gw.UpdateForm(ctx, d.FormID, d.Definition); err != nil {
			return 0, err
		}
		return d.FormID, nil
	}
	id, err := gw.CreateForm(ctx, d.Definition)
	if err != nil {
		return 0, err
	}
	d.FormID = id
	return id, nil
}
