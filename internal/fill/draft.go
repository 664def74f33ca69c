// Package fill holds the respondent-side model of a form: answers keyed by
// question id, required-answer validation, and the one-shot submission to the
// remote gateway. Its lifecycle is independent from the builder's.
package fill

import (
	"context"
	"errors"

	"github.com/lshigami/Formery/internal/builder"
)

// State tracks the fill flow. Loading is entered on creation and left once the
// form definition arrives or the load fails; a failed load collapses into the
// terminal NotFound state. Submitting is entered only from Ready with zero
// validation errors.
type State string

const (
	StateLoading    State = "loading"
	StateReady      State = "ready"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateNotFound   State = "not_found"
)

var (
	ErrNotReady      = errors.New("form is not ready for input")
	ErrInvalidAnswer = errors.New("one or more required questions are unanswered")
)

// AnswerRecord is one {questionId, questionText, answerValue} triple of the
// wire payload, built per question in the form's question order at submit time.
type AnswerRecord struct {
	QuestionID string `json:"questionId"`
	Question   string `json:"question"`
	Answer     any    `json:"answer"`
}

// ResponseSubmitter is the slice of the remote gateway the fill flow needs.
type ResponseSubmitter interface {
	SubmitResponse(ctx context.Context, formID uint, answers []AnswerRecord) error
}

// Draft accumulates a respondent's answers to one form. Answers are keyed by
// question id, validated as a whole, and flushed in a single atomic submission.
type Draft struct {
	formID  uint
	def     builder.Definition
	state   State
	answers map[string]any
	invalid map[string]bool
}

// NewDraft starts a fill flow in the Loading state.
func NewDraft() *Draft {
	return &Draft{
		state:   StateLoading,
		answers: make(map[string]any),
		invalid: make(map[string]bool),
	}
}

// Bind attaches the fetched form definition and moves the draft to Ready.
func (d *Draft) Bind(formID uint, def builder.Definition) {
	d.formID = formID
	d.def = def
	d.state = StateReady
}

// FailLoad records that the form could not be fetched. NotFound is terminal:
// no further interaction is offered.
func (d *Draft) FailLoad() {
	d.state = StateNotFound
}

// State returns the current fill state.
func (d *Draft) State() State { return d.state }

// Definition returns the bound form definition.
func (d *Draft) Definition() builder.Definition { return d.def }

// Answer returns the current answer for a question, if any.
func (d *Draft) Answer(questionID string) (any, bool) {
	v, ok := d.answers[questionID]
	return v, ok
}

// HasError reports whether the question is currently flagged invalid.
func (d *Draft) HasError(questionID string) bool { return d.invalid[questionID] }

// SetAnswer overwrites the entry for the question and clears any pending
// validation-error flag for it.
func (d *Draft) SetAnswer(questionID string, value any) {
	if d.state != StateReady {
		return
	}
	d.answers[questionID] = value
	delete(d.invalid, questionID)
}

// ValidateAll scans every question in the bound definition and returns the ids
// of the invalid ones, in question order. A question is invalid iff its answer
// is absent or is a list-typed answer with zero elements. The ids are also
// flagged for error display until the respondent touches them again.
func (d *Draft) ValidateAll() []string {
	var ids []string
	d.invalid = make(map[string]bool)
	for _, q := range d.def.Questions {
		answer, ok := d.answers[q.ID]
		if !ok || answerMissing(answer) {
			d.invalid[q.ID] = true
			ids = append(ids, q.ID)
		}
	}
	return ids
}

// Submit validates the whole draft and, when clean, performs exactly one
// create call against the gateway with the full payload. A gateway failure
// returns the draft to Ready with its answers intact; success moves it to
// Succeeded, from which Reset starts a fresh flow on the same form.
func (d *Draft) Submit(ctx context.Context, gw ResponseSubmitter) error {
	if d.state != StateReady {
		return ErrNotReady
	}
	if invalid := d.ValidateAll(); len(invalid) > 0 {
		return ErrInvalidAnswer
	}

	d.state = StateSubmitting
	if err := gw.SubmitResponse(ctx, d.formID, d.Payload()); err != nil {
		d.state = StateReady
		return err
	}
	d.state = StateSucceeded
	return nil
}

// Payload builds the wire representation: one record per question in the
// form's question order. An unanswered question serializes as an empty string.
func (d *Draft) Payload() []AnswerRecord {
	records := make([]AnswerRecord, len(d.def.Questions))
	for i, q := range d.def.Questions {
		answer, ok := d.answers[q.ID]
		if !ok {
			answer = ""
		}
		records[i] = AnswerRecord{QuestionID: q.ID, Question: q.Text, Answer: answer}
	}
	return records
}

// Reset clears all answers and error flags and returns the draft to Ready.
// The success screen calls this after its fixed delay.
func (d *Draft) Reset() {
	if d.state != StateSucceeded && d.state != StateReady {
		return
	}
	d.answers = make(map[string]any)
	d.invalid = make(map[string]bool)
	d.state = StateReady
}
