package fill

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lshigami/Formery/internal/builder"
)

type fakeSubmitter struct {
	calls   int
	formID  uint
	payload []AnswerRecord
	err     error
}

func (f *fakeSubmitter) SubmitResponse(_ context.Context, formID uint, answers []AnswerRecord) error {
	f.calls++
	f.formID = formID
	f.payload = answers
	return f.err
}

func surveyDefinition() builder.Definition {
	return builder.Definition{
		Title: "Survey",
		Theme: builder.DefaultThemeID,
		Questions: []builder.Question{
			{ID: "q1", Type: builder.TypeShort, Text: "Name"},
			{ID: "q2", Type: builder.TypeCheckbox, Text: "Toppings", Options: []string{"Cheese", "Olives"}},
			{ID: "q3", Type: builder.TypeRating, Text: "Score", Scale: 5},
		},
	}
}

func readyDraft() *Draft {
	d := NewDraft()
	d.Bind(7, surveyDefinition())
	return d
}

func TestLifecycle(t *testing.T) {
	t.Run("bind moves loading to ready", func(t *testing.T) {
		d := NewDraft()
		assert.Equal(t, StateLoading, d.State())
		d.Bind(7, surveyDefinition())
		assert.Equal(t, StateReady, d.State())
		assert.Equal(t, "Survey", d.Definition().Title)
	})

	t.Run("failed load is terminal", func(t *testing.T) {
		d := NewDraft()
		d.FailLoad()
		assert.Equal(t, StateNotFound, d.State())

		d.SetAnswer("q1", "ignored")
		_, ok := d.Answer("q1")
		assert.False(t, ok)

		err := d.Submit(context.Background(), &fakeSubmitter{})
		assert.ErrorIs(t, err, ErrNotReady)
	})
}

func TestValidateAll(t *testing.T) {
	t.Run("reports unanswered questions in question order", func(t *testing.T) {
		d := readyDraft()
		d.SetAnswer("q2", []string{"Cheese"})

		ids := d.ValidateAll()
		assert.Equal(t, []string{"q1", "q3"}, ids)
		assert.True(t, d.HasError("q1"))
		assert.False(t, d.HasError("q2"))
	})

	t.Run("empty values count as unanswered", func(t *testing.T) {
		d := readyDraft()
		d.SetAnswer("q1", "")
		d.SetAnswer("q2", []string{})
		d.SetAnswer("q3", 0)

		assert.Len(t, d.ValidateAll(), 3)
	})

	t.Run("touching a question clears its flag", func(t *testing.T) {
		d := readyDraft()
		d.ValidateAll()
		require.True(t, d.HasError("q1"))

		d.SetAnswer("q1", "Ada")
		assert.False(t, d.HasError("q1"))
	})
}

func TestSubmit(t *testing.T) {
	t.Run("refuses while a required answer is missing", func(t *testing.T) {
		gw := &fakeSubmitter{}
		d := readyDraft()
		d.SetAnswer("q1", "Ada")
		d.SetAnswer("q3", 4)

		err := d.Submit(context.Background(), gw)
		assert.ErrorIs(t, err, ErrInvalidAnswer)
		assert.Zero(t, gw.calls)
		assert.True(t, d.HasError("q2"))
		assert.Equal(t, StateReady, d.State())

		// selecting one checkbox option unblocks the submission
		d.SetAnswer("q2", []string{"Olives"})
		require.NoError(t, d.Submit(context.Background(), gw))
		assert.Equal(t, 1, gw.calls)
		assert.Equal(t, uint(7), gw.formID)

		require.Len(t, gw.payload, 3)
		assert.Equal(t, AnswerRecord{QuestionID: "q2", Question: "Toppings", Answer: []string{"Olives"}}, gw.payload[1])
		assert.Equal(t, StateSucceeded, d.State())
	})

	t.Run("gateway failure returns to ready with answers intact", func(t *testing.T) {
		gw := &fakeSubmitter{err: errors.New("boom")}
		d := readyDraft()
		d.SetAnswer("q1", "Ada")
		d.SetAnswer("q2", []string{"Cheese"})
		d.SetAnswer("q3", 5)

		err := d.Submit(context.Background(), gw)
		assert.Error(t, err)
		assert.Equal(t, StateReady, d.State())

		answer, ok := d.Answer("q1")
		require.True(t, ok)
		assert.Equal(t, "Ada", answer)

		// the retry submits exactly once more
		gw.err = nil
		require.NoError(t, d.Submit(context.Background(), gw))
		assert.Equal(t, 2, gw.calls)
	})

	t.Run("succeeded draft refuses further submits until reset", func(t *testing.T) {
		gw := &fakeSubmitter{}
		d := readyDraft()
		d.SetAnswer("q1", "Ada")
		d.SetAnswer("q2", []string{"Cheese"})
		d.SetAnswer("q3", 3)
		require.NoError(t, d.Submit(context.Background(), gw))

		assert.ErrorIs(t, d.Submit(context.Background(), gw), ErrNotReady)

		d.Reset()
		assert.Equal(t, StateReady, d.State())
		_, ok := d.Answer("q1")
		assert.False(t, ok, "reset drops all answers")
	})
}

func TestPayloadOrder(t *testing.T) {
	d := readyDraft()
	d.SetAnswer("q3", 5)

	payload := d.Payload()
	require.Len(t, payload, 3)
	assert.Equal(t, []string{"q1", "q2", "q3"}, []string{payload[0].QuestionID, payload[1].QuestionID, payload[2].QuestionID})
	assert.Equal(t, "", payload[0].Answer, "unanswered question serializes as empty string")
	assert.Equal(t, 5, payload[2].Answer)
}

func TestAnswerMissing(t *testing.T) {
	missing := []any{
		nil,
		"",
		0,
		float64(0),
		[]string{},
		[]any{},
		map[string][]string{"Fruits": {}},
		map[string]any{"Fruits": []any{}},
	}
	for _, v := range missing {
		assert.True(t, AnswerMissing(v), "%#v should be missing", v)
	}

	present := []any{
		"x",
		3,
		float64(2),
		[]string{"a"},
		[]any{"a"},
		map[string][]string{"Fruits": {"Apple"}},
		map[string]any{"Fruits": []any{"Apple"}},
		true,
	}
	for _, v := range present {
		assert.False(t, AnswerMissing(v), "%#v should count as answered", v)
	}
}
