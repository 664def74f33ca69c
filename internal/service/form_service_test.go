package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lshigami/Formery/internal/builder"
	"github.com/lshigami/Formery/internal/dto"
)

func saveRequest() dto.SaveFormRequest {
	return dto.SaveFormRequest{
		Title:       "Customer Survey",
		Description: "Tell us what you think",
		Theme:       "purple",
		Questions: []builder.Question{
			{ID: "q1", Type: builder.TypeShort, Text: "Name"},
			{ID: "q2", Type: builder.TypeMCQ, Text: "Rating", Options: []string{"Good", "Bad"}},
		},
	}
}

func TestFormServiceCreate(t *testing.T) {
	t.Run("stores a valid definition", func(t *testing.T) {
		repo := newFakeFormRepo()
		svc := NewFormService(repo)

		form, err := svc.CreateForm(1, saveRequest())
		require.NoError(t, err)
		assert.NotZero(t, form.ID)
		assert.Equal(t, "Customer Survey", form.Title)
		assert.Equal(t, "purple", form.Theme)
		require.Len(t, form.Questions, 2)
		assert.Equal(t, "q2", form.Questions[1].ID)
	})

	t.Run("assigns ids to id-less questions", func(t *testing.T) {
		svc := NewFormService(newFakeFormRepo())
		req := saveRequest()
		req.Questions[0].ID = ""

		form, err := svc.CreateForm(1, req)
		require.NoError(t, err)
		assert.NotEmpty(t, form.Questions[0].ID)
	})

	t.Run("normalizes an unknown theme to the default", func(t *testing.T) {
		svc := NewFormService(newFakeFormRepo())
		req := saveRequest()
		req.Theme = "neon"

		form, err := svc.CreateForm(1, req)
		require.NoError(t, err)
		assert.Equal(t, builder.DefaultThemeID, form.Theme)
	})

	t.Run("rejects invalid definitions", func(t *testing.T) {
		svc := NewFormService(newFakeFormRepo())

		req := saveRequest()
		req.Title = "  "
		_, err := svc.CreateForm(1, req)
		assert.ErrorIs(t, err, builder.ErrTitleRequired)

		req = saveRequest()
		req.Questions = nil
		_, err = svc.CreateForm(1, req)
		assert.ErrorIs(t, err, builder.ErrNoQuestions)

		req = saveRequest()
		req.Questions[1].Options = nil
		_, err = svc.CreateForm(1, req)
		assert.ErrorIs(t, err, builder.ErrEmptyListField)
	})
}

func TestFormServiceUpdate(t *testing.T) {
	repo := newFakeFormRepo()
	svc := NewFormService(repo)
	created, err := svc.CreateForm(1, saveRequest())
	require.NoError(t, err)

	t.Run("overwrites the stored definition", func(t *testing.T) {
		req := saveRequest()
		req.Title = "Renamed Survey"
		req.Questions = req.Questions[:1]

		updated, err := svc.UpdateForm(1, created.ID, req)
		require.NoError(t, err)
		assert.Equal(t, "Renamed Survey", updated.Title)
		assert.Len(t, updated.Questions, 1)
	})

	t.Run("other user is rejected", func(t *testing.T) {
		_, err := svc.UpdateForm(2, created.ID, saveRequest())
		assert.ErrorIs(t, err, ErrNotFormOwner)
	})

	t.Run("unknown form", func(t *testing.T) {
		_, err := svc.UpdateForm(1, 999, saveRequest())
		assert.ErrorIs(t, err, ErrFormNotFound)
	})
}

func TestFormServiceGetAndDelete(t *testing.T) {
	repo := newFakeFormRepo()
	svc := NewFormService(repo)
	created, err := svc.CreateForm(1, saveRequest())
	require.NoError(t, err)

	t.Run("get is public", func(t *testing.T) {
		form, err := svc.GetForm(created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Title, form.Title)
	})

	t.Run("delete requires ownership", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteForm(2, created.ID), ErrNotFormOwner)

		require.NoError(t, svc.DeleteForm(1, created.ID))
		_, err := svc.GetForm(created.ID)
		assert.ErrorIs(t, err, ErrFormNotFound)
	})
}

func TestFormServiceList(t *testing.T) {
	repo := newFakeFormRepo()
	svc := NewFormService(repo)
	_, err := svc.CreateForm(1, saveRequest())
	require.NoError(t, err)
	_, err = svc.CreateForm(2, saveRequest())
	require.NoError(t, err)

	summaries, err := svc.ListUserForms(1)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 2, summaries[0].QuestionCount)
}

func TestFormServiceTemplateAndThemes(t *testing.T) {
	svc := NewFormService(newFakeFormRepo())

	tmpl, err := svc.Template("feedback")
	require.NoError(t, err)
	assert.Equal(t, "Customer Feedback Form", tmpl.Title)
	assert.Len(t, tmpl.Questions, 4)

	_, err = svc.Template("unknown")
	assert.ErrorIs(t, err, ErrUnknownTemplate)

	assert.Len(t, svc.Themes(), 4)
}
