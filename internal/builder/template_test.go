package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateFor(t *testing.T) {
	t.Run("every type has a template with no id", func(t *testing.T) {
		for _, typ := range QuestionTypes {
			q := TemplateFor(typ)
			assert.Equal(t, typ, q.Type)
			assert.Empty(t, q.ID)
			assert.NotEmpty(t, q.Text)
		}
	})

	t.Run("choice types start with two options", func(t *testing.T) {
		for _, typ := range []QuestionType{TypeMCQ, TypeCheckbox, TypeDropdown} {
			assert.Equal(t, []string{"Option 1", "Option 2"}, TemplateFor(typ).Options)
		}
	})

	t.Run("unknown tag panics", func(t *testing.T) {
		assert.Panics(t, func() { TemplateFor(QuestionType("bogus")) })
	})
}

func TestNewDraftFromTemplate(t *testing.T) {
	t.Run("contact template", func(t *testing.T) {
		d, ok := NewDraftFromTemplate("contact")
		require.True(t, ok)
		assert.Equal(t, "Contact Us", d.Title)
		assert.Equal(t, "Get in touch with us", d.Description)
		assert.Equal(t, DefaultThemeID, d.Theme)
		require.Len(t, d.Questions, 4)
		assert.Equal(t, TypeLong, d.Questions[3].Type)
		assert.Equal(t, "Message", d.Questions[3].Text)
		assert.Zero(t, d.FormID)
	})

	t.Run("two drafts never share question ids", func(t *testing.T) {
		a, _ := NewDraftFromTemplate("survey")
		b, _ := NewDraftFromTemplate("survey")
		for i := range a.Questions {
			assert.NotEqual(t, a.Questions[i].ID, b.Questions[i].ID)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		_, ok := NewDraftFromTemplate("nope")
		assert.False(t, ok)
	})

	t.Run("all names resolve and validate", func(t *testing.T) {
		names := TemplateNames()
		assert.Len(t, names, 6)
		for _, name := range names {
			d, ok := NewDraftFromTemplate(name)
			require.True(t, ok, name)
			assert.NoError(t, ValidateDefinition(d.Definition), name)
		}
	})
}

func TestValidateDefinition(t *testing.T) {
	base := func() Definition {
		return Definition{Title: "Survey", Questions: []Question{TemplateFor(TypeShort)}}
	}

	t.Run("accepts a plain definition", func(t *testing.T) {
		assert.NoError(t, ValidateDefinition(base()))
	})

	t.Run("rejects blank title", func(t *testing.T) {
		def := base()
		def.Title = " \t"
		assert.ErrorIs(t, ValidateDefinition(def), ErrTitleRequired)
	})

	t.Run("rejects empty question list", func(t *testing.T) {
		def := base()
		def.Questions = nil
		assert.ErrorIs(t, ValidateDefinition(def), ErrNoQuestions)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		def := base()
		def.Questions = append(def.Questions, Question{Type: "slider", Text: "?"})
		assert.ErrorIs(t, ValidateDefinition(def), ErrUnknownQuestionType)
	})

	t.Run("rejects optionless choice question", func(t *testing.T) {
		def := base()
		def.Questions = []Question{{Type: TypeMCQ, Text: "?"}}
		assert.ErrorIs(t, ValidateDefinition(def), ErrEmptyListField)
	})

	t.Run("rejects categorize without items", func(t *testing.T) {
		def := base()
		def.Questions = []Question{{Type: TypeCategorize, Text: "?", Categories: []string{"A"}}}
		assert.ErrorIs(t, ValidateDefinition(def), ErrEmptyListField)
	})
}

func TestThemes(t *testing.T) {
	palette := Themes()
	require.Len(t, palette, 4)
	assert.Equal(t, DefaultThemeID, palette[0].ID)
	assert.Equal(t, "#3B82F6", palette[0].Primary)

	assert.Equal(t, "purple", ThemeByID("purple").ID)
	assert.Equal(t, DefaultThemeID, ThemeByID("neon").ID)
	assert.Equal(t, DefaultThemeID, ThemeByID("").ID)
}
