package gateway

import (
	"context"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lshigami/Formery/config"
	"github.com/lshigami/Formery/internal/builder"
	"github.com/lshigami/Formery/internal/controller"
	"github.com/lshigami/Formery/internal/fill"
	"github.com/lshigami/Formery/internal/model"
	"github.com/lshigami/Formery/internal/service"
)

// The tests below run the real controllers and services against in-memory
// repositories, so a builder draft saved through the client comes back
// field-for-field identical when the fill flow loads it.

type memUserRepo struct {
	users  map[uint]model.User
	nextID uint
}

func (r *memUserRepo) Create(user *model.User) error {
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = *user
	return nil
}

func (r *memUserRepo) FindByID(id uint) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *memUserRepo) FindByUsername(username string) (*model.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) Update(user *model.User) error {
	r.users[user.ID] = *user
	return nil
}

type memFormRepo struct {
	forms  map[uint]model.Form
	nextID uint
}

func (r *memFormRepo) Create(form *model.Form) error {
	r.nextID++
	form.ID = r.nextID
	r.forms[form.ID] = *form
	return nil
}

func (r *memFormRepo) FindByID(id uint) (*model.Form, error) {
	form, ok := r.forms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &form, nil
}

func (r *memFormRepo) FindAllByUser(userID uint) ([]model.Form, error) {
	var out []model.Form
	for _, form := range r.forms {
		if form.UserID == userID {
			out = append(out, form)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memFormRepo) FindAllByUserWithResponseCount(userID uint) ([]struct {
	model.Form
	ResponseCount int64
}, error) {
	forms, _ := r.FindAllByUser(userID)
	rows := make([]struct {
		model.Form
		ResponseCount int64
	}, len(forms))
	for i, form := range forms {
		rows[i].Form = form
	}
	return rows, nil
}

func (r *memFormRepo) Update(form *model.Form) error {
	r.forms[form.ID] = *form
	return nil
}

func (r *memFormRepo) Delete(id uint) error {
	delete(r.forms, id)
	return nil
}

func (r *memFormRepo) CountByUser(userID uint) (int64, error) {
	forms, _ := r.FindAllByUser(userID)
	return int64(len(forms)), nil
}

type memResponseRepo struct {
	responses map[uint]model.Response
	forms     *memFormRepo
	nextID    uint
}

func (r *memResponseRepo) Create(response *model.Response) error {
	r.nextID++
	response.ID = r.nextID
	r.responses[response.ID] = *response
	return nil
}

func (r *memResponseRepo) FindByID(id uint) (*model.Response, error) {
	response, ok := r.responses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if form, ok := r.forms.forms[response.FormID]; ok {
		response.Form = form
	}
	return &response, nil
}

func (r *memResponseRepo) FindAllByForm(formID uint) ([]model.Response, error) {
	var out []model.Response
	for _, response := range r.responses {
		if response.FormID == formID {
			out = append(out, response)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memResponseRepo) FindAllByFormOwner(userID uint) ([]model.Response, error) {
	var out []model.Response
	for _, response := range r.responses {
		if form, ok := r.forms.forms[response.FormID]; ok && form.UserID == userID {
			out = append(out, response)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memResponseRepo) CountByFormOwner(userID uint) (int64, error) {
	responses, _ := r.FindAllByFormOwner(userID)
	return int64(len(responses)), nil
}

func (r *memResponseRepo) Delete(id uint) error {
	delete(r.responses, id)
	return nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := &memUserRepo{users: map[uint]model.User{}}
	formRepo := &memFormRepo{forms: map[uint]model.Form{}}
	responseRepo := &memResponseRepo{responses: map[uint]model.Response{}, forms: formRepo}

	tokens := service.NewTokenService(&config.Config{JWTSecret: "test-secret"})
	userCtrl := controller.NewUserController(service.NewUserService(userRepo, formRepo, responseRepo), tokens)
	formCtrl := controller.NewFormController(service.NewFormService(formRepo))
	responseCtrl := controller.NewResponseController(service.NewResponseService(formRepo, responseRepo))
	auth := controller.RequireAuth(tokens)

	router := gin.New()
	api := router.Group("/api")
	api.POST("/users/signup", userCtrl.Signup)
	api.POST("/users/login", userCtrl.Login)
	api.POST("/users/logout", userCtrl.Logout)
	api.GET("/users/me", userCtrl.Me)
	api.GET("/users/profile", auth, userCtrl.GetProfile)
	api.POST("/forms", auth, formCtrl.CreateForm)
	api.GET("/forms", auth, formCtrl.ListForms)
	api.GET("/forms/templates/:name", formCtrl.GetTemplate)
	api.GET("/forms/:id", formCtrl.GetForm)
	api.PUT("/forms/:id", auth, formCtrl.UpdateForm)
	api.DELETE("/forms/:id", auth, formCtrl.DeleteForm)
	api.GET("/themes", formCtrl.ListThemes)
	api.POST("/responses/submit", responseCtrl.Submit)
	api.GET("/responses", auth, responseCtrl.ListByForm)
	api.GET("/responses/user", auth, responseCtrl.ListForOwner)
	api.DELETE("/responses/:id", auth, responseCtrl.Delete)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func newLoggedInClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client, err := NewClient(server.URL)
	require.NoError(t, err)

	username, err := client.Signup(context.Background(), "ada", "ada@example.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, "ada", username)
	return client
}

func TestSessionFlow(t *testing.T) {
	server := newTestServer(t)
	client, err := NewClient(server.URL)
	require.NoError(t, err)
	ctx := context.Background()

	session, err := client.CurrentSession(ctx)
	require.NoError(t, err)
	assert.False(t, session.LoggedIn)

	_, err = client.Profile(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = client.Signup(ctx, "ada", "ada@example.com", "secret1")
	require.NoError(t, err)

	session, err = client.CurrentSession(ctx)
	require.NoError(t, err)
	assert.True(t, session.LoggedIn)
	assert.Equal(t, "ada", session.Username)

	require.NoError(t, client.Logout(ctx))
	session, err = client.CurrentSession(ctx)
	require.NoError(t, err)
	assert.False(t, session.LoggedIn)

	_, err = client.Login(ctx, "ada", "secret1")
	require.NoError(t, err)
	profile, err := client.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", profile.Email)
}

func TestDefinitionRoundTrip(t *testing.T) {
	server := newTestServer(t)
	client := newLoggedInClient(t, server)
	ctx := context.Background()

	draft, ok := builder.NewDraftFromTemplate("contact")
	require.True(t, ok)
	draft.AddQuestion(builder.TypeRating)
	draft.MoveQuestion(4, builder.DirectionUp)

	id, err := draft.Save(ctx, client)
	require.NoError(t, err)
	require.NotZero(t, id)
	assert.Equal(t, id, draft.FormID)

	loaded, err := client.GetForm(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, draft.Title, loaded.Title)
	assert.Equal(t, draft.Description, loaded.Description)
	assert.Equal(t, draft.Theme, loaded.Theme)
	assert.Equal(t, draft.Questions, loaded.Questions)

	// a second save updates the same form instead of creating a new one
	draft.Title = "Contact Support"
	_, err = draft.Save(ctx, client)
	require.NoError(t, err)

	forms, err := client.ListForms(ctx)
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, "Contact Support", forms[0].Title)
}

func TestFillFlowAgainstServer(t *testing.T) {
	server := newTestServer(t)
	owner := newLoggedInClient(t, server)
	ctx := context.Background()

	draft, _ := builder.NewDraftFromTemplate("contact")
	formID, err := draft.Save(ctx, owner)
	require.NoError(t, err)

	// the respondent needs no account
	respondent, err := NewClient(server.URL)
	require.NoError(t, err)

	loaded, err := respondent.GetForm(ctx, formID)
	require.NoError(t, err)

	filling := fill.NewDraft()
	filling.Bind(loaded.ID, builder.Definition{
		Title:       loaded.Title,
		Description: loaded.Description,
		Theme:       loaded.Theme,
		Questions:   loaded.Questions,
	})

	err = filling.Submit(ctx, respondent)
	assert.ErrorIs(t, err, fill.ErrInvalidAnswer, "blank form must not submit")

	for _, q := range loaded.Questions {
		filling.SetAnswer(q.ID, "answer to "+q.Text)
	}
	require.NoError(t, filling.Submit(ctx, respondent))
	assert.Equal(t, fill.StateSucceeded, filling.State())

	stored, err := owner.ListResponses(ctx, formID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Len(t, stored[0].Answers, len(loaded.Questions))
	assert.Equal(t, loaded.Questions[0].ID, stored[0].Answers[0].QuestionID)
}

func TestClientErrorTaxonomy(t *testing.T) {
	server := newTestServer(t)
	client := newLoggedInClient(t, server)
	ctx := context.Background()

	_, err := client.GetForm(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = client.Template(ctx, "bogus")
	assert.ErrorIs(t, err, ErrNotFound)

	other, err := NewClient(server.URL)
	require.NoError(t, err)
	_, err = other.ListForms(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
