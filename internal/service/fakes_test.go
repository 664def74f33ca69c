package service

import (
	"sort"

	"github.com/lshigami/Formery/internal/model"
	"gorm.io/gorm"
)

// In-memory repository stand-ins so the services can be exercised without a
// database.

type fakeFormRepo struct {
	forms  map[uint]model.Form
	nextID uint
	err    error
}

func newFakeFormRepo() *fakeFormRepo {
	return &fakeFormRepo{forms: map[uint]model.Form{}}
}

func (r *fakeFormRepo) Create(form *model.Form) error {
	if r.err != nil {
		return r.err
	}
	r.nextID++
	form.ID = r.nextID
	r.forms[form.ID] = *form
	return nil
}

func (r *fakeFormRepo) FindByID(id uint) (*model.Form, error) {
	if r.err != nil {
		return nil, r.err
	}
	form, ok := r.forms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &form, nil
}

func (r *fakeFormRepo) FindAllByUser(userID uint) ([]model.Form, error) {
	var out []model.Form
	for _, form := range r.forms {
		if form.UserID == userID {
			out = append(out, form)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, r.err
}

func (r *fakeFormRepo) FindAllByUserWithResponseCount(userID uint) ([]struct {
	model.Form
	ResponseCount int64
}, error) {
	if r.err != nil {
		return nil, r.err
	}
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

func (r *fakeFormRepo) Update(form *model.Form) error {
	if r.err != nil {
		return r.err
	}
	r.forms[form.ID] = *form
	return nil
}

func (r *fakeFormRepo) Delete(id uint) error {
	if r.err != nil {
		return r.err
	}
	delete(r.forms, id)
	return nil
}

func (r *fakeFormRepo) CountByUser(userID uint) (int64, error) {
	forms, _ := r.FindAllByUser(userID)
	return int64(len(forms)), r.err
}

type fakeResponseRepo struct {
	responses map[uint]model.Response
	forms     *fakeFormRepo
	nextID    uint
	err       error
}

func newFakeResponseRepo(forms *fakeFormRepo) *fakeResponseRepo {
	return &fakeResponseRepo{responses: map[uint]model.Response{}, forms: forms}
}

func (r *fakeResponseRepo) Create(response *model.Response) error {
	if r.err != nil {
		return r.err
	}
	r.nextID++
	response.ID = r.nextID
	r.responses[response.ID] = *response
	return nil
}

func (r *fakeResponseRepo) FindByID(id uint) (*model.Response, error) {
	if r.err != nil {
		return nil, r.err
	}
	response, ok := r.responses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if form, ok := r.forms.forms[response.FormID]; ok {
		response.Form = form
	}
	return &response, nil
}

func (r *fakeResponseRepo) FindAllByForm(formID uint) ([]model.Response, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []model.Response
	for _, response := range r.responses {
		if response.FormID == formID {
			out = append(out, response)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeResponseRepo) FindAllByFormOwner(userID uint) ([]model.Response, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []model.Response
	for _, response := range r.responses {
		if form, ok := r.forms.forms[response.FormID]; ok && form.UserID == userID {
			out = append(out, response)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeResponseRepo) CountByFormOwner(userID uint) (int64, error) {
	responses, err := r.FindAllByFormOwner(userID)
	return int64(len(responses)), err
}

func (r *fakeResponseRepo) Delete(id uint) error {
	if r.err != nil {
		return r.err
	}
	delete(r.responses, id)
	return nil
}

type fakeUserRepo struct {
	users  map[uint]model.User
	nextID uint
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]model.User{}}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	if r.err != nil {
		return r.err
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(user *model.User) error {
	if r.err != nil {
		return r.err
	}
	r.users[user.ID] = *user
	return nil
}
