package repository

import (
	"github.com/lshigami/Formery/internal/model"
	"gorm.io/gorm"
)

type ResponseRepository interface {
	Create(response *model.Response) error
	FindByID(id uint) (*model.Response, error)
	FindAllByForm(formID uint) ([]model.Response, error)
	FindAllByFormOwner(userID uint) ([]model.Response, error)
	CountByFormOwner(userID uint) (int64, error)
	Delete(id uint) error
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) Create(response *model.Response) error {
	return r.db.Create(response).Error
}

func (r *responseRepository) FindByID(id uint) (*model.Response, error) {
	var response model.Response
	if err := r.db.Preload("Form").First(&response, id).Error; err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseRepository) FindAllByForm(formID uint) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.Where("form_id = ?", formID).Order("submitted_at DESC").Find(&responses).Error
	return responses, err
}

func (r *responseRepository) FindAllByFormOwner(userID uint) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.
		Joins("JOIN forms ON forms.id = responses.form_id").
		Where("forms.user_id = ? AND forms.deleted_at IS NULL", userID).
		Order("responses.submitted_at DESC").
		Find(&responses).Error
	return responses, err
}

func (r *responseRepository) CountByFormOwner(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Response{}).
		Joins("JOIN forms ON forms.id = responses.form_id").
		Where("forms.user_id = ? AND forms.deleted_at IS NULL", userID).
		Count(&count).Error
	return count, err
}

func (r *responseRepository) Delete(id uint) error {
	return r.db.Delete(&model.Response{}, id).Error
}
