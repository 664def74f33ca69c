package repository

import (
	"github.com/lshigami/Formery/internal/model"
	"gorm.io/gorm"
)

type FormRepository interface {
	Create(form *model.Form) error
	FindByID(id uint) (*model.Form, error)
	FindAllByUser(userID uint) ([]model.Form, error)
	FindAllByUserWithResponseCount(userID uint) ([]struct {
		model.Form
		ResponseCount int64
	}, error)
	Update(form *model.Form) error
	Delete(id uint) error
	CountByUser(userID uint) (int64, error)
}

type formRepository struct {
	db *gorm.DB
}

func NewFormRepository(db *gorm.DB) FormRepository {
	return &formRepository{db: db}
}

func (r *formRepository) Create(form *model.Form) error {
	return r.db.Create(form).Error
}

func (r *formRepository) FindByID(id uint) (*model.Form, error) {
	var form model.Form
	if err := r.db.First(&form, id).Error; err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *formRepository) FindAllByUser(userID uint) ([]model.Form, error) {
	var forms []model.Form
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&forms).Error
	return forms, err
}

func (r *formRepository) FindAllByUserWithResponseCount(userID uint) ([]struct {
	model.Form
	ResponseCount int64
}, error) {
	var results []struct {
		model.Form
		ResponseCount int64
	}
	err := r.db.Model(&model.Form{}).
		Select("forms.*, (SELECT COUNT(*) FROM responses WHERE responses.form_id = forms.id AND responses.deleted_at IS NULL) as response_count").
		Where("forms.user_id = ? AND forms.deleted_at IS NULL", userID).
		Order("forms.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *formRepository) Update(form *model.Form) error {
	return r.db.Save(form).Error
}

func (r *formRepository) Delete(id uint) error {
	return r.db.Delete(&model.Form{}, id).Error
}

func (r *formRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Form{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
