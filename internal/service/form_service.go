package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Formery/internal/builder"
	"github.com/lshigami/Formery/internal/dto"
	"github.com/lshigami/Formery/internal/model"
	"github.com/lshigami/Formery/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrFormNotFound    = errors.New("form not found")
	ErrNotFormOwner    = errors.New("form belongs to another user")
	ErrUnknownTemplate = errors.New("unknown form template")
)

// FormService owns the persistence side of the form builder: it receives the
// full definition the builder transmits on save, re-applies the builder's
// validation rules, and maps stored forms back into definitions for editing
// and filling.
type FormService interface {
	CreateForm(userID uint, req dto.SaveFormRequest) (*dto.FormDTO, error)
	UpdateForm(userID, formID uint, req dto.SaveFormRequest) (*dto.FormDTO, error)
	GetForm(formID uint) (*dto.FormDTO, error)
	ListUserForms(userID uint) ([]dto.FormSummaryDTO, error)
	DeleteForm(userID, formID uint) error
	Template(name string) (*dto.TemplateDTO, error)
	Themes() []builder.Theme
}

type formService struct {
	formRepo repository.FormRepository
}

func NewFormService(formRepo repository.FormRepository) FormService {
	return &formService{formRepo: formRepo}
}

func (s *formService) CreateForm(userID uint, req dto.SaveFormRequest) (*dto.FormDTO, error) {
	def, err := definitionFromRequest(req)
	if err != nil {
		return nil, err
	}

	form := model.Form{
		UserID:      userID,
		Title:       def.Title,
		Description: def.Description,
		Theme:       builder.ThemeByID(def.Theme).ID,
		Questions:   model.QuestionList(def.Questions),
	}
	if err := s.formRepo.Create(&form); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("CreateForm: repository create failed")
		return nil, fmt.Errorf("failed to create form: %w", err)
	}
	return formToDTO(&form), nil
}

func (s *formService) UpdateForm(userID, formID uint, req dto.SaveFormRequest) (*dto.FormDTO, error) {
	form, err := s.findOwnedForm(userID, formID)
	if err != nil {
		return nil, err
	}

	def, err := definitionFromRequest(req)
	if err != nil {
		return nil, err
	}

	form.Title = def.Title
	form.Description = def.Description
	form.Theme = builder.ThemeByID(def.Theme).ID
	form.Questions = model.QuestionList(def.Questions)
	if err := s.formRepo.Update(form); err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("UpdateForm: repository update failed")
		return nil, fmt.Errorf("failed to update form %d: %w", formID, err)
	}
	return formToDTO(form), nil
}

// GetForm serves both the edit flow and the public fill flow, so it does not
// check ownership.
func (s *formService) GetForm(formID uint) (*dto.FormDTO, error) {
	form, err := s.formRepo.FindByID(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, fmt.Errorf("failed to load form %d: %w", formID, err)
	}
	return formToDTO(form), nil
}

func (s *formService) ListUserForms(userID uint) ([]dto.FormSummaryDTO, error) {
	rows, err := s.formRepo.FindAllByUserWithResponseCount(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("ListUserForms: repository query failed")
		return nil, fmt.Errorf("failed to list forms: %w", err)
	}

	summaries := make([]dto.FormSummaryDTO, 0, len(rows))
	for _, row := range rows {
		var summary dto.FormSummaryDTO
		if err := copier.Copy(&summary, &row.Form); err != nil {
			log.Error().Err(err).Uint("formID", row.Form.ID).Msg("ListUserForms: copy to summary DTO failed")
			continue
		}
		summary.QuestionCount = len(row.Form.Questions)
		summary.ResponseCount = row.ResponseCount
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *formService) DeleteForm(userID, formID uint) error {
	if _, err := s.findOwnedForm(userID, formID); err != nil {
		return err
	}
	if err := s.formRepo.Delete(formID); err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("DeleteForm: repository delete failed")
		return fmt.Errorf("failed to delete form %d: %w", formID, err)
	}
	return nil
}

func (s *formService) Template(name string) (*dto.TemplateDTO, error) {
	draft, ok := builder.NewDraftFromTemplate(name)
	if !ok {
		return nil, ErrUnknownTemplate
	}
	return &dto.TemplateDTO{
		Name:        name,
		Title:       draft.Title,
		Description: draft.Description,
		Theme:       draft.Theme,
		Questions:   draft.Questions,
	}, nil
}

func (s *formService) Themes() []builder.Theme {
	return builder.Themes()
}

func (s *formService) findOwnedForm(userID, formID uint) (*model.Form, error) {
	form, err := s.formRepo.FindByID(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, fmt.Errorf("failed to load form %d: %w", formID, err)
	}
	if form.UserID != userID {
		return nil, ErrNotFormOwner
	}
	return form, nil
}

// definitionFromRequest normalizes an incoming save payload into a validated
// definition. Questions arriving without an id (hand-crafted payloads) get one
// assigned, matching what the builder would have done at append time.
func definitionFromRequest(req dto.SaveFormRequest) (builder.Definition, error) {
	def := builder.Definition{
		Title:       req.Title,
		Description: req.Description,
		Theme:       req.Theme,
		Questions:   req.Questions,
	}
	for i := range def.Questions {
		if def.Questions[i].ID == "" {
			def.Questions[i].ID = uuid.NewString()
		}
	}
	if err := builder.ValidateDefinition(def); err != nil {
		return builder.Definition{}, err
	}
	return def, nil
}

func formToDTO(form *model.Form) *dto.FormDTO {
	var out dto.FormDTO
	if err := copier.Copy(&out, form); err != nil {
		log.Error().Err(err).Uint("formID", form.ID).Msg("formToDTO: copy failed")
	}
	out.Questions = []builder.Question(form.Questions)
	return &out
}
