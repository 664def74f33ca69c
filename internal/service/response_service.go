package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Formery/internal/builder"
	"github.com/lshigami/Formery/internal/dto"
	"github.com/lshigami/Formery/internal/fill"
	"github.com/lshigami/Formery/internal/model"
	"github.com/lshigami/Formery/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrResponseNotFound = errors.New("response not found")
	ErrNotResponseOwner = errors.New("response belongs to another user's form")
	ErrMissingAnswers   = errors.New("one or more required questions are unanswered")
	ErrNoValidAnswers   = errors.New("submission contains no answers for this form's questions")
)

// ResponseService accepts whole-form submissions and serves the collected
// responses back to the form owner. A submission is atomic: it is validated
// as one unit against the form's questions and stored with one create.
type ResponseService interface {
	Submit(req dto.SubmitResponseRequest) (*dto.ResponseDTO, error)
	ListByForm(userID, formID uint) ([]dto.ResponseDTO, error)
	ListForOwner(userID uint) ([]dto.ResponseDTO, error)
	Delete(userID, responseID uint) error
}

type responseService struct {
	formRepo     repository.FormRepository
	responseRepo repository.ResponseRepository
}

func NewResponseService(formRepo repository.FormRepository, responseRepo repository.ResponseRepository) ResponseService {
	return &responseService{formRepo: formRepo, responseRepo: responseRepo}
}

func (s *responseService) Submit(req dto.SubmitResponseRequest) (*dto.ResponseDTO, error) {
	form, err := s.formRepo.FindByID(req.FormID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, fmt.Errorf("failed to load form %d: %w", req.FormID, err)
	}

	questionByID := make(map[string]builder.Question, len(form.Questions))
	for _, q := range form.Questions {
		questionByID[q.ID] = q
	}

	// Answers for questions that are not part of this form are dropped, not
	// rejected: the question may have been deleted between load and submit.
	submitted := make(map[string]any, len(req.Answers))
	for _, in := range req.Answers {
		if _, ok := questionByID[in.QuestionID]; !ok {
			log.Warn().Str("questionID", in.QuestionID).Uint("formID", req.FormID).
				Msg("Submit: answer for a question not in this form, skipping")
			continue
		}
		submitted[in.QuestionID] = in.Answer
	}
	if len(submitted) == 0 {
		return nil, ErrNoValidAnswers
	}

	// Same required-answer rule the fill flow applies before it ever submits.
	for _, q := range form.Questions {
		answer, ok := submitted[q.ID]
		if !ok || fill.AnswerMissing(answer) {
			return nil, fmt.Errorf("question %q: %w", q.ID, ErrMissingAnswers)
		}
	}

	answers := make(model.AnswerList, len(form.Questions))
	for i, q := range form.Questions {
		answers[i] = model.Answer{QuestionID: q.ID, Question: q.Text, Answer: submitted[q.ID]}
	}

	response := model.Response{
		FormID:      form.ID,
		Answers:     answers,
		SubmittedAt: time.Now(),
	}
	if err := s.responseRepo.Create(&response); err != nil {
		log.Error().Err(err).Uint("formID", form.ID).Msg("Submit: repository create failed")
		return nil, fmt.Errorf("failed to store response: %w", err)
	}
	return responseToDTO(&response), nil
}

func (s *responseService) ListByForm(userID, formID uint) ([]dto.ResponseDTO, error) {
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

	responses, err := s.responseRepo.FindAllByForm(formID)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("ListByForm: repository query failed")
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	return responsesToDTOs(responses), nil
}

func (s *responseService) ListForOwner(userID uint) ([]dto.ResponseDTO, error) {
	responses, err := s.responseRepo.FindAllByFormOwner(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("ListForOwner: repository query failed")
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	return responsesToDTOs(responses), nil
}

func (s *responseService) Delete(userID, responseID uint) error {
	response, err := s.responseRepo.FindByID(responseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResponseNotFound
		}
		return fmt.Errorf("failed to load response %d: %w", responseID, err)
	}
	if response.Form.UserID != userID {
		return ErrNotResponseOwner
	}
	if err := s.responseRepo.Delete(responseID); err != nil {
		log.Error().Err(err).Uint("responseID", responseID).Msg("Delete: repository delete failed")
		return fmt.Errorf("failed to delete response %d: %w", responseID, err)
	}
	return nil
}

func responseToDTO(response *model.Response) *dto.ResponseDTO {
	var out dto.ResponseDTO
	if err := copier.Copy(&out, response); err != nil {
		log.Error().Err(err).Uint("responseID", response.ID).Msg("responseToDTO: copy failed")
	}
	out.Answers = []model.Answer(response.Answers)
	return &out
}

func responsesToDTOs(responses []model.Response) []dto.ResponseDTO {
	out := make([]dto.ResponseDTO, 0, len(responses))
	for i := range responses {
		out = append(out, *responseToDTO(&responses[i]))
	}
	return out
}
