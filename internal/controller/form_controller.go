package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Formery/internal/builder"
	"github.com/lshigami/Formery/internal/dto"
	"github.com/lshigami/Formery/internal/service"
	"github.com/rs/zerolog/log"
)

type FormController struct {
	formService service.FormService
}

func NewFormController(formService service.FormService) *FormController {
	return &FormController{formService: formService}
}

// CreateForm godoc
// @Summary Save a new form
// @Description Persists the full form definition the builder transmits. The
// @Description title must be non-empty and at least one question is required.
// @Tags Forms
// @Accept json
// @Produce json
// @Param form body dto.SaveFormRequest true "Full form definition"
// @Success 201 {object} dto.FormDTO
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse
// @Router /forms [post]
func (c *FormController) CreateForm(ctx *gin.Context) {
	var req dto.SaveFormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	form, err := c.formService.CreateForm(currentUserID(ctx), req)
	if err != nil {
		if isValidationError(err) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Msg("CreateForm: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to save form"})
		return
	}
	ctx.JSON(http.StatusCreated, form)
}

// UpdateForm godoc
// @Summary Update an existing form
// @Description Replaces the stored definition with the transmitted one. Only
// @Description the form's owner may update it.
// @Tags Forms
// @Accept json
// @Produce json
// @Param id path int true "Form ID"
// @Param form body dto.SaveFormRequest true "Full form definition"
// @Success 200 {object} dto.FormDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /forms/{id} [put]
func (c *FormController) UpdateForm(ctx *gin.Context) {
	formID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req dto.SaveFormRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	form, err := c.formService.UpdateForm(currentUserID(ctx), formID, req)
	if err != nil {
		switch {
		case isValidationError(err):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, service.ErrFormNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Form not found"})
		case errors.Is(err, service.ErrNotFormOwner):
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "You do not own this form"})
		default:
			log.Error().Err(err).Uint("formID", formID).Msg("UpdateForm: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to save form"})
		}
		return
	}
	ctx.JSON(http.StatusOK, form)
}

// GetForm godoc
// @Summary Load a form definition
// @Description Public: the fill flow loads forms without a session.
// @Tags Forms
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} dto.FormDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /forms/{id} [get]
func (c *FormController) GetForm(ctx *gin.Context) {
	formID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	form, err := c.formService.GetForm(formID)
	if err != nil {
		if errors.Is(err, service.ErrFormNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Form not found"})
			return
		}
		log.Error().Err(err).Uint("formID", formID).Msg("GetForm: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load form"})
		return
	}
	ctx.JSON(http.StatusOK, form)
}

// ListForms godoc
// @Summary List the current user's forms
// @Tags Forms
// @Produce json
// @Success 200 {array} dto.FormSummaryDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /forms [get]
func (c *FormController) ListForms(ctx *gin.Context) {
	forms, err := c.formService.ListUserForms(currentUserID(ctx))
	if err != nil {
		log.Error().Err(err).Msg("ListForms: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list forms"})
		return
	}
	ctx.JSON(http.StatusOK, forms)
}

// DeleteForm godoc
// @Summary Delete a form
// @Tags Forms
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /forms/{id} [delete]
func (c *FormController) DeleteForm(ctx *gin.Context) {
	formID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.formService.DeleteForm(currentUserID(ctx), formID); err != nil {
		switch {
		case errors.Is(err, service.ErrFormNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Form not found"})
		case errors.Is(err, service.ErrNotFormOwner):
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "You do not own this form"})
		default:
			log.Error().Err(err).Uint("formID", formID).Msg("DeleteForm: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete form"})
		}
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Msg: "Form deleted successfully"})
}

// GetTemplate godoc
// @Summary Prefilled definition from a named starter template
// @Tags Forms
// @Produce json
// @Param name path string true "Template name (event, feedback, job, contact, registration, survey)"
// @Success 200 {object} dto.TemplateDTO
// @Failure 404 {object} dto.ErrorResponse
// @Router /forms/templates/{name} [get]
func (c *FormController) GetTemplate(ctx *gin.Context) {
	tpl, err := c.formService.Template(ctx.Param("name"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Unknown template"})
		return
	}
	ctx.JSON(http.StatusOK, tpl)
}

// ListThemes godoc
// @Summary The fixed theme palette
// @Tags Forms
// @Produce json
// @Success 200 {array} builder.Theme
// @Router /themes [get]
func (c *FormController) ListThemes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.formService.Themes())
}

// isValidationError reports whether the error is one of the builder's local
// validation failures, which map to 400 rather than 500.
func isValidationError(err error) bool {
	return errors.Is(err, builder.ErrTitleRequired) ||
		errors.Is(err, builder.ErrNoQuestions) ||
		errors.Is(err, builder.ErrUnknownQuestionType) ||
		errors.Is(err, builder.ErrEmptyListField)
}

// pathID parses a numeric path parameter, answering 400 itself on failure.
func pathID(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}
