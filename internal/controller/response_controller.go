package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Formery/internal/dto"
	"github.com/lshigami/Formery/internal/service"
	"github.com/rs/zerolog/log"
)

type ResponseController struct {
	responseService service.ResponseService
}

func NewResponseController(responseService service.ResponseService) *ResponseController {
	return &ResponseController{responseService: responseService}
}

// Submit godoc
// @Summary Submit a filled form
// @Description Public: respondents do not need an account. The submission is
// @Description one atomic unit; every question of the form must be answered.
// @Tags Responses
// @Accept json
// @Produce json
// @Param submission body dto.SubmitResponseRequest true "Form id and answers"
// @Success 201 {object} dto.ResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing or empty answers"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Router /responses/submit [post]
func (c *ResponseController) Submit(ctx *gin.Context) {
	var req dto.SubmitResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	response, err := c.responseService.Submit(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFormNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Form not found"})
		case errors.Is(err, service.ErrMissingAnswers), errors.Is(err, service.ErrNoValidAnswers):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Uint("formID", req.FormID).Msg("Submit: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit response"})
		}
		return
	}
	ctx.JSON(http.StatusCreated, response)
}

// ListByForm godoc
// @Summary Responses collected for one form
// @Description Only the form's owner can read its responses.
// @Tags Responses
// @Produce json
// @Param formId query int true "Form ID"
// @Success 200 {array} dto.ResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /responses [get]
func (c *ResponseController) ListByForm(ctx *gin.Context) {
	raw := ctx.Query("formId")
	formID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid formId query parameter"})
		return
	}

	responses, err := c.responseService.ListByForm(currentUserID(ctx), uint(formID))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFormNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Form not found"})
		case errors.Is(err, service.ErrNotFormOwner):
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "You do not own this form"})
		default:
			log.Error().Err(err).Uint64("formID", formID).Msg("ListByForm: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list responses"})
		}
		return
	}
	ctx.JSON(http.StatusOK, responses)
}

// ListForOwner godoc
// @Summary All responses to the current user's forms
// @Tags Responses
// @Produce json
// @Success 200 {array} dto.ResponseDTO
// @Failure 401 {object} dto.ErrorResponse
// @Router /responses/user [get]
func (c *ResponseController) ListForOwner(ctx *gin.Context) {
	responses, err := c.responseService.ListForOwner(currentUserID(ctx))
	if err != nil {
		log.Error().Err(err).Msg("ListForOwner: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list responses"})
		return
	}
	ctx.JSON(http.StatusOK, responses)
}

// Delete godoc
// @Summary Delete one response
// @Tags Responses
// @Produce json
// @Param id path int true "Response ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /responses/{id} [delete]
func (c *ResponseController) Delete(ctx *gin.Context) {
	responseID, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.responseService.Delete(currentUserID(ctx), responseID); err != nil {
		switch {
		case errors.Is(err, service.ErrResponseNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Response not found"})
		case errors.Is(err, service.ErrNotResponseOwner):
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "You do not own this response"})
		default:
			log.Error().Err(err).Uint("responseID", responseID).Msg("Delete: service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete response"})
		}
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Msg: "Response deleted successfully"})
}
