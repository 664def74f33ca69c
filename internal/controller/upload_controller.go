package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Formery/internal/dto"
	"github.com/lshigami/Formery/internal/service"
	"github.com/rs/zerolog/log"
)

// maxUploadBytes caps a single uploaded file at 10 MiB.
const maxUploadBytes = 10 << 20

type UploadController struct {
	uploadService service.UploadService
}

func NewUploadController(uploadService service.UploadService) *UploadController {
	return &UploadController{uploadService: uploadService}
}

// Upload godoc
// @Summary Store an uploaded file
// @Description Accepts one multipart file under the "file" field and returns
// @Description the stored-file reference. Mounted at /upload, /upload/image
// @Description and /upload/document; all three behave identically.
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to store"
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse "File too large"
// @Router /upload [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Missing file field", Details: []string{err.Error()}})
		return
	}
	if header.Size > maxUploadBytes {
		ctx.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Message: "File exceeds the 10 MB limit"})
		return
	}

	src, err := header.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Unreadable file", Details: []string{err.Error()}})
		return
	}
	defer src.Close()

	path, err := c.uploadService.SaveFile(header.Filename, src)
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("Upload: store failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to store file"})
		return
	}
	ctx.JSON(http.StatusCreated, dto.UploadResponse{FilePath: path})
}
