package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SafeHavenApp/safehaven_backend/internal/core/ports/services"
	"github.com/SafeHavenApp/safehaven_backend/internal/dto"
	"github.com/SafeHavenApp/safehaven_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// uploadHandler handles multipart file uploads.
type uploadHandler struct {
	uploadService portssvc.UploadSvcFacade
}

func newUploadHandler(us portssvc.UploadSvcFacade) *uploadHandler {
	return &uploadHandler{uploadService: us}
}

// registerPublicUploadRoutes registers the anonymous staging endpoint used by
// the registration wizard before an account exists.
func registerPublicUploadRoutes(rg *gin.Engine, uploadService portssvc.UploadSvcFacade) {
	h := newUploadHandler(uploadService)
	rg.POST("/api/upload/temp", h.stageUpload)
}

// registerUploadRoutes registers the authenticated direct upload endpoint.
func registerUploadRoutes(rg *gin.RouterGroup, uploadService portssvc.UploadSvcFacade) {
	h := newUploadHandler(uploadService)
	rg.POST("/upload", h.uploadForUser)
}

// bindUpload pulls the multipart file plus its purpose field out of the request.
func bindUpload(c *gin.Context) (portssvc.Upload, string, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("File is required"))
		return portssvc.Upload{}, "", false
	}

	purpose := c.PostForm("purpose")
	if purpose == "" {
		purpose = "evidence"
	}

	f, err := fileHeader.Open()
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("Failed to read uploaded file"))
		return portssvc.Upload{}, "", false
	}

	return portssvc.Upload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      f,
	}, purpose, true
}

// stageUpload godoc
// @Summary Stage a file upload
// @Description Stores a file in the temporary area and returns a temp id for later promotion.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Param purpose formData string false "Upload purpose: profile, identity or evidence"
// @Success 201 {object} dto.APIResponse{data=dto.TempUploadResponse}
// @Failure 400 {object} dto.APIResponse
// @Router /api/upload/temp [post]
func (h *uploadHandler) stageUpload(c *gin.Context) {
	upload, purpose, ok := bindUpload(c)
	if !ok {
		return
	}

	resp, err := h.uploadService.StageUpload(c.Request.Context(), upload, purpose)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(resp))
}

// uploadForUser godoc
// @Summary Upload a file
// @Description Stores a file directly in the authenticated user's namespace.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Param purpose formData string false "Upload purpose: profile, identity or evidence"
// @Success 201 {object} dto.APIResponse{data=dto.UploadResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /api/upload [post]
func (h *uploadHandler) uploadForUser(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("Not authenticated"))
		return
	}

	upload, purpose, ok := bindUpload(c)
	if !ok {
		return
	}

	resp, err := h.uploadService.UploadForUser(c.Request.Context(), upload, purpose, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(resp))
}
