package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/toniliu672/ira-server-sub000/internal/apperr"
	"github.com/toniliu672/ira-server-sub000/internal/storage"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	files storage.FileStorage
}

func NewUploadHandler(files storage.FileStorage) *UploadHandler {
	return &UploadHandler{files: files}
}

var allowedUploadExts = map[string]string{
	".jpg": "image", ".jpeg": "image", ".png": "image", ".webp": "image",
	".pdf": "document", ".doc": "document", ".docx": "document", ".ppt": "document", ".pptx": "document",
	".mp4": "video", ".webm": "video",
}

// Upload godoc
// @Summary      Upload a materi attachment
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "File"
// @Success      200 {object} Response
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/admin/upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondErr(c, apperr.Validation("NO_FILE", "no file provided"))
		return
	}

	if file.Size > 50<<20 {
		respondErr(c, apperr.Validation("FILE_TOO_LARGE", "file too large (max 50MB)"))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	kind, ok := allowedUploadExts[ext]
	if !ok {
		respondErr(c, apperr.Validation("UNSUPPORTED_FORMAT", "unsupported file format"))
		return
	}

	url, err := h.files.Save(file)
	if err != nil {
		respondErr(c, apperr.Internal(err))
		return
	}

	respond(c, http.StatusOK, gin.H{"url": url, "type": kind})
}
