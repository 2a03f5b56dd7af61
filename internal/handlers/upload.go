package handlers

import (
	"net/http"
	"strings"

	"petit/internal/services"

	"github.com/gin-gonic/gin"
)

const maxImageSize = 10 << 20 // 10MB

var uploadFolders = map[string]bool{
	"posts":     true,
	"articles":  true,
	"knowledge": true,
}

type UploadHandler struct{}

func NewUploadHandler() *UploadHandler {
	return &UploadHandler{}
}

// Images accepts multipart image uploads and returns their public URLs
// (POST /api/upload/images?folder=posts).
func (h *UploadHandler) Images(c *gin.Context) {
	storage := services.GetStorage()
	if storage == nil {
		fail(c, http.StatusServiceUnavailable, "image uploads are not configured")
		return
	}

	folder := c.DefaultQuery("folder", "posts")
	if !uploadFolders[folder] {
		fail(c, http.StatusBadRequest, "unknown upload folder")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid multipart form")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		fail(c, http.StatusBadRequest, "no images provided")
		return
	}
	if len(files) > 9 {
		fail(c, http.StatusBadRequest, "at most 9 images per upload")
		return
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		contentType := file.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			fail(c, http.StatusBadRequest, "only image files are accepted")
			return
		}
		if file.Size > maxImageSize {
			fail(c, http.StatusBadRequest, "image exceeds the 10MB limit")
			return
		}

		src, err := file.Open()
		if err != nil {
			failServer(c)
			return
		}

		url, err := storage.Upload(c.Request.Context(), folder, file.Filename, contentType, src, file.Size)
		src.Close()
		if err != nil {
			fail(c, http.StatusBadGateway, "image upload failed")
			return
		}
		urls = append(urls, url)
	}

	c.JSON(http.StatusCreated, gin.H{"urls": urls})
}
