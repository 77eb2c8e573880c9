package handlers

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"

	"github.com/folio-dev/folio/internal/blobstore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadSize = 8 << 20 // 8 MiB

// HandleUpload stores a single multipart file under a random name,
// keeping the original name only in the response for the caller to embed
// in a media reference.
func HandleUpload(ctx *gin.Context) {
	if blobstore.Default == nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Storage not ready"})
		return
	}

	fileHeader, err := ctx.FormFile("file")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	if fileHeader.Size > maxUploadSize {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	file, err := fileHeader.Open()

	if err != nil {
		log.Printf("Failed to open uploaded file: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	filename := uuid.NewString() + filepath.Ext(fileHeader.Filename)

	if err := blobstore.Default.Put(ctx.Request.Context(), filename, contentType, file, fileHeader.Size); err != nil {
		log.Printf("Failed to store upload: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"filename":     filename,
		"originalName": fileHeader.Filename,
	})
}

func GetFile(ctx *gin.Context) {
	if blobstore.Default == nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Storage not ready"})
		return
	}

	filename := ctx.Param("filename")

	body, contentType, size, err := blobstore.Default.Get(ctx.Request.Context(), filename)

	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		} else {
			log.Printf("Failed to read file %q: %v", filename, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading file"})
		}
		return
	}
	defer body.Close()

	ctx.DataFromReader(http.StatusOK, size, contentType, body, nil)
}
